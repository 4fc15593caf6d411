package web

import (
	"time"

	"github.com/ecodeclub/challenge/internal/project/internal/domain"
)

type Project struct {
	Id    int64  `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Desc  string `json:"description,omitempty"`
	// 两个截止时间都是 UTC Unix 毫秒数
	Deadline       int64 `json:"deadline,omitempty"`
	EnrollDeadline int64 `json:"applicationDeadline,omitempty"`
	EnrollmentOpen bool  `json:"isApplicationOpen,omitempty"`
	Status         uint8 `json:"status,omitempty"`
	Utime          int64 `json:"utime,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id,omitempty"`
}

type SaveReq struct {
	Project Project `json:"project,omitempty"`
}

type ProjectListResp struct {
	Total int64     `json:"total,omitempty"`
	List  []Project `json:"list,omitempty"`
}

func (p Project) toDomain() domain.Project {
	return domain.Project{
		Id:             p.Id,
		Title:          p.Title,
		Desc:           p.Desc,
		Deadline:       time.UnixMilli(p.Deadline),
		EnrollDeadline: time.UnixMilli(p.EnrollDeadline),
		EnrollmentOpen: p.EnrollmentOpen,
	}
}

func newProject(prj domain.Project) Project {
	return Project{
		Id:             prj.Id,
		Title:          prj.Title,
		Desc:           prj.Desc,
		Deadline:       prj.Deadline.UnixMilli(),
		EnrollDeadline: prj.EnrollDeadline.UnixMilli(),
		EnrollmentOpen: prj.EnrollmentOpen,
		Status:         prj.Status.ToUint8(),
		Utime:          prj.Utime,
	}
}
