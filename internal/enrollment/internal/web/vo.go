package web

import (
	"github.com/ecodeclub/challenge/internal/enrollment/internal/domain"
)

type Enrollment struct {
	Id  int64 `json:"id,omitempty"`
	Uid int64 `json:"userId,omitempty"`
	Pid int64 `json:"projectId,omitempty"`
	// 报名时刻和个人提交截止时间，UTC Unix 毫秒数
	AppliedAt int64 `json:"appliedAt,omitempty"`
	Deadline  int64 `json:"deadline,omitempty"`
	Sid       int64 `json:"submissionId,omitempty"`
}

type AddUserReq struct {
	Uid int64 `json:"userId"`
	Pid int64 `json:"projectId"`
}

func newEnrollment(e domain.Enrollment) Enrollment {
	return Enrollment{
		Id:        e.Id,
		Uid:       e.Uid,
		Pid:       e.Pid,
		AppliedAt: e.AppliedAt.UnixMilli(),
		Deadline:  e.Deadline.UnixMilli(),
		Sid:       e.Sid,
	}
}
