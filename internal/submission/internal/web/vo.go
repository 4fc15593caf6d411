package web

import (
	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
)

type Submission struct {
	Id       int64    `json:"id,omitempty"`
	Uid      int64    `json:"userId,omitempty"`
	Pid      int64    `json:"projectId,omitempty"`
	Desc     string   `json:"description,omitempty"`
	Links    []string `json:"links,omitempty"`
	Files    []string `json:"files,omitempty"`
	Feedback string   `json:"feedback,omitempty"`
	Status   uint8    `json:"status,omitempty"`
	// 提交时刻，UTC Unix 毫秒数
	SubmittedAt int64 `json:"submittedAt,omitempty"`
}

type SubmitReq struct {
	Desc  string   `json:"description"`
	Links []string `json:"links"`
	Files []string `json:"files"`
}

type ReviewReq struct {
	Feedback string `json:"feedback"`
}

func newSubmission(sub domain.Submission) Submission {
	return Submission{
		Id:          sub.Id,
		Uid:         sub.Uid,
		Pid:         sub.Pid,
		Desc:        sub.Desc,
		Links:       sub.Links,
		Files:       sub.Files,
		Feedback:    sub.Feedback,
		Status:      sub.Status.ToUint8(),
		SubmittedAt: sub.SubmittedAt.UnixMilli(),
	}
}
