package domain

import "time"

// Submission 用户针对一个项目的作品提交，一条报名记录至多一条
type Submission struct {
	Id  int64
	Uid int64
	Pid int64
	// 作品描述，去掉首尾空白之后不能为空
	Desc  string
	Links []string
	Files []string
	// 驳回时必填，通过时可选
	Feedback    string
	Status      SubmissionStatus
	SubmittedAt time.Time
	Utime       int64
}

// Reviewable 只有待审核状态才能审核，通过和驳回都是终态
func (s Submission) Reviewable() bool {
	return s.Status == SubmissionStatusPending
}

type SubmissionStatus uint8

func (s SubmissionStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SubmissionStatusUnknown SubmissionStatus = iota
	// 待审核
	SubmissionStatusPending
	// 审核通过，终态
	SubmissionStatusApproved
	// 已驳回，终态
	SubmissionStatusRejected
)
