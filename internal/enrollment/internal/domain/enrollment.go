package domain

import "time"

// Enrollment 用户和项目之间的报名关系，一个用户对一个项目至多一条
type Enrollment struct {
	Id  int64
	Uid int64
	Pid int64
	// 报名时刻
	AppliedAt time.Time
	// 个人提交截止时间，报名之后固定七天
	Deadline time.Time
	// 关联的提交记录 ID，0 表示还没提交
	Sid int64
}

func (e Enrollment) Submitted() bool {
	return e.Sid != 0
}
