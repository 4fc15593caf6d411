package dao

import "github.com/ecodeclub/ekit/sqlx"

type Submission struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"not null;uniqueIndex:unq_uid_pid"`
	Pid int64 `gorm:"not null;uniqueIndex:unq_uid_pid;index:idx_pid"`
	// 作品描述
	Desc  string                    `gorm:"type:text"`
	Links sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	Files sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	// 审核反馈
	Feedback string `gorm:"type:text"`
	Status   uint8  `gorm:"not null;default:1;index:idx_status"`
	// 提交时刻，UTC Unix 毫秒数
	SubmittedAt int64 `gorm:"not null"`
	Ctime       int64
	Utime       int64
}
