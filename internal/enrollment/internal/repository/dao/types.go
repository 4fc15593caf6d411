package dao

type Enrollment struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"not null;uniqueIndex:unq_uid_pid"`
	Pid int64 `gorm:"not null;uniqueIndex:unq_uid_pid"`
	// 报名时刻，UTC Unix 毫秒数
	AppliedAt int64 `gorm:"not null"`
	// 个人提交截止时间，UTC Unix 毫秒数
	Deadline int64 `gorm:"not null"`
	// 提交记录 ID，0 表示还没提交
	Sid   int64 `gorm:"not null;default:0"`
	Ctime int64
	Utime int64
}
