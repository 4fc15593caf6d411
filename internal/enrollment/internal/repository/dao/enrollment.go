// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicatedEnrollment 唯一索引冲突，同一个用户重复报名同一个项目
	ErrDuplicatedEnrollment = errors.New("报名记录重复")
)

type EnrollmentDAO interface {
	Create(ctx context.Context, e Enrollment) (int64, error)
	ListByUid(ctx context.Context, uid int64) ([]Enrollment, error)
	GetByUidPid(ctx context.Context, uid, pid int64) (Enrollment, error)
	// AttachSubmission 把提交记录挂到报名记录上，只有尚未提交过才会成功，
	// 返回受影响的行数
	AttachSubmission(ctx context.Context, uid, pid, sid int64) (int64, error)
}

var _ EnrollmentDAO = &GORMEnrollmentDAO{}

type GORMEnrollmentDAO struct {
	db *egorm.Component
}

func NewGORMEnrollmentDAO(db *egorm.Component) EnrollmentDAO {
	return &GORMEnrollmentDAO{db: db}
}

func (dao *GORMEnrollmentDAO) Create(ctx context.Context, e Enrollment) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	err := dao.db.WithContext(ctx).Create(&e).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedEnrollment
			}
		}
		return 0, err
	}
	return e.Id, nil
}

func (dao *GORMEnrollmentDAO) ListByUid(ctx context.Context, uid int64) ([]Enrollment, error) {
	var res []Enrollment
	err := dao.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMEnrollmentDAO) GetByUidPid(ctx context.Context, uid, pid int64) (Enrollment, error) {
	var res Enrollment
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND pid = ?", uid, pid).First(&res).Error
	return res, err
}

func (dao *GORMEnrollmentDAO) AttachSubmission(ctx context.Context, uid, pid, sid int64) (int64, error) {
	res := dao.db.WithContext(ctx).
		Model(&Enrollment{}).
		Where("uid = ? AND pid = ? AND sid = 0", uid, pid).
		Updates(map[string]any{
			"sid":   sid,
			"utime": time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}
