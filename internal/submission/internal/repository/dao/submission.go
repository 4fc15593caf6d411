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

	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicatedSubmission 唯一索引冲突，同一条报名记录重复提交
	ErrDuplicatedSubmission = errors.New("提交记录重复")
)

type SubmissionDAO interface {
	Create(ctx context.Context, sub Submission) (int64, error)
	GetById(ctx context.Context, id int64) (Submission, error)
	List(ctx context.Context, offset int, limit int) ([]Submission, error)
	ListByPid(ctx context.Context, pid int64, offset int, limit int) ([]Submission, error)
	// UpdateStatus 状态机迁移。只有待审核状态才能改，返回受影响的行数，
	// 返回 0 说明已经是终态了
	UpdateStatus(ctx context.Context, id int64, status uint8, feedback string) (int64, error)
}

var _ SubmissionDAO = &GORMSubmissionDAO{}

type GORMSubmissionDAO struct {
	db *egorm.Component
}

func NewGORMSubmissionDAO(db *egorm.Component) SubmissionDAO {
	return &GORMSubmissionDAO{db: db}
}

func (dao *GORMSubmissionDAO) Create(ctx context.Context, sub Submission) (int64, error) {
	now := time.Now().UnixMilli()
	sub.Ctime = now
	sub.Utime = now
	err := dao.db.WithContext(ctx).Create(&sub).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedSubmission
			}
		}
		return 0, err
	}
	return sub.Id, nil
}

func (dao *GORMSubmissionDAO) GetById(ctx context.Context, id int64) (Submission, error) {
	var res Submission
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) List(ctx context.Context, offset int, limit int) ([]Submission, error) {
	var res []Submission
	// 先是待审核的，然后按提交先后排
	err := dao.db.WithContext(ctx).
		Order("status ASC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) ListByPid(ctx context.Context, pid int64, offset int, limit int) ([]Submission, error) {
	var res []Submission
	err := dao.db.WithContext(ctx).
		Where("pid = ?", pid).
		Order("status ASC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) UpdateStatus(ctx context.Context, id int64, status uint8, feedback string) (int64, error) {
	res := dao.db.WithContext(ctx).
		Model(&Submission{}).
		Where("id = ? AND status = ?", id, domain.SubmissionStatusPending.ToUint8()).
		Updates(map[string]any{
			"status":   status,
			"feedback": feedback,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}
