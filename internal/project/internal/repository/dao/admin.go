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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectAdminDAO interface {
	Save(ctx context.Context, prj Project) (int64, error)
	List(ctx context.Context, offset int, limit int) ([]Project, error)
	Count(ctx context.Context) (int64, error)
	GetById(ctx context.Context, id int64) (Project, error)
	// Sync 制作库同步到线上库
	Sync(ctx context.Context, prj Project) (int64, error)
}

var _ ProjectAdminDAO = &GORMProjectAdminDAO{}

type GORMProjectAdminDAO struct {
	db               *egorm.Component
	prjUpdateColumns []string
}

func NewGORMProjectAdminDAO(db *egorm.Component) ProjectAdminDAO {
	return &GORMProjectAdminDAO{
		db: db,
		prjUpdateColumns: []string{
			"title", "desc", "status",
			"deadline", "enroll_deadline", "enrollment_open", "utime",
		},
	}
}

func (dao *GORMProjectAdminDAO) Save(ctx context.Context, prj Project) (int64, error) {
	return dao.save(dao.db.WithContext(ctx), &prj)
}

func (dao *GORMProjectAdminDAO) save(tx *gorm.DB, prj *Project) (int64, error) {
	now := time.Now().UnixMilli()
	prj.Utime = now
	prj.Ctime = now
	err := tx.Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns(dao.prjUpdateColumns),
	}).Create(prj).Error
	return prj.Id, err
}

func (dao *GORMProjectAdminDAO) List(ctx context.Context, offset int, limit int) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).Offset(offset).Find(&res).Error
	return res, err
}

func (dao *GORMProjectAdminDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&Project{}).Count(&count).Error
	return count, err
}

func (dao *GORMProjectAdminDAO) GetById(ctx context.Context, id int64) (Project, error) {
	var res Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMProjectAdminDAO) Sync(ctx context.Context, prj Project) (int64, error) {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := dao.save(tx, &prj)
		if err != nil {
			return err
		}
		prj.Id = id
		pubPrj := PubProject(prj)
		return tx.Clauses(clause.OnConflict{
			DoUpdates: clause.AssignmentColumns(dao.prjUpdateColumns),
		}).Create(&pubPrj).Error
	})
	return prj.Id, err
}
