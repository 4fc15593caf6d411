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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/challenge/internal/project/internal/domain"
	"github.com/ecodeclub/challenge/internal/project/internal/repository/cache"
	"github.com/ecodeclub/challenge/internal/project/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

type Repository interface {
	List(ctx context.Context, offset int, limit int) ([]domain.Project, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
}

var _ Repository = &CachedRepository{}

type CachedRepository struct {
	dao    dao.ProjectDAO
	cache  cache.ProjectCache
	logger *elog.Component
}

func NewCachedRepository(d dao.ProjectDAO, c cache.ProjectCache) Repository {
	return &CachedRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedRepository) List(ctx context.Context, offset int, limit int) ([]domain.Project, error) {
	prjs, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(prjs, func(idx int, src dao.PubProject) domain.Project {
		return repo.toDomain(dao.Project(src))
	}), nil
}

func (repo *CachedRepository) Detail(ctx context.Context, id int64) (domain.Project, error) {
	res, err := repo.cache.GetProject(ctx, id)
	if err == nil {
		return res, nil
	}
	prj, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	res = repo.toDomain(dao.Project(prj))
	if err = repo.cache.SetProject(ctx, res); err != nil {
		// 缓存写失败不影响主流程
		repo.logger.Error("缓存项目失败",
			elog.Int64("pid", id),
			elog.FieldErr(err))
	}
	return res, nil
}

func (repo *CachedRepository) toDomain(prj dao.Project) domain.Project {
	return domain.Project{
		Id:             prj.Id,
		Title:          prj.Title,
		Desc:           prj.Desc,
		Status:         domain.ProjectStatus(prj.Status),
		Deadline:       time.UnixMilli(prj.Deadline),
		EnrollDeadline: time.UnixMilli(prj.EnrollDeadline),
		EnrollmentOpen: prj.EnrollmentOpen,
		Utime:          prj.Utime,
	}
}
