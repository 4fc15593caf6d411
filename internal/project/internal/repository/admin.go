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

type AdminRepository interface {
	Save(ctx context.Context, prj domain.Project) (int64, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Project, error)
	Count(ctx context.Context) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
	// Sync 同步到线上库
	Sync(ctx context.Context, prj domain.Project) (int64, error)
}

var _ AdminRepository = &ProjectAdminRepository{}

type ProjectAdminRepository struct {
	dao    dao.ProjectAdminDAO
	cache  cache.ProjectCache
	logger *elog.Component
}

func NewProjectAdminRepository(d dao.ProjectAdminDAO, c cache.ProjectCache) AdminRepository {
	return &ProjectAdminRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *ProjectAdminRepository) Save(ctx context.Context, prj domain.Project) (int64, error) {
	return repo.dao.Save(ctx, repo.toEntity(prj))
}

func (repo *ProjectAdminRepository) List(ctx context.Context, offset int, limit int) ([]domain.Project, error) {
	prjs, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(prjs, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), nil
}

func (repo *ProjectAdminRepository) Count(ctx context.Context) (int64, error) {
	return repo.dao.Count(ctx)
}

func (repo *ProjectAdminRepository) Detail(ctx context.Context, id int64) (domain.Project, error) {
	prj, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return repo.toDomain(prj), nil
}

func (repo *ProjectAdminRepository) Sync(ctx context.Context, prj domain.Project) (int64, error) {
	id, err := repo.dao.Sync(ctx, repo.toEntity(prj))
	if err != nil {
		return 0, err
	}
	prj.Id = id
	// 发布之后刷新一下缓存，失败了也不影响发布本身
	if err := repo.cache.SetProject(ctx, prj); err != nil {
		repo.logger.Error("发布后刷新项目缓存失败",
			elog.Int64("pid", id),
			elog.FieldErr(err))
	}
	return id, nil
}

func (repo *ProjectAdminRepository) toEntity(prj domain.Project) dao.Project {
	return dao.Project{
		Id:             prj.Id,
		Title:          prj.Title,
		Desc:           prj.Desc,
		Status:         prj.Status.ToUint8(),
		Deadline:       prj.Deadline.UnixMilli(),
		EnrollDeadline: prj.EnrollDeadline.UnixMilli(),
		EnrollmentOpen: prj.EnrollmentOpen,
	}
}

func (repo *ProjectAdminRepository) toDomain(prj dao.Project) domain.Project {
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
