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

package service

import (
	"context"

	"github.com/ecodeclub/challenge/internal/project/internal/domain"
	"github.com/ecodeclub/challenge/internal/project/internal/repository"
	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	Save(ctx context.Context, prj domain.Project) (int64, error)
	// Publish 保存并且同步到线上库
	Publish(ctx context.Context, prj domain.Project) (int64, error)
	List(ctx context.Context, offset int, limit int) (int64, []domain.Project, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
}

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{
		repo: repo,
	}
}

func (s *adminService) Save(ctx context.Context, prj domain.Project) (int64, error) {
	prj.Status = domain.ProjectStatusUnpublished
	return s.repo.Save(ctx, prj)
}

func (s *adminService) Publish(ctx context.Context, prj domain.Project) (int64, error) {
	prj.Status = domain.ProjectStatusPublished
	return s.repo.Sync(ctx, prj)
}

func (s *adminService) List(ctx context.Context, offset int, limit int) (int64, []domain.Project, error) {
	var eg errgroup.Group
	var count int64
	var prjs []domain.Project
	eg.Go(func() error {
		var eerr error
		prjs, eerr = s.repo.List(ctx, offset, limit)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		count, eerr = s.repo.Count(ctx)
		return eerr
	})
	err := eg.Wait()
	return count, prjs, err
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.Project, error) {
	return s.repo.Detail(ctx, id)
}
