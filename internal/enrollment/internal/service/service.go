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
	"errors"
	"time"

	"github.com/ecodeclub/challenge/internal/enrollment/internal/domain"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/repository"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/project"
	"gorm.io/gorm"
)

// EnrollDuration 个人提交截止时间距离报名时刻的长度。
// 刻意和项目本身的结项截止时间无关，保持线上已有的行为
const EnrollDuration = 7 * 24 * time.Hour

var (
	ErrProjectNotFound = project.ErrProjectNotFound
	// ErrWindowClosed 项目未开放报名，或者报名截止时间已过
	ErrWindowClosed = errors.New("报名已截止")
	// ErrAlreadyEnrolled 同一个用户对同一个项目只能报名一次
	ErrAlreadyEnrolled = errors.New("已经报名过该项目")
	// ErrEnrollmentNotFound 没有对应的报名记录
	ErrEnrollmentNotFound = errors.New("报名记录不存在")
	// ErrSubmissionAttached 报名记录上已经挂了提交记录
	ErrSubmissionAttached = errors.New("已经提交过作品")
)

type Service interface {
	// Enroll C 端报名，校验报名窗口和唯一性
	Enroll(ctx context.Context, uid, pid int64) (domain.Enrollment, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Enrollment, error)
	Info(ctx context.Context, uid, pid int64) (domain.Enrollment, error)
	// AttachSubmission 把提交记录挂到报名记录上，至多成功一次
	AttachSubmission(ctx context.Context, uid, pid, sid int64) error
	// Assign 管理端直接把用户拉进项目，跳过报名窗口校验，
	// 但是唯一性约束不能跳过
	Assign(ctx context.Context, uid, pid int64) (domain.Enrollment, error)
}

type service struct {
	repo   repository.Repository
	prjSvc project.Service
}

func NewService(repo repository.Repository, prjSvc project.Service) Service {
	return &service{
		repo:   repo,
		prjSvc: prjSvc,
	}
}

func (s *service) Enroll(ctx context.Context, uid, pid int64) (domain.Enrollment, error) {
	prj, err := s.prjSvc.Detail(ctx, pid)
	if err != nil {
		return domain.Enrollment{}, err
	}
	now := time.Now()
	if !prj.Enrollable(now) {
		return domain.Enrollment{}, ErrWindowClosed
	}
	return s.create(ctx, uid, pid, now)
}

func (s *service) Assign(ctx context.Context, uid, pid int64) (domain.Enrollment, error) {
	// 管理端也必须指向一个真实存在的项目
	_, err := s.prjSvc.Detail(ctx, pid)
	if err != nil {
		return domain.Enrollment{}, err
	}
	return s.create(ctx, uid, pid, time.Now())
}

func (s *service) create(ctx context.Context, uid, pid int64, now time.Time) (domain.Enrollment, error) {
	e := domain.Enrollment{
		Uid:       uid,
		Pid:       pid,
		AppliedAt: now,
		Deadline:  now.Add(EnrollDuration),
	}
	id, err := s.repo.Create(ctx, e)
	if errors.Is(err, dao.ErrDuplicatedEnrollment) {
		return domain.Enrollment{}, ErrAlreadyEnrolled
	}
	if err != nil {
		return domain.Enrollment{}, err
	}
	e.Id = id
	return e, nil
}

func (s *service) ListByUid(ctx context.Context, uid int64) ([]domain.Enrollment, error) {
	return s.repo.ListByUid(ctx, uid)
}

func (s *service) Info(ctx context.Context, uid, pid int64) (domain.Enrollment, error) {
	e, err := s.repo.GetByUidPid(ctx, uid, pid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Enrollment{}, ErrEnrollmentNotFound
	}
	return e, err
}

func (s *service) AttachSubmission(ctx context.Context, uid, pid, sid int64) error {
	affected, err := s.repo.AttachSubmission(ctx, uid, pid, sid)
	if err != nil {
		return err
	}
	if affected == 0 {
		// 没改到任何行：要么根本没报名，要么已经挂过提交记录了
		_, err = s.Info(ctx, uid, pid)
		if err != nil {
			return err
		}
		return ErrSubmissionAttached
	}
	return nil
}
