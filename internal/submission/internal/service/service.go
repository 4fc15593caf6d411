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
	"strings"
	"time"

	"github.com/ecodeclub/challenge/internal/enrollment"
	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEnrollmentNotFound = enrollment.ErrEnrollmentNotFound
	// ErrDuplicateSubmission 一条报名记录至多一条提交
	ErrDuplicateSubmission = errors.New("已经提交过作品")
	// ErrInvalidDescription 作品描述去掉首尾空白之后为空
	ErrInvalidDescription = errors.New("作品描述不能为空")
	// ErrDeadlinePassed 已过个人提交截止时间，只在开了强制校验时才会返回
	ErrDeadlinePassed = errors.New("已过提交截止时间")
)

type Service interface {
	// Submit 提交作品。描述必填，空链接会被丢弃。
	// 至多成功一次，成功之后回写报名记录
	Submit(ctx context.Context, sub domain.Submission) (domain.Submission, error)
}

type service struct {
	repo      repository.Repository
	enrollSvc enrollment.Service
	// 线上行为是超过个人截止时间也放行，只有显式开了开关才拦截
	enforceDeadline bool
	logger          *elog.Component
}

func NewService(repo repository.Repository,
	enrollSvc enrollment.Service,
	enforceDeadline bool) Service {
	return &service{
		repo:            repo,
		enrollSvc:       enrollSvc,
		enforceDeadline: enforceDeadline,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, sub domain.Submission) (domain.Submission, error) {
	e, err := s.enrollSvc.Info(ctx, sub.Uid, sub.Pid)
	if err != nil {
		return domain.Submission{}, err
	}
	if e.Submitted() {
		return domain.Submission{}, ErrDuplicateSubmission
	}
	if strings.TrimSpace(sub.Desc) == "" {
		return domain.Submission{}, ErrInvalidDescription
	}
	now := time.Now()
	if s.enforceDeadline && !now.Before(e.Deadline) {
		return domain.Submission{}, ErrDeadlinePassed
	}
	sub.Links = cleanLinks(sub.Links)
	sub.Status = domain.SubmissionStatusPending
	sub.SubmittedAt = now
	id, err := s.repo.Create(ctx, sub)
	if errors.Is(err, dao.ErrDuplicatedSubmission) {
		// 并发提交被唯一索引拦下来了
		return domain.Submission{}, ErrDuplicateSubmission
	}
	if err != nil {
		return domain.Submission{}, err
	}
	sub.Id = id
	err = s.enrollSvc.AttachSubmission(ctx, sub.Uid, sub.Pid, id)
	if err != nil && !errors.Is(err, enrollment.ErrSubmissionAttached) {
		s.logger.Error("回写报名记录失败",
			elog.Int64("sid", id),
			elog.Int64("uid", sub.Uid),
			elog.Int64("pid", sub.Pid),
			elog.FieldErr(err))
		return domain.Submission{}, err
	}
	return sub, nil
}

// cleanLinks 丢弃空链接，不做 URL 语法校验
func cleanLinks(links []string) []string {
	res := make([]string, 0, len(links))
	for _, link := range links {
		if strings.TrimSpace(link) != "" {
			res = append(res, link)
		}
	}
	return res
}
