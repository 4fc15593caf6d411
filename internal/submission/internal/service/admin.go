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

	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
	"github.com/ecodeclub/challenge/internal/submission/internal/event"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("提交记录不存在")
	// ErrSubmissionFinalized 通过和驳回都是终态，不允许再审核
	ErrSubmissionFinalized = errors.New("提交记录已经审核完毕")
	// ErrEmptyFeedback 驳回必须给出非空反馈
	ErrEmptyFeedback = errors.New("驳回必须填写反馈")
)

// AdminService 管理端审核流程：待审核 -> 通过 | 驳回
type AdminService interface {
	List(ctx context.Context, pid int64, offset int, limit int) ([]domain.Submission, error)
	// Approve 反馈可以不填
	Approve(ctx context.Context, id int64, feedback string) (domain.Submission, error)
	// Reject 反馈必填，去掉首尾空白之后不能为空
	Reject(ctx context.Context, id int64, feedback string) (domain.Submission, error)
}

type adminService struct {
	repo     repository.Repository
	producer event.ReviewedEventProducer
	logger   *elog.Component
}

func NewAdminService(repo repository.Repository,
	producer event.ReviewedEventProducer) AdminService {
	return &adminService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *adminService) List(ctx context.Context, pid int64, offset int, limit int) ([]domain.Submission, error) {
	return s.repo.List(ctx, pid, offset, limit)
}

func (s *adminService) Approve(ctx context.Context, id int64, feedback string) (domain.Submission, error) {
	return s.review(ctx, id, domain.SubmissionStatusApproved, feedback)
}

func (s *adminService) Reject(ctx context.Context, id int64, feedback string) (domain.Submission, error) {
	if strings.TrimSpace(feedback) == "" {
		return domain.Submission{}, ErrEmptyFeedback
	}
	return s.review(ctx, id, domain.SubmissionStatusRejected, feedback)
}

func (s *adminService) review(ctx context.Context, id int64,
	status domain.SubmissionStatus, feedback string) (domain.Submission, error) {
	sub, err := s.repo.Info(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Submission{}, ErrSubmissionNotFound
	}
	if err != nil {
		return domain.Submission{}, err
	}
	if !sub.Reviewable() {
		return domain.Submission{}, ErrSubmissionFinalized
	}
	affected, err := s.repo.UpdateStatus(ctx, id, status, feedback)
	if err != nil {
		return domain.Submission{}, err
	}
	if affected == 0 {
		// 并发审核，别人抢先改成终态了
		return domain.Submission{}, ErrSubmissionFinalized
	}
	sub.Status = status
	sub.Feedback = feedback
	evt := event.ReviewedEvent{
		Sid:      sub.Id,
		Uid:      sub.Uid,
		Pid:      sub.Pid,
		Status:   status.ToUint8(),
		Feedback: feedback,
	}
	if eerr := s.producer.Produce(ctx, evt); eerr != nil {
		// 审核已经落库，消息发不出去只记日志
		s.logger.Error("发送审核结果消息失败",
			elog.Any("event", evt),
			elog.FieldErr(eerr))
	}
	return sub, nil
}
