package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

type Repository interface {
	Create(ctx context.Context, sub domain.Submission) (int64, error)
	Info(ctx context.Context, id int64) (domain.Submission, error)
	List(ctx context.Context, pid int64, offset int, limit int) ([]domain.Submission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus, feedback string) (int64, error)
}

var _ Repository = &submissionRepo{}

type submissionRepo struct {
	dao dao.SubmissionDAO
}

func NewRepository(d dao.SubmissionDAO) Repository {
	return &submissionRepo{
		dao: d,
	}
}

func (repo *submissionRepo) Create(ctx context.Context, sub domain.Submission) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(sub))
}

func (repo *submissionRepo) Info(ctx context.Context, id int64) (domain.Submission, error) {
	sub, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	return repo.toDomain(sub), nil
}

func (repo *submissionRepo) List(ctx context.Context, pid int64, offset int, limit int) ([]domain.Submission, error) {
	var (
		subs []dao.Submission
		err  error
	)
	if pid > 0 {
		subs, err = repo.dao.ListByPid(ctx, pid, offset, limit)
	} else {
		subs, err = repo.dao.List(ctx, offset, limit)
	}
	if err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return repo.toDomain(src)
	}), nil
}

func (repo *submissionRepo) UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus, feedback string) (int64, error) {
	return repo.dao.UpdateStatus(ctx, id, status.ToUint8(), feedback)
}

func (repo *submissionRepo) toEntity(sub domain.Submission) dao.Submission {
	return dao.Submission{
		Id:          sub.Id,
		Uid:         sub.Uid,
		Pid:         sub.Pid,
		Desc:        sub.Desc,
		Links:       sqlx.JsonColumn[[]string]{Val: sub.Links, Valid: true},
		Files:       sqlx.JsonColumn[[]string]{Val: sub.Files, Valid: true},
		Feedback:    sub.Feedback,
		Status:      sub.Status.ToUint8(),
		SubmittedAt: sub.SubmittedAt.UnixMilli(),
	}
}

func (repo *submissionRepo) toDomain(sub dao.Submission) domain.Submission {
	return domain.Submission{
		Id:          sub.Id,
		Uid:         sub.Uid,
		Pid:         sub.Pid,
		Desc:        sub.Desc,
		Links:       sub.Links.Val,
		Files:       sub.Files.Val,
		Feedback:    sub.Feedback,
		Status:      domain.SubmissionStatus(sub.Status),
		SubmittedAt: time.UnixMilli(sub.SubmittedAt),
		Utime:       sub.Utime,
	}
}
