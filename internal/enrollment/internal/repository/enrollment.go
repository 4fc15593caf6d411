package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/challenge/internal/enrollment/internal/domain"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type Repository interface {
	Create(ctx context.Context, e domain.Enrollment) (int64, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Enrollment, error)
	GetByUidPid(ctx context.Context, uid, pid int64) (domain.Enrollment, error)
	AttachSubmission(ctx context.Context, uid, pid, sid int64) (int64, error)
}

var _ Repository = &enrollmentRepo{}

type enrollmentRepo struct {
	dao dao.EnrollmentDAO
}

func NewRepository(d dao.EnrollmentDAO) Repository {
	return &enrollmentRepo{
		dao: d,
	}
}

func (repo *enrollmentRepo) Create(ctx context.Context, e domain.Enrollment) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(e))
}

func (repo *enrollmentRepo) ListByUid(ctx context.Context, uid int64) ([]domain.Enrollment, error) {
	es, err := repo.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Enrollment) domain.Enrollment {
		return repo.toDomain(src)
	}), nil
}

func (repo *enrollmentRepo) GetByUidPid(ctx context.Context, uid, pid int64) (domain.Enrollment, error) {
	e, err := repo.dao.GetByUidPid(ctx, uid, pid)
	if err != nil {
		return domain.Enrollment{}, err
	}
	return repo.toDomain(e), nil
}

func (repo *enrollmentRepo) AttachSubmission(ctx context.Context, uid, pid, sid int64) (int64, error) {
	return repo.dao.AttachSubmission(ctx, uid, pid, sid)
}

func (repo *enrollmentRepo) toEntity(e domain.Enrollment) dao.Enrollment {
	return dao.Enrollment{
		Id:        e.Id,
		Uid:       e.Uid,
		Pid:       e.Pid,
		AppliedAt: e.AppliedAt.UnixMilli(),
		Deadline:  e.Deadline.UnixMilli(),
		Sid:       e.Sid,
	}
}

func (repo *enrollmentRepo) toDomain(e dao.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		Id:        e.Id,
		Uid:       e.Uid,
		Pid:       e.Pid,
		AppliedAt: time.UnixMilli(e.AppliedAt),
		Deadline:  time.UnixMilli(e.Deadline),
		Sid:       e.Sid,
	}
}
