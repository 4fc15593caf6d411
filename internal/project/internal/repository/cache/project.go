package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/challenge/internal/project/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const (
	projectExpiration = 24 * time.Hour
)

var (
	ErrProjectNotCached = errors.New("项目不在缓存中")
)

type ProjectCache interface {
	SetProject(ctx context.Context, prj domain.Project) error
	GetProject(ctx context.Context, id int64) (domain.Project, error)
}

type projectCache struct {
	ec ecache.Cache
}

func NewProjectCache(ec ecache.Cache) ProjectCache {
	return &projectCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "project:",
		},
	}
}

func (p *projectCache) SetProject(ctx context.Context, prj domain.Project) error {
	data, err := json.Marshal(prj)
	if err != nil {
		return errors.Wrap(err, "序列化项目失败")
	}
	return p.ec.Set(ctx, p.projectKey(prj.Id), string(data), projectExpiration)
}

func (p *projectCache) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	val := p.ec.Get(ctx, p.projectKey(id))
	if val.KeyNotFound() {
		return domain.Project{}, ErrProjectNotCached
	}
	if val.Err != nil {
		return domain.Project{}, errors.Wrap(val.Err, "查询缓存出错")
	}

	var prj domain.Project
	err := json.Unmarshal([]byte(val.Val.(string)), &prj)
	if err != nil {
		return domain.Project{}, errors.Wrap(err, "反序列化项目失败")
	}
	return prj, nil
}

func (p *projectCache) projectKey(id int64) string {
	return fmt.Sprintf("publish:%d", id)
}
