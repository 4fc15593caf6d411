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

//go:build wireinject

package project

import (
	"github.com/ecodeclub/challenge/internal/project/internal/repository"
	"github.com/ecodeclub/challenge/internal/project/internal/repository/cache"
	"github.com/ecodeclub/challenge/internal/project/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/project/internal/service"
	"github.com/ecodeclub/challenge/internal/project/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		initProjectDAO,
		dao.NewGORMProjectAdminDAO,
		cache.NewProjectCache,
		repository.NewCachedRepository,
		repository.NewProjectAdminRepository,
		service.NewService,
		service.NewAdminService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initProjectDAO(db *egorm.Component) dao.ProjectDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMProjectDAO(db)
}
