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

package enrollment

import (
	"github.com/ecodeclub/challenge/internal/enrollment/internal/repository"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/service"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/web"
	"github.com/ecodeclub/challenge/internal/project"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, prjModule *project.Module) (*Module, error) {
	wire.Build(
		initEnrollmentDAO,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*project.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initEnrollmentDAO(db *egorm.Component) dao.EnrollmentDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMEnrollmentDAO(db)
}
