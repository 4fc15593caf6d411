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

package submission

import (
	"github.com/ecodeclub/challenge/internal/enrollment"
	"github.com/ecodeclub/challenge/internal/submission/internal/event"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/submission/internal/service"
	"github.com/ecodeclub/challenge/internal/submission/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, enrollModule *enrollment.Module) (*Module, error) {
	wire.Build(
		initSubmissionDAO,
		repository.NewRepository,
		initService,
		event.NewReviewedEventProducer,
		service.NewAdminService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*enrollment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initSubmissionDAO(db *egorm.Component) dao.SubmissionDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMSubmissionDAO(db)
}

func initService(repo repository.Repository, enrollSvc enrollment.Service) service.Service {
	// 默认不强制校验个人截止时间，保持线上宽松行为
	return service.NewService(repo, enrollSvc, econf.GetBool("submission.enforceDeadline"))
}
