//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/challenge/internal/enrollment"
	"github.com/ecodeclub/challenge/internal/project"
	"github.com/ecodeclub/challenge/internal/submission"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl", "AdminHdl"),
		enrollment.InitModule,
		wire.FieldsOf(new(*enrollment.Module), "Hdl", "AdminHdl"),
		submission.InitModule,
		wire.FieldsOf(new(*submission.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
	)
	return new(App), nil
}
