package project

import (
	"github.com/ecodeclub/challenge/internal/project/internal/service"
	"github.com/ecodeclub/challenge/internal/project/internal/web"
)

type Module struct {
	// Svc 供其它模块使用，比如报名模块校验报名窗口
	Svc      Service
	Hdl      *Hdl
	AdminHdl *AdminHdl
}

type Service = service.Service
type AdminHdl = web.AdminHandler
type Hdl = web.Handler

var ErrProjectNotFound = service.ErrProjectNotFound
