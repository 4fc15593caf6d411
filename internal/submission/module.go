package submission

import (
	"github.com/ecodeclub/challenge/internal/submission/internal/service"
	"github.com/ecodeclub/challenge/internal/submission/internal/web"
)

type Module struct {
	Svc      Service
	AdminSvc AdminSvc
	Hdl      *Hdl
	AdminHdl *AdminHdl
}

type Service = service.Service
type AdminSvc = service.AdminService
type Hdl = web.Handler
type AdminHdl = web.AdminHandler
