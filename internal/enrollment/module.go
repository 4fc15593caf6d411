package enrollment

import (
	"github.com/ecodeclub/challenge/internal/enrollment/internal/service"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/web"
)

type Module struct {
	// Svc 供提交模块查询报名记录、回写提交记录 ID
	Svc      Service
	Hdl      *Hdl
	AdminHdl *AdminHdl
}

type Service = service.Service
type Hdl = web.Handler
type AdminHdl = web.AdminHandler

var (
	ErrEnrollmentNotFound = service.ErrEnrollmentNotFound
	ErrSubmissionAttached = service.ErrSubmissionAttached
)
