package web

import (
	"github.com/ecodeclub/challenge/internal/project/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	projectNotFoundResult = ginx.Result{
		Code: errs.ProjectNotFound.Code,
		Msg:  errs.ProjectNotFound.Msg,
	}
)
