package web

import (
	"github.com/ecodeclub/challenge/internal/enrollment/internal/errs"
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
	alreadyEnrolledResult = ginx.Result{
		Code: errs.AlreadyEnrolled.Code,
		Msg:  errs.AlreadyEnrolled.Msg,
	}
	windowClosedResult = ginx.Result{
		Code: errs.WindowClosed.Code,
		Msg:  errs.WindowClosed.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
