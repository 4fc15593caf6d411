package web

import (
	"github.com/ecodeclub/challenge/internal/submission/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	enrollmentNotFoundResult = ginx.Result{
		Code: errs.EnrollmentNotFound.Code,
		Msg:  errs.EnrollmentNotFound.Msg,
	}
	duplicateSubmissionResult = ginx.Result{
		Code: errs.DuplicateSubmission.Code,
		Msg:  errs.DuplicateSubmission.Msg,
	}
	invalidDescriptionResult = ginx.Result{
		Code: errs.InvalidDescription.Code,
		Msg:  errs.InvalidDescription.Msg,
	}
	submissionFinalizedResult = ginx.Result{
		Code: errs.SubmissionFinalized.Code,
		Msg:  errs.SubmissionFinalized.Msg,
	}
	emptyFeedbackResult = ginx.Result{
		Code: errs.EmptyFeedback.Code,
		Msg:  errs.EmptyFeedback.Msg,
	}
	submissionNotFoundResult = ginx.Result{
		Code: errs.SubmissionNotFound.Code,
		Msg:  errs.SubmissionNotFound.Msg,
	}
	deadlinePassedResult = ginx.Result{
		Code: errs.DeadlinePassed.Code,
		Msg:  errs.DeadlinePassed.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
