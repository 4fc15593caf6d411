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

package web

import (
	"errors"

	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
	"github.com/ecodeclub/challenge/internal/submission/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/projects/:id/submit", ginx.BS(h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	pid, err := ctx.Param("id").AsInt64()
	if err != nil {
		return invalidInputResult, err
	}
	sub, err := h.svc.Submit(ctx, domain.Submission{
		Uid:   sess.Claims().Uid,
		Pid:   pid,
		Desc:  req.Desc,
		Links: req.Links,
		Files: req.Files,
	})
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		return enrollmentNotFoundResult, err
	case errors.Is(err, service.ErrDuplicateSubmission):
		return duplicateSubmissionResult, err
	case errors.Is(err, service.ErrInvalidDescription):
		return invalidDescriptionResult, err
	case errors.Is(err, service.ErrDeadlinePassed):
		return deadlinePassedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSubmission(sub),
	}, nil
}
