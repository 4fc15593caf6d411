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
	"strconv"

	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
	"github.com/ecodeclub/challenge/internal/submission/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/submissions")
	g.GET("", ginx.W(h.List))
	g.POST("/:id/approve", ginx.B(h.Approve))
	g.POST("/:id/reject", ginx.B(h.Reject))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	// projectId 不传就查全部
	pid, _ := strconv.ParseInt(ctx.DefaultQuery("projectId", "0"), 10, 64)
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	subs, err := h.svc.List(ctx, pid, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(subs, func(idx int, src domain.Submission) Submission {
			return newSubmission(src)
		}),
	}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req ReviewReq) (ginx.Result, error) {
	id, err := ctx.Param("id").AsInt64()
	if err != nil {
		return invalidInputResult, err
	}
	sub, err := h.svc.Approve(ctx, id, req.Feedback)
	return h.reviewResult(sub, err)
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req ReviewReq) (ginx.Result, error) {
	id, err := ctx.Param("id").AsInt64()
	if err != nil {
		return invalidInputResult, err
	}
	sub, err := h.svc.Reject(ctx, id, req.Feedback)
	return h.reviewResult(sub, err)
}

func (h *AdminHandler) reviewResult(sub domain.Submission, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		return submissionNotFoundResult, err
	case errors.Is(err, service.ErrSubmissionFinalized):
		return submissionFinalizedResult, err
	case errors.Is(err, service.ErrEmptyFeedback):
		return emptyFeedbackResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSubmission(sub),
	}, nil
}
