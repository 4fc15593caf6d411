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

	"github.com/ecodeclub/challenge/internal/enrollment/internal/domain"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/service"
	"github.com/ecodeclub/ekit/slice"
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
	server.POST("/projects/:id/apply", ginx.S(h.Apply))
	server.GET("/user/projects", ginx.S(h.List))
}

func (h *Handler) Apply(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pid, err := ctx.Param("id").AsInt64()
	if err != nil {
		return invalidInputResult, err
	}
	e, err := h.svc.Enroll(ctx, sess.Claims().Uid, pid)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult, err
	case errors.Is(err, service.ErrWindowClosed):
		return windowClosedResult, err
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return alreadyEnrolledResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollment(e),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	es, err := h.svc.ListByUid(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(es, func(idx int, src domain.Enrollment) Enrollment {
			return newEnrollment(src)
		}),
	}, nil
}
