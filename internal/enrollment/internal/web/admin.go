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

	"github.com/ecodeclub/challenge/internal/enrollment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端接口，直接把用户拉进项目
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/admin/projects/add-user", ginx.B[AddUserReq](h.AddUser))
}

func (h *AdminHandler) AddUser(ctx *ginx.Context, req AddUserReq) (ginx.Result, error) {
	e, err := h.svc.Assign(ctx, req.Uid, req.Pid)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult, err
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return alreadyEnrolledResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEnrollment(e),
	}, nil
}
