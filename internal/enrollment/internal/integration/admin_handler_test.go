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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/challenge/internal/enrollment/internal/integration/startup"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/web"
	prjdomain "github.com/ecodeclub/challenge/internal/project/internal/domain"
	prjdao "github.com/ecodeclub/challenge/internal/project/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/test"
	testioc "github.com/ecodeclub/challenge/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.EnrollmentDAO
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  999,
			Data: map[string]string{"creator": "true"},
		}))
	})
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMEnrollmentDAO(s.db)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `enrollments`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `pub_projects`").Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TestAddUser() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		after  func(t *testing.T)
		req    web.AddUserReq

		wantCode    int
		wantErrCode int
	}{
		{
			name: "报名已截止也能加人",
			before: func(t *testing.T) {
				// 项目没有开放报名，而且报名截止时间已过
				s.mockClosedProject(t, 31)
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				e, err := s.dao.GetByUidPid(ctx, 303, 31)
				require.NoError(t, err)
				assert.True(t, e.Id > 0)
				assert.Equal(t, int64(0), e.Sid)
			},
			req:      web.AddUserReq{Uid: 303, Pid: 31},
			wantCode: 200,
		},
		{
			name:        "项目不存在",
			before:      func(t *testing.T) {},
			after:       func(t *testing.T) {},
			req:         web.AddUserReq{Uid: 303, Pid: 888},
			wantCode:    500,
			wantErrCode: 519002,
		},
		{
			name: "加人也不能绕开唯一性",
			before: func(t *testing.T) {
				s.mockClosedProject(t, 32)
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_, err := s.dao.Create(ctx, dao.Enrollment{
					Uid:       303,
					Pid:       32,
					AppliedAt: 123,
					Deadline:  456,
				})
				require.NoError(t, err)
			},
			after:       func(t *testing.T) {},
			req:         web.AddUserReq{Uid: 303, Pid: 32},
			wantCode:    500,
			wantErrCode: 519003,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/admin/projects/add-user", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Enrollment]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			tc.after(t)
		})
	}
}

func (s *AdminHandlerTestSuite) mockClosedProject(t *testing.T, id int64) {
	t.Helper()
	err := s.db.Create(&prjdao.PubProject{
		Id:             id,
		Title:          "标题",
		Desc:           "描述",
		Status:         prjdomain.ProjectStatusPublished.ToUint8(),
		Deadline:       time.Now().Add(24 * time.Hour).UnixMilli(),
		EnrollDeadline: time.Now().Add(-time.Hour).UnixMilli(),
		EnrollmentOpen: false,
		Utime:          id,
	}).Error
	require.NoError(t, err)
}

func TestEnrollmentAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
