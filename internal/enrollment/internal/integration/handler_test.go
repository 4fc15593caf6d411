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
	"github.com/ecodeclub/challenge/internal/enrollment/internal/service"
	"github.com/ecodeclub/challenge/internal/enrollment/internal/web"
	prjdomain "github.com/ecodeclub/challenge/internal/project/internal/domain"
	prjdao "github.com/ecodeclub/challenge/internal/project/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/test"
	testioc "github.com/ecodeclub/challenge/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.EnrollmentDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMEnrollmentDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `enrollments`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `pub_projects`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestApply() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		after  func(t *testing.T)
		path   string

		wantCode    int
		wantErrCode int
	}{
		{
			name: "报名成功",
			before: func(t *testing.T) {
				s.mockProject(t, 1, true, time.Now().Add(time.Hour))
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				e, err := s.dao.GetByUidPid(ctx, uid, 1)
				require.NoError(t, err)
				assert.True(t, e.Id > 0)
				assert.True(t, e.AppliedAt > 0)
				assert.Equal(t, int64(0), e.Sid)
				// 个人提交截止时间是报名时刻往后推七天
				assert.Equal(t, service.EnrollDuration.Milliseconds(), e.Deadline-e.AppliedAt)
			},
			path:     "/projects/1/apply",
			wantCode: 200,
		},
		{
			name:        "项目不存在",
			before:      func(t *testing.T) {},
			after:       func(t *testing.T) {},
			path:        "/projects/999/apply",
			wantCode:    500,
			wantErrCode: 519002,
		},
		{
			name: "未开放报名",
			before: func(t *testing.T) {
				s.mockProject(t, 2, false, time.Now().Add(time.Hour))
			},
			after:       func(t *testing.T) {},
			path:        "/projects/2/apply",
			wantCode:    500,
			wantErrCode: 519004,
		},
		{
			name: "已过报名截止时间",
			before: func(t *testing.T) {
				s.mockProject(t, 3, true, time.Now().Add(-time.Hour))
			},
			after:       func(t *testing.T) {},
			path:        "/projects/3/apply",
			wantCode:    500,
			wantErrCode: 519004,
		},
		{
			name: "重复报名",
			before: func(t *testing.T) {
				s.mockProject(t, 4, true, time.Now().Add(time.Hour))
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_, err := s.dao.Create(ctx, dao.Enrollment{
					Uid:       uid,
					Pid:       4,
					AppliedAt: 123,
					Deadline:  456,
				})
				require.NoError(t, err)
			},
			after:       func(t *testing.T) {},
			path:        "/projects/4/apply",
			wantCode:    500,
			wantErrCode: 519003,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, tc.path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Enrollment]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			tc.after(t)
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	es := []dao.Enrollment{
		{Uid: uid, Pid: 1, AppliedAt: 100, Deadline: 200, Sid: 0},
		{Uid: uid, Pid: 2, AppliedAt: 300, Deadline: 400, Sid: 7},
		// 别人的报名记录
		{Uid: uid + 1, Pid: 1, AppliedAt: 500, Deadline: 600},
	}
	err := s.db.Create(&es).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodGet, "/user/projects", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[[]web.Enrollment]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), []web.Enrollment{
		{Id: 2, Uid: uid, Pid: 2, AppliedAt: 300, Deadline: 400, Sid: 7},
		{Id: 1, Uid: uid, Pid: 1, AppliedAt: 100, Deadline: 200, Sid: 0},
	}, recorder.MustScan().Data)
}

// mockProject 在线上库插入一个已发布的项目
func (s *HandlerTestSuite) mockProject(t *testing.T, id int64, open bool, enrollDeadline time.Time) {
	t.Helper()
	err := s.db.Create(&prjdao.PubProject{
		Id:             id,
		Title:          "标题",
		Desc:           "描述",
		Status:         prjdomain.ProjectStatusPublished.ToUint8(),
		Deadline:       enrollDeadline.Add(24 * time.Hour).UnixMilli(),
		EnrollDeadline: enrollDeadline.UnixMilli(),
		EnrollmentOpen: open,
		Utime:          id,
	}).Error
	require.NoError(t, err)
}

func TestEnrollmentHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
