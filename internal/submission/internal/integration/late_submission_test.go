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

	edao "github.com/ecodeclub/challenge/internal/enrollment/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/submission/internal/integration/startup"
	"github.com/ecodeclub/challenge/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/challenge/internal/submission/internal/web"
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

// LateSubmissionTestSuite 打开了 submission.enforceDeadline，
// 验证超过个人截止时间之后提交会被拦截
type LateSubmissionTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	dao       dao.SubmissionDAO
	enrollDAO edao.EnrollmentDAO
}

func (s *LateSubmissionTestSuite) SetupSuite() {
	// 先加载配置文件，再覆盖开关，否则会被配置文件盖回去
	s.db = testioc.InitDB()
	econf.Set("submission.enforceDeadline", true)
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
	s.dao = dao.NewGORMSubmissionDAO(s.db)
	s.enrollDAO = edao.NewGORMEnrollmentDAO(s.db)
}

func (s *LateSubmissionTestSuite) TearDownSuite() {
	// 别影响同包里跑默认行为的用例
	econf.Set("submission.enforceDeadline", false)
}

func (s *LateSubmissionTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `submissions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `enrollments`").Error
	require.NoError(s.T(), err)
}

func (s *LateSubmissionTestSuite) TestSubmit() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		after  func(t *testing.T)
		path   string
		req    web.SubmitReq

		wantCode    int
		wantErrCode int
	}{
		{
			name: "超时被拦截",
			before: func(t *testing.T) {
				s.mockEnrollment(t, 1, time.Now().Add(-time.Hour))
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				// 没有留下提交记录
				subs, err := s.dao.ListByPid(ctx, 1, 0, 10)
				require.NoError(t, err)
				assert.Empty(t, subs)
				// 报名记录也没被回写
				e, err := s.enrollDAO.GetByUidPid(ctx, uid, 1)
				require.NoError(t, err)
				assert.Equal(t, int64(0), e.Sid)
			},
			path: "/projects/1/submit",
			req: web.SubmitReq{
				Desc: "迟到的作品",
			},
			wantCode:    500,
			wantErrCode: 520008,
		},
		{
			name: "没超时照常提交",
			before: func(t *testing.T) {
				s.mockEnrollment(t, 2, time.Now().Add(time.Hour))
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				e, err := s.enrollDAO.GetByUidPid(ctx, uid, 2)
				require.NoError(t, err)
				assert.True(t, e.Sid > 0)
			},
			path: "/projects/2/submit",
			req: web.SubmitReq{
				Desc: "赶上了",
			},
			wantCode: 200,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				tc.path, iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Submission]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			tc.after(t)
		})
	}
}

func (s *LateSubmissionTestSuite) mockEnrollment(t *testing.T, pid int64, deadline time.Time) {
	t.Helper()
	err := s.db.Create(&edao.Enrollment{
		Uid:       uid,
		Pid:       pid,
		AppliedAt: time.Now().UnixMilli(),
		Deadline:  deadline.UnixMilli(),
	}).Error
	require.NoError(t, err)
}

func TestLateSubmission(t *testing.T) {
	suite.Run(t, new(LateSubmissionTestSuite))
}
