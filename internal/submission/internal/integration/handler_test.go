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
	"github.com/ecodeclub/challenge/internal/submission/internal/domain"
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

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	dao       dao.SubmissionDAO
	enrollDAO edao.EnrollmentDAO
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
	s.dao = dao.NewGORMSubmissionDAO(s.db)
	s.enrollDAO = edao.NewGORMEnrollmentDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `submissions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `enrollments`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSubmit() {
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
			name: "提交成功",
			before: func(t *testing.T) {
				s.mockEnrollment(t, 1, 0, time.Now().Add(time.Hour))
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				sub, err := s.dao.GetById(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, uid, sub.Uid)
				assert.Equal(t, int64(1), sub.Pid)
				assert.Equal(t, "训练了一个情感分类模型", sub.Desc)
				// 空链接被丢弃了
				assert.Equal(t, []string{"https://github.com/u/p"}, sub.Links.Val)
				assert.Equal(t, []string{"report.pdf"}, sub.Files.Val)
				assert.Equal(t, domain.SubmissionStatusPending.ToUint8(), sub.Status)
				assert.True(t, sub.SubmittedAt > 0)
				// 提交记录回写到了报名记录上
				e, err := s.enrollDAO.GetByUidPid(ctx, uid, 1)
				require.NoError(t, err)
				assert.Equal(t, sub.Id, e.Sid)
			},
			path: "/projects/1/submit",
			req: web.SubmitReq{
				Desc:  "训练了一个情感分类模型",
				Links: []string{"", "https://github.com/u/p", "   "},
				Files: []string{"report.pdf"},
			},
			wantCode: 200,
		},
		{
			name:   "尚未报名",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			path:   "/projects/2/submit",
			req: web.SubmitReq{
				Desc: "随便写点",
			},
			wantCode:    500,
			wantErrCode: 520002,
		},
		{
			name: "描述为空",
			before: func(t *testing.T) {
				s.mockEnrollment(t, 3, 0, time.Now().Add(time.Hour))
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				subs, err := s.dao.ListByPid(ctx, 3, 0, 10)
				require.NoError(t, err)
				assert.Empty(t, subs)
			},
			path: "/projects/3/submit",
			req: web.SubmitReq{
				Desc: "   \t ",
			},
			wantCode:    500,
			wantErrCode: 520004,
		},
		{
			name: "重复提交",
			before: func(t *testing.T) {
				s.mockEnrollment(t, 4, 99, time.Now().Add(time.Hour))
			},
			after: func(t *testing.T) {},
			path:  "/projects/4/submit",
			req: web.SubmitReq{
				Desc: "第二次提交",
			},
			wantCode:    500,
			wantErrCode: 520003,
		},
		{
			name: "超过截止时间也放行",
			before: func(t *testing.T) {
				// 默认没开强制校验
				s.mockEnrollment(t, 5, 0, time.Now().Add(-time.Hour))
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				e, err := s.enrollDAO.GetByUidPid(ctx, uid, 5)
				require.NoError(t, err)
				assert.True(t, e.Sid > 0)
			},
			path: "/projects/5/submit",
			req: web.SubmitReq{
				Desc: "迟到的作品",
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

func (s *HandlerTestSuite) mockEnrollment(t *testing.T, pid, sid int64, deadline time.Time) {
	t.Helper()
	now := time.Now().UnixMilli()
	err := s.db.Create(&edao.Enrollment{
		Uid:       uid,
		Pid:       pid,
		AppliedAt: now,
		Deadline:  deadline.UnixMilli(),
		Sid:       sid,
	}).Error
	require.NoError(t, err)
}

func TestSubmissionHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
