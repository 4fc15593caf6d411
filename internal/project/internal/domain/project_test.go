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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProject_Enrollable(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name    string
		prj     Project
		wantRes bool
	}{
		{
			name: "开放报名且未截止",
			prj: Project{
				EnrollmentOpen: true,
				EnrollDeadline: now.Add(time.Hour),
			},
			wantRes: true,
		},
		{
			name: "未开放报名",
			prj: Project{
				EnrollmentOpen: false,
				EnrollDeadline: now.Add(time.Hour),
			},
			wantRes: false,
		},
		{
			name: "已过报名截止时间",
			prj: Project{
				EnrollmentOpen: true,
				EnrollDeadline: now.Add(-time.Hour),
			},
			wantRes: false,
		},
		{
			name: "恰好到截止时间",
			prj: Project{
				EnrollmentOpen: true,
				EnrollDeadline: now,
			},
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.prj.Enrollable(now))
		})
	}
}
