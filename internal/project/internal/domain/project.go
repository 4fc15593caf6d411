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

import "time"

type Project struct {
	Id    int64
	Title string
	Desc  string
	// 结项截止时间
	Deadline time.Time
	// 报名截止时间
	EnrollDeadline time.Time
	// 是否开放报名。和报名截止时间独立，两个条件都满足才能报名
	EnrollmentOpen bool
	Status         ProjectStatus
	Utime          int64
}

// Enrollable 判定 now 这一时刻能不能报名
func (p Project) Enrollable(now time.Time) bool {
	return p.EnrollmentOpen && now.Before(p.EnrollDeadline)
}

type ProjectStatus uint8

func (s ProjectStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ProjectStatusUnknown ProjectStatus = iota
	ProjectStatusUnpublished
	ProjectStatusPublished
)
