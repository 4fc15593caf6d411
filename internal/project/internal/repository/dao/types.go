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

package dao

type Project struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	Title  string `gorm:"type:varchar(256)"`
	Desc   string
	Status uint8
	// 结项截止时间，UTC Unix 毫秒数
	Deadline int64
	// 报名截止时间，UTC Unix 毫秒数
	EnrollDeadline int64
	// 是否开放报名
	EnrollmentOpen bool
	Utime          int64
	Ctime          int64
}

// PubProject 线上库，C 端只读这张表
type PubProject Project
