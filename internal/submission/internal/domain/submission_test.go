package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmission_Reviewable(t *testing.T) {
	testCases := []struct {
		name    string
		status  SubmissionStatus
		wantRes bool
	}{
		{
			name:    "待审核",
			status:  SubmissionStatusPending,
			wantRes: true,
		},
		{
			name:    "已通过",
			status:  SubmissionStatusApproved,
			wantRes: false,
		},
		{
			name:    "已驳回",
			status:  SubmissionStatusRejected,
			wantRes: false,
		},
		{
			name:    "未知状态",
			status:  SubmissionStatusUnknown,
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub := Submission{Status: tc.status}
			assert.Equal(t, tc.wantRes, sub.Reviewable())
		})
	}
}
