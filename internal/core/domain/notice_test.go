package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticeForSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  SyncSummary
		title    string
		message  string
		degraded bool
	}{
		{
			name:    "all successful",
			summary: SyncSummary{TotalAttempted: 3},
			title:   "Sync complete",
			message: "Synced 3 accounts. All successful.",
		},
		{
			name:    "single account",
			summary: SyncSummary{TotalAttempted: 1},
			title:   "Sync complete",
			message: "Synced 1 account. All successful.",
		},
		{
			name:     "partial failure",
			summary:  SyncSummary{TotalAttempted: 2, FailedCount: 1},
			title:    "Sync finished with errors",
			message:  "Synced 2 accounts. 1 failed.",
			degraded: true,
		},
		{
			name:     "everything failed",
			summary:  SyncSummary{TotalAttempted: 4, FailedCount: 4},
			title:    "Sync finished with errors",
			message:  "Synced 4 accounts. 4 failed.",
			degraded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NoticeForSummary(tt.summary)
			assert.Equal(t, NoticeSuccess, n.Kind)
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, tt.message, n.Message)
			assert.Equal(t, tt.degraded, n.Degraded)
		})
	}
}

func TestNoLinkedAccountsNotice(t *testing.T) {
	n := NoLinkedAccountsNotice()
	assert.Equal(t, NoticeError, n.Kind)
	assert.Equal(t, "No linked accounts", n.Title)
	assert.NotEmpty(t, n.Message)
	assert.False(t, n.Degraded)
}
