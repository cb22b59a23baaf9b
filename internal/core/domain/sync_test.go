package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{name: "nothing settled", completed: 0, total: 3, expected: 0},
		{name: "one of three", completed: 1, total: 3, expected: 34},
		{name: "two of three", completed: 2, total: 3, expected: 67},
		{name: "three of three", completed: 3, total: 3, expected: 100},
		{name: "half", completed: 1, total: 2, expected: 50},
		{name: "single", completed: 1, total: 1, expected: 100},
		{name: "zero total", completed: 0, total: 0, expected: 0},
		{name: "one of six", completed: 1, total: 6, expected: 17},
		{name: "five of six", completed: 5, total: 6, expected: 84},
		{name: "one of seven rounds up", completed: 1, total: 7, expected: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressPercent(tt.completed, tt.total))
		})
	}
}

func TestProgressPercent_Monotonic(t *testing.T) {
	for total := 1; total <= 50; total++ {
		last := 0
		for i := 1; i <= total; i++ {
			p := ProgressPercent(i, total)
			assert.GreaterOrEqual(t, p, last, "total=%d i=%d", total, i)
			assert.LessOrEqual(t, p, 100)
			last = p
		}
		assert.Equal(t, 100, last)
	}
}

func TestSyncOutcome_Succeeded(t *testing.T) {
	assert.True(t, SyncOutcome{AccountID: "a"}.Succeeded())
	assert.False(t, SyncOutcome{AccountID: "a", Err: errors.New("boom")}.Succeeded())
}

func TestSyncSummary_AllSucceeded(t *testing.T) {
	s := SyncSummary{TotalAttempted: 3}
	assert.True(t, s.AllSucceeded())

	s.FailedCount = 1
	assert.False(t, s.AllSucceeded())
}
