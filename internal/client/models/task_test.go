package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		interval string
		expected time.Time
	}{
		{
			name:     "future start is the next occurrence",
			start:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			interval: IntervalWeekly,
			expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "daily adds one day to a past start",
			start:    time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			interval: IntervalDaily,
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "weekly adds seven days",
			start:    time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			interval: IntervalWeekly,
			expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monthly adds one month",
			start:    time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
			interval: IntervalMonthly,
			expected: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextOccurrence(tt.start, tt.interval, now))
		})
	}
}
