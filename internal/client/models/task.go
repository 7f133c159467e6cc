package models

import "time"

// Task statuses.
const (
	TaskStatusPending       = "pending"
	TaskStatusInProgress    = "in-progress"
	TaskStatusPendingReview = "pending-review"
	TaskStatusCompleted     = "completed"
)

// Recurring intervals.
const (
	IntervalDaily   = "daily"
	IntervalWeekly  = "weekly"
	IntervalMonthly = "monthly"
)

// Task is a unit of work in a project. RecurringInterval is set only when
// IsRecurring is true.
type Task struct {
	ID                string
	ProjectID         string
	Name              string
	Description       string
	AssignedTo        *User
	Status            string
	StartDate         time.Time
	EndDate           time.Time
	IsRecurring       bool
	RecurringInterval string
}

// NextOccurrence returns when a recurring task fires next, relative to now.
// A start date still in the future is the next occurrence itself; otherwise
// one interval step is added to the start date.
func NextOccurrence(start time.Time, interval string, now time.Time) time.Time {
	if start.After(now) {
		return start
	}
	switch interval {
	case IntervalDaily:
		return start.AddDate(0, 0, 1)
	case IntervalWeekly:
		return start.AddDate(0, 0, 7)
	case IntervalMonthly:
		return start.AddDate(0, 1, 0)
	}
	return start
}
