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

// Task is a unit of work belonging to a project. RecurringInterval is empty
// unless IsRecurring is set.
type Task struct {
	ID                string
	ProjectID         string
	Name              string
	Description       string
	AssignedToID      string
	AssignedTo        *User
	Status            string
	StartDate         time.Time
	EndDate           time.Time
	IsRecurring       bool
	RecurringInterval string
}
