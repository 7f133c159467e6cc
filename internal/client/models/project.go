package models

import "time"

// Project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on-hold"
)

type Project struct {
	ID             string
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	ProjectManager *User
	Status         string
	Progress       int32
}
