package models

import "time"

// Project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on-hold"
)

type Project struct {
	ID               string
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	ProjectManagerID string
	ProjectManager   *User
	Status           string
	// Progress is a percentage in [0,100].
	Progress int32
}
