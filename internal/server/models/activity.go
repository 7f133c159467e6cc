package models

import "time"

// Activity types recorded against a task.
const (
	ActivityStatusChange = "status_change"
	ActivityComment      = "comment"
	ActivityFileUpload   = "file_upload"
	ActivityAssignment   = "assignment"
)

type Activity struct {
	ID          string
	TaskID      string
	Type        string
	Description string
	UserID      string
	CreatedAt   time.Time
}
