package models

import "time"

// Activity types.
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

type Comment struct {
	ID        string
	TaskID    string
	UserID    string
	Content   string
	CreatedAt time.Time
}
