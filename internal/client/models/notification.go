package models

import "time"

// Notification types.
const (
	NotificationTaskUpdate   = "task_update"
	NotificationMention      = "mention"
	NotificationStatusChange = "status_change"
)

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
}
