package cli

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ListNotifications prints the current user's notifications.
//
// Usage: notifications [unread]
func (a *App) ListNotifications(ctx context.Context, args []string) error {
	unreadOnly := len(args) > 0 && args[0] == "unread"

	list, err := a.client.ListNotifications(ctx, unreadOnly)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  [%s] %s: %s",
			marker, n.ID, n.CreatedAt.Format(time.RFC3339), n.Title, n.Message))
	}
	return nil
}

// MarkNotificationRead marks one notification as read.
//
// Usage: read <notificationID>
func (a *App) MarkNotificationRead(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: read <notificationID>")
		return nil
	}

	if err := a.client.MarkNotificationRead(ctx, args[0]); err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Notification", args[0], "marked as read")
	return nil
}
