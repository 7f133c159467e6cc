package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/client/client"
	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/logging"
)

// NewPendingReviewNotificationHook returns a hook that tells a task's
// assignee their task was marked for review. Emission is best-effort: a
// delivery failure is reported as common.ErrNotificationDelivery for the
// caller to log, never to propagate.
func NewPendingReviewNotificationHook(c client.Client, l logging.Logger) Hook {
	logger := l.With("module", "review_notifications")

	return func(ctx context.Context, task *models.Task, oldStatus string) error {
		if task.Status != models.TaskStatusPendingReview {
			return nil
		}
		if task.AssignedTo == nil {
			return nil
		}

		n := &models.Notification{
			UserID:  task.AssignedTo.ID,
			Title:   "Task Status Update",
			Message: fmt.Sprintf("Task %q has been marked for review", task.Name),
			Type:    models.NotificationStatusChange,
		}

		if err := c.AddNotification(ctx, n); err != nil {
			logger.Warn(ctx, "Review notification not delivered", "task_id", task.ID, "user_id", n.UserID)
			return fmt.Errorf("%w: %w", common.ErrNotificationDelivery, err)
		}
		return nil
	}
}
