// Package notifications provides the notification repository.
package notifications

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
