package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/repomanager"
)

// NotificationService stores and serves per-user notifications. Inserts come
// from client-side post-commit hooks and are best-effort on the client side;
// the service itself just persists what it is given.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, rm repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: rm}
}

func (s *NotificationService) Add(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	return s.repomanager.Notifications(s.db).Create(ctx, n)
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]*models.Notification, error) {
	return s.repomanager.Notifications(s.db).ListByUser(ctx, userID, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.repomanager.Notifications(s.db).MarkRead(ctx, id)
}
