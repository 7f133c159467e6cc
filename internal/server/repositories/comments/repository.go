// Package comments provides the task-comment repository.
package comments

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	ListByTask(ctx context.Context, taskID string) ([]*models.Comment, error)
}
