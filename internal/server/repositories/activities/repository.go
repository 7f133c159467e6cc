// Package activities provides the task activity-log repository.
package activities

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	ListByTask(ctx context.Context, taskID string) ([]*models.Activity, error)
}
