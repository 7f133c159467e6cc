// Package tasks provides the task repository.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type Repository interface {
	CreateBatch(ctx context.Context, tasks []*models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	UpdateAssignee(ctx context.Context, id string, userID string) error
}
