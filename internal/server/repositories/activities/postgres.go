package activities

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/dbx"
	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	query := `
		INSERT INTO task_activities (task_id, type, description, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		activity.TaskID, activity.Type, activity.Description, activity.UserID).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return activity, nil
}

func (r *PostgresRepository) ListByTask(ctx context.Context, taskID string) ([]*models.Activity, error) {
	query := `
		SELECT id, task_id, type, description, user_id, created_at
		FROM task_activities
		WHERE task_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.TaskID, &a.Type, &a.Description, &a.UserID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
