package comments

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

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO task_comments (task_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		comment.TaskID, comment.UserID, comment.Content).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return comment, nil
}

func (r *PostgresRepository) ListByTask(ctx context.Context, taskID string) ([]*models.Comment, error) {
	query := `
		SELECT id, task_id, user_id, content, created_at
		FROM task_comments
		WHERE task_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
