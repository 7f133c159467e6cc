package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/dbx"
	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectQuery = `
	SELECT t.id, t.project_id, t.name, t.description, t.status,
	       t.start_date, t.end_date, t.is_recurring, t.recurring_interval,
	       u.id, u.username, u.name, u.email
	FROM tasks t
	LEFT JOIN users u ON u.id = t.assigned_to
`

// CreateBatch inserts the expanded template tasks for a new project. The
// caller is expected to run it inside the project-creation transaction.
func (r *PostgresRepository) CreateBatch(ctx context.Context, tasks []*models.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, name, description, status,
		                   start_date, end_date, is_recurring, recurring_interval)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, t := range tasks {
		var interval any
		if t.IsRecurring {
			interval = t.RecurringInterval
		}
		if _, err := r.db.ExecContext(ctx, query,
			t.ID, t.ProjectID, t.Name, t.Description, t.Status,
			t.StartDate, t.EndDate, t.IsRecurring, interval); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*models.Task, error) {
	t := &models.Task{}
	var interval sql.NullString
	var uid, uname, name, email sql.NullString
	err := scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.Status,
		&t.StartDate, &t.EndDate, &t.IsRecurring, &interval,
		&uid, &uname, &name, &email)
	if err != nil {
		return nil, err
	}
	t.RecurringInterval = interval.String
	if uid.Valid {
		t.AssignedToID = uid.String
		t.AssignedTo = &models.User{ID: uid.String, Username: uname.String, Name: name.String, Email: email.String}
	}
	return t, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, selectQuery+` WHERE t.id = $1`, id)
	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectQuery+` WHERE t.project_id = $1 ORDER BY t.start_date`, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.update(ctx, `UPDATE tasks SET status = $2 WHERE id = $1`, id, status)
}

func (r *PostgresRepository) UpdateAssignee(ctx context.Context, id string, userID string) error {
	return r.update(ctx, `UPDATE tasks SET assigned_to = $2 WHERE id = $1`, id, userID)
}

func (r *PostgresRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
