package projects

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

// selectQuery joins the manager row so listings carry the resolved user,
// mirroring the dashboard's "project with manager" view.
const selectQuery = `
	SELECT p.id, p.name, p.start_date, p.end_date, p.status, p.progress,
	       u.id, u.username, u.name, u.email
	FROM projects p
	JOIN users u ON u.id = p.project_manager
`

func (r *PostgresRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	query := `
		INSERT INTO projects (name, start_date, end_date, project_manager, status, progress)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		project.Name, project.StartDate, project.EndDate,
		project.ProjectManagerID, project.Status, project.Progress).Scan(&project.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return project, nil
}

func scanProject(scan func(dest ...any) error) (*models.Project, error) {
	p := &models.Project{ProjectManager: &models.User{}}
	err := scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.Progress,
		&p.ProjectManager.ID, &p.ProjectManager.Username, &p.ProjectManager.Name, &p.ProjectManager.Email)
	if err != nil {
		return nil, err
	}
	p.ProjectManagerID = p.ProjectManager.ID
	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, selectQuery+` WHERE p.id = $1`, id)
	p, err := scanProject(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectQuery+` ORDER BY p.start_date`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
