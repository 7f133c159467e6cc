package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/dbx"
	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tracker/internal/templates"
)

// ProjectService owns project listing and creation. Creation expands the
// built-in phase templates into the project's initial task list and also
// notifies the assigned manager.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, rm repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: rm}
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repomanager.Projects(s.db).GetByID(ctx, id)
}

// Create inserts the project and its template-expanded tasks in a single
// transaction, then notifies the project manager.
func (s *ProjectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	project.Status = models.ProjectStatusActive
	project.Progress = 0

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Projects(tx).Create(ctx, project)
		if err != nil {
			return err
		}

		tasks := templates.ExpandProjectTasks(created.ID, created.StartDate)
		if err := s.repomanager.Tasks(tx).CreateBatch(ctx, tasks); err != nil {
			return err
		}

		_, err = s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			UserID:  created.ProjectManagerID,
			Title:   "New Project Assigned",
			Message: fmt.Sprintf("You have been assigned as the Project Manager for %s", created.Name),
			Type:    models.NotificationTaskUpdate,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repomanager.Projects(s.db).GetByID(ctx, project.ID)
}
