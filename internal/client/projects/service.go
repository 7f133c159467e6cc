// Package projects implements project listing with client-side filtering and
// permission-gated project creation.
package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/tracker/internal/client/client"
	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/logging"
)

type Service struct {
	client  client.Client
	session *session.Store
	logger  logging.Logger
}

func NewService(c client.Client, s *session.Store, l logging.Logger) *Service {
	return &Service{
		client:  c,
		session: s,
		logger:  l.With("module", "projects"),
	}
}

// List fetches all projects and filters locally. The search term matches the
// project name case-insensitively as a substring; statusFilter, when
// non-empty, must match the project status exactly.
func (s *Service) List(ctx context.Context, search, statusFilter string) ([]*models.Project, error) {
	all, err := s.client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)

	filtered := make([]*models.Project, 0, len(all))
	for _, p := range all {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if statusFilter != "" && p.Status != statusFilter {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.client.GetProject(ctx, id)
}

// Create persists a new project. It requires the CanCreateProject permission;
// without it the call fails with common.ErrAuthorization before reaching the
// backend.
func (s *Service) Create(ctx context.Context, name string, startDate, endDate time.Time, projectManagerID string) (*models.Project, error) {
	if !s.session.Snapshot().Permissions.CanCreateProject {
		return nil, fmt.Errorf("%w: creating projects requires the project managers role", common.ErrAuthorization)
	}

	project, err := s.client.CreateProject(ctx, name, startDate, endDate, projectManagerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	s.logger.Info(ctx, "Project created", "project_id", project.ID)
	return project, nil
}
