// Package tasks implements the task status state machine and the task-level
// operations around it. The model is flat: any state may move to any other,
// and only the edge into "completed" carries a permission gate.
package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/client/client"
	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/logging"
)

// Hook runs after a transition has been persisted. Hook errors are logged
// and never fail the transition.
type Hook func(ctx context.Context, task *models.Task, oldStatus string) error

type Service struct {
	client  client.Client
	session *session.Store
	logger  logging.Logger
	hooks   []Hook
}

func NewService(c client.Client, s *session.Store, l logging.Logger) *Service {
	return &Service{
		client:  c,
		session: s,
		logger:  l.With("module", "tasks"),
	}
}

// RegisterHook appends a post-commit hook. Hooks run in registration order.
func (s *Service) RegisterHook(h Hook) {
	s.hooks = append(s.hooks, h)
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	return s.client.ListTasks(ctx, projectID)
}

func validStatus(status string) bool {
	switch status {
	case models.TaskStatusPending, models.TaskStatusInProgress,
		models.TaskStatusPendingReview, models.TaskStatusCompleted:
		return true
	}
	return false
}

// AttemptTransition moves task to newStatus.
//
// The completed edge requires the CanCompleteTask permission; without it the
// attempt fails with common.ErrAuthorization before any backend call, and the
// task is left untouched. Otherwise the new status is persisted first —
// backend failure yields common.ErrPersistence with local state unchanged —
// and only then applied to the local task and handed to the hooks.
func (s *Service) AttemptTransition(ctx context.Context, task *models.Task, newStatus string) error {
	if !validStatus(newStatus) {
		return fmt.Errorf("unknown task status %q", newStatus)
	}

	if newStatus == models.TaskStatusCompleted {
		if !s.session.Snapshot().Permissions.CanCompleteTask {
			return fmt.Errorf("%w: completing tasks requires the operations manager role", common.ErrAuthorization)
		}
	}

	persisted, err := s.client.UpdateTaskStatus(ctx, task.ID, newStatus)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	oldStatus := task.Status
	*task = *persisted

	for _, hook := range s.hooks {
		if err := hook(ctx, task, oldStatus); err != nil {
			s.logger.Warn(ctx, "Post-transition hook failed", "task_id", task.ID, "status", task.Status)
		}
	}

	return nil
}

// Assign sets the task's assignee and applies the stored result locally.
func (s *Service) Assign(ctx context.Context, task *models.Task, userID string) error {
	persisted, err := s.client.AssignTask(ctx, task.ID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	*task = *persisted
	return nil
}

func (s *Service) AddComment(ctx context.Context, taskID, content string) (*models.Comment, error) {
	comment, err := s.client.AddComment(ctx, taskID, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return comment, nil
}

func (s *Service) ListComments(ctx context.Context, taskID string) ([]*models.Comment, error) {
	return s.client.ListComments(ctx, taskID)
}

func (s *Service) ListActivities(ctx context.Context, taskID string) ([]*models.Activity, error) {
	return s.client.ListActivities(ctx, taskID)
}

func (s *Service) GetAttachmentUploadURL(ctx context.Context, taskID, fileName string) (string, string, error) {
	return s.client.GetAttachmentUploadURL(ctx, taskID, fileName)
}

func (s *Service) GetAttachmentDownloadURL(ctx context.Context, key string) (string, error) {
	return s.client.GetAttachmentDownloadURL(ctx, key)
}
