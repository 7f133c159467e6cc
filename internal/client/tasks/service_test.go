package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tracker/internal/client/client"
	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeClient struct {
	client.Client

	updateResp  *models.Task
	updateErr   error
	updateCalls int

	notifications []*models.Notification
	notifyErr     error
}

func (f *fakeClient) UpdateTaskStatus(ctx context.Context, taskID, status string) (*models.Task, error) {
	f.updateCalls++
	return f.updateResp, f.updateErr
}

func (f *fakeClient) AddNotification(ctx context.Context, n *models.Notification) error {
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.notifications = append(f.notifications, n)
	return nil
}

func sessionWithRoles(roles ...string) *session.Store {
	s := session.NewStore()
	s.Set(&models.User{ID: "actor"}, roles)
	return s
}

func task(status string, assignee *models.User) *models.Task {
	return &models.Task{
		ID:         "t1",
		ProjectID:  "p1",
		Name:       "Project Kickoff Meeting",
		Status:     status,
		AssignedTo: assignee,
	}
}

func TestAttemptTransition_CompletedDeniedWithoutRole(t *testing.T) {
	fc := &fakeClient{}
	svc := NewService(fc, sessionWithRoles("Project_Workflow_Project_Managers"), nopLogger{})

	tk := task(models.TaskStatusPendingReview, nil)
	err := svc.AttemptTransition(context.Background(), tk, models.TaskStatusCompleted)

	assert.ErrorIs(t, err, common.ErrAuthorization)
	assert.Equal(t, models.TaskStatusPendingReview, tk.Status, "task must not be mutated")
	assert.Zero(t, fc.updateCalls, "no backend call on an authorization failure")
}

func TestAttemptTransition_CompletedAllowedWithRole(t *testing.T) {
	fc := &fakeClient{updateResp: task(models.TaskStatusCompleted, nil)}
	svc := NewService(fc, sessionWithRoles("Operations_Manager"), nopLogger{})

	tk := task(models.TaskStatusPendingReview, nil)
	require.NoError(t, svc.AttemptTransition(context.Background(), tk, models.TaskStatusCompleted))

	assert.Equal(t, models.TaskStatusCompleted, tk.Status)
	assert.Equal(t, 1, fc.updateCalls)
}

func TestAttemptTransition_NonCompletedEdgesAreUnrestricted(t *testing.T) {
	for _, target := range []string{
		models.TaskStatusPending,
		models.TaskStatusInProgress,
		models.TaskStatusPendingReview,
	} {
		t.Run(target, func(t *testing.T) {
			fc := &fakeClient{updateResp: task(target, nil)}
			svc := NewService(fc, sessionWithRoles(), nopLogger{})

			tk := task(models.TaskStatusCompleted, nil)
			require.NoError(t, svc.AttemptTransition(context.Background(), tk, target))
			assert.Equal(t, target, tk.Status)
		})
	}
}

func TestAttemptTransition_PersistenceFailureLeavesLocalStateUnchanged(t *testing.T) {
	fc := &fakeClient{updateErr: errors.New("connection reset")}
	svc := NewService(fc, sessionWithRoles(), nopLogger{})

	tk := task(models.TaskStatusPending, nil)
	err := svc.AttemptTransition(context.Background(), tk, models.TaskStatusInProgress)

	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, models.TaskStatusPending, tk.Status)
}

func TestAttemptTransition_UnknownStatus(t *testing.T) {
	fc := &fakeClient{}
	svc := NewService(fc, sessionWithRoles(), nopLogger{})

	tk := task(models.TaskStatusPending, nil)
	err := svc.AttemptTransition(context.Background(), tk, "archived")

	assert.Error(t, err)
	assert.Zero(t, fc.updateCalls)
}

func TestPendingReviewHook_NotifiesAssigneeExactlyOnce(t *testing.T) {
	assignee := &models.User{ID: "u1", Username: "maria"}
	fc := &fakeClient{updateResp: task(models.TaskStatusPendingReview, assignee)}
	svc := NewService(fc, sessionWithRoles(), nopLogger{})
	svc.RegisterHook(NewPendingReviewNotificationHook(fc, nopLogger{}))

	tk := task(models.TaskStatusInProgress, assignee)
	require.NoError(t, svc.AttemptTransition(context.Background(), tk, models.TaskStatusPendingReview))

	require.Len(t, fc.notifications, 1)
	n := fc.notifications[0]
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, "Task Status Update", n.Title)
	assert.Equal(t, `Task "Project Kickoff Meeting" has been marked for review`, n.Message)
	assert.Equal(t, models.NotificationStatusChange, n.Type)
}

func TestPendingReviewHook_NoAssigneeNoNotification(t *testing.T) {
	fc := &fakeClient{updateResp: task(models.TaskStatusPendingReview, nil)}
	svc := NewService(fc, sessionWithRoles(), nopLogger{})
	svc.RegisterHook(NewPendingReviewNotificationHook(fc, nopLogger{}))

	tk := task(models.TaskStatusInProgress, nil)
	require.NoError(t, svc.AttemptTransition(context.Background(), tk, models.TaskStatusPendingReview))

	assert.Empty(t, fc.notifications)
}

func TestPendingReviewHook_OtherTransitionsDoNotNotify(t *testing.T) {
	assignee := &models.User{ID: "u1"}
	fc := &fakeClient{updateResp: task(models.TaskStatusInProgress, assignee)}
	svc := NewService(fc, sessionWithRoles(), nopLogger{})
	svc.RegisterHook(NewPendingReviewNotificationHook(fc, nopLogger{}))

	tk := task(models.TaskStatusPending, assignee)
	require.NoError(t, svc.AttemptTransition(context.Background(), tk, models.TaskStatusInProgress))

	assert.Empty(t, fc.notifications)
}

func TestPendingReviewHook_DeliveryFailureDoesNotFailTransition(t *testing.T) {
	assignee := &models.User{ID: "u1"}
	fc := &fakeClient{
		updateResp: task(models.TaskStatusPendingReview, assignee),
		notifyErr:  errors.New("notification store down"),
	}
	svc := NewService(fc, sessionWithRoles(), nopLogger{})
	svc.RegisterHook(NewPendingReviewNotificationHook(fc, nopLogger{}))

	tk := task(models.TaskStatusInProgress, assignee)
	err := svc.AttemptTransition(context.Background(), tk, models.TaskStatusPendingReview)

	require.NoError(t, err, "notification failure must not fail the transition")
	assert.Equal(t, models.TaskStatusPendingReview, tk.Status)
}
