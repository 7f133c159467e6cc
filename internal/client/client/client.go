// Package client is the tracker client's transport layer: a record-store
// and identity capability backed by the backend gRPC endpoint. gRPC status
// codes are mapped to sentinel errors at this boundary; no raw transport
// error crosses into the application services.
package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tracker/internal/client/models"
)

// TokenGrant is the outcome of a credential or refresh grant: a token pair
// plus the account record the identity service resolved.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	// Identity.
	Register(ctx context.Context, username, name, email string, salt, verifier []byte, roles []string) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*TokenGrant, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenGrant, error)
	Logout(ctx context.Context, refreshToken string) error

	// Record store.
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, name string, startDate, endDate time.Time, projectManagerID string) (*models.Project, error)
	ListTasks(ctx context.Context, projectID string) ([]*models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID, status string) (*models.Task, error)
	AssignTask(ctx context.Context, taskID, userID string) (*models.Task, error)
	AddComment(ctx context.Context, taskID, content string) (*models.Comment, error)
	ListComments(ctx context.Context, taskID string) ([]*models.Comment, error)
	ListActivities(ctx context.Context, taskID string) ([]*models.Activity, error)
	AddNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, unreadOnly bool) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	GetAttachmentUploadURL(ctx context.Context, taskID, fileName string) (string, string, error)
	GetAttachmentDownloadURL(ctx context.Context, key string) (string, error)
}
