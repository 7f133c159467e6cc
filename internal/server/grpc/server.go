// Package grpc exposes the tracker services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tracker/internal/logging"
	pb "github.com/dmitrijs2005/tracker/internal/proto"
	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/dmitrijs2005/tracker/internal/server/services"
	"google.golang.org/grpc"
)

type identitySvc interface {
	Register(ctx context.Context, user *models.User) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, *models.User, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, *models.User, error)
	Logout(ctx context.Context, refreshToken string) error
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type projectSvc interface {
	List(ctx context.Context) ([]*models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
}

type taskSvc interface {
	ListByProject(ctx context.Context, projectID string) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, taskID, status, actorID string) (*models.Task, error)
	Assign(ctx context.Context, taskID, userID, actorID string) (*models.Task, error)
	AddComment(ctx context.Context, taskID, content, actorID string) (*models.Comment, error)
	ListComments(ctx context.Context, taskID string) ([]*models.Comment, error)
	ListActivities(ctx context.Context, taskID string) ([]*models.Activity, error)
	GetAttachmentUploadURL(ctx context.Context, taskID, fileName, actorID string) (string, string, error)
	GetAttachmentDownloadURL(ctx context.Context, key string) (string, error)
}

type notificationSvc interface {
	Add(ctx context.Context, n *models.Notification) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type GRPCServer struct {
	pb.UnimplementedTrackerServiceServer
	address       string
	identity      identitySvc
	projects      projectSvc
	tasks         taskSvc
	notifications notificationSvc
	logger        logging.Logger
	jwtSecret     []byte
}

func NewGRPCServer(addr string, l logging.Logger,
	is *services.IdentityService, ps *services.ProjectService,
	ts *services.TaskService, ns *services.NotificationService,
	secretKey string) *GRPCServer {
	return &GRPCServer{
		address:       addr,
		logger:        l.With("module", "grpc_server"),
		identity:      is,
		projects:      ps,
		tasks:         ts,
		notifications: ns,
		jwtSecret:     []byte(secretKey),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterTrackerServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	return srv.Serve(listen)
}
