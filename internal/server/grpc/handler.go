package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/tracker/internal/common"
	pb "github.com/dmitrijs2005/tracker/internal/proto"
	"github.com/dmitrijs2005/tracker/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Dates (start/end) travel as "2006-01-02"; timestamps as RFC 3339.

func dateToWire(t time.Time) string {
	return t.Format(time.DateOnly)
}

func timestampToWire(t time.Time) string {
	return t.Format(time.RFC3339)
}

func userToWire(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{Id: u.ID, Username: u.Username, Name: u.Name, Email: u.Email}
}

func projectToWire(p *models.Project) *pb.Project {
	return &pb.Project{
		Id:             p.ID,
		Name:           p.Name,
		StartDate:      dateToWire(p.StartDate),
		EndDate:        dateToWire(p.EndDate),
		ProjectManager: userToWire(p.ProjectManager),
		Status:         p.Status,
		Progress:       p.Progress,
	}
}

func taskToWire(t *models.Task) *pb.Task {
	return &pb.Task{
		Id:                t.ID,
		ProjectId:         t.ProjectID,
		Name:              t.Name,
		Description:       t.Description,
		AssignedTo:        userToWire(t.AssignedTo),
		Status:            t.Status,
		StartDate:         dateToWire(t.StartDate),
		EndDate:           dateToWire(t.EndDate),
		IsRecurring:       t.IsRecurring,
		RecurringInterval: t.RecurringInterval,
	}
}

func commentToWire(c *models.Comment) *pb.Comment {
	return &pb.Comment{
		Id:        c.ID,
		TaskId:    c.TaskID,
		UserId:    c.UserID,
		Content:   c.Content,
		CreatedAt: timestampToWire(c.CreatedAt),
	}
}

func activityToWire(a *models.Activity) *pb.Activity {
	return &pb.Activity{
		Id:          a.ID,
		TaskId:      a.TaskID,
		Type:        a.Type,
		Description: a.Description,
		UserId:      a.UserID,
		CreatedAt:   timestampToWire(a.CreatedAt),
	}
}

func notificationToWire(n *models.Notification) *pb.Notification {
	return &pb.Notification{
		Id:        n.ID,
		UserId:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: timestampToWire(n.CreatedAt),
	}
}

// mapError converts service-level sentinels to gRPC status codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.identity.Register(ctx, &models.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Salt:     req.Salt,
		Verifier: req.Verifier,
		Roles:    req.Roles,
	})
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "RegisterUser")
		return nil, mapError(err)
	}

	return &pb.RegisterUserResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	salt, err := s.identity.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, user, err := s.identity.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		s.logger.Warn(ctx, "Login failed", "username", req.Username)
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Login succeeded", "username", req.Username)
	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Account:      userToWire(user),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, user, err := s.identity.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Account:      userToWire(user),
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.identity.Logout(ctx, req.RefreshToken); err != nil {
		return nil, mapError(err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "ListUsers")
		return nil, mapError(err)
	}

	resp := &pb.ListUsersResponse{}
	for _, u := range users {
		resp.Users = append(resp.Users, userToWire(u))
	}
	return resp, nil
}

func (s *GRPCServer) ListProjects(ctx context.Context, req *pb.ListProjectsRequest) (*pb.ListProjectsResponse, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "ListProjects")
		return nil, mapError(err)
	}

	resp := &pb.ListProjectsResponse{}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, projectToWire(p))
	}
	return resp, nil
}

func (s *GRPCServer) GetProject(ctx context.Context, req *pb.GetProjectRequest) (*pb.GetProjectResponse, error) {
	p, err := s.projects.Get(ctx, req.ProjectId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetProjectResponse{Project: projectToWire(p)}, nil
}

func (s *GRPCServer) CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (*pb.CreateProjectResponse, error) {
	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid start_date")
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid end_date")
	}

	p, err := s.projects.Create(ctx, &models.Project{
		Name:             req.Name,
		StartDate:        startDate,
		EndDate:          endDate,
		ProjectManagerID: req.ProjectManagerId,
	})
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "CreateProject", "name", req.Name)
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Project created", "project_id", p.ID)
	return &pb.CreateProjectResponse{Project: projectToWire(p)}, nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, req *pb.ListTasksRequest) (*pb.ListTasksResponse, error) {
	tasks, err := s.tasks.ListByProject(ctx, req.ProjectId)
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "ListTasks", "project_id", req.ProjectId)
		return nil, mapError(err)
	}

	resp := &pb.ListTasksResponse{}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskToWire(t))
	}
	return resp, nil
}

func (s *GRPCServer) UpdateTaskStatus(ctx context.Context, req *pb.UpdateTaskStatusRequest) (*pb.UpdateTaskStatusResponse, error) {
	t, err := s.tasks.UpdateStatus(ctx, req.TaskId, req.Status, userIDFromContext(ctx))
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "UpdateTaskStatus", "task_id", req.TaskId)
		return nil, mapError(err)
	}
	return &pb.UpdateTaskStatusResponse{Task: taskToWire(t)}, nil
}

func (s *GRPCServer) AssignTask(ctx context.Context, req *pb.AssignTaskRequest) (*pb.AssignTaskResponse, error) {
	t, err := s.tasks.Assign(ctx, req.TaskId, req.UserId, userIDFromContext(ctx))
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "AssignTask", "task_id", req.TaskId)
		return nil, mapError(err)
	}
	return &pb.AssignTaskResponse{Task: taskToWire(t)}, nil
}

func (s *GRPCServer) AddComment(ctx context.Context, req *pb.AddCommentRequest) (*pb.AddCommentResponse, error) {
	c, err := s.tasks.AddComment(ctx, req.TaskId, req.Content, userIDFromContext(ctx))
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "AddComment", "task_id", req.TaskId)
		return nil, mapError(err)
	}
	return &pb.AddCommentResponse{Comment: commentToWire(c)}, nil
}

func (s *GRPCServer) ListComments(ctx context.Context, req *pb.ListCommentsRequest) (*pb.ListCommentsResponse, error) {
	comments, err := s.tasks.ListComments(ctx, req.TaskId)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListCommentsResponse{}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, commentToWire(c))
	}
	return resp, nil
}

func (s *GRPCServer) ListActivities(ctx context.Context, req *pb.ListActivitiesRequest) (*pb.ListActivitiesResponse, error) {
	activities, err := s.tasks.ListActivities(ctx, req.TaskId)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListActivitiesResponse{}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, activityToWire(a))
	}
	return resp, nil
}

func (s *GRPCServer) AddNotification(ctx context.Context, req *pb.AddNotificationRequest) (*pb.AddNotificationResponse, error) {
	n, err := s.notifications.Add(ctx, &models.Notification{
		UserID:  req.UserId,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "AddNotification", "user_id", req.UserId)
		return nil, mapError(err)
	}
	return &pb.AddNotificationResponse{Notification: notificationToWire(n)}, nil
}

func (s *GRPCServer) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	notifications, err := s.notifications.ListForUser(ctx, userIDFromContext(ctx), req.UnreadOnly)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListNotificationsResponse{}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, notificationToWire(n))
	}
	return resp, nil
}

func (s *GRPCServer) MarkNotificationRead(ctx context.Context, req *pb.MarkNotificationReadRequest) (*pb.MarkNotificationReadResponse, error) {
	if err := s.notifications.MarkRead(ctx, req.NotificationId); err != nil {
		return nil, mapError(err)
	}
	return &pb.MarkNotificationReadResponse{}, nil
}

func (s *GRPCServer) GetAttachmentUploadUrl(ctx context.Context, req *pb.GetAttachmentUploadUrlRequest) (*pb.GetAttachmentUploadUrlResponse, error) {
	key, url, err := s.tasks.GetAttachmentUploadURL(ctx, req.TaskId, req.FileName, userIDFromContext(ctx))
	if err != nil {
		s.logger.Error(ctx, err.Error(), "op", "GetAttachmentUploadUrl", "task_id", req.TaskId)
		return nil, mapError(err)
	}
	return &pb.GetAttachmentUploadUrlResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) GetAttachmentDownloadUrl(ctx context.Context, req *pb.GetAttachmentDownloadUrlRequest) (*pb.GetAttachmentDownloadUrlResponse, error) {
	url, err := s.tasks.GetAttachmentDownloadURL(ctx, req.Key)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetAttachmentDownloadUrlResponse{Url: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
