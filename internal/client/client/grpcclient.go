package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/common"
	pb "github.com/dmitrijs2005/tracker/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	client         pb.TrackerServiceClient
	accessToken    string
	refreshToken   string
	onTokenRefresh func(accessToken, refreshToken string)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewTrackerServiceClient(conn)
	return c, nil
}

// SetTokens installs the token pair from a completed grant.
func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// OnTokenRefresh registers a callback invoked whenever the interceptor
// rotates the token pair. The refresh token is single-use server-side, so the
// caller must persist the replacement or lose silent re-authentication.
func (s *GRPCClient) OnTokenRefresh(fn func(accessToken, refreshToken string)) {
	s.onTokenRefresh = fn
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token to every call and, when
// the server reports it expired, runs one refresh grant and retries once.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = resp.AccessToken
		s.refreshToken = resp.RefreshToken
		if s.onTokenRefresh != nil {
			s.onTokenRefresh(resp.AccessToken, resp.RefreshToken)
		}

		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, name, email string, salt, verifier []byte, roles []string) error {
	req := &pb.RegisterUserRequest{
		Username: username,
		Name:     name,
		Email:    email,
		Salt:     salt,
		Verifier: verifier,
		Roles:    roles,
	}
	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, username string, verifierCandidate []byte) (*TokenGrant, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, VerifierCandidate: verifierCandidate})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)

	return &TokenGrant{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         userFromWire(resp.Account),
	}, nil
}

func (s *GRPCClient) Refresh(ctx context.Context, refreshToken string) (*TokenGrant, error) {
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)

	return &TokenGrant{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         userFromWire(resp.Account),
	}, nil
}

func (s *GRPCClient) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refreshToken}); err != nil {
		return s.mapError(err)
	}
	s.SetTokens("", "")
	return nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]*models.User, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.User
	for _, u := range resp.Users {
		result = append(result, userFromWire(u))
	}
	return result, nil
}

func (s *GRPCClient) ListProjects(ctx context.Context) ([]*models.Project, error) {
	resp, err := s.client.ListProjects(ctx, &pb.ListProjectsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Project
	for _, p := range resp.Projects {
		result = append(result, projectFromWire(p))
	}
	return result, nil
}

func (s *GRPCClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	resp, err := s.client.GetProject(ctx, &pb.GetProjectRequest{ProjectId: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return projectFromWire(resp.Project), nil
}

func (s *GRPCClient) CreateProject(ctx context.Context, name string, startDate, endDate time.Time, projectManagerID string) (*models.Project, error) {
	req := &pb.CreateProjectRequest{
		Name:             name,
		StartDate:        startDate.Format(time.DateOnly),
		EndDate:          endDate.Format(time.DateOnly),
		ProjectManagerId: projectManagerID,
	}
	resp, err := s.client.CreateProject(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return projectFromWire(resp.Project), nil
}

func (s *GRPCClient) ListTasks(ctx context.Context, projectID string) ([]*models.Task, error) {
	resp, err := s.client.ListTasks(ctx, &pb.ListTasksRequest{ProjectId: projectID})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Task
	for _, t := range resp.Tasks {
		result = append(result, taskFromWire(t))
	}
	return result, nil
}

func (s *GRPCClient) UpdateTaskStatus(ctx context.Context, taskID, status string) (*models.Task, error) {
	resp, err := s.client.UpdateTaskStatus(ctx, &pb.UpdateTaskStatusRequest{TaskId: taskID, Status: status})
	if err != nil {
		return nil, s.mapError(err)
	}
	return taskFromWire(resp.Task), nil
}

func (s *GRPCClient) AssignTask(ctx context.Context, taskID, userID string) (*models.Task, error) {
	resp, err := s.client.AssignTask(ctx, &pb.AssignTaskRequest{TaskId: taskID, UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return taskFromWire(resp.Task), nil
}

func (s *GRPCClient) AddComment(ctx context.Context, taskID, content string) (*models.Comment, error) {
	resp, err := s.client.AddComment(ctx, &pb.AddCommentRequest{TaskId: taskID, Content: content})
	if err != nil {
		return nil, s.mapError(err)
	}
	return commentFromWire(resp.Comment), nil
}

func (s *GRPCClient) ListComments(ctx context.Context, taskID string) ([]*models.Comment, error) {
	resp, err := s.client.ListComments(ctx, &pb.ListCommentsRequest{TaskId: taskID})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Comment
	for _, c := range resp.Comments {
		result = append(result, commentFromWire(c))
	}
	return result, nil
}

func (s *GRPCClient) ListActivities(ctx context.Context, taskID string) ([]*models.Activity, error) {
	resp, err := s.client.ListActivities(ctx, &pb.ListActivitiesRequest{TaskId: taskID})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Activity
	for _, a := range resp.Activities {
		result = append(result, &models.Activity{
			ID:          a.Id,
			TaskID:      a.TaskId,
			Type:        a.Type,
			Description: a.Description,
			UserID:      a.UserId,
			CreatedAt:   timestampFromWire(a.CreatedAt),
		})
	}
	return result, nil
}

func (s *GRPCClient) AddNotification(ctx context.Context, n *models.Notification) error {
	req := &pb.AddNotificationRequest{
		UserId:  n.UserID,
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
	}
	if _, err := s.client.AddNotification(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListNotifications(ctx context.Context, unreadOnly bool) ([]*models.Notification, error) {
	resp, err := s.client.ListNotifications(ctx, &pb.ListNotificationsRequest{UnreadOnly: unreadOnly})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Notification
	for _, n := range resp.Notifications {
		result = append(result, &models.Notification{
			ID:        n.Id,
			UserID:    n.UserId,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: timestampFromWire(n.CreatedAt),
		})
	}
	return result, nil
}

func (s *GRPCClient) MarkNotificationRead(ctx context.Context, id string) error {
	if _, err := s.client.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{NotificationId: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetAttachmentUploadURL(ctx context.Context, taskID, fileName string) (string, string, error) {
	resp, err := s.client.GetAttachmentUploadUrl(ctx, &pb.GetAttachmentUploadUrlRequest{TaskId: taskID, FileName: fileName})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) GetAttachmentDownloadURL(ctx context.Context, key string) (string, error) {
	resp, err := s.client.GetAttachmentDownloadUrl(ctx, &pb.GetAttachmentDownloadUrlRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

// ---- wire conversions ----

func dateFromWire(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func timestampFromWire(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func userFromWire(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{ID: u.Id, Username: u.Username, Name: u.Name, Email: u.Email}
}

func projectFromWire(p *pb.Project) *models.Project {
	return &models.Project{
		ID:             p.Id,
		Name:           p.Name,
		StartDate:      dateFromWire(p.StartDate),
		EndDate:        dateFromWire(p.EndDate),
		ProjectManager: userFromWire(p.ProjectManager),
		Status:         p.Status,
		Progress:       p.Progress,
	}
}

func taskFromWire(t *pb.Task) *models.Task {
	return &models.Task{
		ID:                t.Id,
		ProjectID:         t.ProjectId,
		Name:              t.Name,
		Description:       t.Description,
		AssignedTo:        userFromWire(t.AssignedTo),
		Status:            t.Status,
		StartDate:         dateFromWire(t.StartDate),
		EndDate:           dateFromWire(t.EndDate),
		IsRecurring:       t.IsRecurring,
		RecurringInterval: t.RecurringInterval,
	}
}

func commentFromWire(c *pb.Comment) *models.Comment {
	return &models.Comment{
		ID:        c.Id,
		TaskID:    c.TaskId,
		UserID:    c.UserId,
		Content:   c.Content,
		CreatedAt: timestampFromWire(c.CreatedAt),
	}
}
