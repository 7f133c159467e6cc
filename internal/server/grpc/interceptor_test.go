package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newInterceptorServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
	}
}

func TestInterceptor_OpenMethod_AllowsWithoutToken(t *testing.T) {
	s := newInterceptorServer("secret")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/tracker.service.TrackerService/Login"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newInterceptorServer("secret")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/tracker.service.TrackerService/ListProjects"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_InvalidToken(t *testing.T) {
	s := newInterceptorServer("secret")

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/tracker.service.TrackerService/ListProjects"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_Protected_ExpiredTokenMessage(t *testing.T) {
	secret := "super-secret"
	s := newInterceptorServer(secret)

	token, err := auth.GenerateToken("user-123", []string{"Operations_Manager"}, []byte(secret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/tracker.service.TrackerService/ListProjects"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != common.ErrTokenExpired.Error() {
		t.Fatalf("expected %q, got %q", common.ErrTokenExpired.Error(), status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_ValidToken_SetsUserIDAndRoles(t *testing.T) {
	secret := "super-secret"
	s := newInterceptorServer(secret)

	userID := "user-123"
	roles := []string{"Operations_Manager"}
	token, err := auth.GenerateToken(userID, roles, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/tracker.service.TrackerService/ListProjects"}

	var gotUserID string
	var gotRoles []string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotUserID = userIDFromContext(ctx)
		gotRoles, _ = ctx.Value(rolesKey).([]string)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotUserID != userID {
		t.Fatalf("user id not propagated in context: got %v want %v", gotUserID, userID)
	}
	if len(gotRoles) != 1 || gotRoles[0] != "Operations_Manager" {
		t.Fatalf("roles not propagated in context: got %v", gotRoles)
	}
}
