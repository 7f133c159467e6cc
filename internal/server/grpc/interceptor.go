package grpc

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	rolesKey  ctxKey = "roles"
)

// Identity RPCs and the liveness probe do not require an access token; the
// identity flow is what produces one.
var openMethods = map[string]struct{}{
	"/tracker.service.TrackerService/RegisterUser": {},
	"/tracker.service.TrackerService/GetSalt":      {},
	"/tracker.service.TrackerService/Login":        {},
	"/tracker.service.TrackerService/RefreshToken": {},
	"/tracker.service.TrackerService/Logout":       {},
	"/tracker.service.TrackerService/Ping":         {},
}

// accessTokenInterceptor authenticates every record-store RPC: it validates
// the access token and stores the subject's id and roles in the context.
// Expired tokens are reported with the exact common.ErrTokenExpired message
// so the client transport can run its refresh path.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, open := openMethods[info.FullMethod]; open {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	ctx = context.WithValue(ctx, rolesKey, claims.Roles)

	return handler(ctx, req)
}

// userIDFromContext returns the authenticated subject's id placed by the
// interceptor; empty for open methods.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
