package grpc

import (
	"context"

	"github.com/dmitrijs2005/rainyday/internal/common"
	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// publicMethods can be called without an access token.
var publicMethods = map[string]struct{}{
	pb.RainyDay_Ping_FullMethodName:         {},
	pb.RainyDay_Register_FullMethodName:     {},
	pb.RainyDay_Login_FullMethodName:        {},
	pb.RainyDay_RefreshToken_FullMethodName: {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.tokens.UserID(accessToken)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

// ownerID returns the authenticated user id stored by the interceptor.
func ownerID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}
