package grpc

import (
	"context"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	pb "github.com/dmitrijs2005/gophblog/internal/proto"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const protectedPrefix = "/" + pb.ProtectedServiceName + "/"

// authInterceptor resolves the caller of every protected method and stores
// the identity in the handler context. Public methods pass through.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !strings.HasPrefix(info.FullMethod, protectedPrefix) {
		return handler(ctx, req)
	}

	id, err := s.authenticate(ctx)
	if err != nil {
		return nil, s.fail(ctx, info.FullMethod, err)
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(common.UserIDHeaderName, strconv.FormatInt(id.ID, 10)))

	return handler(auth.WithIdentity(ctx, id), req)
}

func (s *GRPCServer) authenticate(ctx context.Context) (*auth.Identity, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return nil, common.ErrNoCredential
	}
	if strings.TrimSpace(values[0]) == "" {
		return nil, common.ErrEmptyToken
	}
	return auth.Resolve(ctx, values[0], s.tokens, s.users)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	reqID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(common.RequestIDHeaderName); len(v) > 0 {
			reqID = v[0]
		}
	}
	if reqID == "" {
		reqID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, reqID))

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
		"request_id", reqID,
	}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "grpc request", args...)
	} else {
		s.logger.Info(ctx, "grpc request", args...)
	}

	return resp, err
}

// recoveryInterceptor turns a handler panic into codes.Internal.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in grpc handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, common.ErrInternal.Error())
		}
	}()
	return handler(ctx, req)
}

func callerID(ctx context.Context) (int64, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return 0, common.ErrNoCredential
	}
	return id.ID, nil
}
