package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a domain error to the gRPC status sent to the caller.
// Unauthenticated and internal causes are not exposed.
func toStatus(err error) error {
	switch common.KindOf(err) {
	case common.KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case common.KindUnauthenticated:
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case common.KindForbidden:
		return status.Error(codes.PermissionDenied, "forbidden")
	case common.KindNotFound:
		return status.Error(codes.NotFound, "not found")
	case common.KindConflict:
		return status.Error(codes.AlreadyExists, "already exists")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// fail logs err with its full cause and returns the caller-facing status.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	switch common.KindOf(err) {
	case common.KindInternal:
		s.logger.Error(ctx, op+" failed", "error", err)
	case common.KindUnauthenticated:
		s.logger.Warn(ctx, op+" rejected", "reason", err.Error())
	default:
		s.logger.Debug(ctx, op+" rejected", "reason", err.Error())
	}
	return toStatus(err)
}
