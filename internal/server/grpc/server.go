// Package grpc exposes the blog over gRPC: a public service for registration,
// login and reads, and a protected service for post mutations.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/gophblog/internal/logging"
	pb "github.com/dmitrijs2005/gophblog/internal/proto"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type PostService interface {
	Create(ctx context.Context, authorID int64, title, content string) (*models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, limit, offset uint64) (*models.PostPage, error)
	Update(ctx context.Context, callerID, id int64, title, content string) (*models.Post, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type GRPCServer struct {
	pb.UnimplementedBlogPublicServiceServer
	pb.UnimplementedBlogProtectedServiceServer
	address string
	users   UserService
	posts   PostService
	tokens  auth.TokenVerifier
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(addr string, l logging.Logger, users UserService, posts PostService, tokens auth.TokenVerifier) *GRPCServer {
	return &GRPCServer{
		address: addr,
		logger:  l.With("module", "grpc_server"),
		users:   users,
		posts:   posts,
		tokens:  tokens,
		health:  health.NewServer(),
	}
}

// NewServer builds a grpc.Server with both blog services and the standard
// health service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.recoveryInterceptor, s.authInterceptor),
	)

	pb.RegisterBlogPublicServiceServer(srv, s)
	pb.RegisterBlogProtectedServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	for _, name := range []string{"", pb.PublicServiceName, pb.ProtectedServiceName} {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.health.Shutdown()
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
