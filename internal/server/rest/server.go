// Package rest exposes the blog over HTTP/JSON. Public routes live under
// /api/v0 and protected routes under /api/v1.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
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

type RESTServer struct {
	address         string
	users           UserService
	posts           PostService
	tokens          auth.TokenVerifier
	logger          logging.Logger
	corsOrigins     []string
	shutdownTimeout time.Duration
	now             func() time.Time
}

func NewRESTServer(addr string, l logging.Logger, users UserService, posts PostService, tokens auth.TokenVerifier,
	corsOrigins []string, shutdownTimeout time.Duration) *RESTServer {
	return &RESTServer{
		address:         addr,
		logger:          l.With("module", "rest_server"),
		users:           users,
		posts:           posts,
		tokens:          tokens,
		corsOrigins:     corsOrigins,
		shutdownTimeout: shutdownTimeout,
		now:             time.Now,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *RESTServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is cancelled, then drains in-flight
// requests for up to the shutdown timeout.
func (s *RESTServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())
		serveErr <- srv.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
