// Package server wires storage, services and both transports of the blog
// server and runs them until a signal or a fatal error stops the process.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/config"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophblog/internal/server/rest"
	"github.com/dmitrijs2005/gophblog/internal/server/services"

	gs "github.com/dmitrijs2005/gophblog/internal/server/grpc"
)

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	servers map[string]runner
}

// NewApp opens storage, applies migrations and builds the servers that have
// an address configured.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repos, err := repomanager.New(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, err
	}

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, data is kept in memory")
	}
	if c.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "Using the development JWT secret")
	}

	tokens := auth.NewService([]byte(c.SecretKey), c.TokenValidityDuration)
	us := services.NewUserService(repos.Users(), tokens, logger)
	ps := services.NewPostService(repos.Posts())

	servers := make(map[string]runner, 2)
	if c.EndpointAddrHTTP != "" {
		servers["http"] = rest.NewRESTServer(c.EndpointAddrHTTP, logger, us, ps, tokens, c.CORSOrigins, c.ShutdownTimeout)
	}
	if c.EndpointAddrGRPC != "" {
		servers["grpc"] = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ps, tokens)
	}

	return &App{config: c, logger: logger, repos: repos, servers: servers}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run starts every server and blocks until ctx is cancelled, a signal
// arrives or one server fails. A failing server stops the others. Storage is
// closed before Run returns.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for name, s := range app.servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Run(ctx); err != nil {
				app.logger.Error(ctx, "Server failed", "server", name, "error", err)
				once.Do(func() { firstErr = fmt.Errorf("%s server: %w", name, err) })
				cancelFunc()
			}
		}()
	}

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "Failed to close storage", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return firstErr
}
