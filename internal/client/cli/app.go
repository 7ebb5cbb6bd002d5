package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/config"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
)

// authService is the session surface the commands need.
type authService interface {
	Restore(ctx context.Context) (*models.User, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
}

type App struct {
	config *config.Config
	api    client.Client
	auth   authService
	db     *sql.DB
	user   *models.User
	reader *bufio.Reader
	out    io.Writer
}

// NewClient builds the API client for the configured transport.
func NewClient(c *config.Config) (client.Client, error) {
	switch c.Transport {
	case config.TransportGRPC:
		return client.NewGRPCClient(c.ServerAddrGRPC, c.RequestTimeout)
	case config.TransportHTTP:
		return client.NewHTTPClient(c.ServerAddrHTTP, c.RequestTimeout), nil
	default:
		return nil, fmt.Errorf("unknown transport %q", c.Transport)
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	api, err := NewClient(c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config: c,
		api:    api,
		auth:   services.NewAuthService(api, db),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return a.config.Transport
	}
	return a.user.Username + "@" + a.config.Transport
}

// Run restores the saved session and serves the REPL until exit.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	user, err := a.auth.Restore(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not restore session: %v\n", err)
	}
	a.user = user

	fmt.Fprintln(a.out, "Blog CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) close() {
	var errs []error
	if a.api != nil {
		errs = append(errs, a.api.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(a.out, "close: %v\n", err)
	}
}
