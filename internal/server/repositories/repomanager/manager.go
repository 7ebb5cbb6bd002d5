// Package repomanager builds the repository set the services run on: either
// PostgreSQL-backed repositories with embedded goose migrations, or in-memory
// ones when no database is configured.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Posts() posts.Repository
	Close() error
}

// New picks the storage backend: PostgreSQL for a non-empty DSN, memory otherwise.
func New(dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	m, err := NewPostgresRepositoryManager(dsn)
	if err != nil {
		return nil, err
	}
	return m, nil
}
