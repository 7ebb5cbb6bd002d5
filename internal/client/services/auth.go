// Package services holds the CLI-side application services. AuthService
// keeps the login session in the local SQLite store so a restarted CLI is
// still logged in.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophblog/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

type AuthService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(c client.Client, db *sql.DB) *AuthService {
	return &AuthService{client: c, db: db}
}

// Restore loads a saved session into the client. It returns nil, nil when
// nobody is logged in.
func (a *AuthService) Restore(ctx context.Context) (*models.User, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	var user models.User
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("decode saved user: %w", err)
		}
	}

	a.client.SetToken(string(token))
	return &user, nil
}

func (a *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	res, err := a.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, &res.User); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &res.User, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, &res.User); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &res.User, nil
}

// Logout forgets the token in memory and on disk.
func (a *AuthService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return metadata.NewSQLiteRepository(a.db).Clear(ctx)
}

// save writes the client's current token and user in one transaction.
func (a *AuthService) save(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(a.client.Token())); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, raw)
	})
}
