package client

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
)

// Client is the transport-neutral blog API. HTTPClient and GRPCClient
// implement it with identical observable behavior.
//
// Register and Login remember "Bearer <token>". CreatePost, UpdatePost and
// DeletePost always send the remembered value, even when it is empty.
// GetPost and ListPosts never send it.
type Client interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	CreatePost(ctx context.Context, title, content string) (*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context, limit, offset uint64) (*models.PostPage, error)
	UpdatePost(ctx context.Context, id int64, title, content string) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	// Token returns the remembered authorization value, "" when logged out.
	Token() string
	// SetToken replaces the remembered authorization value verbatim.
	SetToken(token string)

	Close() error
}

func bearer(token string) string {
	return common.BearerPrefix + token
}
