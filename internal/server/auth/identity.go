package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
)

// Identity is the authenticated caller of a single request.
type Identity struct {
	ID       int64
	Username string
	Email    string
}

type TokenVerifier interface {
	VerifyToken(token string) (*Claims, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Resolve turns an authorization value of the form "Bearer <jwt>" into the
// identity of an existing user.
func Resolve(ctx context.Context, bearer string, tokens TokenVerifier, users UserLookup) (*Identity, error) {
	token, ok := strings.CutPrefix(bearer, common.BearerPrefix)
	if !ok {
		return nil, common.ErrMalformedCredential
	}

	claims, err := tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnknownSubject
		}
		return nil, fmt.Errorf("%w: load user %d: %v", common.ErrInternal, claims.UserID, err)
	}

	return &Identity{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
