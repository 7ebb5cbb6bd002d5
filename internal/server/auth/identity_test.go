package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[int64]*models.User
	err   error
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func TestResolve(t *testing.T) {
	svc := NewService([]byte("secret"), time.Hour)
	users := &fakeUsers{users: map[int64]*models.User{
		7: {ID: 7, Username: "alice", Email: "alice@example.com"},
	}}

	good, err := svc.IssueToken(7, "alice")
	require.NoError(t, err)
	ghost, err := svc.IssueToken(99, "ghost")
	require.NoError(t, err)

	expiredSvc := NewService([]byte("secret"), -time.Minute)
	expired, err := expiredSvc.IssueToken(7, "alice")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		id, err := Resolve(ctx, common.BearerPrefix+good, svc, users)
		require.NoError(t, err)
		assert.Equal(t, &Identity{ID: 7, Username: "alice", Email: "alice@example.com"}, id)
	})

	t.Run("missing prefix", func(t *testing.T) {
		_, err := Resolve(ctx, good, svc, users)
		require.ErrorIs(t, err, common.ErrMalformedCredential)
	})

	t.Run("lowercase scheme", func(t *testing.T) {
		_, err := Resolve(ctx, "bearer "+good, svc, users)
		require.ErrorIs(t, err, common.ErrMalformedCredential)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := Resolve(ctx, common.BearerPrefix+"garbage", svc, users)
		require.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := Resolve(ctx, common.BearerPrefix+expired, svc, users)
		require.ErrorIs(t, err, common.ErrTokenExpired)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := Resolve(ctx, common.BearerPrefix+ghost, svc, users)
		require.ErrorIs(t, err, common.ErrUnknownSubject)
	})

	t.Run("storage failure", func(t *testing.T) {
		broken := &fakeUsers{err: errors.New("db down")}
		_, err := Resolve(ctx, common.BearerPrefix+good, svc, broken)
		require.ErrorIs(t, err, common.ErrInternal)
		assert.Equal(t, common.KindInternal, common.KindOf(err))
	})
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), &Identity{ID: 1, Username: "a"})
	id, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(1), id.ID)

	_, ok = IdentityFromContext(WithIdentity(context.Background(), nil))
	assert.False(t, ok)
}

func TestEnsureOwner(t *testing.T) {
	require.NoError(t, EnsureOwner(5, 5))

	err := EnsureOwner(5, 6)
	require.ErrorIs(t, err, common.ErrForbidden)
	assert.Equal(t, common.KindForbidden, common.KindOf(err))
}
