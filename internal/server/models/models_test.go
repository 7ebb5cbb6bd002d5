package models

import (
	"testing"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_NormalizesEmail(t *testing.T) {
	u := NewUser(" alice ", "  Alice@Example.COM ", "hash")
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Zero(t, u.ID)
}

func TestNewPost(t *testing.T) {
	p, err := NewPost("Hello", "body", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.AuthorID)
	assert.Zero(t, p.ID)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewPost(title, "body", 3)
		require.ErrorIs(t, err, common.ErrValidation, "title %q", title)
	}
}
