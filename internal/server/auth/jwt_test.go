package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService([]byte("super-secret"), time.Hour)

	tok, err := svc.IssueToken(42, "alice")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := NewService([]byte("secret"), time.Hour)
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	tok, err := svc.IssueToken(1, "u1")
	require.NoError(t, err)

	_, err = svc.VerifyToken(tok)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.VerifyToken(tok)
	require.ErrorIs(t, err, common.ErrTokenExpired)
	assert.False(t, errors.Is(err, common.ErrInvalidToken))
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	tok, err := NewService([]byte("right"), time.Hour).IssueToken(2, "bob")
	require.NoError(t, err)

	_, err = NewService([]byte("wrong"), time.Hour).VerifyToken(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc := NewService([]byte("k"), time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := svc.VerifyToken(tok)
		require.ErrorIs(t, err, common.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyToken_RejectsOtherAlgorithms(t *testing.T) {
	secret := []byte("k")
	claims := Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := NewService(secret, time.Hour)
	for _, tok := range []string{hs512, none} {
		_, err := svc.VerifyToken(tok)
		require.ErrorIs(t, err, common.ErrInvalidToken)
	}
}

func TestVerifyToken_RequiresExpiry(t *testing.T) {
	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 4}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewService(secret, time.Hour).VerifyToken(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerifyToken_TamperedClaims(t *testing.T) {
	svc := NewService([]byte("k"), time.Hour)
	tok, err := svc.IssueToken(5, "eve")
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   6,
		Username: "eve",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other"))
	require.NoError(t, err)
	require.NotEqual(t, tok, forged)

	_, err = svc.VerifyToken(forged)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestService_PasswordHelpers(t *testing.T) {
	svc := NewService([]byte("k"), time.Hour)
	h, err := svc.HashPassword("pw")
	require.NoError(t, err)
	assert.True(t, svc.VerifyPassword("pw", h))
	assert.False(t, svc.VerifyPassword("nope", h))
}
