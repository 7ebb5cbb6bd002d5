// Package auth holds the credential primitives shared by both transports:
// password hashing, JWT issue and verification, identity resolution and the
// ownership rule.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 tokens and hashes passwords.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl, now: time.Now}
}

func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password)
}

func (s *Service) VerifyPassword(password, encoded string) bool {
	return VerifyPassword(password, encoded)
}

// IssueToken signs a token for the user that expires after the service TTL.
func (s *Service) IssueToken(userID int64, username string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature, algorithm and expiry of token.
// It returns common.ErrTokenExpired for an expired token and
// common.ErrInvalidToken for everything else.
func (s *Service) VerifyToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	default:
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
}
