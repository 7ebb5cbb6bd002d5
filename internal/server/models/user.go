// Package models defines the server-side domain types persisted by the
// repositories and passed between services and transports.
package models

import (
	"strings"
	"time"
)

// User is a registered account. ID is zero until the user is stored.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser builds an unsaved user. The password must already be hashed.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     strings.TrimSpace(username),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
	}
}
