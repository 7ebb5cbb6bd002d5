// Package models defines the values the blog client hands to its callers.
// They are transport neutral: both client implementations return them.
package models

// User is the public profile of an account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResult is returned by register and login. Token is the bare signed
// token as issued by the server, without the "Bearer " prefix.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
