// Package services contains the server-side business logic shared by the
// REST and gRPC transports.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/users"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *models.User
}

// Credentials is the subset of auth.Service the user service needs.
type Credentials interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, encoded string) bool
	IssueToken(userID int64, username string) (string, error)
}

type UserService struct {
	users users.Repository
	creds Credentials
	log   logging.Logger
}

func NewUserService(repo users.Repository, creds Credentials, log logging.Logger) *UserService {
	return &UserService{users: repo, creds: creds, log: log.With("module", "user_service")}
}

type registerInput struct {
	Username string
	Email    string
	Password string
}

func (in registerInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 128)),
	)
}

type loginInput struct {
	Email    string
	Password string
}

func (in loginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

// Register creates the account and logs it in.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	in := registerInput{Username: username, Email: email, Password: password}
	if err := in.Validate(); err != nil {
		return nil, invalid(err)
	}

	hash, err := s.creds.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrInternal, err)
	}

	user, err := s.users.Create(ctx, models.NewUser(username, email, hash))
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)

	return s.authenticated(user)
}

// Login checks the password against the stored hash. Unknown email and wrong
// password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := loginInput{Email: email, Password: password}
	if err := in.Validate(); err != nil {
		return nil, invalid(err)
	}

	user, err := s.users.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !s.creds.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.authenticated(user)
}

// GetByID makes the service usable as an auth.UserLookup.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) authenticated(user *models.User) (*AuthResult, error) {
	token, err := s.creds.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: issue token: %v", common.ErrInternal, err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

var _ auth.UserLookup = (*UserService)(nil)
