// Package services holds the application services sitting between the HTTP
// handlers and the repositories / blob store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dobleb/todo-backend/internal/auth"
	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
	"github.com/dobleb/todo-backend/internal/repositories/users"
	"github.com/nrednav/cuid2"
)

// UserService implements registration and login. Emails are trimmed and
// lowercased before any lookup so duplicates are case-insensitive.
type UserService struct {
	repo         users.Repository
	jwtSecret    []byte
	passwordSalt string
}

func NewUserService(repo users.Repository, jwtSecret, passwordSalt string) *UserService {
	return &UserService{
		repo:         repo,
		jwtSecret:    []byte(jwtSecret),
		passwordSalt: passwordSalt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns it together with a fresh token.
// A taken email is common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", common.ErrValidation
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrAlreadyExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, "", fmt.Errorf("looking up email: %w", err)
	}

	hash, err := auth.HashPassword(password, s.passwordSalt)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           cuid2.Generate(),
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := auth.IssueToken(user.ID, user.Email, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the account plus a fresh token.
// Unknown email and wrong password are one undifferentiated
// common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("looking up email: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash, s.passwordSalt) {
		return nil, "", common.ErrUnauthorized
	}

	token, err := auth.IssueToken(user.ID, user.Email, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}
