// Package users provides the user directory: creation and lookup of
// account records with a unique lowercased email.
package users

import (
	"context"

	"github.com/dobleb/todo-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
