// Package todos provides PostgreSQL-backed storage for todo records.
// Every operation is scoped by the owning user id: a record belonging to a
// different user is indistinguishable from a missing one.
package todos

import (
	"context"

	"github.com/dobleb/todo-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	GetByID(ctx context.Context, userID, id string) (*models.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Todo, error)
	Update(ctx context.Context, userID, id string, patch *models.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, userID, id string) (*models.Todo, error)
}
