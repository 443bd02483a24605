// Package repomanager owns the database handle and hands out the
// per-entity repositories built on it. The handle is created once at
// process startup and closed once at shutdown.
package repomanager

import (
	"context"

	"github.com/dobleb/todo-backend/internal/repositories/todos"
	"github.com/dobleb/todo-backend/internal/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Todos() todos.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
