package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
	"github.com/dobleb/todo-backend/internal/repositories/todos"
	"github.com/nrednav/cuid2"
)

// TodoInput is the payload for creating a todo.
type TodoInput struct {
	Title     string           `json:"title"`
	Completed bool             `json:"completed"`
	Location  *models.Location `json:"location"`
	PhotoURI  string           `json:"photoUri"`
}

// TodoService implements the ownership-scoped todo lifecycle.
type TodoService struct {
	repo todos.Repository
}

func NewTodoService(repo todos.Repository) *TodoService {
	return &TodoService{repo: repo}
}

// Create validates the title and persists a new todo for userID.
func (s *TodoService) Create(ctx context.Context, userID string, in TodoInput) (*models.Todo, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, common.ErrValidation
	}

	todo := &models.Todo{
		ID:        cuid2.Generate(),
		UserID:    userID,
		Title:     in.Title,
		Completed: in.Completed,
		Location:  in.Location,
		PhotoURI:  in.PhotoURI,
	}

	todo, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, userID, id string) (*models.Todo, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *TodoService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update applies a partial patch. An updated title must not be blank.
func (s *TodoService) Update(ctx context.Context, userID, id string, patch *models.TodoPatch) (*models.Todo, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.ErrValidation
	}
	// An empty patch still goes through: it bumps updated_at and reports
	// not-found under the same ownership rule.
	return s.repo.Update(ctx, userID, id, patch)
}

func (s *TodoService) Delete(ctx context.Context, userID, id string) (*models.Todo, error) {
	return s.repo.Delete(ctx, userID, id)
}
