package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
	"github.com/dobleb/todo-backend/internal/services"
	"github.com/labstack/echo/v4"
)

// TodoService is the slice of the todo store the handlers need.
type TodoService interface {
	Create(ctx context.Context, userID string, in services.TodoInput) (*models.Todo, error)
	Get(ctx context.Context, userID, id string) (*models.Todo, error)
	List(ctx context.Context, userID string) ([]*models.Todo, error)
	Update(ctx context.Context, userID, id string, patch *models.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, userID, id string) (*models.Todo, error)
}

func (s *Server) handleCreateTodo(c echo.Context) error {
	var in services.TodoInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	todo, err := s.todos.Create(c.Request().Context(), currentUserID(c), in)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return respondError(c, http.StatusBadRequest, "Title is required")
		}
		return s.internalError(c, err, "Failed to create todo")
	}

	return respondData(c, http.StatusCreated, todo)
}

func (s *Server) handleListTodos(c echo.Context) error {
	list, err := s.todos.List(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.internalError(c, err, "Failed to fetch todos")
	}

	return respondList(c, http.StatusOK, list, len(list))
}

func (s *Server) handleGetTodo(c echo.Context) error {
	todo, err := s.todos.Get(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Todo not found")
		}
		return s.internalError(c, err, "Failed to fetch todo")
	}

	return respondData(c, http.StatusOK, todo)
}

func (s *Server) handlePatchTodo(c echo.Context) error {
	var patch models.TodoPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	todo, err := s.todos.Update(c.Request().Context(), currentUserID(c), c.Param("id"), &patch)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return respondError(c, http.StatusBadRequest, "Title must not be empty")
		case errors.Is(err, common.ErrNotFound):
			return respondError(c, http.StatusNotFound, "Todo not found")
		default:
			return s.internalError(c, err, "Failed to update todo")
		}
	}

	return respondData(c, http.StatusOK, todo)
}

func (s *Server) handleDeleteTodo(c echo.Context) error {
	todo, err := s.todos.Delete(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Todo not found")
		}
		return s.internalError(c, err, "Failed to delete todo")
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    todo,
		Message: "Todo deleted successfully",
	})
}
