package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
	"github.com/labstack/echo/v4"
)

// UserService is the slice of the user directory the handlers need.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var in credentials
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	user, token, err := s.users.Register(c.Request().Context(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return respondError(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, common.ErrAlreadyExists):
			return respondError(c, http.StatusConflict, "Email already registered")
		default:
			return s.internalError(c, err, "Registration failed")
		}
	}

	return respondData(c, http.StatusCreated, authPayload{User: user, Token: token})
}

func (s *Server) handleLogin(c echo.Context) error {
	var in credentials
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	user, token, err := s.users.Login(c.Request().Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			// One message for unknown email and wrong password.
			return respondError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return s.internalError(c, err, "Login failed")
	}

	return respondData(c, http.StatusOK, authPayload{User: user, Token: token})
}

func (s *Server) handleHealth(c echo.Context) error {
	return respondData(c, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleIndex(c echo.Context) error {
	payload := map[string]any{
		"message": "Todo backend API",
		"endpoints": map[string]any{
			"health": "/health",
			"auth": map[string]string{
				"register": "/auth/register",
				"login":    "/auth/login",
			},
			"todos":  "/todos (bearer token required)",
			"images": "/images (bearer token required)",
		},
	}
	if s.cfg.BaseURL != "" {
		payload["baseUrl"] = s.cfg.BaseURL
	}
	return respondData(c, http.StatusOK, payload)
}
