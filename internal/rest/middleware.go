package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/dobleb/todo-backend/internal/auth"
	"github.com/dobleb/todo-backend/internal/logging"
	"github.com/labstack/echo/v4"
)

const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
)

// RequireAuth validates the bearer token and injects the authenticated
// identity into the request-scoped state. Every request re-verifies
// independently; no session survives the request.
func RequireAuth(secretKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return respondError(c, http.StatusUnauthorized, "Missing or invalid authorization header")
			}

			ident, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "), secretKey)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(ctxUserID, ident.UserID)
			c.Set(ctxUserEmail, ident.Email)
			return next(c)
		}
	}
}

func currentUserID(c echo.Context) string {
	id, _ := c.Get(ctxUserID).(string)
	return id
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			logger.Info(req.Context(), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	}
}
