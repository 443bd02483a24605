// Package rest exposes the HTTP API: authentication, the todo CRUD
// surface and image storage, all wrapped in a uniform response envelope.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dobleb/todo-backend/internal/config"
	"github.com/dobleb/todo-backend/internal/logging"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nrednav/cuid2"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger logging.Logger

	users  UserService
	todos  TodoService
	images ImageService

	jwtSecret []byte
	registry  *prometheus.Registry
}

func New(cfg *config.Config, logger logging.Logger, users UserService, todos TodoService, images ImageService) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    logger.With("module", "rest_server"),
		users:     users,
		todos:     todos,
		images:    images,
		jwtSecret: []byte(cfg.JWTSecret),
		registry:  prometheus.NewRegistry(),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	// The body limit sits above the 5 MiB image cap so oversized uploads
	// get the handler's validation message, not the limiter's.
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: cuid2.Generate,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "todobackend",
		Registerer: s.registry,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(RequestLogger(s.logger))

	s.routes(e)
	s.echo = e
	return s
}

func (s *Server) routes(e *echo.Echo) {
	e.GET("/", s.handleIndex)
	e.GET("/health", s.handleHealth)

	e.POST("/auth/register", s.handleRegister)
	e.POST("/auth/login", s.handleLogin)

	todos := e.Group("/todos", RequireAuth(s.jwtSecret))
	todos.GET("", s.handleListTodos)
	todos.POST("", s.handleCreateTodo)
	todos.GET("/:id", s.handleGetTodo)
	todos.PATCH("/:id", s.handlePatchTodo)
	todos.DELETE("/:id", s.handleDeleteTodo)

	// Image fetch is public; mutation requires a token.
	e.GET("/images/:userId/:imageId", s.handleGetImage)
	e.POST("/images", s.handleUploadImage, RequireAuth(s.jwtSecret))
	e.DELETE("/images/:userId/:imageId", s.handleDeleteImage, RequireAuth(s.jwtSecret))
}

// errorHandler renders anything that escaped the handlers as the envelope.
// Full detail is logged; in production the caller only sees a generic
// message for internal failures.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, envelope{Success: false, Error: fmt.Sprintf("%v", he.Message)})
		return
	}

	status := statusForError(err)
	s.logger.Error(c.Request().Context(), "unhandled error",
		"error", err,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	)

	msg := err.Error()
	if status == http.StatusInternalServerError && s.cfg.IsProduction() {
		msg = "Internal server error"
	}
	_ = c.JSON(status, envelope{Success: false, Error: msg})
}

// internalError logs the failure with full detail and answers with a stable
// public message, extended with the cause outside production.
func (s *Server) internalError(c echo.Context, err error, msg string) error {
	s.logger.Error(c.Request().Context(), msg,
		"error", err,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	)
	if !s.cfg.IsProduction() {
		msg = msg + ": " + err.Error()
	}
	return respondError(c, http.StatusInternalServerError, msg)
}

// Run starts the public listener and the metrics listener, and shuts both
// down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	metrics := echo.New()
	metrics.HideBanner = true
	metrics.HidePort = true
	metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.registry,
	}))

	go func() {
		if err := metrics.Start(s.cfg.MetricsAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "metrics listener failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "http shutdown error", "error", err)
		}
		if err := metrics.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "metrics shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "starting http server", "addr", s.cfg.Addr())

	if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
