// Package app initializes and runs the application: configuration,
// logging, database, blob store, services and the HTTP server, with
// orderly shutdown on SIGINT/SIGTERM.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dobleb/todo-backend/internal/blobstore"
	"github.com/dobleb/todo-backend/internal/config"
	"github.com/dobleb/todo-backend/internal/logging"
	"github.com/dobleb/todo-backend/internal/repositories/repomanager"
	"github.com/dobleb/todo-backend/internal/rest"
	"github.com/dobleb/todo-backend/internal/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *rest.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.New(cfg.LogLevel)

	repos, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := blobstore.NewS3Store(ctx, blobstore.Options{
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		Endpoint:        cfg.S3.Endpoint,
		PublicURL:       cfg.S3.PublicURL,
	})
	if err != nil {
		repos.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	us := services.NewUserService(repos.Users(), cfg.JWTSecret, cfg.PasswordSalt)
	ts := services.NewTodoService(repos.Todos())
	is := services.NewImageService(blobs)

	server := rest.New(cfg, logger, us, ts, is)

	return &App{config: cfg, logger: logger, repos: repos, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "env", app.config.Env)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(ctx, "app stopped")
}
