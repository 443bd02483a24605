package main

import (
	"context"

	"github.com/dobleb/todo-backend/internal/app"
	"github.com/dobleb/todo-backend/internal/config"
	"github.com/labstack/gommon/log"
)

func main() {

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %+v", err)
	}

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("init: %+v", err)
	}

	a.Run(ctx)
}
