package main

import (
	"context"
	"log"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/server"
	"resume-builder-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close(ctx)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
