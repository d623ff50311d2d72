// Package app assembles the services and drives the process lifecycle.
package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mixcrate/internal/config"
	"mixcrate/internal/handler"
	"mixcrate/internal/server"
	"mixcrate/internal/service/library"
	"mixcrate/internal/service/scan"
	"mixcrate/internal/service/tags"
)

type App struct {
	server *server.Server
	config *config.Config
}

func New(cfg *config.Config) *App {
	codec := tags.NewCodec(cfg.Library.GenreAllowList())
	scanner := scan.NewScanner()
	lib := library.NewService(cfg.Library.InputDir, cfg.Library.OutputDir, codec)

	h := handler.New(scanner, lib, cfg.Library.InputDir, cfg.Library.OutputDir, cfg.Library.GenreAllowList())

	srv := server.New(cfg, h)

	return &App{
		server: srv,
		config: cfg,
	}
}

func (a *App) Run() {
	go func() {
		if err := a.server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	log.Printf("server started on %s (input=%s output=%s)",
		a.config.Server.Address(), a.config.Library.InputDir, a.config.Library.OutputDir)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.App.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
