package main

import (
	"log"

	"github.com/joho/godotenv"

	"mixcrate/internal/app"
	"mixcrate/internal/config"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application := app.New(cfg)
	application.Run()
}
