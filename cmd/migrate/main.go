package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/priyanshupaikra/Inter-AI/internal/config"
	"github.com/priyanshupaikra/Inter-AI/internal/repository/postgres"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	fmt.Printf("Running migrations against %s:%d...\n", cfg.Database.Host, cfg.Database.Port)

	if err := postgres.RunMigrations(cfg.Database.DSN(), "file://migrations"); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	fmt.Println("Migrations applied successfully")
}
