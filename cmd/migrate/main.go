package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/FireBushtree/stronger-body/internal/config"
	"github.com/FireBushtree/stronger-body/internal/dbmigrate"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: go run ./cmd/migrate [up|status|down]")
	}

	command := os.Args[1]
	switch command {
	case "up", "status", "down":
	default:
		log.Fatalf("unsupported command %q (allowed: up, status, down)", command)
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	log.Printf("migrate: command=%s", command)
	if err := dbmigrate.Run(command, cfg.DatabaseURL, dbmigrate.DefaultMigrationsDir); err != nil {
		log.Fatal(err)
	}

	log.Printf("migrate: %s completed successfully", command)
}
