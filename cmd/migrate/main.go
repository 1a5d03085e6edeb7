package main

import (
	"context"
	"log"

	"simplehr.com/simplehr/config"
	"simplehr.com/simplehr/core"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dm, err := core.New(cfg.DSN, 1, core.LogLevelInfo)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dm.Close()

	if err := dm.Exec(context.Background(), core.Migrate); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Printf("migrated %d tables", len(core.Models()))
}
