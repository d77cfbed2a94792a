// Command seed populates the configured record store with demo data.
package main

import (
	"context"
	"log"

	"staffhub/internal/bootstrap"
	"staffhub/internal/config"
	"staffhub/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer rt.Store.Close()

	if err := seed.Demo(ctx, rt.Store); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
