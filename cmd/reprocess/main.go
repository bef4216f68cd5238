package main

import (
	"context"
	"log"
	"time"

	"campusflow-be/internal/bootstrap"
	"campusflow-be/internal/config"
	"campusflow-be/pkg/database"

	"github.com/fatih/color"
)

// One-shot sweep: enqueue every document that never finished ingestion,
// run the consumer until the queue drains, then exit.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	enqueued, err := container.DocumentService.ReprocessPending(ctx)
	if err != nil {
		log.Fatalf("Reprocess sweep failed: %v", err)
	}

	if enqueued == 0 {
		color.Green("Nothing to reprocess.")
		return
	}

	color.Cyan("Enqueued %d documents, waiting for ingestion to finish...", enqueued)

	// The in-process queue has no completion signal; poll until every
	// document carries a processed timestamp or the deadline passes.
	deadline := time.After(30 * time.Minute)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			color.Yellow("Timed out waiting for ingestion to finish.")
			return
		case <-ticker.C:
			remaining, err := container.DocumentService.CountPending(ctx)
			if err != nil {
				log.Printf("Poll error: %v", err)
				continue
			}
			if remaining == 0 {
				color.Green("All documents processed.")
				return
			}
		}
	}
}
