package main

import (
	"context"
	"log"
	"time"

	"campusflow-be/internal/bootstrap"
	"campusflow-be/internal/config"
	"campusflow-be/internal/server"
	"campusflow-be/internal/tracer"
	"campusflow-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// Periodic sweep for documents whose ingestion never finished.
	if cfg.Ingestion.ReprocessInterval > 0 {
		go func() {
			interval := time.Duration(cfg.Ingestion.ReprocessInterval) * time.Minute
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for range ticker.C {
				if _, err := container.DocumentService.ReprocessPending(context.Background()); err != nil {
					log.Printf("Background Reprocess Error: %v", err)
				}
			}
		}()
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
