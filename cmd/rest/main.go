package main

import (
	"context"
	"log"

	"timo-intelligence-be/internal/bootstrap"
	"timo-intelligence-be/internal/config"
	"timo-intelligence-be/internal/server"
	"timo-intelligence-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Load the content document (remote, then local, then defaults)
	if err := container.ContentService.Load(context.Background()); err != nil {
		log.Panicf("Unable to load content: %v", err)
	}
	defer container.ContentService.Close()

	// 4. Start Background Services
	if err := container.ConsumerService.Start(context.Background()); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
