package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luckypick/powerball-backend/api/routes"
	"github.com/luckypick/powerball-backend/internal/config"
	"github.com/luckypick/powerball-backend/internal/handlers"
	"github.com/luckypick/powerball-backend/internal/repositories"
	memoryrepo "github.com/luckypick/powerball-backend/internal/repositories/memory"
	mongorepo "github.com/luckypick/powerball-backend/internal/repositories/mongodb"
	"github.com/luckypick/powerball-backend/internal/services"
	"github.com/luckypick/powerball-backend/pkg/mongodb"
	"github.com/luckypick/powerball-backend/pkg/powerball"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build the draw result store. The in-memory backend is the default;
	// MongoDB keeps a durable archive across restarts.
	var drawResultRepo repositories.DrawResultRepository
	switch cfg.Results.Storage {
	case "mongodb":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()
		db := mongoClient.Database(cfg.MongoDB.Database)
		drawResultRepo = mongorepo.NewDrawResultRepository(db)
	case "memory":
		drawResultRepo = memoryrepo.NewDrawResultRepository()
	default:
		log.Fatalf("Unknown results storage backend: %q", cfg.Results.Storage)
	}

	// Initialize services
	feedClient := powerball.NewClient(cfg.Results.FeedURL, cfg.Results.MockFeed)
	resultsService := services.NewResultsService(drawResultRepo, feedClient)
	prizeService := services.NewPrizeService(drawResultRepo)
	ticketService := services.NewTicketService(prizeService)

	// Warm the results store before serving. An empty store would turn every
	// ticket into a false NOT_FOUND, so a warm-up failure aborts startup.
	warmupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	count, err := resultsService.InitializeCache(warmupCtx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize draw results: %v", err)
	}
	log.Printf("Loaded %d draw results", count)

	// Schedule periodic refresh of the results store
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Results.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := resultsService.RefreshCache(ctx); err != nil {
			log.Printf("Draw results refresh failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Invalid refresh schedule %q: %v", cfg.Results.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize handlers
	ticketHandler := handlers.NewTicketHandler(ticketService)
	drawHandler := handlers.NewDrawHandler(resultsService)

	handlerDeps := routes.HandlerDependencies{
		TicketHandler: ticketHandler,
		DrawHandler:   drawHandler,
	}

	// Setup router
	router := routes.SetupRouter(cfg, handlerDeps)

	// Start the server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
