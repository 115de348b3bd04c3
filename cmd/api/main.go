package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/giftflow/giftflow-backend/api/routes"
	"github.com/giftflow/giftflow-backend/internal/config"
	"github.com/giftflow/giftflow-backend/internal/handlers"
	"github.com/giftflow/giftflow-backend/internal/repositories"
	mongorepo "github.com/giftflow/giftflow-backend/internal/repositories/mongodb"
	"github.com/giftflow/giftflow-backend/internal/services"
	"github.com/giftflow/giftflow-backend/pkg/mongodb"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Database)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database()

	// Repositories
	var eventRepo repositories.EventRepository = mongorepo.NewEventRepository(db)
	var participantRepo repositories.ParticipantRepository = mongorepo.NewParticipantRepository(db)
	var matchRepo repositories.MatchRepository = mongorepo.NewMatchRepository(db)

	// Services
	eventService := services.NewEventService(eventRepo)
	participantService := services.NewParticipantService(participantRepo, eventRepo, cfg.Draw.ParticipantLimit)
	drawService := services.NewDrawService(eventRepo, participantRepo, matchRepo, cfg.Draw.MaxAttempts, cfg.Draw.ParticipantLimit)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		EventHandler:       handlers.NewEventHandler(eventService),
		ParticipantHandler: handlers.NewParticipantHandler(participantService),
		DrawHandler:        handlers.NewDrawHandler(drawService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
