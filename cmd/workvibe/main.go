package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"

	"github.com/AlpianPPLG/workvibe/internal/config"
	"github.com/AlpianPPLG/workvibe/internal/database"
	"github.com/AlpianPPLG/workvibe/internal/handlers"
	"github.com/AlpianPPLG/workvibe/internal/hub"
	"github.com/AlpianPPLG/workvibe/internal/mirror"
	"github.com/AlpianPPLG/workvibe/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	store, err := newMirror(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open roster storage", zap.Error(err))
	}
	defer store.Close()

	roster := services.NewRosterService(ctx, store, logger)

	eventHub := hub.NewHub()
	go eventHub.Run()

	memberHandler := handlers.NewMemberHandler(roster, eventHub)
	inviteHandler := handlers.NewInviteHandler(roster, eventHub)
	teamHandler := handlers.NewTeamHandler(roster)
	eventsHandler := handlers.NewEventsHandler(eventHub)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	api.Get("/members", memberHandler.List)
	api.Get("/roster", memberHandler.ListAll)
	api.Post("/members", memberHandler.Create)
	api.Get("/members/:id", memberHandler.Get)
	api.Patch("/members/:id", memberHandler.Update)
	api.Delete("/members/:id", memberHandler.Delete)

	api.Get("/team/members", teamHandler.Members)
	api.Get("/team/stats", teamHandler.Stats)

	api.Get("/invites", inviteHandler.List)
	api.Post("/invites", inviteHandler.Create)
	api.Post("/invites/:id/accept", inviteHandler.Accept)
	api.Delete("/invites/:id", inviteHandler.Delete)

	api.Get("/events", eventsHandler.Connect)
	api.Post("/events/:clientId/subscribe/:view", eventsHandler.Subscribe)
	api.Post("/events/:clientId/unsubscribe/:view", eventsHandler.Unsubscribe)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("server starting", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))
		if err := app.Run(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newMirror(ctx context.Context, cfg *config.Config) (mirror.Mirror, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return mirror.NewFile(cfg.StoragePath), nil
	case config.StorageSQLite:
		return mirror.NewSQLite(cfg.StoragePath)
	case config.StoragePostgres:
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return mirror.NewPostgres(db), nil
	case config.StorageMemory:
		return mirror.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
}
