package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nats-io/nats.go"

	"github.com/lh1862570-stack/backendapp/internal/adapters/catalog"
	"github.com/lh1862570-stack/backendapp/internal/adapters/ephemeris"
	"github.com/lh1862570-stack/backendapp/internal/adapters/http"
	natsadapter "github.com/lh1862570-stack/backendapp/internal/adapters/nats"
	"github.com/lh1862570-stack/backendapp/internal/adapters/postgres"
	"github.com/lh1862570-stack/backendapp/internal/adapters/valkey"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
	"github.com/lh1862570-stack/backendapp/internal/core/usecases"
	"github.com/lh1862570-stack/backendapp/internal/pkg/config"
	"github.com/lh1862570-stack/backendapp/internal/pkg/logging"
	"github.com/lh1862570-stack/backendapp/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("starapi")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer func() { _ = shutdown(context.Background()) }()
		}
	}

	// Catalog: compiled-in tables by default, Postgres when configured
	var (
		store ports.CatalogStore
		db    *postgres.DB
	)
	switch cfg.Catalog.Source {
	case "postgres":
		db, err = postgres.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewCatalogRepository(db)
		stars, err := repo.LoadStars(ctx)
		if err != nil {
			log.Fatalf("load stars: %v", err)
		}
		bodies, err := repo.LoadBodies(ctx)
		if err != nil {
			log.Fatalf("load bodies: %v", err)
		}
		constellations, err := repo.LoadConstellations(ctx)
		if err != nil {
			log.Fatalf("load constellations: %v", err)
		}
		store, err = catalog.NewFromData(stars, bodies, constellations)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
		slog.Info("catalog loaded from postgres", "stars", len(stars))
	default:
		store = catalog.NewBuiltin()
		slog.Info("using embedded catalog")
	}

	// IAU boundary polygons (optional)
	boundaries, err := catalog.LoadBoundaries(cfg.Catalog.BoundariesFile)
	if err != nil {
		log.Fatalf("boundaries: %v", err)
	}
	if boundaries.Loaded() {
		slog.Info("boundary polygons loaded", "file", cfg.Catalog.BoundariesFile)
	}

	// Cache (optional)
	var cache *valkey.Cache
	if cfg.Valkey.Enabled {
		cache, err = valkey.New(cfg.Valkey.Addr, "starapi")
		if err != nil {
			slog.Warn("valkey unavailable", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// Raw NATS connection for WebSocket relay (optional)
	var natsConn *nats.Conn
	if cfg.NATS.URL != "" {
		natsConn, err = natsadapter.RawConn(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable", "error", err)
		}
	}

	// Use cases
	eph := ephemeris.New()
	eventStep := time.Duration(cfg.Compute.EventStepMinutes) * time.Minute

	var cacheSvc ports.CacheService
	if cache != nil {
		cacheSvc = cache
	}

	deps := &http.Dependencies{
		Stars:          usecases.NewStarService(store, cacheSvc, cfg.Compute.MaxFrames),
		Bodies:         usecases.NewBodyService(store, eph, cfg.Compute.MaxFrames),
		Events:         usecases.NewEventService(store, eph, eventStep),
		Constellations: usecases.NewConstellationService(store, boundaries),
		Catalog:        store,
		Boundaries:     boundaries,
		NATS:           natsConn,
		DB:             db,
		Cache:          cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "Visible Stars API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
