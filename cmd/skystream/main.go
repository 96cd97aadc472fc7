package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/adapters/catalog"
	"github.com/lh1862570-stack/backendapp/internal/adapters/ephemeris"
	natsadapter "github.com/lh1862570-stack/backendapp/internal/adapters/nats"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/usecases"
	"github.com/lh1862570-stack/backendapp/internal/pkg/config"
	"github.com/lh1862570-stack/backendapp/internal/pkg/logging"
	"github.com/lh1862570-stack/backendapp/internal/pkg/metrics"
)

// The sky stream worker recomputes the solar-system frame for a fixed
// observer site on a timer and publishes it over NATS JetStream. Once a
// day it scans the coming 24 hours for rise/set and moon-phase events
// and publishes those too.

func main() {
	cfg, err := config.Load("skystream")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		log.Fatalf("nats: %v", err)
	}
	defer pub.Close()

	store := catalog.NewBuiltin()
	eph := ephemeris.New()
	bodies := usecases.NewBodyService(store, eph, cfg.Compute.MaxFrames)
	events := usecases.NewEventService(store, eph, time.Duration(cfg.Compute.EventStepMinutes)*time.Minute)

	site := cfg.Stream.Site
	lat, lon := cfg.Stream.LatDeg, cfg.Stream.LonDeg
	interval := time.Duration(cfg.Stream.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	slog.Info("sky stream starting",
		"site", site, "lat", lat, "lon", lon, "interval", interval.String())
	announce(ctx, pub, site, "online")
	defer announce(context.Background(), pub, site, "offline")

	go publishLoop(ctx, pub, bodies, site, lat, lon, interval)
	go eventLoop(ctx, pub, events, site, lat, lon)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received", "signal", sig.String())
	cancel()
	// Let in-flight publishes settle before the NATS drain
	time.Sleep(500 * time.Millisecond)
}

// announce tells broadcast subscribers that the stream for a site changed
// state.
func announce(ctx context.Context, pub *natsadapter.Publisher, site, status string) {
	data, err := json.Marshal(map[string]string{
		"service": "skystream",
		"site":    site,
		"status":  status,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := pub.PublishBroadcast(ctx, data); err != nil {
		slog.Warn("broadcast announce", "status", status, "error", err)
	}
}

// publishLoop emits one body frame per tick, starting immediately.
func publishLoop(ctx context.Context, pub *natsadapter.Publisher, bodies *usecases.BodyService, site string, lat, lon float64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	publish := func() {
		horizon := 0.0
		frame, err := bodies.Visible(ctx, lat, lon, "", domain.FilterOptions{MinAltitude: &horizon})
		if err != nil {
			slog.Error("compute frame", "error", err)
			return
		}
		if err := pub.PublishBodyFrame(ctx, site, frame); err != nil {
			metrics.StreamPublishErrors.WithLabelValues("sky.frames." + site).Inc()
			slog.Error("publish frame", "error", err)
			return
		}
		metrics.StreamPublishes.WithLabelValues("sky.frames." + site).Inc()
		slog.Debug("frame published", "site", site, "bodies", len(frame.Bodies))
	}

	publish()
	for {
		select {
		case <-ticker.C:
			publish()
		case <-ctx.Done():
			return
		}
	}
}

// eventLoop scans the next 24 hours once per day and publishes every
// event found. The first scan runs at startup.
func eventLoop(ctx context.Context, pub *natsadapter.Publisher, events *usecases.EventService, site string, lat, lon float64) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	scan := func() {
		start := time.Now().UTC()
		end := start.Add(24 * time.Hour)
		began := time.Now()

		found, err := events.Find(ctx, lat, lon,
			start.Format(time.RFC3339), end.Format(time.RFC3339), nil)
		if err != nil {
			slog.Error("event scan", "error", err)
			return
		}
		metrics.EventScanDuration.Observe(time.Since(began).Seconds())

		for i := range found {
			ev := found[i]
			if err := pub.PublishEvent(ctx, site, &ev); err != nil {
				metrics.StreamPublishErrors.WithLabelValues("sky.events." + site).Inc()
				slog.Error("publish event", "error", err)
				continue
			}
			metrics.StreamPublishes.WithLabelValues("sky.events." + site).Inc()
		}
		slog.Info("event scan complete", "site", site, "events", len(found))
	}

	scan()
	for {
		select {
		case <-ticker.C:
			scan()
		case <-ctx.Done():
			return
		}
	}
}
