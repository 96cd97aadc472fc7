package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "starapi",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "starapi",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response size in bytes",
		Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	// Sky-computation metrics
	TransformsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "sky",
		Name:      "transforms_total",
		Help:      "Total equatorial-to-horizontal transforms computed",
	}, []string{"kind"})

	FramesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "sky",
		Name:      "frames_generated_total",
		Help:      "Total batch frames generated",
	}, []string{"kind"})

	EventsFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "sky",
		Name:      "events_found_total",
		Help:      "Total astronomy events detected",
	}, []string{"type"})

	EventScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "starapi",
		Subsystem: "sky",
		Name:      "event_scan_duration_seconds",
		Help:      "Duration of event window scans",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	StreamPublishes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "stream",
		Name:      "publishes_total",
		Help:      "Total frames and events published to the broker",
	}, []string{"subject"})

	StreamPublishErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "stream",
		Name:      "publish_errors_total",
		Help:      "Total broker publish failures",
	}, []string{"subject"})

	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "starapi",
		Subsystem: "ws",
		Name:      "active_connections",
		Help:      "Current number of active WebSocket connections",
	})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total cache hits",
	}, []string{"operation"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "starapi",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total cache misses",
	}, []string{"operation"})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(len(c.Response().Body())))

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
