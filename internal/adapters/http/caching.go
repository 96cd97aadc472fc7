package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CachingMiddleware sets Cache-Control headers on GET responses based on endpoint.
// Adds sensible defaults if not already set by the handler.
func CachingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// Only set on GET requests
		if c.Method() != "GET" {
			return err
		}

		// Don't override if already set
		if existing := c.Get("Cache-Control"); existing != "" {
			return err
		}

		path := c.Path()
		var ttl string

		// Default cache times by endpoint pattern
		switch {
		case path == "/v1/health" || path == "/v1/ready":
			ttl = "public, max-age=10" // Very short for system checks

		case path == "/metrics":
			ttl = "no-cache" // Metrics are real-time

		case path == "/graphql":
			ttl = "private, max-age=0" // GraphQL varies wildly

		case path == "/v1/constellations":
			ttl = "public, max-age=3600" // Figures never change at runtime

		case strings.HasPrefix(path, "/v1/constellations/locate"):
			ttl = "public, max-age=3600" // Boundary membership is static

		case strings.Contains(path, "/visible"):
			ttl = "public, max-age=60" // Sky positions drift with time

		case strings.HasPrefix(path, "/v1/events"):
			ttl = "public, max-age=300" // Event windows: 5 min

		case strings.HasPrefix(path, "/v1/stars/"):
			ttl = "public, max-age=60" // Single star: position varies

		case strings.HasPrefix(path, "/v1/"):
			ttl = "public, max-age=300" // 5 min default for API endpoints
		}

		if ttl != "" {
			c.Set("Cache-Control", ttl)
		}

		return err
	}
}
