package ports

import (
	"context"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// SkyPublisher publishes computed sky snapshots and events to a message
// broker for live relay to WebSocket clients.
type SkyPublisher interface {
	PublishBodyFrame(ctx context.Context, site string, frame *domain.BodyFrame) error
	PublishEvent(ctx context.Context, site string, event *domain.AstronomyEvent) error
	PublishBroadcast(ctx context.Context, data []byte) error
}

// CacheService provides read-through caching for responses that are
// deterministic given their query parameters (explicit-instant queries).
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
