package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

var _ ports.SkyPublisher = (*Publisher)(nil)

// Publisher implements ports.SkyPublisher using NATS JetStream. Computed
// sky frames are short-lived by nature; events keep a day of history so
// late subscribers still see the day's rise/set feed.
type Publisher struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// NewPublisher connects to NATS and ensures the sky streams exist.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	streams := []nats.StreamConfig{
		{
			Name:      "SKY_FRAMES",
			Subjects:  []string{"sky.frames.>"},
			Retention: nats.InterestPolicy,
			MaxAge:    10 * time.Minute,
			Storage:   nats.FileStorage,
		},
		{
			Name:      "SKY_EVENTS",
			Subjects:  []string{"sky.events.>"},
			Retention: nats.InterestPolicy,
			MaxAge:    24 * time.Hour,
			Storage:   nats.FileStorage,
		},
	}

	for _, cfg := range streams {
		if _, err := js.AddStream(&cfg); err != nil {
			// Stream may already exist; try update
			if _, err := js.UpdateStream(&cfg); err != nil {
				return nil, fmt.Errorf("ensure stream %s: %w", cfg.Name, err)
			}
		}
	}

	return &Publisher{conn: conn, js: js}, nil
}

// PublishBodyFrame publishes a computed body frame for a named site.
func (p *Publisher) PublishBodyFrame(ctx context.Context, site string, frame *domain.BodyFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_, err = p.js.Publish("sky.frames."+site, data)
	return err
}

// PublishEvent publishes a rise/set or moon-phase event for a named site.
func (p *Publisher) PublishEvent(ctx context.Context, site string, event *domain.AstronomyEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.js.Publish("sky.events."+site, data)
	return err
}

// PublishBroadcast sends an untyped message on the broadcast subject,
// bypassing JetStream.
func (p *Publisher) PublishBroadcast(ctx context.Context, data []byte) error {
	return p.conn.Publish("sky.updates.broadcast", data)
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// RawConn creates a plain NATS connection for subscribing (e.g. WebSocket relay).
func RawConn(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
