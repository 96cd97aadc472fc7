package http

import (
	"github.com/nats-io/nats.go"

	"github.com/lh1862570-stack/backendapp/internal/adapters/postgres"
	"github.com/lh1862570-stack/backendapp/internal/adapters/valkey"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
	"github.com/lh1862570-stack/backendapp/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Stars          *usecases.StarService
	Bodies         *usecases.BodyService
	Events         *usecases.EventService
	Constellations *usecases.ConstellationService
	Catalog        ports.CatalogStore
	Boundaries     ports.BoundaryIndex
	NATS           *nats.Conn
	DB             *postgres.DB
	Cache          *valkey.Cache
}
