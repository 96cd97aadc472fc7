package ports

import (
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// CatalogStore is the read-only star/body/constellation catalog. It is
// populated once before the first request and never mutated afterward, so
// implementations need no locking for concurrent reads. Returned pointers
// reference catalog-owned data; callers must treat them as immutable.
type CatalogStore interface {
	// LookupStar returns the star with the given name or alias, or nil.
	LookupStar(name string) *domain.Star
	// Stars returns all catalog stars in catalog order.
	Stars() []*domain.Star
	// Bodies returns all solar-system bodies in display order.
	Bodies() []*domain.Body
	// LookupConstellation returns the named constellation, or nil.
	LookupConstellation(name string) *domain.Constellation
	// AllConstellations returns every constellation in catalog order.
	AllConstellations() []*domain.Constellation
}

// Ephemeris yields time-varying equatorial coordinates for solar-system
// bodies. The transform core only sees this interface, so the analytic
// model can be swapped for a full ephemeris engine.
type Ephemeris interface {
	// EquatorialAt returns the geocentric equatorial coordinates of the
	// body at t, plus its distance from the observer in AU.
	EquatorialAt(bodyID string, t time.Time) (domain.EquatorialCoord, float64, error)
	// Magnitude returns the apparent visual magnitude at t, or nil when
	// no magnitude model exists for the body.
	Magnitude(bodyID string, t time.Time) *float64
	// Illumination returns the illuminated fraction (0..1) at t, or nil
	// for bodies without a phase model.
	Illumination(bodyID string, t time.Time) *float64
}

// BoundaryIndex resolves an RA/Dec position to the IAU constellation that
// contains it. Implementations may be empty (no boundary data loaded).
type BoundaryIndex interface {
	// FindByEquatorial returns the IAU constellation name containing the
	// point, or "" when the point matches no loaded polygon.
	FindByEquatorial(raDeg, decDeg float64) string
	// Loaded reports whether any boundary polygons are available.
	Loaded() bool
}
