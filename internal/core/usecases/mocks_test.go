package usecases_test

import (
	"context"
	"errors"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/astro"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// --- Mock CatalogStore ---

type mockCatalog struct {
	stars          []*domain.Star
	bodies         []*domain.Body
	constellations []*domain.Constellation
}

func (m *mockCatalog) LookupStar(name string) *domain.Star {
	for _, s := range m.stars {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (m *mockCatalog) Stars() []*domain.Star   { return m.stars }
func (m *mockCatalog) Bodies() []*domain.Body  { return m.bodies }

func (m *mockCatalog) LookupConstellation(name string) *domain.Constellation {
	for _, c := range m.constellations {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (m *mockCatalog) AllConstellations() []*domain.Constellation { return m.constellations }

// --- Mock Ephemeris ---

type mockEphemeris struct {
	equatorialFn func(bodyID string, t time.Time) (domain.EquatorialCoord, float64, error)
	magnitudeFn  func(bodyID string, t time.Time) *float64
}

func (m *mockEphemeris) EquatorialAt(bodyID string, t time.Time) (domain.EquatorialCoord, float64, error) {
	if m.equatorialFn != nil {
		return m.equatorialFn(bodyID, t)
	}
	return domain.EquatorialCoord{}, 1, nil
}

func (m *mockEphemeris) Magnitude(bodyID string, t time.Time) *float64 {
	if m.magnitudeFn != nil {
		return m.magnitudeFn(bodyID, t)
	}
	return nil
}

func (m *mockEphemeris) Illumination(bodyID string, t time.Time) *float64 { return nil }

// realEphemeris delegates to the analytic models; used where tests need
// genuine motion (moon phases).
type realEphemeris struct{}

func (realEphemeris) EquatorialAt(bodyID string, t time.Time) (domain.EquatorialCoord, float64, error) {
	switch bodyID {
	case "sun":
		eq, d := astro.SunEquatorial(t)
		return eq, d, nil
	case "moon":
		eq, km := astro.MoonEquatorial(t)
		return eq, km / astro.KmPerAU, nil
	default:
		return astro.PlanetEquatorial(bodyID, t)
	}
}

func (realEphemeris) Magnitude(bodyID string, t time.Time) *float64    { return nil }
func (realEphemeris) Illumination(bodyID string, t time.Time) *float64 { return nil }

// --- Mock CacheService ---

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.gets++
	if v, ok := m.store[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	m.sets++
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

// --- Mock BoundaryIndex ---

type mockBoundaries struct {
	loaded bool
	findFn func(raDeg, decDeg float64) string
}

func (m *mockBoundaries) FindByEquatorial(raDeg, decDeg float64) string {
	if m.findFn != nil {
		return m.findFn(raDeg, decDeg)
	}
	return ""
}

func (m *mockBoundaries) Loaded() bool { return m.loaded }

// zenithStar returns a star culminating at the zenith for the given
// latitude at the given instant.
func zenithStar(name string, lat float64, at time.Time, mag float64) *domain.Star {
	frame := astro.FrameAt(lat, 0, at)
	return &domain.Star{Name: name, RADeg: frame.LSTDeg, DecDeg: lat, Magnitude: mag}
}

func instantString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
