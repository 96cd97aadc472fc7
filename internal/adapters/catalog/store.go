// Package catalog implements the read-only star, body, and constellation
// catalog. The built-in data covers the bright-star sky plus the
// circumpolar constellation figures; an alternative source (a database
// load at startup) can supply the same shapes through NewFromData.
package catalog

import (
	"fmt"
	"strings"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

// Memory is an immutable in-memory catalog. It is built once before the
// first request; concurrent readers need no locking.
type Memory struct {
	stars          []*domain.Star
	bodies         []*domain.Body
	constellations []*domain.Constellation

	starsByName          map[string]*domain.Star
	constellationsByName map[string]*domain.Constellation
}

var _ ports.CatalogStore = (*Memory)(nil)

// NewBuiltin returns the catalog backed by the compiled-in data tables.
func NewBuiltin() *Memory {
	m, err := NewFromData(defaultStars, defaultBodies, defaultConstellations)
	if err != nil {
		// The compiled-in tables are validated by tests; a failure here
		// is a programming error.
		panic(err)
	}
	return m
}

// NewFromData builds a catalog from externally loaded tables, validating
// that every constellation references known stars and in-range edge
// indices. The slices are owned by the catalog after this call.
func NewFromData(stars []*domain.Star, bodies []*domain.Body, constellations []*domain.Constellation) (*Memory, error) {
	m := &Memory{
		stars:                stars,
		bodies:               bodies,
		constellations:       constellations,
		starsByName:          make(map[string]*domain.Star, len(stars)*2),
		constellationsByName: make(map[string]*domain.Constellation, len(constellations)),
	}

	for _, s := range stars {
		m.starsByName[normalizeName(s.Name)] = s
		for _, alias := range s.Aliases {
			m.starsByName[normalizeName(alias)] = s
		}
	}

	for _, c := range constellations {
		for _, name := range c.Stars {
			if _, ok := m.starsByName[normalizeName(name)]; !ok {
				return nil, fmt.Errorf("constellation %q references unknown star %q", c.Name, name)
			}
		}
		for _, e := range c.Edges {
			if e[0] < 0 || e[0] >= len(c.Stars) || e[1] < 0 || e[1] >= len(c.Stars) {
				return nil, fmt.Errorf("constellation %q has out-of-range edge %v", c.Name, e)
			}
		}
		m.constellationsByName[normalizeName(c.Name)] = c
	}

	return m, nil
}

func (m *Memory) LookupStar(name string) *domain.Star {
	return m.starsByName[normalizeName(name)]
}

func (m *Memory) Stars() []*domain.Star { return m.stars }

func (m *Memory) Bodies() []*domain.Body { return m.bodies }

func (m *Memory) LookupConstellation(name string) *domain.Constellation {
	return m.constellationsByName[normalizeName(name)]
}

func (m *Memory) AllConstellations() []*domain.Constellation { return m.constellations }

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
