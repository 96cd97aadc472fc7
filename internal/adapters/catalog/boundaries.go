package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lh1862570-stack/backendapp/internal/astro"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

// Boundaries resolves equatorial positions to IAU constellation names
// using boundary polygons loaded from a JSON file. The file maps each
// constellation name to a list of [ra_deg, dec_deg] vertices. The data
// file is optional: without it every lookup returns "".
type Boundaries struct {
	polygons map[string][][2]float64
	order    []string
}

var _ ports.BoundaryIndex = (*Boundaries)(nil)

// LoadBoundaries reads boundary polygons from path. A missing file is not
// an error; it yields an empty index so the rest of the service keeps
// working without IAU lookups. Malformed content is an error.
func LoadBoundaries(path string) (*Boundaries, error) {
	b := &Boundaries{polygons: map[string][][2]float64{}}
	if path == "" {
		return b, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("read boundaries file: %w", err)
	}

	var parsed map[string][][2]float64
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse boundaries file %s: %w", path, err)
	}

	for name, poly := range parsed {
		if len(poly) < 3 {
			return nil, fmt.Errorf("boundary %q has %d vertices, need at least 3", name, len(poly))
		}
	}

	b.polygons = parsed
	for name := range parsed {
		b.order = append(b.order, name)
	}
	return b, nil
}

// FindByEquatorial returns the constellation whose boundary contains the
// point, or "" when no polygon matches.
func (b *Boundaries) FindByEquatorial(raDeg, decDeg float64) string {
	for _, name := range b.order {
		if astro.PointInBoundary(raDeg, decDeg, b.polygons[name]) {
			return name
		}
	}
	return ""
}

// Loaded reports whether any polygons were read.
func (b *Boundaries) Loaded() bool { return len(b.polygons) > 0 }
