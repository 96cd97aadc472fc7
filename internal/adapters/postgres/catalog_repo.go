package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// CatalogRepository loads the star/body/constellation tables. It runs
// exactly once, at process start; the loaded catalog is immutable
// afterward, so no queries happen on the request path.
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// LoadStars reads all stars in catalog order.
func (r *CatalogRepository) LoadStars(ctx context.Context) ([]*domain.Star, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT name, ra_deg, dec_deg, magnitude,
		       distance_ly, color_temp_k, bv, COALESCE(rgb_hex, ''),
		       COALESCE(aliases, '{}'), ids
		FROM stars
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query stars: %w", err)
	}
	defer rows.Close()

	var stars []*domain.Star
	for rows.Next() {
		var s domain.Star
		var idsJSON []byte
		if err := rows.Scan(&s.Name, &s.RADeg, &s.DecDeg, &s.Magnitude,
			&s.DistLY, &s.ColorTemp, &s.BV, &s.RGBHex, &s.Aliases, &idsJSON); err != nil {
			return nil, fmt.Errorf("scan star: %w", err)
		}
		if len(idsJSON) > 0 {
			if err := json.Unmarshal(idsJSON, &s.IDs); err != nil {
				return nil, fmt.Errorf("star %s ids: %w", s.Name, err)
			}
		}
		stars = append(stars, &s)
	}
	return stars, rows.Err()
}

// LoadBodies reads the solar-system body list in display order.
func (r *CatalogRepository) LoadBodies(ctx context.Context) ([]*domain.Body, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, type FROM bodies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query bodies: %w", err)
	}
	defer rows.Close()

	var bodies []*domain.Body
	for rows.Next() {
		var b domain.Body
		if err := rows.Scan(&b.ID, &b.Name, &b.Type); err != nil {
			return nil, fmt.Errorf("scan body: %w", err)
		}
		bodies = append(bodies, &b)
	}
	return bodies, rows.Err()
}

// LoadConstellations reads constellation figures. Edges are stored as a
// JSON array of index pairs.
func (r *CatalogRepository) LoadConstellations(ctx context.Context) ([]*domain.Constellation, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT name, stars, edges FROM constellations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query constellations: %w", err)
	}
	defer rows.Close()

	var constellations []*domain.Constellation
	for rows.Next() {
		var c domain.Constellation
		var edgesJSON []byte
		if err := rows.Scan(&c.Name, &c.Stars, &edgesJSON); err != nil {
			return nil, fmt.Errorf("scan constellation: %w", err)
		}
		if err := json.Unmarshal(edgesJSON, &c.Edges); err != nil {
			return nil, fmt.Errorf("constellation %s edges: %w", c.Name, err)
		}
		constellations = append(constellations, &c)
	}
	return constellations, rows.Err()
}
