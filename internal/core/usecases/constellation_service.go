package usecases

import (
	"context"
	"fmt"

	"github.com/lh1862570-stack/backendapp/internal/astro"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

// ConstellationService projects constellation figures into horizontal and
// screen space.
type ConstellationService struct {
	catalog    ports.CatalogStore
	boundaries ports.BoundaryIndex
}

// NewConstellationService creates a new ConstellationService. boundaries
// may be an empty index when no IAU data file is configured.
func NewConstellationService(catalog ports.CatalogStore, boundaries ports.BoundaryIndex) *ConstellationService {
	return &ConstellationService{catalog: catalog, boundaries: boundaries}
}

// List returns every catalog constellation.
func (s *ConstellationService) List(ctx context.Context) []*domain.Constellation {
	return s.catalog.AllConstellations()
}

// Frame computes the named constellation's frame for a location and
// instant. With opts.FOV set, members outside the window are dropped
// (horizontal mode); with opts.Screen also set, pixel coordinates are
// produced (screen mode).
func (s *ConstellationService) Frame(ctx context.Context, name string, lat, lon float64, instant string, opts domain.ProjectionOptions) (*domain.ConstellationFrame, error) {
	c := s.catalog.LookupConstellation(name)
	if c == nil {
		return nil, fmt.Errorf("constellation %q: %w", name, domain.ErrNotFound)
	}

	frame, err := astro.ResolveFrame(lat, lon, instant)
	if err != nil {
		return nil, err
	}
	return s.project(c, frame, opts)
}

// Frames computes frames for all constellations at once. Constellations
// entirely below the horizon are still reported (flagged) unless a FOV
// filter excludes them.
func (s *ConstellationService) Frames(ctx context.Context, lat, lon float64, instant string, opts domain.ProjectionOptions) ([]domain.ConstellationFrame, error) {
	frame, err := astro.ResolveFrame(lat, lon, instant)
	if err != nil {
		return nil, err
	}

	all := s.catalog.AllConstellations()
	out := make([]domain.ConstellationFrame, 0, len(all))
	for _, c := range all {
		cf, err := s.project(c, frame, opts)
		if err != nil {
			return nil, err
		}
		if cf.BelowHorizon && !opts.IncludeBelowHorizon {
			continue
		}
		out = append(out, *cf)
	}
	return out, nil
}

// Locate returns the IAU constellation containing a star, resolved by
// name through the loaded boundary polygons.
func (s *ConstellationService) Locate(ctx context.Context, starName string) (string, error) {
	if !s.boundaries.Loaded() {
		return "", fmt.Errorf("constellation boundaries: %w", domain.ErrNotFound)
	}
	star := s.catalog.LookupStar(starName)
	if star == nil {
		return "", fmt.Errorf("star %q: %w", starName, domain.ErrNotFound)
	}
	name := s.boundaries.FindByEquatorial(star.RADeg, star.DecDeg)
	if name == "" {
		return "", fmt.Errorf("no boundary contains %q: %w", starName, domain.ErrNotFound)
	}
	return name, nil
}

// project runs the pure pipeline: transform members, compute the frame
// center, window by FOV, then optionally project and clip.
func (s *ConstellationService) project(c *domain.Constellation, frame domain.ObserverFrame, opts domain.ProjectionOptions) (*domain.ConstellationFrame, error) {
	screenMode := opts.Screen != nil
	if screenMode {
		if opts.FOV == nil {
			return nil, domain.ErrInvalidFOV
		}
		if err := astro.ValidateFOV(*opts.FOV, *opts.Screen); err != nil {
			return nil, err
		}
	}

	// Transform every member; the center is derived from all members
	// regardless of later filtering so it stays stable across options.
	members := make([]domain.PositionedStar, 0, len(c.Stars))
	positions := make([]domain.HorizontalPosition, 0, len(c.Stars))
	for _, name := range c.Stars {
		star := s.catalog.LookupStar(name)
		if star == nil {
			return nil, fmt.Errorf("constellation %q member %q: %w", c.Name, name, domain.ErrNotFound)
		}
		pos := astro.ToHorizontal(domain.EquatorialCoord{RADeg: star.RADeg, DecDeg: star.DecDeg}, frame)
		members = append(members, domain.PositionedStar{Star: star, Position: pos})
		positions = append(positions, pos)
	}

	center := astro.CircularMeanCenter(positions)
	cf := &domain.ConstellationFrame{
		Name:         c.Name,
		At:           frame.At,
		Center:       &center,
		BelowHorizon: center.AltitudeDeg < 0,
	}

	minAlt := -90.0
	if opts.MinAltitude != nil {
		minAlt = *opts.MinAltitude
	}

	keep := func(pos domain.HorizontalPosition) bool {
		if pos.AltitudeDeg < minAlt {
			return false
		}
		if opts.FOV != nil && !astro.InFOV(pos, *opts.FOV) {
			return screenMode && opts.IncludeOffscreen
		}
		return true
	}

	kept := make(map[int]bool, len(members))
	for i, m := range members {
		if keep(m.Position) {
			kept[i] = true
			cf.Stars = append(cf.Stars, m)
		}
	}

	// Horizontal-space edges, clipped to the FOV window on request.
	for _, e := range c.Edges {
		a, b := members[e[0]].Position, members[e[1]].Position

		if opts.ClipEdgesToFOV && opts.FOV != nil {
			ca, cb, ok := astro.ClipEdgeToFOV(a, b, *opts.FOV)
			if !ok {
				continue
			}
			cf.Edges = append(cf.Edges, domain.HorizontalEdge{From: ca, To: cb})
			continue
		}

		if !kept[e[0]] && !kept[e[1]] {
			continue
		}
		cf.Edges = append(cf.Edges, domain.HorizontalEdge{From: a, To: b})
	}

	if screenMode {
		proj, err := s.projectScreen(c, members, kept, opts)
		if err != nil {
			return nil, err
		}
		cf.Screen = proj
	}
	return cf, nil
}

// projectScreen maps kept members and edges into pixel space and clips
// edge segments to the screen rectangle.
func (s *ConstellationService) projectScreen(c *domain.Constellation, members []domain.PositionedStar, kept map[int]bool, opts domain.ProjectionOptions) (*domain.ScreenProjection, error) {
	fov, res := *opts.FOV, *opts.Screen
	proj := &domain.ScreenProjection{Width: res.Width, Height: res.Height}

	points := make(map[int]domain.ScreenPoint, len(members))
	for i, m := range members {
		pt, ok := astro.ProjectToScreen(m.Position, fov, res)
		if !ok {
			continue
		}
		pt.Name = m.Star.Name
		points[i] = pt
		if kept[i] {
			proj.Stars = append(proj.Stars, pt)
		}
	}

	for _, e := range c.Edges {
		a, aok := points[e[0]]
		b, bok := points[e[1]]
		if !aok || !bok {
			continue
		}
		ca, cb, ok := astro.ClipEdgeToScreen(a, b, res)
		if !ok {
			continue
		}
		proj.Edges = append(proj.Edges, domain.ScreenEdge{From: ca, To: cb})
	}
	return proj, nil
}
