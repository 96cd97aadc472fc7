package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/astro"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

// StarService answers star visibility queries against the catalog.
type StarService struct {
	catalog   ports.CatalogStore
	cache     ports.CacheService
	maxFrames int
}

// NewStarService creates a new StarService. cache may be nil; maxFrames
// <= 0 selects the default batch cap.
func NewStarService(catalog ports.CatalogStore, cache ports.CacheService, maxFrames int) *StarService {
	return &StarService{catalog: catalog, cache: cache, maxFrames: maxFrames}
}

// Visible returns the catalog stars positioned for the given location
// and instant. A nil MinAltitude keeps below-horizon stars; callers that
// want only the visible sky pass 0. Explicit-instant queries are
// deterministic and served cache-aside; "now" queries always compute.
func (s *StarService) Visible(ctx context.Context, lat, lon float64, instant string, opts domain.FilterOptions) (*domain.StarFrame, error) {
	frame, err := astro.ResolveFrame(lat, lon, instant)
	if err != nil {
		return nil, err
	}

	var cacheKey string
	if s.cache != nil && instant != "" {
		cacheKey = fmt.Sprintf("stars:visible:%.4f:%.4f:%s:%s", lat, lon, frame.At.Format(time.RFC3339), optsKey(opts))
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached domain.StarFrame
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result := &domain.StarFrame{
		At:    frame.At,
		Stars: astro.VisibleStars(s.catalog.Stars(), frame, opts),
	}

	if cacheKey != "" {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}
	return result, nil
}

// VisibleBatch computes one frame per step across [start, end],
// end-inclusive. Frames share no state and are assembled in
// chronological order.
func (s *StarService) VisibleBatch(ctx context.Context, lat, lon float64, start, end string, step time.Duration, opts domain.FilterOptions) ([]domain.StarFrame, error) {
	startAt, err := astro.ParseInstant(start)
	if err != nil {
		return nil, err
	}
	endAt, err := astro.ParseInstant(end)
	if err != nil {
		return nil, err
	}

	instants, err := frameInstants(startAt, endAt, step, s.maxFrames)
	if err != nil {
		return nil, err
	}

	frames := make([]domain.StarFrame, 0, len(instants))
	for _, at := range instants {
		frame := astro.FrameAt(lat, lon, at)
		frames = append(frames, domain.StarFrame{
			At:    at,
			Stars: astro.VisibleStars(s.catalog.Stars(), frame, opts),
		})
	}
	return frames, nil
}

// Get returns a single star by name or alias, with its horizontal
// position for the given location and instant.
func (s *StarService) Get(ctx context.Context, name string, lat, lon float64, instant string) (*domain.PositionedStar, error) {
	star := s.catalog.LookupStar(name)
	if star == nil {
		return nil, fmt.Errorf("star %q: %w", name, domain.ErrNotFound)
	}

	frame, err := astro.ResolveFrame(lat, lon, instant)
	if err != nil {
		return nil, err
	}

	return &domain.PositionedStar{
		Star:     star,
		Position: astro.ToHorizontal(domain.EquatorialCoord{RADeg: star.RADeg, DecDeg: star.DecDeg}, frame),
	}, nil
}

// optsKey renders filter options into a stable cache-key fragment.
func optsKey(opts domain.FilterOptions) string {
	minAlt, maxMag := "-", "-"
	if opts.MinAltitude != nil {
		minAlt = fmt.Sprintf("%.2f", *opts.MinAltitude)
	}
	if opts.MaxMagnitude != nil {
		maxMag = fmt.Sprintf("%.2f", *opts.MaxMagnitude)
	}
	return fmt.Sprintf("%s:%s:%d:%s", minAlt, maxMag, opts.Limit, opts.SortKey)
}
