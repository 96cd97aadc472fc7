package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/astro"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

// BodyService answers solar-system body visibility queries, combining the
// catalog body list with the ephemeris.
type BodyService struct {
	catalog   ports.CatalogStore
	ephemeris ports.Ephemeris
	maxFrames int
}

// NewBodyService creates a new BodyService.
func NewBodyService(catalog ports.CatalogStore, ephemeris ports.Ephemeris, maxFrames int) *BodyService {
	return &BodyService{catalog: catalog, ephemeris: ephemeris, maxFrames: maxFrames}
}

// Visible returns the catalog bodies positioned for the given location
// and instant, with per-instant magnitude, phase, and distance
// attributes. A nil MinAltitude keeps below-horizon bodies; callers that
// want only the visible sky pass 0.
func (s *BodyService) Visible(ctx context.Context, lat, lon float64, instant string, opts domain.FilterOptions) (*domain.BodyFrame, error) {
	frame, err := astro.ResolveFrame(lat, lon, instant)
	if err != nil {
		return nil, err
	}
	return s.frameAt(frame, opts)
}

// VisibleBatch computes one body frame per step across [start, end],
// end-inclusive.
func (s *BodyService) VisibleBatch(ctx context.Context, lat, lon float64, start, end string, step time.Duration, opts domain.FilterOptions) ([]domain.BodyFrame, error) {
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

	frames := make([]domain.BodyFrame, 0, len(instants))
	for _, at := range instants {
		frame, err := s.frameAt(astro.FrameAt(lat, lon, at), opts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, *frame)
	}
	return frames, nil
}

func (s *BodyService) frameAt(frame domain.ObserverFrame, opts domain.FilterOptions) (*domain.BodyFrame, error) {
	bodies := s.catalog.Bodies()
	out := make([]domain.PositionedBody, 0, len(bodies))
	for _, b := range bodies {
		eq, distAU, err := s.ephemeris.EquatorialAt(b.ID, frame.At)
		if err != nil {
			return nil, fmt.Errorf("ephemeris for %s: %w", b.ID, err)
		}

		pos := astro.ToHorizontal(eq, frame)
		if opts.MinAltitude != nil && pos.AltitudeDeg < *opts.MinAltitude {
			continue
		}

		mag := s.ephemeris.Magnitude(b.ID, frame.At)
		if opts.MaxMagnitude != nil && mag != nil && *mag > *opts.MaxMagnitude {
			continue
		}

		pb := domain.PositionedBody{
			Body:      b,
			Position:  pos,
			Magnitude: mag,
			Phase:     s.ephemeris.Illumination(b.ID, frame.At),
		}
		if b.Type == domain.BodyMoon {
			km := distAU * astro.KmPerAU
			pb.DistanceKm = &km
		} else {
			au := distAU
			pb.DistanceAU = &au
		}
		out = append(out, pb)
	}

	switch opts.SortKey {
	case domain.SortByMagnitude:
		// Bodies without a magnitude model sort after all measured ones.
		sort.SliceStable(out, func(i, j int) bool {
			mi, mj := out[i].Magnitude, out[j].Magnitude
			switch {
			case mi == nil:
				return false
			case mj == nil:
				return true
			default:
				return *mi < *mj
			}
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Position.AltitudeDeg > out[j].Position.AltitudeDeg
		})
	}

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return &domain.BodyFrame{At: frame.At, Bodies: out}, nil
}
