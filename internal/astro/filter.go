package astro

import (
	"sort"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// VisibleStars transforms the catalog into the observer frame and applies
// the visibility filter, sort, and limit in that order. The sort is stable,
// so equal keys keep catalog order. Limit <= 0 means no limit. A nil
// MinAltitude filters nothing; below-horizon stars stay in the result.
func VisibleStars(stars []*domain.Star, frame domain.ObserverFrame, opts domain.FilterOptions) []domain.PositionedStar {
	out := make([]domain.PositionedStar, 0, len(stars))
	for _, s := range stars {
		pos := ToHorizontal(domain.EquatorialCoord{RADeg: s.RADeg, DecDeg: s.DecDeg}, frame)
		if opts.MinAltitude != nil && pos.AltitudeDeg < *opts.MinAltitude {
			continue
		}
		if opts.MaxMagnitude != nil && s.Magnitude > *opts.MaxMagnitude {
			continue
		}
		out = append(out, domain.PositionedStar{Star: s, Position: pos})
	}

	switch opts.SortKey {
	case domain.SortByAltitude:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Position.AltitudeDeg > out[j].Position.AltitudeDeg
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Star.Magnitude < out[j].Star.Magnitude
		})
	}

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}
