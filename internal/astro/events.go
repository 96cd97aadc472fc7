package astro

import (
	"log/slog"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

const (
	// crossingTolerance is the target precision for refined crossing times.
	crossingTolerance = time.Second
	// maxBisectionSteps bounds refinement on pathological curves.
	maxBisectionSteps = 64
)

// Crossing is a refined zero crossing of a sampled quantity. Rising is
// true when the quantity goes from negative to positive.
type Crossing struct {
	At     time.Time
	Rising bool
}

// ValidateWindow rejects empty or inverted time windows.
func ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return domain.ErrInvalidWindow
	}
	return nil
}

// FindZeroCrossings samples f at the coarse step across [start, end] and
// refines every sign change by bisection to within crossingTolerance.
// Crossings narrower than the step (a body that rises and sets between
// two samples) are missed; callers pick a step small enough for the
// fastest-moving quantity they monitor. Results are in chronological
// order. A candidate whose refinement fails to converge is skipped.
func FindZeroCrossings(f func(time.Time) float64, start, end time.Time, step time.Duration) ([]Crossing, error) {
	if err := ValidateWindow(start, end); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, domain.ErrInvalidStep
	}

	var crossings []Crossing

	prevT := start
	prevV := f(start)
	for t := start.Add(step); ; t = t.Add(step) {
		if t.After(end) {
			t = end
		}
		v := f(t)

		if signChanged(prevV, v) {
			at, ok := refineCrossing(f, prevT, t)
			if ok {
				crossings = append(crossings, Crossing{At: at, Rising: v > prevV})
			} else {
				slog.Warn("crossing refinement did not converge, skipping candidate",
					"bracket_start", prevT, "bracket_end", t)
			}
		}

		if !t.Before(end) {
			break
		}
		prevT, prevV = t, v
	}

	return crossings, nil
}

// refineCrossing bisects a bracketing interval [lo, hi] where f changes
// sign, until the interval is shorter than crossingTolerance.
func refineCrossing(f func(time.Time) float64, lo, hi time.Time) (time.Time, bool) {
	loV := f(lo)

	for i := 0; i < maxBisectionSteps; i++ {
		if hi.Sub(lo) <= crossingTolerance {
			return lo.Add(hi.Sub(lo) / 2), true
		}

		mid := lo.Add(hi.Sub(lo) / 2)
		midV := f(mid)

		if signChanged(loV, midV) {
			hi = mid
		} else {
			lo, loV = mid, midV
		}
	}

	return time.Time{}, false
}

func signChanged(a, b float64) bool {
	return (a < 0 && b >= 0) || (a >= 0 && b < 0)
}
