package usecases

import (
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// DefaultMaxFrames caps batch generation when no configured limit is
// supplied.
const DefaultMaxFrames = 1000

// frameInstants expands a [start, end] window into per-frame instants at
// the given step, end-inclusive: a 3h window at a 1h step yields 4
// instants. An end before start yields no instants rather than an error,
// matching the batch contract where only step and frame-count violations
// fail. The count cap guards against adversarial step/window pairs.
func frameInstants(start, end time.Time, step time.Duration, maxFrames int) ([]time.Time, error) {
	if step <= 0 {
		return nil, domain.ErrInvalidStep
	}
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	if end.Before(start) {
		return nil, nil
	}

	n := int(end.Sub(start)/step) + 1
	if n > maxFrames {
		return nil, domain.ErrTooManyFrames
	}

	instants := make([]time.Time, 0, n)
	for cur := start; !cur.After(end); cur = cur.Add(step) {
		instants = append(instants, cur)
	}
	return instants, nil
}
