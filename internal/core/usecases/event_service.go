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

// DefaultEventStep is the coarse scan resolution for horizon crossings.
// Ten minutes resolves every body served here; only the Moon moves fast
// enough for the step to matter.
const DefaultEventStep = 10 * time.Minute

// moonPhases maps principal elongation angles to phase names.
var moonPhases = []struct {
	elongation float64
	name       string
}{
	{0, "New moon"},
	{90, "First quarter"},
	{180, "Full moon"},
	{270, "Last quarter"},
}

// EventService finds rise/set and moon-phase events inside a time window.
type EventService struct {
	catalog   ports.CatalogStore
	ephemeris ports.Ephemeris
	step      time.Duration
}

// NewEventService creates a new EventService. step <= 0 selects the
// default scan resolution.
func NewEventService(catalog ports.CatalogStore, ephemeris ports.Ephemeris, step time.Duration) *EventService {
	if step <= 0 {
		step = DefaultEventStep
	}
	return &EventService{catalog: catalog, ephemeris: ephemeris, step: step}
}

// Find returns the events for the named targets within [start, end],
// sorted chronologically. Targets name catalog bodies or stars; an empty
// list means every catalog body. Moon-phase events are included whenever
// the moon is among the targets.
func (s *EventService) Find(ctx context.Context, lat, lon float64, start, end string, targets []string) ([]domain.AstronomyEvent, error) {
	startAt, err := astro.ParseInstant(start)
	if err != nil {
		return nil, err
	}
	endAt, err := astro.ParseInstant(end)
	if err != nil {
		return nil, err
	}
	if err := astro.ValidateWindow(startAt, endAt); err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		for _, b := range s.catalog.Bodies() {
			targets = append(targets, b.ID)
		}
	}

	var events []domain.AstronomyEvent
	moonIncluded := false

	for _, target := range targets {
		name, altAz, err := s.resolveTarget(target, lat, lon)
		if err != nil {
			return nil, err
		}
		if target == "moon" {
			moonIncluded = true
		}

		altOnly := func(at time.Time) float64 {
			alt, _ := altAz(at)
			return alt
		}
		crossings, err := astro.FindZeroCrossings(altOnly, startAt, endAt, s.step)
		if err != nil {
			return nil, err
		}

		for _, c := range crossings {
			_, az := altAz(c.At)
			dir := astro.Cardinal8(az)

			if c.Rising {
				events = append(events, domain.AstronomyEvent{
					Type:        domain.EventRise,
					Body:        target,
					At:          c.At,
					Description: fmt.Sprintf("%s rises in the %s", name, dir),
				})
			} else {
				events = append(events, domain.AstronomyEvent{
					Type:        domain.EventSet,
					Body:        target,
					At:          c.At,
					Description: fmt.Sprintf("%s sets in the %s", name, dir),
				})
			}
		}
	}

	if moonIncluded {
		phases, err := s.moonPhaseEvents(startAt, endAt)
		if err != nil {
			return nil, err
		}
		events = append(events, phases...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})
	return events, nil
}

// resolveTarget maps a target name to a display name and a function from
// instant to (altitude, azimuth).
func (s *EventService) resolveTarget(target string, lat, lon float64) (string, func(time.Time) (float64, float64), error) {
	for _, b := range s.catalog.Bodies() {
		if b.ID == target {
			id, name := b.ID, b.Name
			return name, func(at time.Time) (float64, float64) {
				eq, _, err := s.ephemeris.EquatorialAt(id, at)
				if err != nil {
					return -90, 0
				}
				pos := astro.ToHorizontal(eq, astro.FrameAt(lat, lon, at))
				return pos.AltitudeDeg, pos.AzimuthDeg
			}, nil
		}
	}

	if star := s.catalog.LookupStar(target); star != nil {
		eq := domain.EquatorialCoord{RADeg: star.RADeg, DecDeg: star.DecDeg}
		return star.Name, func(at time.Time) (float64, float64) {
			pos := astro.ToHorizontal(eq, astro.FrameAt(lat, lon, at))
			return pos.AltitudeDeg, pos.AzimuthDeg
		}, nil
	}

	return "", nil, fmt.Errorf("event target %q: %w", target, domain.ErrNotFound)
}

// moonPhaseEvents finds the principal phase instants inside the window by
// locating where the elongation crosses each principal angle.
func (s *EventService) moonPhaseEvents(start, end time.Time) ([]domain.AstronomyEvent, error) {
	var events []domain.AstronomyEvent

	for _, phase := range moonPhases {
		target := phase.elongation
		f := func(at time.Time) float64 {
			// Signed distance from the target angle; crosses zero as the
			// elongation sweeps through it.
			d := astro.MoonElongation(at) - target
			for d > 180 {
				d -= 360
			}
			for d <= -180 {
				d += 360
			}
			return d
		}

		crossings, err := astro.FindZeroCrossings(f, start, end, time.Hour)
		if err != nil {
			return nil, err
		}
		for _, c := range crossings {
			// Elongation only increases with time; falling crossings are
			// wrap artifacts of the signed distance.
			if !c.Rising {
				continue
			}
			desc := phase.name
			if frac := s.ephemeris.Illumination("moon", c.At); frac != nil {
				desc = fmt.Sprintf("%s (%.0f%% illuminated)", phase.name, *frac*100)
			}
			events = append(events, domain.AstronomyEvent{
				Type:        domain.EventMoonPhase,
				Body:        "moon",
				At:          c.At,
				Description: desc,
			})
		}
	}
	return events, nil
}
