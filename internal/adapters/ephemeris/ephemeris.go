// Package ephemeris provides the built-in analytic ephemeris: mean
// Keplerian elements for the planets and low-precision series for the
// Sun and Moon. Accuracy is a few arcminutes, sufficient for rise/set
// and sky-view queries.
package ephemeris

import (
	"fmt"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/astro"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/ports"
)

// Analytic implements ports.Ephemeris with no external data files.
type Analytic struct{}

// New returns the analytic ephemeris.
func New() *Analytic {
	return &Analytic{}
}

var _ ports.Ephemeris = (*Analytic)(nil)

// EquatorialAt returns geocentric equatorial coordinates and the distance
// from Earth in AU.
func (a *Analytic) EquatorialAt(bodyID string, t time.Time) (domain.EquatorialCoord, float64, error) {
	switch bodyID {
	case "sun":
		eq, dist := astro.SunEquatorial(t)
		return eq, dist, nil
	case "moon":
		eq, distKm := astro.MoonEquatorial(t)
		return eq, distKm / astro.KmPerAU, nil
	default:
		if !astro.IsPlanet(bodyID) {
			return domain.EquatorialCoord{}, 0, fmt.Errorf("body %q: %w", bodyID, domain.ErrNotFound)
		}
		return astro.PlanetEquatorial(bodyID, t)
	}
}

// SunMagnitude is the Sun's apparent visual magnitude, effectively
// constant from Earth.
const SunMagnitude = -26.74

// Magnitude returns the apparent visual magnitude, or nil for bodies
// without a magnitude model.
func (a *Analytic) Magnitude(bodyID string, t time.Time) *float64 {
	switch bodyID {
	case "sun":
		m := SunMagnitude
		return &m
	case "moon":
		m := astro.MoonMagnitude(t)
		return &m
	default:
		m, err := astro.PlanetMagnitude(bodyID, t)
		if err != nil {
			return nil
		}
		return &m
	}
}

// Illumination returns the illuminated disk fraction. Only the Moon has
// a phase model worth reporting; planetary phases are negligible for this
// service's consumers.
func (a *Analytic) Illumination(bodyID string, t time.Time) *float64 {
	if bodyID != "moon" {
		return nil
	}
	f := astro.MoonIlluminatedFraction(t)
	return &f
}
