package astro

import (
	"math"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// SunEquatorial returns the apparent geocentric equatorial position of the
// Sun and its distance in astronomical units. Low-precision series, good
// to roughly an arcminute, which is far tighter than the horizon-crossing
// tolerances used elsewhere.
func SunEquatorial(t time.Time) (domain.EquatorialCoord, float64) {
	T := (JulianDate(t) - 2451545.0) / 36525.0

	// Geometric mean longitude and mean anomaly.
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(M)

	// Equation of center.
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	trueLon := L0 + C
	nu := degToRad(M + C)

	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T
	distAU := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(nu))

	// Apparent longitude corrected for nutation and aberration.
	omega := 125.04 - 1934.136*T
	lambda := degToRad(trueLon - 0.00569 - 0.00478*math.Sin(degToRad(omega)))

	eps := degToRad(meanObliquity(T) + 0.00256*math.Cos(degToRad(omega)))

	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda))
	dec := math.Asin(math.Sin(eps) * math.Sin(lambda))

	return domain.EquatorialCoord{
		RADeg:  normalizeDeg360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}, distAU
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees for
// a Julian century count T from J2000.
func meanObliquity(T float64) float64 {
	return 23.439291 - 0.0130042*T - 0.00000016*T*T
}
