package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// orbitalElements holds J2000 mean Keplerian elements and their rates per
// Julian century: semi-major axis (AU), eccentricity, inclination, mean
// longitude, longitude of perihelion, and longitude of ascending node
// (all angles in degrees).
type orbitalElements struct {
	a, e, i, l, lp, n       float64
	da, de, di, dl, dlp, dn float64
}

var planetElements = map[string]orbitalElements{
	"mercury": {0.38709843, 0.20563661, 7.00559432, 252.25166724, 77.45771895, 48.33961819,
		0.00000000, 0.00002123, -0.00590158, 149472.67486623, 0.15940013, -0.12214182},
	"venus": {0.72333566, 0.00677672, 3.39467605, 181.97970850, 131.76755713, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.05679648, -0.27769418},
	"earth": {1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37306329, 0.32327364, 0.0},
	"mars": {1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	"jupiter": {5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	"saturn": {9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	"uranus": {19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	"neptune": {30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
}

// IsPlanet reports whether the id names one of the seven planets with a
// mean-elements model (Earth excluded, it is only used internally as the
// observer's orbit).
func IsPlanet(id string) bool {
	_, ok := planetElements[id]
	return ok && id != "earth"
}

// PlanetEquatorial returns the geocentric equatorial position of a planet
// and its distance from Earth in astronomical units. Mean Keplerian
// elements with secular rates give positions good to a few arcminutes
// over several centuries around J2000.
func PlanetEquatorial(id string, t time.Time) (domain.EquatorialCoord, float64, error) {
	el, ok := planetElements[id]
	if !ok || id == "earth" {
		return domain.EquatorialCoord{}, 0, fmt.Errorf("planet %q: %w", id, domain.ErrNotFound)
	}

	T := (JulianDate(t) - 2451545.0) / 36525.0

	px, py, pz := heliocentricEcliptic(el, T)
	ex, ey, ez := heliocentricEcliptic(planetElements["earth"], T)

	// Geocentric ecliptic vector.
	gx, gy, gz := px-ex, py-ey, pz-ez
	dist := math.Sqrt(gx*gx + gy*gy + gz*gz)

	// Rotate from the ecliptic to the equatorial frame.
	eps := degToRad(meanObliquity(T))
	qx := gx
	qy := gy*math.Cos(eps) - gz*math.Sin(eps)
	qz := gy*math.Sin(eps) + gz*math.Cos(eps)

	return domain.EquatorialCoord{
		RADeg:  normalizeDeg360(radToDeg(math.Atan2(qy, qx))),
		DecDeg: radToDeg(math.Asin(clamp(qz/dist, -1, 1))),
	}, dist, nil
}

// PlanetMagnitude returns the apparent visual magnitude of a planet,
// combining the inverse-square distance term with an empirical phase
// correction per planet.
func PlanetMagnitude(id string, t time.Time) (float64, error) {
	el, ok := planetElements[id]
	if !ok || id == "earth" {
		return 0, fmt.Errorf("planet %q: %w", id, domain.ErrNotFound)
	}

	T := (JulianDate(t) - 2451545.0) / 36525.0

	px, py, pz := heliocentricEcliptic(el, T)
	ex, ey, ez := heliocentricEcliptic(planetElements["earth"], T)

	r := math.Sqrt(px*px + py*py + pz*pz)
	gx, gy, gz := px-ex, py-ey, pz-ez
	delta := math.Sqrt(gx*gx + gy*gy + gz*gz)

	// Phase angle at the planet between the Sun and Earth directions.
	cosAlpha := (r*r + delta*delta - (ex*ex + ey*ey + ez*ez)) / (2 * r * delta)
	a := radToDeg(math.Acos(clamp(cosAlpha, -1, 1)))

	logTerm := 5 * math.Log10(r*delta)

	switch id {
	case "mercury":
		return -0.60 + logTerm + 0.0380*a - 0.000273*a*a + 0.000002*a*a*a, nil
	case "venus":
		return -4.47 + logTerm + 0.036*a - 4.84e-7*a*a*a, nil
	case "mars":
		return -1.52 + logTerm + 0.016*a, nil
	case "jupiter":
		return -9.40 + logTerm + 0.005*a, nil
	case "saturn":
		return -8.88 + logTerm + 0.044*a, nil
	case "uranus":
		return -7.19 + logTerm + 0.002*a, nil
	default: // neptune
		return -6.87 + logTerm, nil
	}
}

// MoonMagnitude returns the apparent magnitude of the Moon from its phase
// angle and distance.
func MoonMagnitude(t time.Time) float64 {
	a := MoonPhaseAngle(t)
	if a > 180 {
		a -= 360
	}
	_, distKm := MoonEquatorial(t)

	return -12.7 + 0.026*math.Abs(a) + 4e-9*math.Pow(a, 4) +
		5*math.Log10(distKm/meanLunarDistanceKm)
}

// heliocentricEcliptic returns the heliocentric J2000 ecliptic position
// of a body in AU for a Julian century count T.
func heliocentricEcliptic(el orbitalElements, T float64) (x, y, z float64) {
	a := el.a + el.da*T
	e := el.e + el.de*T
	i := degToRad(el.i + el.di*T)
	l := el.l + el.dl*T
	lp := el.lp + el.dlp*T
	node := degToRad(el.n + el.dn*T)

	// Mean anomaly and argument of perihelion.
	M := degToRad(wrapTo180(l - lp))
	w := degToRad(lp) - node

	E := solveKepler(M, e)

	// True anomaly and radius from the eccentric anomaly.
	v := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
	r := a * (1 - e*math.Cos(E))

	// Orbital-plane coordinates rotated by argument of perihelion,
	// inclination, and ascending node.
	xw := r * math.Cos(v)
	yw := r * math.Sin(v)

	cosw, sinw := math.Cos(w), math.Sin(w)
	cosn, sinn := math.Cos(node), math.Sin(node)
	cosi, sini := math.Cos(i), math.Sin(i)

	x = (cosw*cosn-sinw*sinn*cosi)*xw + (-sinw*cosn-cosw*sinn*cosi)*yw
	y = (cosw*sinn+sinw*cosn*cosi)*xw + (-sinw*sinn+cosw*cosn*cosi)*yw
	z = sinw*sini*xw + cosw*sini*yw
	return x, y, z
}

// solveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly using a Danby starter and Newton-Raphson iteration.
func solveKepler(M, e float64) float64 {
	E := M + 0.85*e*math.Copysign(1, math.Sin(M))

	for i := 0; i < 15; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		d := f / fp
		E -= d
		if math.Abs(d) < 1e-14 {
			break
		}
	}
	return E
}
