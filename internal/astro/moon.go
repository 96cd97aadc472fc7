package astro

import (
	"math"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// KmPerAU converts astronomical units to kilometers.
const KmPerAU = 149597870.7

// meanLunarDistanceKm is the reference distance for the lunar magnitude
// distance correction.
const meanLunarDistanceKm = 384400.0

// MoonEquatorial returns the geocentric equatorial position of the Moon
// and its distance in kilometers. Truncated periodic series keeping the
// dominant terms, accurate to a few arcminutes.
func MoonEquatorial(t time.Time) (domain.EquatorialCoord, float64) {
	T := (JulianDate(t) - 2451545.0) / 36525.0

	lon, lat, distKm := moonEcliptic(T)

	eps := degToRad(meanObliquity(T))
	lam := degToRad(lon)
	bet := degToRad(lat)

	ra := math.Atan2(
		math.Sin(lam)*math.Cos(eps)-math.Tan(bet)*math.Sin(eps),
		math.Cos(lam),
	)
	dec := math.Asin(math.Sin(bet)*math.Cos(eps) + math.Cos(bet)*math.Sin(eps)*math.Sin(lam))

	return domain.EquatorialCoord{
		RADeg:  normalizeDeg360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}, distKm
}

// MoonElongation returns the Moon's ecliptic elongation east of the Sun
// in degrees [0, 360): 0 at new moon, 90 at first quarter, 180 at full,
// 270 at last quarter.
func MoonElongation(t time.Time) float64 {
	T := (JulianDate(t) - 2451545.0) / 36525.0
	moonLon, _, _ := moonEcliptic(T)
	sunEq, _ := SunEquatorial(t)

	// The Sun sits on the ecliptic, so its ecliptic longitude follows
	// from its equatorial position through the same obliquity rotation.
	eps := degToRad(meanObliquity(T))
	ra := degToRad(sunEq.RADeg)
	dec := degToRad(sunEq.DecDeg)
	sunLon := radToDeg(math.Atan2(
		math.Sin(ra)*math.Cos(eps)+math.Tan(dec)*math.Sin(eps),
		math.Cos(ra),
	))

	return normalizeDeg360(moonLon - sunLon)
}

// MoonPhaseAngle returns the Sun-Moon-Earth phase angle in degrees,
// accounting for the finite Sun and Moon distances.
func MoonPhaseAngle(t time.Time) float64 {
	elong := degToRad(MoonElongation(t))
	_, sunDistAU := SunEquatorial(t)
	_, moonDistKm := MoonEquatorial(t)
	moonDistAU := moonDistKm / KmPerAU

	i := math.Atan2(sunDistAU*math.Sin(elong), moonDistAU-sunDistAU*math.Cos(elong))
	return normalizeDeg360(radToDeg(i))
}

// MoonIlluminatedFraction returns the sunlit fraction of the lunar disk
// in [0, 1].
func MoonIlluminatedFraction(t time.Time) float64 {
	i := degToRad(MoonPhaseAngle(t))
	return (1 + math.Cos(i)) / 2
}

// moonEcliptic returns geocentric ecliptic longitude and latitude in
// degrees and distance in kilometers for a Julian century count T.
func moonEcliptic(T float64) (lonDeg, latDeg, distKm float64) {
	// Mean longitude, elongation, anomalies and argument of latitude.
	Lp := 218.3164477 + 481267.88123421*T
	D := degToRad(297.8501921 + 445267.1114034*T)
	M := degToRad(357.5291092 + 35999.0502909*T)
	Mp := degToRad(134.9633964 + 477198.8675055*T)
	F := degToRad(93.2720950 + 483202.0175233*T)

	lon := Lp +
		6.288774*math.Sin(Mp) +
		1.274027*math.Sin(2*D-Mp) +
		0.658314*math.Sin(2*D) +
		0.213618*math.Sin(2*Mp) -
		0.185116*math.Sin(M) -
		0.114332*math.Sin(2*F) +
		0.058793*math.Sin(2*D-2*Mp) +
		0.057066*math.Sin(2*D-M-Mp) +
		0.053322*math.Sin(2*D+Mp) +
		0.045758*math.Sin(2*D-M)

	lat := 5.128122*math.Sin(F) +
		0.280602*math.Sin(Mp+F) +
		0.277693*math.Sin(Mp-F) +
		0.173237*math.Sin(2*D-F)

	dist := 385000.56 -
		20905.355*math.Cos(Mp) -
		3699.111*math.Cos(2*D-Mp) -
		2955.968*math.Cos(2*D) -
		569.925*math.Cos(2*Mp)

	return normalizeDeg360(lon), lat, dist
}
