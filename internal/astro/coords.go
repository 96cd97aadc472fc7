// Package astro implements the spherical-astronomy core: sidereal time,
// equatorial-to-horizontal transforms, visibility filtering, horizon
// crossing search, and field-of-view projection. All public angles are
// degrees; radians are used internally only.
package astro

import (
	"math"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// ResolveFrame builds an ObserverFrame for a location and instant.
// instant must be ISO 8601 with an explicit offset ("2024-01-01T02:30:00Z");
// an empty string means now. Naive timestamps fail with ErrInvalidTimeFormat.
func ResolveFrame(latDeg, lonDeg float64, instant string) (domain.ObserverFrame, error) {
	at := time.Now().UTC()
	if instant != "" {
		parsed, err := ParseInstant(instant)
		if err != nil {
			return domain.ObserverFrame{}, err
		}
		at = parsed
	}
	return FrameAt(latDeg, lonDeg, at), nil
}

// FrameAt builds an ObserverFrame for a known instant.
func FrameAt(latDeg, lonDeg float64, at time.Time) domain.ObserverFrame {
	at = at.UTC()
	return domain.ObserverFrame{
		LatDeg: latDeg,
		LonDeg: lonDeg,
		At:     at,
		LSTDeg: LocalSiderealTime(at, lonDeg),
	}
}

// ParseInstant parses an ISO 8601 instant with a mandatory explicit offset
// and normalizes it to UTC. RFC 3339 syntax is required, which is what
// rejects naive ("2024-01-01T02:30:00") inputs.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTimeFormat
	}
	return t.UTC(), nil
}

// ToHorizontal converts equatorial coordinates to horizontal coordinates
// for the given observer frame. It is a total function: every input in
// the valid coordinate ranges produces a defined result, including the
// poles, where the atan2 form degenerates to an hour-angle-derived
// azimuth instead of dividing by cos(lat).
func ToHorizontal(eq domain.EquatorialCoord, frame domain.ObserverFrame) domain.HorizontalPosition {
	lat := degToRad(frame.LatDeg)
	dec := degToRad(eq.DecDeg)

	// Hour angle = LST - RA, wrapped to (-180, 180].
	ha := degToRad(wrapTo180(frame.LSTDeg - eq.RADeg))

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	// Azimuth from north, clockwise. The numerator/denominator form needs
	// no division by cos(alt) or cos(lat).
	y := -math.Cos(dec) * math.Sin(ha)
	x := math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(ha)
	az := math.Atan2(y, x)

	return domain.HorizontalPosition{
		AltitudeDeg: radToDeg(alt),
		AzimuthDeg:  normalizeDeg360(radToDeg(az)),
	}
}

// LocalSiderealTime returns the local sidereal time in degrees for a UTC
// instant and an observer longitude (east positive).
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeDeg360(GreenwichMeanSiderealTime(t) + lonDeg)
}

// GreenwichMeanSiderealTime returns GMST in degrees (IAU 1982 formula).
func GreenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeDeg360(gmst)
}

// JulianDate returns the Julian Date for a UTC instant (Meeus algorithm,
// valid for the Gregorian calendar).
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600) / 24

	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// AngularSeparation returns the great-circle angle in degrees between two
// celestial positions, using the haversine form for numerical stability at
// small separations.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	dRA := degToRad(ra2 - ra1)
	dDec := degToRad(dec2 - dec1)

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(degToRad(dec1))*math.Cos(degToRad(dec2))*math.Sin(dRA/2)*math.Sin(dRA/2)

	return radToDeg(2 * math.Asin(math.Sqrt(clamp(a, 0, 1))))
}

// Cardinal8 maps an azimuth to one of the eight compass points.
func Cardinal8(azDeg float64) string {
	dirs := [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	ix := int((normalizeDeg360(azDeg)+22.5)/45) % 8
	return dirs[ix]
}

// normalizeDeg360 wraps an angle to [0, 360).
func normalizeDeg360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapTo180 wraps an angle to (-180, 180].
func wrapTo180(deg float64) float64 {
	deg = math.Mod(deg+180, 360)
	if deg <= 0 {
		deg += 360
	}
	return deg - 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
