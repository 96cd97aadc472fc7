package astro

import "math"

// PointInBoundary reports whether an equatorial point lies inside a
// constellation boundary polygon given as (ra, dec) vertex pairs in
// degrees. Right ascensions are unwrapped relative to the polygon's
// circular-mean RA before the even-odd ray-casting test, so polygons
// straddling the 0h/24h seam are handled correctly.
func PointInBoundary(raDeg, decDeg float64, polygon [][2]float64) bool {
	if len(polygon) < 3 {
		return false
	}

	var sinSum, cosSum float64
	for _, v := range polygon {
		sinSum += math.Sin(degToRad(v[0]))
		cosSum += math.Cos(degToRad(v[0]))
	}
	centerRA := normalizeDeg360(radToDeg(math.Atan2(sinSum, cosSum)))

	px := wrapTo180(raDeg - centerRA)
	py := decDeg

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		xi := wrapTo180(polygon[i][0] - centerRA)
		yi := polygon[i][1]
		xj := wrapTo180(polygon[j][0] - centerRA)
		yj := polygon[j][1]

		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
