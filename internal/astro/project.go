package astro

import (
	"math"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// ValidateFOV rejects degenerate field-of-view or resolution parameters.
func ValidateFOV(fov domain.FieldOfView, res domain.Resolution) error {
	if fov.WidthDeg <= 0 || fov.HeightDeg <= 0 {
		return domain.ErrInvalidFOV
	}
	if res.Width <= 0 || res.Height <= 0 {
		return domain.ErrInvalidFOV
	}
	return nil
}

// CircularMeanCenter returns the center of a group of horizontal positions:
// circular mean of the azimuths (so a group straddling north averages to
// north, not south) and arithmetic mean of the altitudes. Returns a zero
// position for empty input.
func CircularMeanCenter(positions []domain.HorizontalPosition) domain.HorizontalPosition {
	if len(positions) == 0 {
		return domain.HorizontalPosition{}
	}

	var sinSum, cosSum, altSum float64
	for _, p := range positions {
		az := degToRad(p.AzimuthDeg)
		sinSum += math.Sin(az)
		cosSum += math.Cos(az)
		altSum += p.AltitudeDeg
	}

	return domain.HorizontalPosition{
		AzimuthDeg:  normalizeDeg360(radToDeg(math.Atan2(sinSum, cosSum))),
		AltitudeDeg: altSum / float64(len(positions)),
	}
}

// InFOV reports whether a position falls inside the angular window. The
// azimuth offset is wrapped to (-180, 180] relative to the window center,
// so a window centered near 0 degrees azimuth spans the wraparound.
func InFOV(pos domain.HorizontalPosition, fov domain.FieldOfView) bool {
	dAz := wrapTo180(pos.AzimuthDeg - fov.CenterAzDeg)
	dAlt := pos.AltitudeDeg - fov.CenterAltDeg
	return math.Abs(dAz) <= fov.WidthDeg/2 && math.Abs(dAlt) <= fov.HeightDeg/2
}

// GnomonicOffsets projects a position onto the tangent plane at the FOV
// center and returns the angular offsets in degrees (x positive toward
// increasing azimuth, y positive toward increasing altitude). ok is false
// when the position lies on or behind the plane of projection (angular
// distance from center >= 90 degrees), where the projection is undefined.
func GnomonicOffsets(pos domain.HorizontalPosition, fov domain.FieldOfView) (dxDeg, dyDeg float64, ok bool) {
	alt0 := degToRad(fov.CenterAltDeg)
	alt := degToRad(pos.AltitudeDeg)
	dAz := degToRad(wrapTo180(pos.AzimuthDeg - fov.CenterAzDeg))

	cosc := math.Sin(alt0)*math.Sin(alt) + math.Cos(alt0)*math.Cos(alt)*math.Cos(dAz)
	if cosc <= 0 {
		return 0, 0, false
	}

	x := math.Cos(alt) * math.Sin(dAz) / cosc
	y := (math.Cos(alt0)*math.Sin(alt) - math.Sin(alt0)*math.Cos(alt)*math.Cos(dAz)) / cosc

	return radToDeg(x), radToDeg(y), true
}

// ProjectToScreen maps a horizontal position to pixel coordinates for a
// given FOV and resolution. Screen y grows downward, so positive altitude
// offsets map to smaller y. ok is false only when the gnomonic projection
// itself is undefined; coordinates outside [0,w]x[0,h] are returned as-is
// so callers can decide whether to keep offscreen points.
func ProjectToScreen(pos domain.HorizontalPosition, fov domain.FieldOfView, res domain.Resolution) (domain.ScreenPoint, bool) {
	dx, dy, ok := GnomonicOffsets(pos, fov)
	if !ok {
		return domain.ScreenPoint{}, false
	}

	pxPerDegX := float64(res.Width) / fov.WidthDeg
	pxPerDegY := float64(res.Height) / fov.HeightDeg

	return domain.ScreenPoint{
		X: float64(res.Width)/2 + dx*pxPerDegX,
		Y: float64(res.Height)/2 - dy*pxPerDegY,
	}, true
}

// ClipEdgeToFOV clips the segment between two horizontal positions against
// the FOV rectangle in azimuth/altitude space. Azimuth deltas are wrapped
// relative to the window center, so an edge spanning 359 to 1 degrees is
// treated as a 2-degree span rather than a near-full-circle one. Returns
// the clipped endpoints, or ok=false when the edge lies entirely outside.
func ClipEdgeToFOV(a, b domain.HorizontalPosition, fov domain.FieldOfView) (domain.HorizontalPosition, domain.HorizontalPosition, bool) {
	ax := wrapTo180(a.AzimuthDeg - fov.CenterAzDeg)
	bxRaw := wrapTo180(b.AzimuthDeg - fov.CenterAzDeg)

	// Take the short way around between the two endpoints.
	bx := ax + wrapTo180(bxRaw-ax)

	x1, y1, x2, y2, ok := liangBarsky(ax, a.AltitudeDeg, bx, b.AltitudeDeg,
		-fov.WidthDeg/2, fov.WidthDeg/2, fov.CenterAltDeg-fov.HeightDeg/2, fov.CenterAltDeg+fov.HeightDeg/2)
	if !ok {
		return domain.HorizontalPosition{}, domain.HorizontalPosition{}, false
	}

	ca := domain.HorizontalPosition{AzimuthDeg: normalizeDeg360(fov.CenterAzDeg + x1), AltitudeDeg: y1}
	cb := domain.HorizontalPosition{AzimuthDeg: normalizeDeg360(fov.CenterAzDeg + x2), AltitudeDeg: y2}
	return ca, cb, true
}

// ClipEdgeToScreen clips a projected pixel segment against the rectangle
// [0,w] x [0,h]. Returns ok=false when the segment lies entirely outside.
func ClipEdgeToScreen(a, b domain.ScreenPoint, res domain.Resolution) (domain.ScreenPoint, domain.ScreenPoint, bool) {
	x1, y1, x2, y2, ok := liangBarsky(a.X, a.Y, b.X, b.Y, 0, float64(res.Width), 0, float64(res.Height))
	if !ok {
		return domain.ScreenPoint{}, domain.ScreenPoint{}, false
	}
	return domain.ScreenPoint{X: x1, Y: y1}, domain.ScreenPoint{X: x2, Y: y2}, true
}

// liangBarsky clips the parametric segment (x1,y1)-(x2,y2) against the
// axis-aligned rectangle [xmin,xmax] x [ymin,ymax].
func liangBarsky(x1, y1, x2, y2, xmin, xmax, ymin, ymax float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1

	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1 - xmin, xmax - x1, y1 - ymin, ymax - y1}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
