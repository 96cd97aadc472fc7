package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

func TestValidateFOV(t *testing.T) {
	res := domain.Resolution{Width: 800, Height: 600}
	tests := []struct {
		name    string
		fov     domain.FieldOfView
		res     domain.Resolution
		wantErr bool
	}{
		{"valid", domain.FieldOfView{WidthDeg: 60, HeightDeg: 40}, res, false},
		{"zero width", domain.FieldOfView{WidthDeg: 0, HeightDeg: 40}, res, true},
		{"negative height", domain.FieldOfView{WidthDeg: 60, HeightDeg: -1}, res, true},
		{"zero resolution", domain.FieldOfView{WidthDeg: 60, HeightDeg: 40}, domain.Resolution{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFOV(tt.fov, tt.res)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ValidateFOV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidFOV) {
				t.Errorf("error %v is not ErrInvalidFOV", err)
			}
		})
	}
}

func TestProjectToScreenCenter(t *testing.T) {
	fov := domain.FieldOfView{CenterAzDeg: 180, CenterAltDeg: 45, WidthDeg: 30, HeightDeg: 20}
	res := domain.Resolution{Width: 800, Height: 600}

	pt, ok := ProjectToScreen(domain.HorizontalPosition{AzimuthDeg: 180, AltitudeDeg: 45}, fov, res)
	if !ok {
		t.Fatal("center projection undefined")
	}
	if math.Abs(pt.X-400) > 1e-9 || math.Abs(pt.Y-300) > 1e-9 {
		t.Errorf("FOV center projected to (%f, %f), want (400, 300)", pt.X, pt.Y)
	}
}

func TestProjectToScreenBoundary(t *testing.T) {
	// At zero center altitude the tangent plane distorts a half-width
	// offset by only the tan/angle difference, so the boundary star
	// lands within a pixel or two of the screen edge.
	fov := domain.FieldOfView{CenterAzDeg: 180, CenterAltDeg: 0, WidthDeg: 10, HeightDeg: 10}
	res := domain.Resolution{Width: 800, Height: 600}

	right, ok := ProjectToScreen(domain.HorizontalPosition{AzimuthDeg: 185, AltitudeDeg: 0}, fov, res)
	if !ok {
		t.Fatal("boundary projection undefined")
	}
	if math.Abs(right.X-800) > 2 {
		t.Errorf("boundary star projected to x=%f, want ~800", right.X)
	}

	left, _ := ProjectToScreen(domain.HorizontalPosition{AzimuthDeg: 175, AltitudeDeg: 0}, fov, res)
	if math.Abs(left.X-0) > 2 {
		t.Errorf("boundary star projected to x=%f, want ~0", left.X)
	}
}

func TestProjectToScreenYInverted(t *testing.T) {
	fov := domain.FieldOfView{CenterAzDeg: 0, CenterAltDeg: 30, WidthDeg: 20, HeightDeg: 20}
	res := domain.Resolution{Width: 400, Height: 400}

	above, _ := ProjectToScreen(domain.HorizontalPosition{AzimuthDeg: 0, AltitudeDeg: 35}, fov, res)
	below, _ := ProjectToScreen(domain.HorizontalPosition{AzimuthDeg: 0, AltitudeDeg: 25}, fov, res)

	if !(above.Y < 200 && below.Y > 200) {
		t.Errorf("screen y not inverted: above=%f below=%f", above.Y, below.Y)
	}
}

func TestGnomonicRejectsFarSide(t *testing.T) {
	fov := domain.FieldOfView{CenterAzDeg: 0, CenterAltDeg: 0, WidthDeg: 60, HeightDeg: 60}
	if _, _, ok := GnomonicOffsets(domain.HorizontalPosition{AzimuthDeg: 180, AltitudeDeg: 0}, fov); ok {
		t.Error("antipodal point must not project")
	}
}

func TestInFOVWraparound(t *testing.T) {
	fov := domain.FieldOfView{CenterAzDeg: 0, CenterAltDeg: 10, WidthDeg: 20, HeightDeg: 20}
	tests := []struct {
		az, alt float64
		want    bool
	}{
		{359, 10, true},
		{1, 10, true},
		{11, 10, false},
		{349, 10, false},
		{0, 25, false},
	}
	for _, tt := range tests {
		got := InFOV(domain.HorizontalPosition{AzimuthDeg: tt.az, AltitudeDeg: tt.alt}, fov)
		if got != tt.want {
			t.Errorf("InFOV(az=%f, alt=%f) = %v, want %v", tt.az, tt.alt, got, tt.want)
		}
	}
}

func TestClipEdgeToFOV(t *testing.T) {
	fov := domain.FieldOfView{CenterAzDeg: 180, CenterAltDeg: 0, WidthDeg: 10, HeightDeg: 10}

	a := domain.HorizontalPosition{AzimuthDeg: 180, AltitudeDeg: 2}
	b := domain.HorizontalPosition{AzimuthDeg: 195, AltitudeDeg: 2}

	ca, cb, ok := ClipEdgeToFOV(a, b, fov)
	if !ok {
		t.Fatal("straddling edge fully clipped away")
	}
	if ca != a {
		t.Errorf("inside endpoint moved: %+v", ca)
	}
	if math.Abs(cb.AzimuthDeg-185) > 1e-9 {
		t.Errorf("clipped endpoint azimuth = %f, want 185", cb.AzimuthDeg)
	}
}

func TestClipEdgeToFOVAzimuthWraparound(t *testing.T) {
	// An edge from azimuth 359 to 1 spans 2 degrees of sky through north,
	// not 358 degrees the long way round.
	fov := domain.FieldOfView{CenterAzDeg: 0, CenterAltDeg: 10, WidthDeg: 20, HeightDeg: 20}

	a := domain.HorizontalPosition{AzimuthDeg: 359, AltitudeDeg: 10}
	b := domain.HorizontalPosition{AzimuthDeg: 1, AltitudeDeg: 10}

	ca, cb, ok := ClipEdgeToFOV(a, b, fov)
	if !ok {
		t.Fatal("wraparound edge fully clipped away")
	}
	if ca != a || cb != b {
		t.Errorf("edge inside FOV was altered: %+v -> %+v", ca, cb)
	}

	// One endpoint past the eastern boundary clips at azimuth 10.
	c := domain.HorizontalPosition{AzimuthDeg: 15, AltitudeDeg: 10}
	_, cc, ok := ClipEdgeToFOV(a, c, fov)
	if !ok {
		t.Fatal("partially inside wraparound edge fully clipped away")
	}
	if math.Abs(cc.AzimuthDeg-10) > 1e-9 {
		t.Errorf("clipped endpoint azimuth = %f, want 10", cc.AzimuthDeg)
	}
}

func TestClipEdgeToFOVOutside(t *testing.T) {
	fov := domain.FieldOfView{CenterAzDeg: 180, CenterAltDeg: 0, WidthDeg: 10, HeightDeg: 10}
	a := domain.HorizontalPosition{AzimuthDeg: 100, AltitudeDeg: 50}
	b := domain.HorizontalPosition{AzimuthDeg: 110, AltitudeDeg: 55}

	if _, _, ok := ClipEdgeToFOV(a, b, fov); ok {
		t.Error("edge entirely outside FOV should be discarded")
	}
}

func TestClipEdgeToScreen(t *testing.T) {
	res := domain.Resolution{Width: 800, Height: 600}

	a := domain.ScreenPoint{X: 100, Y: 100}
	b := domain.ScreenPoint{X: 900, Y: 100}

	ca, cb, ok := ClipEdgeToScreen(a, b, res)
	if !ok {
		t.Fatal("straddling segment fully clipped away")
	}
	for _, p := range []domain.ScreenPoint{ca, cb} {
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Errorf("clipped point (%f, %f) outside screen", p.X, p.Y)
		}
	}
	if math.Abs(cb.X-800) > 1e-9 {
		t.Errorf("clipped x = %f, want 800", cb.X)
	}
}

func TestCircularMeanCenter(t *testing.T) {
	positions := []domain.HorizontalPosition{
		{AzimuthDeg: 350, AltitudeDeg: 10},
		{AzimuthDeg: 10, AltitudeDeg: 20},
	}
	c := CircularMeanCenter(positions)
	if math.Abs(wrapTo180(c.AzimuthDeg)) > 1e-9 {
		t.Errorf("center azimuth = %f, want 0 (north)", c.AzimuthDeg)
	}
	if math.Abs(c.AltitudeDeg-15) > 1e-9 {
		t.Errorf("center altitude = %f, want 15", c.AltitudeDeg)
	}

	if c := CircularMeanCenter(nil); c != (domain.HorizontalPosition{}) {
		t.Errorf("empty input center = %+v, want zero", c)
	}
}
