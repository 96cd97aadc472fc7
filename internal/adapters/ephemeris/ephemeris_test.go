package ephemeris

import (
	"errors"
	"testing"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

func TestEquatorialAtKnownBodies(t *testing.T) {
	e := New()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"sun", "moon", "mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune"} {
		eq, dist, err := e.EquatorialAt(id, at)
		if err != nil {
			t.Fatalf("EquatorialAt(%q): %v", id, err)
		}
		if eq.RADeg < 0 || eq.RADeg >= 360 {
			t.Errorf("%s: RA %f out of range", id, eq.RADeg)
		}
		if dist <= 0 {
			t.Errorf("%s: non-positive distance %f", id, dist)
		}
	}
}

func TestEquatorialAtUnknownBody(t *testing.T) {
	e := New()
	if _, _, err := e.EquatorialAt("vulcan", time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown body error = %v, want ErrNotFound", err)
	}
}

func TestMagnitudeAvailability(t *testing.T) {
	e := New()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if m := e.Magnitude("sun", at); m == nil || *m != SunMagnitude {
		t.Errorf("sun magnitude = %v, want %v", m, SunMagnitude)
	}
	if m := e.Magnitude("moon", at); m == nil {
		t.Error("moon magnitude missing")
	}
	if m := e.Magnitude("venus", at); m == nil || *m > 0 {
		t.Errorf("venus magnitude = %v, want bright negative", m)
	}
	if m := e.Magnitude("vulcan", at); m != nil {
		t.Error("unknown body returned a magnitude")
	}
}

func TestIlluminationOnlyForMoon(t *testing.T) {
	e := New()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	f := e.Illumination("moon", at)
	if f == nil || *f < 0 || *f > 1 {
		t.Errorf("moon illumination = %v, want fraction in [0,1]", f)
	}
	if e.Illumination("mars", at) != nil {
		t.Error("mars should have no illumination model")
	}
}
