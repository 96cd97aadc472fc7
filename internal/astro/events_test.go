package astro

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

func TestValidateWindow(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidateWindow(start, start.Add(time.Hour)); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
	if err := ValidateWindow(start, start); !errors.Is(err, domain.ErrInvalidWindow) {
		t.Errorf("empty window error = %v, want ErrInvalidWindow", err)
	}
	if err := ValidateWindow(start, start.Add(-time.Hour)); !errors.Is(err, domain.ErrInvalidWindow) {
		t.Errorf("inverted window error = %v, want ErrInvalidWindow", err)
	}
}

func TestFindZeroCrossingsLinear(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	// Crosses zero rising at start+1h and falling at start+2h.
	f := func(at time.Time) float64 {
		h := at.Sub(start).Hours()
		if h < 1.5 {
			return h - 1
		}
		return 2 - h
	}

	crossings, err := FindZeroCrossings(f, start, end, 10*time.Minute)
	if err != nil {
		t.Fatalf("FindZeroCrossings: %v", err)
	}
	if len(crossings) != 2 {
		t.Fatalf("got %d crossings, want 2", len(crossings))
	}
	if !crossings[0].Rising || crossings[1].Rising {
		t.Errorf("crossing directions = (%v, %v), want (rising, falling)",
			crossings[0].Rising, crossings[1].Rising)
	}

	wantFirst := start.Add(time.Hour)
	if d := crossings[0].At.Sub(wantFirst); d < -2*time.Second || d > 2*time.Second {
		t.Errorf("first crossing at %v, want %v within 2s", crossings[0].At, wantFirst)
	}
	if !crossings[0].At.Before(crossings[1].At) {
		t.Error("crossings not in chronological order")
	}
}

func TestFindZeroCrossingsValidation(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	f := func(time.Time) float64 { return 1 }

	if _, err := FindZeroCrossings(f, start, start, time.Minute); !errors.Is(err, domain.ErrInvalidWindow) {
		t.Errorf("empty window error = %v, want ErrInvalidWindow", err)
	}
	if _, err := FindZeroCrossings(f, start, start.Add(time.Hour), 0); !errors.Is(err, domain.ErrInvalidStep) {
		t.Errorf("zero step error = %v, want ErrInvalidStep", err)
	}
}

func TestFindZeroCrossingsNoCrossing(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	f := func(time.Time) float64 { return 5 }

	crossings, err := FindZeroCrossings(f, start, start.Add(6*time.Hour), 10*time.Minute)
	if err != nil {
		t.Fatalf("FindZeroCrossings: %v", err)
	}
	if len(crossings) != 0 {
		t.Errorf("constant-positive curve produced %d crossings", len(crossings))
	}
}

func TestHorizonCrossingsEquatorialStar(t *testing.T) {
	// A declination-zero object seen from the equator sits above the
	// horizon exactly while its hour angle is within +-90 degrees. Center
	// the window on culmination so it contains one rise and one set.
	culmination := time.Date(2024, 4, 1, 6, 0, 0, 0, time.UTC)
	frame := FrameAt(0, 0, culmination)
	eq := domain.EquatorialCoord{RADeg: frame.LSTDeg, DecDeg: 0}

	altAt := func(at time.Time) float64 {
		return ToHorizontal(eq, FrameAt(0, 0, at)).AltitudeDeg
	}

	start := culmination.Add(-8 * time.Hour)
	end := culmination.Add(8 * time.Hour)

	crossings, err := FindZeroCrossings(altAt, start, end, 10*time.Minute)
	if err != nil {
		t.Fatalf("FindZeroCrossings: %v", err)
	}
	if len(crossings) != 2 {
		t.Fatalf("got %d crossings, want rise and set", len(crossings))
	}
	if !crossings[0].Rising || crossings[1].Rising {
		t.Fatalf("crossing order = (%v, %v), want rise then set",
			crossings[0].Rising, crossings[1].Rising)
	}

	for _, c := range crossings {
		if alt := altAt(c.At); math.Abs(alt) > 0.01 {
			t.Errorf("altitude at refined crossing %v = %f, want ~0", c.At, alt)
		}
	}

	// Rise and set sit symmetric around culmination, a quarter sidereal
	// day apart on each side.
	quarterSidereal := 90.0 / 15.0410686 // hours
	for i, c := range crossings {
		want := culmination.Add(time.Duration(float64(i*2-1) * quarterSidereal * float64(time.Hour)))
		if d := c.At.Sub(want); d < -time.Minute || d > time.Minute {
			t.Errorf("crossing %d at %v, want %v within 1m", i, c.At, want)
		}
	}
}
