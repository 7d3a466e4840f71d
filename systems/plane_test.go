package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/pushbutton/config"
)

func TestPlaneRoundTrip(t *testing.T) {
	for _, v := range []float64{-0.1, 0, 0.0254, 0.3} {
		if got := WorldX(PlaneX(v)); math.Abs(got-v) > 1e-12 {
			t.Errorf("WorldX(PlaneX(%v)) = %v", v, got)
		}
		if got := WorldY(PlaneY(v)); math.Abs(got-v) > 1e-12 {
			t.Errorf("WorldY(PlaneY(%v)) = %v", v, got)
		}
	}
}

func TestPlaneYPointsDown(t *testing.T) {
	if PlaneY(0.01) >= PlaneY(0) {
		t.Error("higher world y should map to a smaller plane y")
	}
}

func TestPlaneRect(t *testing.T) {
	x, y, w, h := PlaneRect(0.1, 0, 0.02, 0.01)
	u := cfg.Collision.UnitsPerMeter
	if math.Abs(w-0.02*u) > 1e-9 || math.Abs(h-0.01*u) > 1e-9 {
		t.Errorf("size = %v x %v", w, h)
	}
	if math.Abs(x-PlaneX(0.09)) > 1e-9 {
		t.Errorf("x = %v, want left edge %v", x, PlaneX(0.09))
	}
	if math.Abs(y+h-PlaneY(0)) > 1e-9 {
		t.Errorf("bottom = %v, want %v", y+h, PlaneY(0))
	}
}
