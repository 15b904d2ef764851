package sim

import (
	"math"
	"testing"
)

func defaultBounce() BounceCalculator {
	return BounceCalculator{MinAngle: 15, MaxAngle: 165}
}

func TestBounceAngleInterpolation(t *testing.T) {
	c := defaultBounce()

	tests := []struct {
		name      string
		offset    float64
		wantAngle float64
	}{
		{"left edge", -1, 165},
		{"left quarter", -0.5, 127.5},
		{"center", 0, 90},
		{"right quarter", 0.5, 52.5},
		{"right edge", 1, 15},
		{"clamped below", -2, 165},
		{"clamped above", 2, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, angle := c.Bounce(tt.offset, 0.35)
			if !almostEq(angle, tt.wantAngle) {
				t.Errorf("Bounce(%g) angle = %g, want %g", tt.offset, angle, tt.wantAngle)
			}
		})
	}
}

func TestBounceSpeedPreserved(t *testing.T) {
	c := defaultBounce()

	for _, offset := range []float64{-1, -0.3, 0, 0.7, 1} {
		v, _ := c.Bounce(offset, 8.0)
		if !almostEq(v.Len(), 8.0) {
			t.Errorf("offset %g: speed %g, want 8.0", offset, v.Len())
		}
	}
}

func TestBounceAlwaysUpward(t *testing.T) {
	c := defaultBounce()

	// Every angle in (0, 180) points above the horizontal, which in screen
	// coordinates is negative Y.
	for offset := -1.0; offset <= 1.0; offset += 0.1 {
		v, _ := c.Bounce(offset, 0.35)
		if v.Y >= 0 {
			t.Errorf("offset %g: downward bounce %v", offset, v)
		}
	}
}

func TestBounceMonotonic(t *testing.T) {
	c := defaultBounce()

	// Moving the contact rightward must strictly decrease the angle.
	prev := math.Inf(1)
	for offset := -1.0; offset <= 1.0; offset += 0.25 {
		_, angle := c.Bounce(offset, 0.35)
		if angle >= prev {
			t.Errorf("offset %g: angle %g not decreasing (prev %g)", offset, angle, prev)
		}
		prev = angle
	}
}

func TestBounceCenterIsStraightUp(t *testing.T) {
	c := defaultBounce()

	v, angle := c.Bounce(0, 8.0)
	if !almostEq(angle, 90) {
		t.Fatalf("center angle = %g, want 90", angle)
	}
	if !almostEq(v.X, 0) || !almostEq(v.Y, -8.0) {
		t.Errorf("center velocity = %v, want (0, -8)", v)
	}
}

func TestVerticalFallback(t *testing.T) {
	c := defaultBounce()

	v, angle := c.Vertical(0.35)
	if !almostEq(angle, 90) {
		t.Errorf("fallback angle = %g, want 90", angle)
	}
	if !almostEq(v.X, 0) || !almostEq(v.Y, -0.35) {
		t.Errorf("fallback velocity = %v, want (0, -0.35)", v)
	}
}

func TestPaddleHitOffset(t *testing.T) {
	p := Paddle{X: 10, HalfWidth: 4}

	tests := []struct {
		name     string
		contactX float64
		want     float64
	}{
		{"center", 10, 0},
		{"left edge", 6, -1},
		{"right edge", 14, 1},
		{"halfway right", 12, 0.5},
		{"beyond left clamps", 4, -1},
		{"beyond right clamps", 16, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.HitOffset(tt.contactX)
			if !ok {
				t.Fatal("offset should resolve for non-degenerate paddle")
			}
			if !almostEq(got, tt.want) {
				t.Errorf("HitOffset(%g) = %g, want %g", tt.contactX, got, tt.want)
			}
		})
	}
}

func TestPaddleHitOffsetDegenerate(t *testing.T) {
	p := Paddle{X: 10, HalfWidth: 0}
	if _, ok := p.HitOffset(10); ok {
		t.Error("zero-width paddle must report an unresolvable offset")
	}
}
