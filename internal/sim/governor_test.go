package sim

import "testing"

func TestGovernorClamp(t *testing.T) {
	g := SpeedGovernor{Min: 0.15, Max: 0.8}

	tests := []struct {
		name      string
		v         Vec2
		wantSpeed float64
	}{
		{"below min scaled up", Vec2{X: 0.05, Y: 0}, 0.15},
		{"above max scaled down", Vec2{X: 0, Y: 2}, 0.8},
		{"inside window untouched", Vec2{X: 0.3, Y: 0.2}, Vec2{X: 0.3, Y: 0.2}.Len()},
		{"exactly min", Vec2{X: 0.15, Y: 0}, 0.15},
		{"exactly max", Vec2{X: 0, Y: 0.8}, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Clamp(tt.v)
			if !almostEq(got.Len(), tt.wantSpeed) {
				t.Errorf("Clamp(%v) speed = %g, want %g", tt.v, got.Len(), tt.wantSpeed)
			}
		})
	}
}

func TestGovernorPreservesDirection(t *testing.T) {
	g := SpeedGovernor{Min: 0.15, Max: 0.8}

	v := Vec2{X: 3, Y: 4} // Speed 5, direction (0.6, 0.8)
	got := g.Clamp(v)
	if !almostEq(got.X/got.Len(), 0.6) || !almostEq(got.Y/got.Len(), 0.8) {
		t.Errorf("clamping changed direction: %v", got)
	}
}

func TestGovernorZeroVector(t *testing.T) {
	g := SpeedGovernor{Min: 0.15, Max: 0.8}

	// A zero vector has no direction to rescale; stuck-ball recovery owns
	// that case.
	got := g.Clamp(Vec2{})
	if got != (Vec2{}) {
		t.Errorf("Clamp(zero) = %v, want zero", got)
	}
}

func TestGovernorDriftCorrection(t *testing.T) {
	g := SpeedGovernor{Min: 0.15, Max: 0.8}

	// Repeated reflections with tiny numeric perturbations must stay in the
	// window after every clamp.
	v := Vec2{X: 0.2, Y: -0.3}
	for i := 0; i < 200; i++ {
		v = v.Reflect(Vec2{Y: -1})
		v = v.Scale(1.0001) // Simulated accumulation error
		v = g.Clamp(v)

		speed := v.Len()
		if speed < 0.15-epsilon || speed > 0.8+epsilon {
			t.Fatalf("iteration %d: speed %g escaped [0.15, 0.8]", i, speed)
		}
	}
}
