package sim

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVecReflect(t *testing.T) {
	tests := []struct {
		name   string
		v, n   Vec2
		expect Vec2
	}{
		{"bottom face", Vec2{X: 1, Y: 1}, Vec2{Y: -1}, Vec2{X: 1, Y: -1}},
		{"left face", Vec2{X: 1, Y: 1}, Vec2{X: -1}, Vec2{X: -1, Y: 1}},
		{"tangential motion unchanged", Vec2{X: 1, Y: 0}, Vec2{Y: -1}, Vec2{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			if !almostEq(got.X, tt.expect.X) || !almostEq(got.Y, tt.expect.Y) {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.expect)
			}
		})
	}
}

func TestVecReflectPreservesSpeed(t *testing.T) {
	v := Vec2{X: 0.3, Y: 0.4}
	got := v.Reflect(Vec2{Y: -1})
	if !almostEq(got.Len(), v.Len()) {
		t.Errorf("reflection changed speed: %g -> %g", v.Len(), got.Len())
	}
}

func TestSegmentIntersect(t *testing.T) {
	rect := NewRect(2, 2, 4, 2) // Min (2,2), Max (6,4)

	tests := []struct {
		name       string
		a, b       Vec2
		wantHit    bool
		wantT      float64
		wantNormal Vec2
	}{
		{
			name: "crosses left face",
			a:    Vec2{X: 0, Y: 3}, b: Vec2{X: 8, Y: 3},
			wantHit: true, wantT: 0.25, wantNormal: Vec2{X: -1},
		},
		{
			name: "crosses top face",
			a:    Vec2{X: 4, Y: 0}, b: Vec2{X: 4, Y: 5},
			wantHit: true, wantT: 0.4, wantNormal: Vec2{Y: -1},
		},
		{
			name: "crosses right face from the right",
			a:    Vec2{X: 8, Y: 3}, b: Vec2{X: 4, Y: 3},
			wantHit: true, wantT: 0.5, wantNormal: Vec2{X: 1},
		},
		{
			name: "passes above",
			a:    Vec2{X: 0, Y: 1}, b: Vec2{X: 8, Y: 1},
			wantHit: false,
		},
		{
			name: "stops short",
			a:    Vec2{X: 0, Y: 3}, b: Vec2{X: 1, Y: 3},
			wantHit: false,
		},
		{
			name: "points away",
			a:    Vec2{X: 0, Y: 3}, b: Vec2{X: -4, Y: 3},
			wantHit: false,
		},
		{
			name: "starts inside",
			a:    Vec2{X: 2.5, Y: 3}, b: Vec2{X: 10, Y: 3},
			wantHit: true, wantT: 0, wantNormal: Vec2{X: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotN, ok := rect.SegmentIntersect(tt.a, tt.b)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if !almostEq(gotT, tt.wantT) {
				t.Errorf("t = %g, want %g", gotT, tt.wantT)
			}
			if gotN != tt.wantNormal {
				t.Errorf("normal = %v, want %v", gotN, tt.wantNormal)
			}
		})
	}
}

func TestNearestFaceNormal(t *testing.T) {
	rect := NewRect(0, 0, 10, 4)

	tests := []struct {
		name   string
		p      Vec2
		expect Vec2
	}{
		{"near left", Vec2{X: 0.5, Y: 2}, Vec2{X: -1}},
		{"near right", Vec2{X: 9.5, Y: 2}, Vec2{X: 1}},
		{"near top", Vec2{X: 5, Y: 0.5}, Vec2{Y: -1}},
		{"near bottom", Vec2{X: 5, Y: 3.5}, Vec2{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.nearestFaceNormal(tt.p); got != tt.expect {
				t.Errorf("nearestFaceNormal(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	rect := NewRect(1, 1, 2, 2)

	if !rect.Contains(Vec2{X: 2, Y: 2}) {
		t.Error("center should be contained")
	}
	if rect.Contains(Vec2{X: 0, Y: 2}) {
		t.Error("point left of rect should not be contained")
	}
	if rect.Contains(Vec2{X: 2, Y: 4}) {
		t.Error("point below rect should not be contained")
	}
}
