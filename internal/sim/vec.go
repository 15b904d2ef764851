// Package sim implements the brickwave collision-and-response core.
// It is a single-threaded, fixed-tick simulation with no external
// dependencies: the platform feeds it paddle position and a launch
// signal each tick, and it returns typed events describing everything
// that happened during that tick.
package sim

import "math"

// Vec2 is a 2D vector in playfield coordinates (cells, +Y down).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Reflect returns v reflected about the unit normal n.
// Only the component along n is reversed; the tangential component is kept.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Rect is an axis-aligned box in playfield coordinates.
type Rect struct {
	Min, Max Vec2
}

// NewRect creates a rect from a top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + w, Y: y + h}}
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Center returns the rect's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Width returns the rect's horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the rect's vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// SegmentIntersect tests the segment a->b against the rect using the slab
// method. On hit it returns the entry parameter t in [0,1] and the outward
// unit normal of the face that was crossed. Segments starting inside the
// rect report t = 0 with the normal of the nearest face.
func (r Rect) SegmentIntersect(a, b Vec2) (t float64, normal Vec2, ok bool) {
	d := b.Sub(a)

	tmin, tmax := 0.0, 1.0
	nx, ny := 0.0, 0.0

	// X slab
	if d.X == 0 {
		if a.X < r.Min.X || a.X > r.Max.X {
			return 0, Vec2{}, false
		}
	} else {
		t1 := (r.Min.X - a.X) / d.X
		t2 := (r.Max.X - a.X) / d.X
		n := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			n = 1.0
		}
		if t1 > tmin {
			tmin = t1
			nx, ny = n, 0
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, Vec2{}, false
		}
	}

	// Y slab
	if d.Y == 0 {
		if a.Y < r.Min.Y || a.Y > r.Max.Y {
			return 0, Vec2{}, false
		}
	} else {
		t1 := (r.Min.Y - a.Y) / d.Y
		t2 := (r.Max.Y - a.Y) / d.Y
		n := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			n = 1.0
		}
		if t1 > tmin {
			tmin = t1
			nx, ny = 0, n
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, Vec2{}, false
		}
	}

	if nx == 0 && ny == 0 {
		// Segment starts inside the rect: pick the nearest face normal so the
		// caller still gets a usable bounce direction.
		return 0, r.nearestFaceNormal(a), true
	}

	return tmin, Vec2{X: nx, Y: ny}, true
}

// nearestFaceNormal returns the outward normal of the face closest to p.
func (r Rect) nearestFaceNormal(p Vec2) Vec2 {
	dl := p.X - r.Min.X
	dr := r.Max.X - p.X
	dt := p.Y - r.Min.Y
	db := r.Max.Y - p.Y

	minD := dl
	n := Vec2{X: -1}
	if dr < minD {
		minD = dr
		n = Vec2{X: 1}
	}
	if dt < minD {
		minD = dt
		n = Vec2{Y: -1}
	}
	if db < minD {
		n = Vec2{Y: 1}
	}
	return n
}

// clampF restricts a value to [lo, hi].
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
