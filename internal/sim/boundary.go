package sim

// Wall is a half-plane boundary with an inward-pointing unit normal.
// A point p is inside when Dot(Normal, p) >= Offset. Walls are static for
// the duration of a level.
type Wall struct {
	Type   WallType
	Normal Vec2
	Offset float64
}

// penetration returns how far p sits outside the wall (positive = outside).
func (w *Wall) penetration(p Vec2) float64 {
	return w.Offset - w.Normal.Dot(p)
}

// BoundaryContainment owns wall reflection and death-zone crossing
// detection. Wall bounces are straight reflections, not an energy-loss
// model: only the normal component of velocity is reversed and speed is
// preserved, subject to the governor's final clamp.
type BoundaryContainment struct {
	Walls []Wall
	Zone  DeathZone
}

// newWalls builds the three playfield walls from the field rect.
func newWalls(field Rect) []Wall {
	return []Wall{
		{Type: WallTop, Normal: Vec2{Y: 1}, Offset: field.Min.Y},
		{Type: WallLeft, Normal: Vec2{X: 1}, Offset: field.Min.X},
		{Type: WallRight, Normal: Vec2{X: -1}, Offset: -field.Max.X},
	}
}

// Reflect applies a wall bounce to the ball: the position is snapped back
// to the legal side and the velocity's normal component is reversed.
// Returns the contact point on the wall plane.
func (bc *BoundaryContainment) Reflect(ball *Ball, w *Wall) Vec2 {
	pen := w.penetration(ball.Pos)
	if pen > 0 {
		ball.Pos = ball.Pos.Add(w.Normal.Scale(pen))
	}
	contact := ball.Pos

	// Only reverse if still moving into the wall; a previous response this
	// tick may already have turned the ball around.
	if ball.Vel.Dot(w.Normal) < 0 {
		ball.Vel = ball.Vel.Reflect(w.Normal)
	}
	return contact
}

// DeathZone is the out-of-bounds trigger region below the paddle. It is
// repositioned every tick relative to the paddle, scaled so the
// gameplay-relevant distance stays constant across screen sizes. Crossing
// is debounced: one ball crossing yields exactly one life-loss signal even
// if the ball stays inside the region across several ticks.
type DeathZone struct {
	OffsetY float64 // Distance below the paddle surface, pre-scale
	Depth   float64
	Scale   float64

	left, right float64
	top         float64
	inside      bool
}

// Reposition moves the zone to track the paddle's current row.
func (z *DeathZone) Reposition(p *Paddle) {
	z.top = p.Y + z.OffsetY*z.Scale
}

// Bounds returns the zone's current trigger rect.
func (z *DeathZone) Bounds() Rect {
	return Rect{
		Min: Vec2{X: z.left, Y: z.top},
		Max: Vec2{X: z.right, Y: z.top + z.Depth*z.Scale},
	}
}

// Crossed reports whether the ball entered the zone this tick. Repeated
// containment while the debounce is armed reports false; the debounce
// rearms only once the ball is confirmed outside again.
func (z *DeathZone) Crossed(ball *Ball) bool {
	in := z.Bounds().Contains(ball.Pos) || ball.Pos.Y >= z.top
	if in {
		if z.inside {
			return false
		}
		z.inside = true
		return true
	}
	z.inside = false
	return false
}

// Reset rearms the debounce, used when the ball returns to Ready state.
func (z *DeathZone) Reset() {
	z.inside = false
}
