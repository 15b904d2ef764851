package sim

// LaunchState tracks where the ball is in its serve cycle.
type LaunchState uint8

const (
	// LaunchReady means the ball sits on the paddle waiting for a serve.
	LaunchReady LaunchState = iota
	// Launching means a serve was requested this tick; velocity is being set.
	Launching
	// InPlay means the ball is live and subject to all collision handling.
	InPlay
)

// String returns a human-readable name for the launch state.
func (s LaunchState) String() string {
	switch s {
	case LaunchReady:
		return "Ready"
	case Launching:
		return "Launching"
	case InPlay:
		return "InPlay"
	default:
		return "Unknown"
	}
}

// Ball is the simulation's single ball. It is owned exclusively by the
// Simulation; handlers read it and propose velocity changes through the
// router, never through a private copy.
type Ball struct {
	Pos   Vec2
	Prev  Vec2 // Position at the start of this tick, for swept checks
	Vel   Vec2
	State LaunchState
}

// Speed returns the ball's current speed magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// advance integrates one tick of motion, remembering the previous position
// for the validator's swept-path checks.
func (b *Ball) advance() {
	b.Prev = b.Pos
	b.Pos = b.Pos.Add(b.Vel)
}

// Paddle is read-only input to the collision core. Position comes from the
// external input layer each tick; the core only clamps it to its bounds.
type Paddle struct {
	X         float64 // Center X
	Y         float64 // Surface row the ball bounces off
	HalfWidth float64
	MinX      float64 // Movement bounds for the paddle center
	MaxX      float64
}

// Left returns the paddle's left edge.
func (p *Paddle) Left() float64 {
	return p.X - p.HalfWidth
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.HalfWidth
}

// Bounds returns the paddle's collision rect, one cell tall.
func (p *Paddle) Bounds() Rect {
	return Rect{
		Min: Vec2{X: p.Left(), Y: p.Y - 0.5},
		Max: Vec2{X: p.Right(), Y: p.Y + 0.5},
	}
}

// HitOffset normalizes a contact X coordinate to [-1, 1] relative to the
// paddle center. The clamp protects against contact points computed just
// outside the physical extent by discrete-time detection. Returns false if
// the paddle has no width to normalize against.
func (p *Paddle) HitOffset(contactX float64) (float64, bool) {
	if p.HalfWidth <= 0 {
		return 0, false
	}
	return clampF((contactX-p.X)/p.HalfWidth, -1, 1), true
}
