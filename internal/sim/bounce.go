package sim

import "math"

// BounceCalculator computes the ball's post-bounce direction from paddle
// contact geometry. Angles are in degrees measured from the horizontal,
// 90 being straight up. The interpolation range is deliberately clamped
// away from 0/180: without the floor and ceiling, repeated edge hits could
// flatten the trajectory into a near-horizontal, effectively unrecoverable
// loop.
type BounceCalculator struct {
	MinAngle float64 // Right-edge bounce, default 15
	MaxAngle float64 // Left-edge bounce, default 165
}

// Bounce maps a normalized hit offset in [-1, 1] to an outgoing velocity
// of the given speed. Offset -1 (left edge) yields MaxAngle, +1 (right
// edge) yields MinAngle, 0 (center) the midpoint, 90 with the defaults.
// Speed magnitude is preserved exactly; only direction changes.
func (c BounceCalculator) Bounce(offset, speed float64) (Vec2, float64) {
	offset = clampF(offset, -1, 1)

	t := (offset + 1) / 2
	angle := c.MaxAngle + (c.MinAngle-c.MaxAngle)*t

	return velocityAt(angle, speed), angle
}

// Vertical returns the fallback straight-up bounce used when the contact
// offset cannot be resolved (zero-width paddle, degenerate contact).
func (c BounceCalculator) Vertical(speed float64) (Vec2, float64) {
	return velocityAt(90, speed), 90
}

// velocityAt converts a bounce angle in degrees to a velocity vector.
// Screen coordinates have +Y down, so "up" is negative Y.
func velocityAt(angleDeg, speed float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	return Vec2{X: math.Cos(rad) * speed, Y: -math.Sin(rad) * speed}
}
