package sim

import "sort"

// AnomalyValidator is an independent per-tick watchdog. It runs after the
// router whether or not anything collided, and owns three jobs: stuck-ball
// recovery, tunneling repair, and deterministic ordering of simultaneous
// multi-collisions. Anomalies are always corrected in-tick and surfaced
// only as diagnostic events, never as errors.
type AnomalyValidator struct {
	// Threshold is the speed below which the ball counts as stuck.
	Threshold float64
	// Timeout is how many consecutive sub-threshold ticks are tolerated
	// before a corrective impulse is applied. Simulated ticks, never wall
	// clock.
	Timeout int

	stuckTicks int
	lastDir    Vec2
}

// NewAnomalyValidator creates a validator with the given stuck-ball
// parameters.
func NewAnomalyValidator(threshold float64, timeoutTicks int) *AnomalyValidator {
	return &AnomalyValidator{Threshold: threshold, Timeout: timeoutTicks}
}

// Reset clears the stuck timer and direction memory, used on ball resets.
func (v *AnomalyValidator) Reset() {
	v.stuckTicks = 0
	v.lastDir = Vec2{}
}

// Order sorts simultaneous ball contacts deterministically: smallest
// distance from the ball's previous position to the contact point first,
// ties broken by higher relative approach speed. The router applies
// responses in this order, re-deriving velocity between each, so later
// responses act on corrected state rather than stale data.
func (v *AnomalyValidator) Order(prev Vec2, contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		di := prev.Distance(contacts[i].Point)
		dj := prev.Distance(contacts[j].Point)
		if di != dj {
			return di < dj
		}
		return contacts[i].Approach > contacts[j].Approach
	})
}

// CheckStuck advances the stuck-ball timer and applies a corrective
// impulse once it expires. The velocity gate makes the correction
// idempotent: a moving ball resets the timer and is never touched.
// Returns true if a correction was applied.
func (v *AnomalyValidator) CheckStuck(ball *Ball, governor SpeedGovernor, emit func(Event)) bool {
	if ball.State != InPlay {
		v.stuckTicks = 0
		return false
	}

	speed := ball.Speed()
	if speed > v.Threshold {
		v.stuckTicks = 0
		v.lastDir = ball.Vel.Normalize()
		return false
	}

	v.stuckTicks++
	if v.stuckTicks <= v.Timeout {
		return false
	}

	// Nudge along the last known non-degenerate direction, or straight up
	// as the deterministic default.
	dir := v.lastDir
	if dir == (Vec2{}) {
		dir = Vec2{Y: -1}
	}
	ball.Vel = dir.Scale(governor.Min)
	v.stuckTicks = 0

	emit(AnomalyCorrected{Kind: AnomalyStuckBall, Position: ball.Pos})
	return true
}

// CheckTunneling compares the ball's swept path this tick against every
// active brick. If the path crossed a brick without a collision having
// been detected (fast ball, thin collider), the ball is snapped back to
// the first intersection point and the missed contact is synthesized so
// the router still processes it this same tick. Returns the synthesized
// contacts, if any.
func (v *AnomalyValidator) CheckTunneling(s *Simulation, handled []Contact, emit func(Event)) []Contact {
	ball := &s.ball
	path := ball.Pos.Sub(ball.Prev)
	if path.LenSq() == 0 {
		return nil
	}

	bestT := 2.0
	var bestNormal Vec2
	var bestBrick *Brick

	s.bricks.Active(func(b *Brick) {
		if contactsInclude(handled, b.ID) {
			return
		}
		t, n, ok := b.Bounds.SegmentIntersect(ball.Prev, ball.Pos)
		if !ok || b.Bounds.Contains(ball.Pos) {
			// Final position inside the brick was already caught by the
			// positional detection pass.
			return
		}
		if t < bestT {
			bestT = t
			bestNormal = n
			bestBrick = b
		}
	})

	if bestBrick == nil {
		return nil
	}

	// Snap back to the first actual intersection, nudged out along the face
	// normal so the positional pass next tick does not re-enter.
	hit := ball.Prev.Add(path.Scale(bestT))
	ball.Pos = hit.Add(bestNormal.Scale(1e-6))

	c := newContact(CategoryBall, CategoryBrick, s.tick)
	c.BrickID = bestBrick.ID
	c.Point = hit
	c.Normal = bestNormal
	c.Approach = -ball.Vel.Dot(bestNormal)

	emit(AnomalyCorrected{Kind: AnomalyTunneling, Position: hit})
	return []Contact{c}
}

// contactsInclude reports whether a handled contact already targets the
// given brick.
func contactsInclude(contacts []Contact, brickID int) bool {
	for i := range contacts {
		if contacts[i].BrickID == brickID {
			return true
		}
	}
	return false
}
