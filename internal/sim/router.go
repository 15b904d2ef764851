package sim

// CollisionRouter is the top-level dispatcher. It filters raw contacts
// through the category matrix and hands valid ones to the right handler:
// paddle contacts to the bounce calculator, brick contacts to the
// destruction coordinator, wall and death-zone contacts to boundary
// containment. Every velocity-changing response passes through the speed
// governor before the next contact is applied.
type CollisionRouter struct {
	matrix      *CategoryMatrix
	bounce      BounceCalculator
	governor    SpeedGovernor
	boundary    *BoundaryContainment
	coordinator *DestructionCoordinator
	validator   *AnomalyValidator

	dropped uint64
}

// newCollisionRouter wires the router to the simulation's subsystems.
func newCollisionRouter(m *CategoryMatrix, bc BounceCalculator, g SpeedGovernor,
	boundary *BoundaryContainment, coord *DestructionCoordinator, val *AnomalyValidator) *CollisionRouter {
	return &CollisionRouter{
		matrix:      m,
		bounce:      bc,
		governor:    g,
		boundary:    boundary,
		coordinator: coord,
		validator:   val,
	}
}

// Dropped returns how many contacts were discarded by the category matrix.
// Disallowed pairs are not errors; the count exists for diagnostics only.
func (r *CollisionRouter) Dropped() uint64 {
	return r.dropped
}

// Route filters and dispatches one tick's worth of contacts. Ball contacts
// are applied in the validator's deterministic order; each response
// mutates the live ball state so the next response sees corrected data.
// Returns the ball contacts actually applied, for the validator's
// tunneling pass.
func (r *CollisionRouter) Route(s *Simulation, contacts []Contact) []Contact {
	ballContacts := contacts[:0]

	for i := range contacts {
		c := contacts[i]
		if !r.matrix.Allowed(c.A, c.B) {
			r.dropped++
			continue
		}
		if c.A == CategoryBall {
			ballContacts = append(ballContacts, c)
			continue
		}
		r.routePowerUp(s, c)
	}

	r.validator.Order(s.ball.Prev, ballContacts)

	handled := ballContacts[:0]
	for i := range ballContacts {
		if s.ball.State != InPlay {
			// A death-zone response reset the ball; later contacts this tick
			// refer to a ball that no longer exists.
			break
		}
		c := ballContacts[i]
		r.routeBall(s, c)
		handled = append(handled, c)
	}

	return handled
}

// routeBall applies a single ball contact.
func (r *CollisionRouter) routeBall(s *Simulation, c Contact) {
	ball := &s.ball

	switch c.B {
	case CategoryBoundary:
		w := &r.boundary.Walls[c.WallIndex]
		contact := r.boundary.Reflect(ball, w)
		ball.Vel = r.governor.Clamp(ball.Vel)
		s.emit(WallBounce{Wall: w.Type, Contact: contact, Speed: ball.Speed()})

	case CategoryPaddle:
		speed := ball.Speed()
		offset, ok := s.paddle.HitOffset(c.Point.X)

		var angle float64
		if ok {
			ball.Vel, angle = r.bounce.Bounce(offset, speed)
		} else {
			// Zero-width paddle or unresolvable contact: fixed vertical
			// bounce instead of an undefined offset.
			ball.Vel, angle = r.bounce.Vertical(speed)
		}

		// Move the ball clear of the paddle so it cannot re-collide next tick.
		ball.Pos = Vec2{X: c.Point.X, Y: s.paddle.Bounds().Min.Y - 1e-6}
		ball.Vel = r.governor.Clamp(ball.Vel)
		s.emit(PaddleBounce{Contact: c.Point, Angle: angle, Speed: ball.Speed()})

	case CategoryBrick:
		if destroyed := r.coordinator.Hit(c.BrickID, s.emit); destroyed != nil && destroyed.Type == BrickPowerUp {
			s.spawnPowerUp(destroyed.Bounds.Center())
		}
		if ball.Vel.Dot(c.Normal) < 0 {
			ball.Vel = ball.Vel.Reflect(c.Normal)
		}
		r.pushOut(ball, c)
		ball.Vel = r.governor.Clamp(ball.Vel)

	case CategoryDeathZone:
		if r.boundary.Zone.Crossed(ball) {
			s.loseBall(ball.Pos)
		}
	}
}

// pushOut moves the ball outside the brick it collided with, along the
// contact normal.
func (r *CollisionRouter) pushOut(ball *Ball, c Contact) {
	b := r.coordinator.bricks.Get(c.BrickID)
	if b == nil || !b.Bounds.Contains(ball.Pos) {
		return
	}
	switch {
	case c.Normal.X < 0:
		ball.Pos.X = b.Bounds.Min.X - 1e-6
	case c.Normal.X > 0:
		ball.Pos.X = b.Bounds.Max.X + 1e-6
	case c.Normal.Y < 0:
		ball.Pos.Y = b.Bounds.Min.Y - 1e-6
	case c.Normal.Y > 0:
		ball.Pos.Y = b.Bounds.Max.Y + 1e-6
	}
}

// routePowerUp applies a pickup contact: collection by the paddle, or a
// silent despawn at the bottom boundary.
func (r *CollisionRouter) routePowerUp(s *Simulation, c Contact) {
	p := s.powerUp(c.PowerUpID)
	if p == nil || !p.Active {
		return
	}

	switch {
	case c.A == CategoryPowerUp && c.B == CategoryPaddle,
		c.A == CategoryPaddle && c.B == CategoryPowerUp:
		p.Active = false
		s.emit(PowerUpCollected{PowerUpID: p.ID, Position: p.Pos})

	case c.B == CategoryBoundary:
		p.Active = false
	}
}
