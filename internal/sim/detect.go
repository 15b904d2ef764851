package sim

// Contact is a candidate collision produced by the detection step.
// Contacts are ephemeral: constructed during a tick, consumed by the
// router within the same tick, never persisted.
type Contact struct {
	A, B     Category
	Point    Vec2
	Normal   Vec2 // Unit surface normal of B, pointing back at A
	Approach float64
	Tick     uint64

	WallIndex int // Index into the boundary's wall list, or -1
	BrickID   int // Brick participant, or -1
	PowerUpID int // Pickup participant, or -1
}

// newContact returns a contact with participant IDs cleared.
func newContact(a, b Category, tick uint64) Contact {
	return Contact{A: a, B: b, Tick: tick, WallIndex: -1, BrickID: -1, PowerUpID: -1}
}

// detectContacts samples the post-integration state and produces the raw
// candidate contacts for this tick. It replaces host-engine collision
// callbacks with an explicit step whose output the router consumes
// synchronously, so no engine callback ordering can leak into the game
// rules. Primary detection is positional; the anomaly validator's swept
// checks backstop anything a fast ball skipped over.
func (s *Simulation) detectContacts(dst []Contact) []Contact {
	if s.ball.State == InPlay {
		dst = s.detectBallContacts(dst)
	}
	dst = s.detectPowerUpContacts(dst)
	return dst
}

// detectBallContacts finds wall, paddle, brick, and death-zone candidates
// for the ball.
func (s *Simulation) detectBallContacts(dst []Contact) []Contact {
	ball := &s.ball

	// Walls: penetration past the half-plane.
	for i := range s.boundary.Walls {
		w := &s.boundary.Walls[i]
		if w.penetration(ball.Pos) <= 0 {
			continue
		}
		c := newContact(CategoryBall, CategoryBoundary, s.tick)
		c.WallIndex = i
		c.Point = ball.Pos.Add(w.Normal.Scale(w.penetration(ball.Pos)))
		c.Normal = w.Normal
		c.Approach = -ball.Vel.Dot(w.Normal)
		dst = append(dst, c)
	}

	// Paddle: swept segment against the paddle rect, only while the ball is
	// descending from above the paddle's top face. The sweep keeps ordinary
	// paddle saves reliable at speed; a ball already level with or below the
	// paddle line is past saving and falls through to the death zone.
	if ball.Vel.Y > 0 {
		bounds := s.paddle.Bounds()
		if ball.Prev.Y <= bounds.Min.Y {
			if t, _, ok := bounds.SegmentIntersect(ball.Prev, ball.Pos); ok {
				c := newContact(CategoryBall, CategoryPaddle, s.tick)
				c.Point = ball.Prev.Add(ball.Pos.Sub(ball.Prev).Scale(t))
				c.Normal = Vec2{Y: -1}
				c.Approach = ball.Vel.Y
				dst = append(dst, c)
			}
		}
	}

	// Bricks: positional overlap. Adjacent bricks can both claim the ball at
	// a corner; the validator orders the resulting multi-collision.
	s.bricks.Active(func(b *Brick) {
		if !b.Bounds.Contains(ball.Pos) {
			return
		}
		n := b.Bounds.nearestFaceNormal(ball.Pos)
		c := newContact(CategoryBall, CategoryBrick, s.tick)
		c.BrickID = b.ID
		c.Point = ball.Pos
		c.Normal = n
		c.Approach = -ball.Vel.Dot(n)
		dst = append(dst, c)
	})

	// Death zone: geometric containment; the debounce is applied by the
	// boundary handler when the contact is routed.
	if s.boundary.Zone.Bounds().Contains(ball.Pos) || ball.Pos.Y >= s.boundary.Zone.Bounds().Min.Y {
		c := newContact(CategoryBall, CategoryDeathZone, s.tick)
		c.Point = ball.Pos
		c.Normal = Vec2{Y: -1}
		c.Approach = ball.Vel.Y
		dst = append(dst, c)
	}

	return dst
}

// detectPowerUpContacts finds paddle catches and floor exits for falling
// pickups.
func (s *Simulation) detectPowerUpContacts(dst []Contact) []Contact {
	paddleBounds := s.paddle.Bounds()
	floor := s.field.Max.Y

	for i := range s.powerups {
		p := &s.powerups[i]
		if !p.Active {
			continue
		}

		if paddleBounds.Contains(p.Pos) {
			c := newContact(CategoryPowerUp, CategoryPaddle, s.tick)
			c.PowerUpID = p.ID
			c.Point = p.Pos
			c.Normal = Vec2{Y: -1}
			c.Approach = p.Vel.Y
			dst = append(dst, c)
			continue
		}

		if p.Pos.Y >= floor {
			c := newContact(CategoryPowerUp, CategoryBoundary, s.tick)
			c.PowerUpID = p.ID
			c.Point = p.Pos
			c.Normal = Vec2{Y: -1}
			c.Approach = p.Vel.Y
			dst = append(dst, c)
		}
	}

	return dst
}
