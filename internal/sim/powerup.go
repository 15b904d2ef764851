package sim

// PowerUp is a falling pickup released by a destroyed power-up brick. The
// core only models the hook: spawning, falling, paddle collection, and
// despawn at the bottom boundary. What a collected pickup does is the
// consumer's business.
type PowerUp struct {
	ID     int
	Pos    Vec2
	Vel    Vec2
	Active bool
}

// spawnPowerUp releases a pickup at the given position, falling straight
// down at the configured speed.
func (s *Simulation) spawnPowerUp(at Vec2) {
	p := PowerUp{
		ID:     s.nextPowerUpID,
		Pos:    at,
		Vel:    Vec2{Y: s.cfg.PowerUpFallSpeed},
		Active: true,
	}
	s.nextPowerUpID++
	s.powerups = append(s.powerups, p)
	s.emit(PowerUpSpawned{PowerUpID: p.ID, Position: p.Pos})
}

// powerUp returns the pickup with the given ID, or nil.
func (s *Simulation) powerUp(id int) *PowerUp {
	for i := range s.powerups {
		if s.powerups[i].ID == id {
			return &s.powerups[i]
		}
	}
	return nil
}

// advancePowerUps integrates pickup motion and compacts out despawned
// entries.
func (s *Simulation) advancePowerUps() {
	active := s.powerups[:0]
	for i := range s.powerups {
		p := s.powerups[i]
		if !p.Active {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel)
		active = append(active, p)
	}
	s.powerups = active
}

// clearPowerUps drops every pickup, used on life loss.
func (s *Simulation) clearPowerUps() {
	s.powerups = s.powerups[:0]
}
