package sim

// SpeedGovernor keeps ball speed inside [Min, Max]. It runs after every
// handler that changes velocity, and once more per tick as a drift
// correction pass: repeated floating-point reflections can creep the
// magnitude even when no single step leaves the window.
type SpeedGovernor struct {
	Min, Max float64
}

// Clamp returns v with the same direction and its magnitude clamped into
// [Min, Max]. A zero vector is returned unchanged; direction recovery for
// degenerate velocities is the stuck-ball watchdog's job, not the
// governor's.
func (g SpeedGovernor) Clamp(v Vec2) Vec2 {
	speed := v.Len()
	if speed == 0 {
		return v
	}
	if speed < g.Min {
		return v.Scale(g.Min / speed)
	}
	if speed > g.Max {
		return v.Scale(g.Max / speed)
	}
	return v
}
