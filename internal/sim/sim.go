package sim

// Config holds every tunable the collision core needs. It is validated
// once at construction; a bad config is the only fatal failure mode.
type Config struct {
	MinSpeed    float64 // Lower speed bound, cells per tick
	MaxSpeed    float64 // Upper speed bound, cells per tick
	LaunchSpeed float64 // Serve speed, must lie inside [MinSpeed, MaxSpeed]

	MinBounceAngle float64 // Degrees, right-edge paddle bounce
	MaxBounceAngle float64 // Degrees, left-edge paddle bounce

	StuckSpeedThreshold float64 // Speed below which the ball counts as stuck
	StuckTimeoutSeconds float64 // Simulated seconds before corrective impulse

	DeathZoneOffset float64 // Rows below the paddle surface, pre-scale
	DeathZoneDepth  float64

	PowerUpFallSpeed float64 // Cells per tick for falling pickups

	TickRate int // Fixed simulation rate, Hz
}

// DefaultConfig returns the tuning used by the shipped game.
func DefaultConfig() Config {
	return Config{
		MinSpeed:            0.15,
		MaxSpeed:            0.8,
		LaunchSpeed:         0.35,
		MinBounceAngle:      15,
		MaxBounceAngle:      165,
		StuckSpeedThreshold: 0.05,
		StuckTimeoutSeconds: 2,
		DeathZoneOffset:     1,
		DeathZoneDepth:      2,
		PowerUpFallSpeed:    0.2,
		TickRate:            60,
	}
}

// Layout describes the static level geometry the external level generator
// supplies once at level start.
type Layout struct {
	Field           Rect // Playable area; walls sit on its top/left/right edges
	PaddleY         float64
	PaddleHalfWidth float64
	Scale           float64 // Resolution scale for the death zone, 1 = reference size
	Bricks          []Brick
}

// Input is what the external input layer supplies each tick: the paddle
// position along its axis and whether a launch was requested. The core
// has no further contract with the input side.
type Input struct {
	PaddleX float64
	Launch  bool
}

// launchOffset gives serves a slight rightward bias so a fresh ball does
// not ping-pong vertically between the top wall and the paddle.
const launchOffset = 0.25

// Simulation is the owned aggregate holding all subsystem state. It is
// constructed once, advanced by Step from a single goroutine, and exposes
// state only through read accessors and the per-tick event slice. No
// ambient globals, no background work, no blocking on the tick path.
type Simulation struct {
	cfg   Config
	field Rect

	ball     Ball
	paddle   Paddle
	bricks   *BrickSet
	powerups []PowerUp

	matrix      *CategoryMatrix
	bounce      BounceCalculator
	governor    SpeedGovernor
	boundary    *BoundaryContainment
	coordinator *DestructionCoordinator
	validator   *AnomalyValidator
	router      *CollisionRouter

	tick          uint64
	nextPowerUpID int
	events        []Event
	contacts      []Contact
}

// New validates the configuration and layout and assembles the simulation.
// Any *ConfigurationError returned here means the game must refuse to
// start and report the specific problem.
func New(cfg Config, layout Layout) (*Simulation, error) {
	if err := validate(cfg, layout); err != nil {
		return nil, err
	}

	governor := SpeedGovernor{Min: cfg.MinSpeed, Max: cfg.MaxSpeed}
	bounce := BounceCalculator{MinAngle: cfg.MinBounceAngle, MaxAngle: cfg.MaxBounceAngle}

	timeoutTicks := int(cfg.StuckTimeoutSeconds * float64(cfg.TickRate))
	validator := NewAnomalyValidator(cfg.StuckSpeedThreshold, timeoutTicks)

	boundary := &BoundaryContainment{
		Walls: newWalls(layout.Field),
		Zone: DeathZone{
			OffsetY: cfg.DeathZoneOffset,
			Depth:   cfg.DeathZoneDepth,
			Scale:   layout.Scale,
			left:    layout.Field.Min.X,
			right:   layout.Field.Max.X,
		},
	}

	bricks := NewBrickSet(layout.Bricks)
	coordinator := NewDestructionCoordinator(bricks)

	s := &Simulation{
		cfg:   cfg,
		field: layout.Field,
		paddle: Paddle{
			X:         layout.Field.Center().X,
			Y:         layout.PaddleY,
			HalfWidth: layout.PaddleHalfWidth,
			MinX:      layout.Field.Min.X + layout.PaddleHalfWidth,
			MaxX:      layout.Field.Max.X - layout.PaddleHalfWidth,
		},
		bricks:      bricks,
		matrix:      NewCategoryMatrix(),
		bounce:      bounce,
		governor:    governor,
		boundary:    boundary,
		coordinator: coordinator,
		validator:   validator,
		events:      make([]Event, 0, 16),
		contacts:    make([]Contact, 0, 16),
	}
	s.router = newCollisionRouter(s.matrix, bounce, governor, boundary, coordinator, validator)

	s.placeBallOnPaddle()
	s.boundary.Zone.Reposition(&s.paddle)

	return s, nil
}

// validate rejects an unstartable setup with a specific ConfigurationError.
func validate(cfg Config, layout Layout) error {
	switch {
	case cfg.TickRate <= 0:
		return configErr("tick_rate", "must be positive, got %d", cfg.TickRate)
	case cfg.MinSpeed <= 0:
		return configErr("min_speed", "must be positive, got %g", cfg.MinSpeed)
	case cfg.MaxSpeed < cfg.MinSpeed:
		return configErr("max_speed", "must be >= min_speed %g, got %g", cfg.MinSpeed, cfg.MaxSpeed)
	case cfg.LaunchSpeed < cfg.MinSpeed || cfg.LaunchSpeed > cfg.MaxSpeed:
		return configErr("launch_speed", "must lie in [%g, %g], got %g", cfg.MinSpeed, cfg.MaxSpeed, cfg.LaunchSpeed)
	case cfg.MinBounceAngle <= 0 || cfg.MaxBounceAngle >= 180 || cfg.MinBounceAngle >= cfg.MaxBounceAngle:
		return configErr("bounce_angles", "need 0 < min < max < 180, got [%g, %g]", cfg.MinBounceAngle, cfg.MaxBounceAngle)
	case cfg.StuckSpeedThreshold <= 0 || cfg.StuckSpeedThreshold >= cfg.MinSpeed:
		return configErr("stuck_speed_threshold", "must lie in (0, min_speed), got %g", cfg.StuckSpeedThreshold)
	case cfg.StuckTimeoutSeconds <= 0:
		return configErr("stuck_timeout_seconds", "must be positive, got %g", cfg.StuckTimeoutSeconds)
	case cfg.PowerUpFallSpeed <= 0:
		return configErr("powerup_fall_speed", "must be positive, got %g", cfg.PowerUpFallSpeed)
	}

	switch {
	case layout.Field.Width() <= 0 || layout.Field.Height() <= 0:
		return configErr("field", "degenerate playfield %gx%g", layout.Field.Width(), layout.Field.Height())
	case layout.PaddleHalfWidth <= 0:
		return configErr("paddle", "half-width must be positive, got %g", layout.PaddleHalfWidth)
	case layout.PaddleY <= layout.Field.Min.Y || layout.PaddleY >= layout.Field.Max.Y:
		return configErr("paddle", "row %g outside playfield", layout.PaddleY)
	case layout.Scale <= 0:
		return configErr("scale", "must be positive, got %g", layout.Scale)
	case len(layout.Bricks) == 0:
		return configErr("bricks", "level has no bricks")
	}

	return nil
}

// Step advances the simulation by exactly one fixed tick. The returned
// events are valid until the next call to Step; consumers copy what they
// keep. Step never fails: everything recoverable is corrected in-tick.
func (s *Simulation) Step(in Input) []Event {
	s.tick++
	s.events = s.events[:0]

	// Paddle position comes from the input collaborator; the core only
	// clamps it to the movement bounds.
	s.paddle.X = clampF(in.PaddleX, s.paddle.MinX, s.paddle.MaxX)
	s.boundary.Zone.Reposition(&s.paddle)

	switch s.ball.State {
	case LaunchReady:
		s.placeBallOnPaddle()
		if in.Launch {
			s.ball.State = Launching
		}
	case Launching:
		s.ball.Vel, _ = s.bounce.Bounce(launchOffset, s.cfg.LaunchSpeed)
		s.ball.State = InPlay
	}

	s.advancePowerUps()

	if s.ball.State == InPlay {
		s.ball.advance()
	}

	s.contacts = s.detectContacts(s.contacts[:0])

	sawZone := false
	for i := range s.contacts {
		if s.contacts[i].B == CategoryDeathZone {
			sawZone = true
			break
		}
	}

	handled := s.router.Route(s, s.contacts)

	if s.ball.State == InPlay {
		if extra := s.validator.CheckTunneling(s, handled, s.emit); len(extra) > 0 {
			s.router.Route(s, extra)
		}
		s.validator.CheckStuck(&s.ball, s.governor, s.emit)

		// Unconditional drift-correction pass.
		s.ball.Vel = s.governor.Clamp(s.ball.Vel)

		if !sawZone {
			// Ball is outside the zone; release the crossing debounce.
			s.boundary.Zone.Crossed(&s.ball)
		}
	}

	return s.events
}

// LoadLevel atomically replaces the brick set between ticks and parks the
// ball back on the paddle. Used at level transitions; never call mid-tick.
func (s *Simulation) LoadLevel(bricks []Brick) error {
	if len(bricks) == 0 {
		return configErr("bricks", "level has no bricks")
	}
	s.bricks = NewBrickSet(bricks)
	s.coordinator = NewDestructionCoordinator(s.bricks)
	s.router.coordinator = s.coordinator
	s.clearPowerUps()
	s.resetBall()
	return nil
}

// ResetBall parks the ball on the paddle in Ready state, e.g. after a life
// loss handled by the game layer, or at level start.
func (s *Simulation) ResetBall() {
	s.resetBall()
}

func (s *Simulation) resetBall() {
	s.ball.State = LaunchReady
	s.ball.Vel = Vec2{}
	s.placeBallOnPaddle()
	s.boundary.Zone.Reset()
	s.validator.Reset()
}

// loseBall handles a debounced death-zone crossing: one BallLost event,
// pickup cleanup, and a reset to Ready.
func (s *Simulation) loseBall(pos Vec2) {
	s.emit(BallLost{Position: pos})
	s.clearPowerUps()
	s.resetBall()
}

// placeBallOnPaddle centers the ball just above the paddle surface.
func (s *Simulation) placeBallOnPaddle() {
	s.ball.Pos = Vec2{X: s.paddle.X, Y: s.paddle.Y - 1}
	s.ball.Prev = s.ball.Pos
}

// emit appends an event to this tick's output. Emission never blocks.
func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

// Ball returns the live ball state. Callers must treat it as read-only.
func (s *Simulation) Ball() *Ball {
	return &s.ball
}

// Paddle returns the live paddle state. Callers must treat it as read-only.
func (s *Simulation) Paddle() *Paddle {
	return &s.paddle
}

// Bricks returns the active brick set.
func (s *Simulation) Bricks() *BrickSet {
	return s.bricks
}

// PowerUps returns the live pickups. Valid until the next Step.
func (s *Simulation) PowerUps() []PowerUp {
	return s.powerups
}

// DeathZoneBounds returns the current trigger region, for rendering and
// tests.
func (s *Simulation) DeathZoneBounds() Rect {
	return s.boundary.Zone.Bounds()
}

// Tick returns the number of ticks simulated so far.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// DroppedContacts returns how many contacts the category matrix has
// silently discarded, for diagnostics.
func (s *Simulation) DroppedContacts() uint64 {
	return s.router.Dropped()
}

// Config returns the validated configuration the simulation runs with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Field returns the playfield rect.
func (s *Simulation) Field() Rect {
	return s.field
}
