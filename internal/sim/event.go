package sim

// WallType identifies which boundary wall took part in a collision.
type WallType uint8

const (
	WallTop WallType = iota
	WallLeft
	WallRight
)

// String returns a human-readable name for the wall.
func (w WallType) String() string {
	switch w {
	case WallTop:
		return "Top"
	case WallLeft:
		return "Left"
	case WallRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AnomalyKind identifies the class of physics anomaly that was corrected.
type AnomalyKind uint8

const (
	AnomalyStuckBall AnomalyKind = iota
	AnomalyTunneling
)

// String returns a human-readable name for the anomaly kind.
func (k AnomalyKind) String() string {
	switch k {
	case AnomalyStuckBall:
		return "StuckBall"
	case AnomalyTunneling:
		return "Tunneling"
	default:
		return "Unknown"
	}
}

// Event is a one-way, fire-and-forget notification emitted by the core
// during a tick. Consumers (scoring, rendering, audio, telemetry) must
// never block the simulation loop; events are plain values collected per
// tick and handed out when Step returns.
type Event interface {
	event()
}

// PaddleBounce is emitted when the ball bounces off the paddle.
type PaddleBounce struct {
	Contact Vec2
	Angle   float64 // Outgoing angle in degrees, 90 = straight up
	Speed   float64
}

// WallBounce is emitted when the ball reflects off a boundary wall.
type WallBounce struct {
	Wall    WallType
	Contact Vec2
	Speed   float64
}

// BrickHit is emitted when a brick takes a hit but survives.
type BrickHit struct {
	BrickID     int
	RemainingHP int
}

// BrickDestroyed is emitted exactly once per brick, when its hit points
// reach zero.
type BrickDestroyed struct {
	BrickID  int
	Type     BrickType
	Position Vec2
}

// BallLost is emitted when the ball crosses the death zone.
type BallLost struct {
	Position Vec2
}

// AnomalyCorrected is a diagnostic event describing a physics anomaly the
// validator detected and repaired in-tick. It never indicates a failure.
type AnomalyCorrected struct {
	Kind     AnomalyKind
	Position Vec2
}

// PowerUpSpawned is emitted when a destroyed power-up brick releases a
// falling pickup.
type PowerUpSpawned struct {
	PowerUpID int
	Position  Vec2
}

// PowerUpCollected is emitted when the paddle catches a falling pickup.
// Effect semantics are the consumer's business; the core only reports the
// hook firing.
type PowerUpCollected struct {
	PowerUpID int
	Position  Vec2
}

func (PaddleBounce) event()     {}
func (WallBounce) event()       {}
func (BrickHit) event()         {}
func (BrickDestroyed) event()   {}
func (BallLost) event()         {}
func (AnomalyCorrected) event() {}
func (PowerUpSpawned) event()   {}
func (PowerUpCollected) event() {}
