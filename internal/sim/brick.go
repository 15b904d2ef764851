package sim

// BrickType classifies bricks by their response to hits.
type BrickType uint8

const (
	// BrickNormal is destroyed when its hit points reach zero.
	BrickNormal BrickType = iota
	// BrickReinforced starts with extra hit points.
	BrickReinforced
	// BrickIndestructible never loses hit points and never destructs.
	BrickIndestructible
	// BrickPowerUp releases a falling pickup when destroyed.
	BrickPowerUp
)

// String returns a human-readable name for the brick type.
func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "Normal"
	case BrickReinforced:
		return "Reinforced"
	case BrickIndestructible:
		return "Indestructible"
	case BrickPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// Brick is a single destructible (or not) obstacle. Created in bulk at
// level setup and owned by the BrickSet thereafter. The Destroyed flag is
// monotonic: once true it never reverts.
type Brick struct {
	ID        int
	Type      BrickType
	HP        int
	Destroyed bool
	Bounds    Rect
	Points    int // Score value reported with BrickDestroyed, for consumers
}

// BrickSet is the active collision set of bricks for the current level.
// A brick leaves the set the tick it is marked destroyed and is never
// revived; level transitions replace the whole set between ticks.
type BrickSet struct {
	bricks []Brick
}

// NewBrickSet takes ownership of the given bricks, assigning sequential IDs.
func NewBrickSet(bricks []Brick) *BrickSet {
	for i := range bricks {
		bricks[i].ID = i
	}
	return &BrickSet{bricks: bricks}
}

// Get returns the brick with the given ID, or nil if the ID is unknown.
func (s *BrickSet) Get(id int) *Brick {
	if id < 0 || id >= len(s.bricks) {
		return nil
	}
	return &s.bricks[id]
}

// Len returns the total number of bricks, destroyed or not.
func (s *BrickSet) Len() int {
	return len(s.bricks)
}

// Active calls fn for every brick still in the collision set.
func (s *BrickSet) Active(fn func(*Brick)) {
	for i := range s.bricks {
		if !s.bricks[i].Destroyed {
			fn(&s.bricks[i])
		}
	}
}

// Remaining counts the destructible bricks still standing. Indestructible
// bricks are excluded so a level with only those left counts as cleared.
func (s *BrickSet) Remaining() int {
	n := 0
	for i := range s.bricks {
		b := &s.bricks[i]
		if !b.Destroyed && b.Type != BrickIndestructible {
			n++
		}
	}
	return n
}

// DestructionCoordinator applies ball hits to bricks. It owns the
// exactly-once destruction guarantee: a second hit routed to an
// already-destroyed brick in the same tick is a guarded no-op, never an
// error.
type DestructionCoordinator struct {
	bricks *BrickSet
}

// NewDestructionCoordinator creates a coordinator over the given set.
func NewDestructionCoordinator(bricks *BrickSet) *DestructionCoordinator {
	return &DestructionCoordinator{bricks: bricks}
}

// Hit processes one valid Ball<->Brick collision. It decrements hit points
// (indestructible bricks excepted), marks destruction exactly once, and
// emits BrickHit or BrickDestroyed through emit. Returns the brick if it
// was destroyed by this hit, nil otherwise.
func (c *DestructionCoordinator) Hit(id int, emit func(Event)) *Brick {
	b := c.bricks.Get(id)
	if b == nil || b.Destroyed {
		// Double-destruction attempt: the multi-collision path can route two
		// events at the same brick in one tick. Guarded no-op.
		return nil
	}

	if b.Type == BrickIndestructible {
		return nil
	}

	b.HP--
	if b.HP > 0 {
		emit(BrickHit{BrickID: b.ID, RemainingHP: b.HP})
		return nil
	}

	b.Destroyed = true
	emit(BrickDestroyed{BrickID: b.ID, Type: b.Type, Position: b.Bounds.Center()})
	return b
}
