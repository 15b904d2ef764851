package game

import "math"

// Snapshot captures the observable game state for determinism testing.
// Float fields are stored as raw IEEE-754 bits so two runs compare
// bit-exact, not approximately.
type Snapshot struct {
	Tick            uint64
	PaddleX         uint64
	Score           int
	Lives           int
	LevelIndex      int
	EndlessCycle    int
	BricksRemaining int
	State           string
	ServeTicks      int

	BallState uint64
	BallPosX  uint64
	BallPosY  uint64
	BallVelX  uint64
	BallVelY  uint64

	// Each brick is 3 values: ID, HP, destroyed flag.
	BrickData []uint64

	// Each pickup is 3 values: ID, X bits, Y bits.
	PickupData []uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            uint64(g.tick), //#nosec G115 -- tick count is always positive
		PaddleX:         math.Float64bits(g.paddleX),
		Score:           g.score,
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		EndlessCycle:    g.endlessCycle,
		State:           g.state,
		ServeTicks:      g.serveTicks,
	}
	if g.s == nil {
		return snap
	}

	ball := g.s.Ball()
	snap.BallState = uint64(ball.State) //#nosec G115 -- small enum
	snap.BallPosX = math.Float64bits(ball.Pos.X)
	snap.BallPosY = math.Float64bits(ball.Pos.Y)
	snap.BallVelX = math.Float64bits(ball.Vel.X)
	snap.BallVelY = math.Float64bits(ball.Vel.Y)
	snap.BricksRemaining = g.s.Bricks().Remaining()

	bricks := g.s.Bricks()
	snap.BrickData = make([]uint64, 0, bricks.Len()*3)
	for i := range bricks.Len() {
		b := bricks.Get(i)
		destroyed := uint64(0)
		if b.Destroyed {
			destroyed = 1
		}
		snap.BrickData = append(snap.BrickData,
			uint64(b.ID), uint64(b.HP), destroyed) //#nosec G115 -- non-negative
	}

	for _, p := range g.s.PowerUps() {
		snap.PickupData = append(snap.PickupData,
			uint64(p.ID), //#nosec G115 -- non-negative
			math.Float64bits(p.Pos.X), math.Float64bits(p.Pos.Y))
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.PaddleX
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndlessCycle)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeTicks)      //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	h = h*31 + snap.BallState
	h = h*31 + snap.BallPosX
	h = h*31 + snap.BallPosY
	h = h*31 + snap.BallVelX
	h = h*31 + snap.BallVelY

	for _, v := range snap.BrickData {
		h = h*31 + v
	}
	for _, v := range snap.PickupData {
		h = h*31 + v
	}

	return h
}
