package game

import (
	"fmt"

	"github.com/ndemidov/brickwave/internal/config"
	"github.com/ndemidov/brickwave/internal/core"
	"github.com/ndemidov/brickwave/internal/sim"
)

const (
	// GameID identifies brickwave in score storage.
	GameID = "brickwave"

	minScreenW = 40
	minScreenH = 16

	levelClearBonus = 100
)

// Play states.
const (
	stateServe    = "serve"
	statePlaying  = "playing"
	stateGameOver = "gameover"
	stateWin      = "win"
)

// Mode selects the progression rules.
type Mode int

const (
	// ModeCampaign plays the built-in levels once; clearing the last
	// level wins the run.
	ModeCampaign Mode = iota
	// ModeEndless cycles the levels forever, ramping the ball speed
	// each full cycle.
	ModeEndless
)

// Options configures a new Game before Reset.
type Options struct {
	// ConfigPath overrides the config search order when non-empty.
	ConfigPath string
	// Preset applies a difficulty preset on top of the loaded config.
	Preset config.DifficultyPreset
	// Mode selects campaign or endless progression.
	Mode Mode
}

// Telemetry accumulates diagnostic counters over a run. Stored
// alongside the score when the run ends.
type Telemetry struct {
	StuckCorrections  int
	TunnelCorrections int
	DroppedContacts   int
}

// Game adapts the collision core to the platform Game interface.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	cfg     config.Config

	s       *sim.Simulation
	paddleX float64

	state        string
	paused       bool
	tick         int
	serveTicks   int
	score        int
	lives        int
	levelIndex   int
	endlessCycle int

	telemetry Telemetry

	// loadErr holds a config reload or level build failure that happened
	// mid-run. Step freezes the game while it is set.
	loadErr error

	screenTooSmall bool
}

// New creates a brickwave game. Reset must be called before Step.
func New(opts Options) *Game {
	return &Game{opts: opts, state: stateServe}
}

// ID implements core.Game.
func (g *Game) ID() string { return GameID }

// Title implements core.Game.
func (g *Game) Title() string { return "Brickwave" }

// Reset implements core.Game. It loads the config, applies the
// difficulty preset, and builds the first level. A broken config
// surfaces as a sim.ConfigurationError.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.runtime = cfg
	g.loadErr = nil
	g.screenTooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
	if g.screenTooSmall {
		return nil
	}

	loaded, err := config.Load(g.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.ApplyPreset(&loaded, g.opts.Preset)
	g.cfg = loaded

	g.tick = 0
	g.score = 0
	g.lives = loaded.Gameplay.Lives
	g.levelIndex = 0
	g.endlessCycle = 0
	g.paused = false
	g.telemetry = Telemetry{}

	return g.loadLevel(g.levelIndex)
}

// loadLevel rebuilds the simulation for the level at the given index,
// preserving score and lives. In endless mode the ball speed window is
// scaled by the accumulated ramp.
func (g *Game) loadLevel(index int) error {
	level := GetLevel(index)

	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)

	// One column of wall on each side, two HUD rows on top.
	field := sim.NewRect(1, 2, w-2, h-2)
	scale := h / 24.0

	ramp := 1.0
	if g.cfg.Difficulty.Enabled && g.opts.Mode == ModeEndless {
		ramp = 1.0 + g.cfg.Difficulty.SpeedRampPerCycle*float64(g.endlessCycle)
	}

	brickW := (w - 2) / float64(level.Width)
	if brickW < 1 {
		brickW = 1
	}
	originX := field.Min.X + (field.Width()-brickW*float64(level.Width))/2
	bricks := level.Bricks(originX, field.Min.Y+1, brickW, 1)

	simCfg := sim.Config{
		MinSpeed:            g.cfg.Physics.MinBallSpeed * ramp,
		MaxSpeed:            g.cfg.Physics.MaxBallSpeed * ramp,
		LaunchSpeed:         g.cfg.Physics.BallSpeed * ramp,
		MinBounceAngle:      g.cfg.Bounce.MinAngle,
		MaxBounceAngle:      g.cfg.Bounce.MaxAngle,
		StuckSpeedThreshold: g.cfg.Anomaly.StuckSpeedThreshold,
		StuckTimeoutSeconds: g.cfg.Anomaly.StuckTimeoutSeconds,
		DeathZoneOffset:     g.cfg.DeathZone.Offset,
		DeathZoneDepth:      g.cfg.DeathZone.Depth,
		PowerUpFallSpeed:    g.cfg.PowerUps.FallSpeed,
		TickRate:            g.runtime.TickRate,
	}
	layout := sim.Layout{
		Field:           field,
		PaddleY:         h - 2,
		PaddleHalfWidth: float64(g.cfg.Paddle.Width) / 2,
		Scale:           scale,
		Bricks:          bricks,
	}

	s, err := sim.New(simCfg, layout)
	if err != nil {
		return err
	}
	g.s = s
	g.paddleX = s.Paddle().X
	g.state = stateServe
	g.serveTicks = g.cfg.Gameplay.ServeDelay
	return nil
}

// Step implements core.Game.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if g.state == stateGameOver || g.state == stateWin {
		if input.Has(core.ActionRestart) {
			g.loadErr = g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.serveTicks > 0 {
		g.serveTicks--
	}

	if input.Has(core.ActionLeft) {
		g.paddleX -= g.cfg.Physics.PaddleSpeed
	}
	if input.Has(core.ActionRight) {
		g.paddleX += g.cfg.Physics.PaddleSpeed
	}

	launch := input.Has(core.ActionLaunch) && g.serveTicks == 0
	events := g.s.Step(sim.Input{PaddleX: g.paddleX, Launch: launch})
	g.paddleX = g.s.Paddle().X
	if launch && g.state == stateServe {
		g.state = statePlaying
	}

	cleared := false
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.BrickDestroyed:
			if b := g.s.Bricks().Get(e.BrickID); b != nil {
				g.score += b.Points
			}
			if g.s.Bricks().Remaining() == 0 {
				cleared = true
			}
		case sim.BallLost:
			g.lives--
			if g.lives <= 0 {
				g.state = stateGameOver
			} else {
				g.state = stateServe
				g.serveTicks = g.cfg.Gameplay.ServeDelay
			}
		case sim.AnomalyCorrected:
			switch e.Kind {
			case sim.AnomalyStuckBall:
				g.telemetry.StuckCorrections++
			case sim.AnomalyTunneling:
				g.telemetry.TunnelCorrections++
			}
		}
	}

	if cleared && g.state != stateGameOver {
		g.score += levelClearBonus
		g.advanceLevel()
	}

	return core.StepResult{State: g.State()}
}

// advanceLevel moves to the next level, or ends the run in campaign
// mode when the last level is cleared.
func (g *Game) advanceLevel() {
	if g.s != nil {
		g.telemetry.DroppedContacts += int(g.s.DroppedContacts())
	}
	g.levelIndex++
	if g.levelIndex >= LevelCount() {
		if g.opts.Mode == ModeCampaign {
			g.state = stateWin
			return
		}
		g.levelIndex = 0
		g.endlessCycle++
	}
	g.loadErr = g.loadLevel(g.levelIndex)
}

// State implements core.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == stateGameOver || g.state == stateWin,
		Paused:   g.paused,
	}
}

// Err returns the config reload or level build failure that froze the
// game mid-run, if any.
func (g *Game) Err() error { return g.loadErr }

// Won reports whether the run ended by clearing the campaign.
func (g *Game) Won() bool { return g.state == stateWin }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the 1-based level number reached, counting endless
// cycles as full level sets.
func (g *Game) Level() int {
	return g.endlessCycle*LevelCount() + g.levelIndex + 1
}

// Telemetry returns the run's diagnostic counters.
func (g *Game) Telemetry() Telemetry {
	t := g.telemetry
	if g.s != nil {
		t.DroppedContacts += int(g.s.DroppedContacts())
	}
	return t
}

// Duration returns the number of ticks played this run.
func (g *Game) Duration() int { return g.tick }

// Sim exposes the underlying simulation for rendering and tests.
func (g *Game) Sim() *sim.Simulation { return g.s }
