// Package config provides YAML-based game configuration loading and
// difficulty presets for brickwave.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Bounce     BounceConfig     `yaml:"bounce"`
	Anomaly    AnomalyConfig    `yaml:"anomaly"`
	DeathZone  DeathZoneConfig  `yaml:"death_zone"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines ball and paddle motion parameters, in cells per
// tick.
type PhysicsConfig struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	MinBallSpeed float64 `yaml:"min_ball_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
}

// BounceConfig defines the paddle bounce angle window, in degrees from
// the horizontal with 90 being straight up.
type BounceConfig struct {
	MinAngle float64 `yaml:"min_angle"`
	MaxAngle float64 `yaml:"max_angle"`
}

// AnomalyConfig defines the stuck-ball watchdog parameters.
type AnomalyConfig struct {
	StuckSpeedThreshold float64 `yaml:"stuck_speed_threshold"`
	StuckTimeoutSeconds float64 `yaml:"stuck_timeout_seconds"`
}

// DeathZoneConfig positions the out-of-bounds trigger relative to the
// paddle, in reference rows before resolution scaling.
type DeathZoneConfig struct {
	Offset float64 `yaml:"offset"`
	Depth  float64 `yaml:"depth"`
}

// PaddleConfig defines paddle dimensions in cells.
type PaddleConfig struct {
	Width int `yaml:"width"`
}

// GameplayConfig defines rules outside the physics core.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	ServeDelay int `yaml:"serve_delay"` // Ticks before the player may re-serve after a miss
}

// PowerUpConfig defines pickup behavior.
type PowerUpConfig struct {
	FallSpeed float64 `yaml:"fall_speed"`
}

// DifficultyConfig controls the endless-mode ramp.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	SpeedRampPerCycle float64 `yaml:"speed_ramp_per_cycle"` // Added to ball speed each level cycle
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 12
		cfg.Physics.BallSpeed = 0.28
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 0.45
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
