package config

import (
	_ "embed"
)

//go:embed defaults/brickwave.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			BallSpeed:    0.35,
			MinBallSpeed: 0.15,
			MaxBallSpeed: 0.8,
			PaddleSpeed:  1.0,
		},
		Bounce: BounceConfig{
			MinAngle: 15,
			MaxAngle: 165,
		},
		Anomaly: AnomalyConfig{
			StuckSpeedThreshold: 0.05,
			StuckTimeoutSeconds: 2,
		},
		DeathZone: DeathZoneConfig{
			Offset: 1,
			Depth:  2,
		},
		Paddle: PaddleConfig{
			Width: 8,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			ServeDelay: 60,
		},
		PowerUps: PowerUpConfig{
			FallSpeed: 0.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			SpeedRampPerCycle: 0.02,
		},
	}
}
