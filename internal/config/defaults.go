package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in flappy configuration.
// The bird is drawn as "o)>" at column 5 and falls no faster than 2 rows per tick.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpSpeed:   2.0,
			MinVelocity: -2.0,
			PipeSpeed:   1.0,
		},
		Obstacles: FlappyObstacles{
			Count:       4,
			GapConstant: 6,
		},
		Bird: FlappyBird{
			X:     5,
			Width: 3,
			Glyph: "o)>",
		},
		Timing: FlappyTiming{
			TickMS: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
