// Package config provides YAML-based game configuration loading and
// validation for the flappy variants.
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfig is returned when tuning values make no physical sense.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrScreenTooSmall is returned when the playfield cannot fit a single
	// valid obstacle.
	ErrScreenTooSmall = errors.New("screen too small")
)

// FlappyConfig contains all configuration for the flappy game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Bird      FlappyBird      `yaml:"bird"`
	Timing    FlappyTiming    `yaml:"timing"`
}

// FlappyPhysics defines the fixed-step kinematic constants.
// Positive velocity moves the bird up (row 0 is the top of the screen).
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Subtracted from velocity every tick
	JumpSpeed   float64 `yaml:"jump_speed"`   // Velocity set (not added) on jump
	MinVelocity float64 `yaml:"min_velocity"` // Terminal velocity floor, negative
	PipeSpeed   float64 `yaml:"pipe_speed"`   // Columns per tick obstacles move left
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Count       int `yaml:"count"`        // Fixed size of the obstacle set
	GapConstant int `yaml:"gap_constant"` // max_obstacle_height = height - gap_constant
}

// FlappyBird defines the bird's fixed horizontal footprint.
type FlappyBird struct {
	X     int    `yaml:"x"`
	Width int    `yaml:"width"`
	Glyph string `yaml:"glyph"`
}

// FlappyTiming defines the tick cadence.
type FlappyTiming struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the configured cadence as a duration.
func (t FlappyTiming) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// MaxObstacleHeight returns the largest allowed upper+lower span sum for a
// field of the given height.
func (c FlappyConfig) MaxObstacleHeight(height int) int {
	return height - c.Obstacles.GapConstant
}

// MinObstacleHeight returns the smallest allowed upper+lower span sum.
// Rounded up so that the sum is never below height/2.
func (c FlappyConfig) MinObstacleHeight(height int) int {
	return (height + 1) / 2
}

// Validate checks the tuning values independently of screen size.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.MinVelocity >= 0:
		return fmt.Errorf("%w: physics.min_velocity must be negative, got %v", ErrInvalidConfig, c.Physics.MinVelocity)
	case c.Physics.JumpSpeed <= 0:
		return fmt.Errorf("%w: physics.jump_speed must be positive, got %v", ErrInvalidConfig, c.Physics.JumpSpeed)
	case c.Physics.PipeSpeed <= 0:
		return fmt.Errorf("%w: physics.pipe_speed must be positive, got %v", ErrInvalidConfig, c.Physics.PipeSpeed)
	case c.Obstacles.Count < 1:
		return fmt.Errorf("%w: obstacles.count must be at least 1, got %d", ErrInvalidConfig, c.Obstacles.Count)
	case c.Obstacles.GapConstant < 1:
		return fmt.Errorf("%w: obstacles.gap_constant must be at least 1, got %d", ErrInvalidConfig, c.Obstacles.GapConstant)
	case c.Bird.X < 0:
		return fmt.Errorf("%w: bird.x must not be negative, got %d", ErrInvalidConfig, c.Bird.X)
	case c.Bird.Width < 1:
		return fmt.Errorf("%w: bird.width must be at least 1, got %d", ErrInvalidConfig, c.Bird.Width)
	case c.Bird.Glyph == "":
		return fmt.Errorf("%w: bird.glyph must not be empty", ErrInvalidConfig)
	case c.Timing.TickMS < 1:
		return fmt.Errorf("%w: timing.tick_ms must be at least 1, got %d", ErrInvalidConfig, c.Timing.TickMS)
	}
	return nil
}

// ValidateScreen checks that a width x height playfield admits at least one
// valid obstacle and leaves room for the bird.
func (c FlappyConfig) ValidateScreen(width, height int) error {
	minSum := c.MinObstacleHeight(height)
	maxSum := c.MaxObstacleHeight(height)

	if minSum < 2 {
		return fmt.Errorf("%w: height %d leaves no room for two spans", ErrScreenTooSmall, height)
	}
	if maxSum < minSum {
		return fmt.Errorf("%w: height %d with gap constant %d allows obstacle heights up to %d, need at least %d",
			ErrScreenTooSmall, height, c.Obstacles.GapConstant, maxSum, minSum)
	}
	if width <= c.Bird.X+c.Bird.Width {
		return fmt.Errorf("%w: width %d does not fit the bird at columns %d-%d",
			ErrScreenTooSmall, width, c.Bird.X, c.Bird.X+c.Bird.Width-1)
	}
	return nil
}

// MinScreen returns the smallest playfield the config accepts.
func (c FlappyConfig) MinScreen() (width, height int) {
	height = 2 * c.Obstacles.GapConstant
	if height < 3 {
		height = 3
	}
	return c.Bird.X + c.Bird.Width + 1, height
}
