package flappy

import (
	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/registry"
)

// Variant is one of the three successive versions of the game.
type Variant struct {
	ID       string
	Title    string
	Rules    Rules
	QuitKeys []string // Key names, in Bubble Tea notation
}

var (
	// Classic is the bird alone: fall, flap, die at the edges.
	Classic = Variant{
		ID:       "flappy-v1",
		Title:    "Flappy Bird (classic)",
		Rules:    Rules{},
		QuitKeys: []string{"esc"},
	}

	// Pipes adds scrolling obstacles.
	Pipes = Variant{
		ID:       "flappy-v2",
		Title:    "Flappy Bird (pipes)",
		Rules:    Rules{Obstacles: true},
		QuitKeys: []string{"esc"},
	}

	// Full adds scoring and the play-again prompt.
	Full = Variant{
		ID:       "flappy",
		Title:    "Flappy Bird",
		Rules:    Rules{Obstacles: true, Scoring: true, Prompt: true},
		QuitKeys: []string{"q"},
	}
)

// Variants returns all variants in release order.
func Variants() []Variant {
	return []Variant{Classic, Pipes, Full}
}

// Register the variants with the registry
func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func(cfg config.FlappyConfig) registry.Game {
			return New(v, cfg)
		})
	}
}
