package flappy

import (
	"fmt"
	"math/rand"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
)

// Status is the session controller state.
type Status int

const (
	StatusRunning   Status = iota
	StatusDead             // Crashed, waiting for play-again or exit
	StatusPlayAgain        // Player chose to start over
	StatusExit             // Terminal
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDead:
		return "dead"
	case StatusPlayAgain:
		return "dead_play_again"
	case StatusExit:
		return "dead_exit"
	default:
		return "unknown"
	}
}

// Rules selects which parts of the simulation a variant uses.
type Rules struct {
	Obstacles bool // Spawn and scroll obstacles
	Scoring   bool // Count gap passes
	Prompt    bool // Ask play-again/exit on death instead of exiting
}

// Geometry is the playfield size in cells, excluding the status line.
type Geometry struct {
	Width  int
	Height int
}

// Session is one run of the game from spawn to death.
type Session struct {
	cfg       config.FlappyConfig
	rules     Rules
	geom      Geometry
	footprint core.Rect
	spans     *SpanGenerator

	bird      Bird
	obstacles []Obstacle
	score     int
	status    Status
	tick      uint64
}

// NewSession validates the geometry and builds a fresh bird and obstacle set.
func NewSession(cfg config.FlappyConfig, rules Rules, geom Geometry, rng *rand.Rand) (*Session, error) {
	if err := cfg.ValidateScreen(geom.Width, geom.Height); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		rules:     rules,
		geom:      geom,
		footprint: core.NewRect(cfg.Bird.X, 0, cfg.Bird.Width, geom.Height),
		spans:     NewSpanGenerator(rng, cfg, geom.Height),
		bird:      Bird{Y: float64(geom.Height) / 2},
		status:    StatusRunning,
	}
	if rules.Obstacles {
		s.obstacles = newObstacles(cfg.Obstacles.Count, geom.Width, s.spans)
	}
	return s, nil
}

// Tick advances the session by one step: physics, collision, scoring,
// recycling. Returns the events that occurred. Ticks outside the running
// state are ignored.
func (s *Session) Tick(jump bool) []core.Event {
	if s.status != StatusRunning {
		return nil
	}
	s.tick++

	var events []core.Event
	if jump {
		events = append(events, core.EventFlap)
	}

	s.bird.Step(jump, s.cfg.Physics)
	for i := range s.obstacles {
		s.obstacles[i].Advance(s.cfg.Physics.PipeSpeed)
	}

	if s.crashed() {
		if s.rules.Prompt {
			s.status = StatusDead
		} else {
			s.status = StatusExit
		}
		return append(events, core.EventCrash)
	}

	if s.rules.Scoring {
		centre := s.centreColumn()
		for _, o := range s.obstacles {
			if o.Crossed(centre) && o.InGap(s.bird.Y, s.geom.Height) {
				s.score++
				events = append(events, core.EventScore)
			}
		}
	}

	recycle(s.obstacles, s.geom.Width, s.spans)
	return events
}

// crashed checks the boundary first, then every obstacle.
func (s *Session) crashed() bool {
	if s.bird.OutOfBounds(s.geom.Height) {
		return true
	}
	for _, o := range s.obstacles {
		if o.Collides(s.bird.Y, s.footprint, s.geom.Height) {
			return true
		}
	}
	return false
}

// centreColumn is the column an obstacle must cross to score.
func (s *Session) centreColumn() float64 {
	return float64(s.cfg.Bird.X + s.cfg.Bird.Width/2)
}

// PlayAgain accepts the play-again choice at the death prompt.
func (s *Session) PlayAgain() bool {
	if s.status != StatusDead {
		return false
	}
	s.status = StatusPlayAgain
	return true
}

// Exit ends the session. Quitting while running skips the prompt.
func (s *Session) Exit() {
	s.status = StatusExit
}

// Status returns the controller state.
func (s *Session) Status() Status {
	return s.status
}

// Score returns the number of gaps passed.
func (s *Session) Score() int {
	return s.score
}

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird {
	return s.bird
}

// Obstacles returns the obstacle set. Callers must not modify it.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Geometry returns the playfield size.
func (s *Session) Geometry() Geometry {
	return s.geom
}
