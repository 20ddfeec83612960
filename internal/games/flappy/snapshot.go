package flappy

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Status    Status
	BirdY     float64
	BirdVY    float64
	Paused    bool
	Obstacles []Obstacle
}

// Snapshot returns the current game snapshot for determinism verification.
// Returns the zero value when no playfield exists.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}

	s := g.session
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)

	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		Status:    s.status,
		BirdY:     s.bird.Y,
		BirdVY:    s.bird.VY,
		Paused:    g.paused,
		Obstacles: obstacles,
	}
}
