package flappy

import (
	"math"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
)

// Bird is the player sprite. It never moves horizontally.
type Bird struct {
	Y  float64 // Row of the glyph, fractional (row 0 is the top)
	VY float64 // Vertical velocity, positive is up
}

// Step applies one fixed physics tick.
// A jump overwrites the velocity rather than adding to it, gravity is then
// subtracted and the result floored at the terminal velocity. Position is
// not clamped; boundary collision catches the bird on the same tick.
func (b *Bird) Step(jump bool, p config.FlappyPhysics) {
	if jump {
		b.VY = p.JumpSpeed
	}
	b.VY -= p.Gravity
	b.VY = math.Max(b.VY, p.MinVelocity)
	b.Y -= b.VY
}

// Row returns the terminal row the bird occupies.
func (b Bird) Row() int {
	return int(b.Y)
}

// OutOfBounds reports whether the bird has left a field of the given height.
// Negative positions fail before truncation so -0.5 does not count as row 0.
func (b Bird) OutOfBounds(height int) bool {
	return b.Y < 0 || b.Row() > height-1
}
