package flappy

import (
	"math"
	"math/rand"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
)

// Obstacle is a pipe pair with a gap between its spans.
// The upper barrier covers rows [0, Upper], the lower one [height-Lower, height-1].
type Obstacle struct {
	X     float64 // Column, fractional
	PrevX float64 // Column before the last Advance
	Upper int     // Height of the top barrier from row 0
	Lower int     // Height of the bottom barrier from the last row
}

// Advance scrolls the obstacle left by speed columns.
func (o *Obstacle) Advance(speed float64) {
	o.PrevX = o.X
	o.X -= speed
}

// Column returns the terminal column the obstacle is drawn in.
func (o Obstacle) Column() int {
	return int(math.Floor(o.X))
}

// Blocks reports whether row y is covered by either span.
func (o Obstacle) Blocks(y float64, height int) bool {
	return y >= float64(height-o.Lower) || y <= float64(o.Upper)
}

// InGap reports whether row y lies strictly between the two spans.
func (o Obstacle) InGap(y float64, height int) bool {
	return y > float64(o.Upper) && y < float64(height-o.Lower)
}

// Collides reports whether a bird at row y with the given footprint hits this obstacle.
func (o Obstacle) Collides(y float64, footprint core.Rect, height int) bool {
	return footprint.SpansColumn(o.Column()) && o.Blocks(y, height)
}

// Crossed reports whether the last Advance carried the obstacle across column c.
// Crossing rather than equality keeps scoring to exactly one tick per pass
// for any pipe speed.
func (o Obstacle) Crossed(c float64) bool {
	return o.PrevX > c && o.X <= c
}

// SpanGenerator produces span pairs satisfying
// ceil(height/2) <= upper+lower <= height-gap_constant.
// The sum is drawn directly from its valid range and then split, so
// generation always terminates.
type SpanGenerator struct {
	rng    *rand.Rand
	minSum int
	maxSum int
}

// NewSpanGenerator creates a generator for a field of the given height.
// The height must have passed config.ValidateScreen.
func NewSpanGenerator(rng *rand.Rand, cfg config.FlappyConfig, height int) *SpanGenerator {
	return &SpanGenerator{
		rng:    rng,
		minSum: cfg.MinObstacleHeight(height),
		maxSum: cfg.MaxObstacleHeight(height),
	}
}

// Next returns a fresh (upper, lower) span pair, both at least 1.
func (g *SpanGenerator) Next() (upper, lower int) {
	sum := g.minSum + g.rng.Intn(g.maxSum-g.minSum+1)
	upper = 1 + g.rng.Intn(sum-1)
	return upper, sum - upper
}

// Bounds returns the inclusive range of span sums the generator draws from.
func (g *SpanGenerator) Bounds() (minSum, maxSum int) {
	return g.minSum, g.maxSum
}

// newObstacles lays out count obstacles evenly from the middle of the field.
func newObstacles(count, width int, spans *SpanGenerator) []Obstacle {
	spacing := core.Max(width/count, 1)
	start := width / 2

	obstacles := make([]Obstacle, count)
	for i := range obstacles {
		x := float64(start + i*spacing)
		upper, lower := spans.Next()
		obstacles[i] = Obstacle{X: x, PrevX: x, Upper: upper, Lower: lower}
	}
	return obstacles
}

// recycle sends every obstacle that left the field to the right edge with new spans.
func recycle(obstacles []Obstacle, width int, spans *SpanGenerator) {
	for i := range obstacles {
		if obstacles[i].X >= 0 {
			continue
		}
		upper, lower := spans.Next()
		obstacles[i] = Obstacle{
			X:     float64(width),
			PrevX: float64(width),
			Upper: upper,
			Lower: lower,
		}
	}
}
