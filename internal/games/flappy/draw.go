package flappy

import (
	"github.com/H4wk507/terminal-flappy-bird/internal/core"
)

// Visual characters for rendering
const (
	PipeChar = '█'
)

// DrawKind identifies a draw command.
type DrawKind int

const (
	DrawBird DrawKind = iota // Glyph text at (Row0, Col)
	DrawSpan                 // Vertical run at Col from Row0 to Row1 inclusive
)

// DrawCommand is one element of the per-tick render contract.
type DrawCommand struct {
	Kind  DrawKind
	Col   int
	Row0  int
	Row1  int
	Glyph string
}

// DrawCommands describes the current state as draw commands: the bird glyph,
// then an upper and a lower span for every obstacle.
func (s *Session) DrawCommands() []DrawCommand {
	cmds := make([]DrawCommand, 0, 1+2*len(s.obstacles))
	h := s.geom.Height

	for _, o := range s.obstacles {
		col := o.Column()
		cmds = append(cmds,
			DrawCommand{Kind: DrawSpan, Col: col, Row0: 0, Row1: o.Upper, Glyph: string(PipeChar)},
			DrawCommand{Kind: DrawSpan, Col: col, Row0: h - o.Lower, Row1: h - 1, Glyph: string(PipeChar)},
		)
	}

	cmds = append(cmds, DrawCommand{
		Kind:  DrawBird,
		Col:   s.cfg.Bird.X,
		Row0:  s.bird.Row(),
		Row1:  s.bird.Row(),
		Glyph: s.cfg.Bird.Glyph,
	})
	return cmds
}

// ApplyDrawCommands paints commands onto a screen. Cells outside the screen are clipped.
func ApplyDrawCommands(dst *core.Screen, cmds []DrawCommand) {
	for _, c := range cmds {
		switch c.Kind {
		case DrawSpan:
			glyph := []rune(c.Glyph)
			if len(glyph) == 0 {
				continue
			}
			dst.DrawVLine(c.Col, c.Row0, c.Row1, glyph[0], core.ColorGreen)
		case DrawBird:
			dst.DrawTextColored(c.Col, c.Row0, c.Glyph, core.ColorBrightYellow)
		}
	}
}
