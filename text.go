package pico

import "github.com/32bitkid/pico/font"

// Print draws s at the text cursor in the pen color, then moves the
// cursor down one line. A newline in s returns to the starting column on
// the next line.
func (g *Graphics) Print(s string) {
	x, y := int(g.state.TextX), int(g.state.TextY)
	y = g.stamp(s, x, y)
	g.state.TextY = int16(y + font.LineHeight)
}

// PrintAt draws s at x, y and leaves the text cursor there.
func (g *Graphics) PrintAt(s string, x, y int) {
	g.state.TextX, g.state.TextY = int16(x), int16(y)
	g.stamp(s, x, y)
}

func (g *Graphics) PrintAtColor(s string, x, y int, c uint8) {
	g.state.Color = c
	g.PrintAt(s, x, y)
}

// stamp draws each glyph's foreground in the pen color. The transparency
// mask does not apply to text. It returns the y of the last line drawn.
func (g *Graphics) stamp(s string, x, y int) int {
	c := g.state.Color
	cx := x
	for _, r := range s {
		if r == '\n' {
			cx = x
			y += font.LineHeight
			continue
		}
		if ch, ok := g.glyphs.Glyph(r); ok {
			for gy := 0; gy < int(ch.Height); gy++ {
				for gx := 0; gx < int(ch.Width); gx++ {
					if ch.At(gx, gy) {
						g.plot(cx+gx, y+gy, c)
					}
				}
			}
		}
		cx += font.AdvanceWidth
	}
	return y
}
