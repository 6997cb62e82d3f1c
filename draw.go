package pico

import "github.com/32bitkid/pico/ram"

// Cls clears the whole screen to color 0, ignoring the clip rectangle.
func (g *Graphics) Cls() { g.ClsColor(0) }

func (g *Graphics) ClsColor(c uint8) {
	g.mem.Screen.Fill(g.palettes.MapDraw(c))
}

// Color sets the pen color.
func (g *Graphics) Color(c uint8) {
	g.state.Color = c
}

// Pset draws one pixel in the pen color.
func (g *Graphics) Pset(x, y int) { g.plot(x, y, g.state.Color) }

func (g *Graphics) PsetColor(x, y int, c uint8) { g.plot(x, y, c) }

// Pget reads the stored color at x, y; off-screen reads return 0.
func (g *Graphics) Pget(x, y int) uint8 {
	return g.mem.Screen.Get(x, y)
}

// Clip restricts drawing to the w by h box at x, y, clamped to the screen.
// An empty box leaves nothing drawable.
func (g *Graphics) Clip(x, y, w, h int) {
	xb, yb := clampInt(0, ram.Width, x), clampInt(0, ram.Height, y)
	xe, ye := clampInt(0, ram.Width, x+w), clampInt(0, ram.Height, y+h)

	if xe <= xb || ye <= yb {
		// inverted bounds exclude every pixel
		g.state.ClipXB, g.state.ClipYB = 1, 1
		g.state.ClipXE, g.state.ClipYE = 0, 0
	} else {
		g.state.ClipXB, g.state.ClipYB = uint8(xb), uint8(yb)
		g.state.ClipXE, g.state.ClipYE = uint8(xe-1), uint8(ye-1)
	}
	Logger().Debug("pico: clip",
		"xb", g.state.ClipXB, "yb", g.state.ClipYB,
		"xe", g.state.ClipXE, "ye", g.state.ClipYE)
}

// ResetClip restores the full-screen clip rectangle.
func (g *Graphics) ResetClip() {
	g.state.ClipXB, g.state.ClipYB = 0, 0
	g.state.ClipXE, g.state.ClipYE = ram.Width-1, ram.Height-1
	Logger().Debug("pico: clip reset")
}

// ResetPalettes restores identity draw and screen palettes and the
// default transparency.
func (g *Graphics) ResetPalettes() {
	g.palettes.Reset()
	Logger().Debug("pico: palettes reset")
}

func clampInt(min, max, i int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
