// Package pico implements the drawing API of a 128x128, 16-color fantasy
// console. Graphics rasterizes points, lines, rectangles, circles, sprites
// and text into the packed screen of a caller-owned ram.Memory.
//
// Graphics is not safe for concurrent use. Hosts running several consoles
// must give each its own Memory and Graphics.
package pico

import (
	"image"
	"image/color"

	"github.com/32bitkid/pico/font"
	"github.com/32bitkid/pico/ram"
	"github.com/32bitkid/pico/screen"
)

// GlyphLookup supplies the foreground mask of a character.
type GlyphLookup interface {
	Glyph(r rune) (font.Character, bool)
}

type Options struct {
	// Glyphs defaults to font.Default().
	Glyphs GlyphLookup
}

type Graphics struct {
	mem      *ram.Memory
	state    *ram.DrawState
	palettes *screen.Palettes
	glyphs   GlyphLookup
}

// New attaches a rasterizer to mem and resets its draw registers: pen
// color 7, full-screen clip, cleared line anchor and text cursor. The
// sprite sheet and screen contents are left alone.
func New(mem *ram.Memory, options ...Options) *Graphics {
	g := &Graphics{
		mem:      mem,
		state:    &mem.DrawState,
		palettes: screen.NewPalettes(),
		glyphs:   font.Default(),
	}
	for _, opts := range options {
		if opts.Glyphs != nil {
			g.glyphs = opts.Glyphs
		}
	}

	g.state.Reset()
	Logger().Debug("pico: graphics attached", "color", g.state.Color)
	return g
}

// Palettes exposes the draw, screen and transparency tables.
func (g *Graphics) Palettes() *screen.Palettes { return g.palettes }

// PaletteColors returns the fixed output color of each index.
func (g *Graphics) PaletteColors() [screen.Colors]color.RGBA {
	var out [screen.Colors]color.RGBA
	for i, c := range screen.BasePalette {
		out[i] = c.(color.RGBA)
	}
	return out
}

// Image renders the screen through the screen palette.
func (g *Graphics) Image() *image.Paletted {
	return screen.Render(&g.mem.Screen, g.palettes)
}

// plot is the single path for clipped, palette-mapped screen writes.
func (g *Graphics) plot(x, y int, c uint8) {
	if !g.state.InClip(x, y) {
		return
	}
	g.mem.Screen.Set(x, y, g.palettes.MapDraw(c))
}

func (g *Graphics) hline(x1, x2, y int, c uint8) {
	swapIf(&x1, &x2, x1 > x2)
	x1 = max(x1, int(g.state.ClipXB))
	x2 = min(x2, int(g.state.ClipXE))
	for x := x1; x <= x2; x++ {
		g.plot(x, y, c)
	}
}

func (g *Graphics) vline(x, y1, y2 int, c uint8) {
	swapIf(&y1, &y2, y1 > y2)
	y1 = max(y1, int(g.state.ClipYB))
	y2 = min(y2, int(g.state.ClipYE))
	for y := y1; y <= y2; y++ {
		g.plot(x, y, c)
	}
}
