package pico

import (
	"math/bits"

	"github.com/32bitkid/pico/ram"
)

// SpriteSize is the edge length of one sprite cell.
const SpriteSize = 8

const spritesPerRow = ram.Width / SpriteSize

// Sset writes directly to the sprite sheet. The clip rectangle and draw
// palette do not apply.
func (g *Graphics) Sset(x, y int, c uint8) {
	g.mem.SpriteSheet.Set(x, y, c)
}

// Sget reads the sprite sheet; off-sheet reads return 0.
func (g *Graphics) Sget(x, y int) uint8 {
	return g.mem.SpriteSheet.Get(x, y)
}

// Spr draws sprite cell n with its top-left corner at x, y.
func (g *Graphics) Spr(n, x, y int) {
	g.SprEx(n, x, y, 1, 1, false, false)
}

// SprEx draws w by h cells of the sheet starting at cell n. Fractional
// sizes cover whole pixels, so w = 1.5 copies 12 columns.
func (g *Graphics) SprEx(n, x, y int, w, h float64, flipX, flipY bool) {
	sx := (n % spritesPerRow) * SpriteSize
	sy := (n / spritesPerRow) * SpriteSize
	sw := int(w * SpriteSize)
	sh := int(h * SpriteSize)
	g.Sspr(sx, sy, sw, sh, x, y, sw, sh, flipX, flipY)
}

// Sspr stretches the sw by sh sheet region at sx, sy onto the dw by dh
// screen region at dx, dy. Each destination pixel samples the source
// pixel under its centre, so a 2:1 shrink takes the odd columns and rows.
// Transparent source colors leave the screen untouched. Only the part of
// the destination inside the clip rectangle is visited.
func (g *Graphics) Sspr(sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool) {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		Logger().Debug("pico: empty sspr", "sw", sw, "sh", sh, "dw", dw, "dh", dh)
		return
	}

	s := g.state
	left, right := clipSpan(dx, dw, int(s.ClipXB), int(s.ClipXE))
	top, bottom := clipSpan(dy, dh, int(s.ClipYB), int(s.ClipYE))

	for py := top; py <= bottom; py++ {
		row := sample(py-dy, sh, dh, flipY)
		for px := left; px <= right; px++ {
			c := g.mem.SpriteSheet.Get(sx+sample(px-dx, sw, dw, flipX), sy+row)
			if g.palettes.IsTransparent(c) {
				continue
			}
			g.mem.Screen.Set(px, py, g.palettes.MapDraw(c))
		}
	}
}

// clipSpan intersects [start, start+n) with the inclusive range [lo, hi].
// The result is empty when first > last.
func clipSpan(start, n, lo, hi int) (first, last int) {
	first, last = max(start, lo), hi
	if start > hi {
		return first, start - 1
	}
	if uint64(n-1) < uint64(hi)-uint64(start) {
		last = start + n - 1
	}
	return first, last
}

// sample maps destination offset i in [0, dst) to a source offset in
// [0, src) by nearest-neighbour sampling at the pixel centre:
// (2i+1)*src / 2dst, computed at 128 bits.
func sample(i, src, dst int, flip bool) int {
	hi, lo := bits.Mul64(uint64(i)<<1|1, uint64(src))
	q, _ := bits.Div64(hi, lo, uint64(dst)<<1)
	s := int(q)
	if flip {
		s = src - 1 - s
	}
	return s
}
