package pico

import "math/big"

// DefaultRadius is the console's radius when a circle call omits one.
const DefaultRadius = 4

// Rect outlines the box with corners x1, y1 and x2, y2 in the pen color.
// Corners may be given in any order.
func (g *Graphics) Rect(x1, y1, x2, y2 int) {
	g.rect(x1, y1, x2, y2, g.state.Color)
}

func (g *Graphics) RectColor(x1, y1, x2, y2 int, c uint8) {
	g.state.Color = c
	g.rect(x1, y1, x2, y2, c)
}

// Rectfill fills the box with corners x1, y1 and x2, y2, edges included.
func (g *Graphics) Rectfill(x1, y1, x2, y2 int) {
	g.rectfill(x1, y1, x2, y2, g.state.Color)
}

func (g *Graphics) RectfillColor(x1, y1, x2, y2 int, c uint8) {
	g.state.Color = c
	g.rectfill(x1, y1, x2, y2, c)
}

func (g *Graphics) rect(x1, y1, x2, y2 int, c uint8) {
	swapIf(&x1, &x2, x1 > x2)
	swapIf(&y1, &y2, y1 > y2)

	g.hline(x1, x2, y1, c)
	if y2 == y1 {
		return
	}
	g.hline(x1, x2, y2, c)
	for y := y1 + 1; y < y2; y++ {
		g.plot(x1, y, c)
		if x2 != x1 {
			g.plot(x2, y, c)
		}
	}
}

func (g *Graphics) rectfill(x1, y1, x2, y2 int, c uint8) {
	swapIf(&x1, &x2, x1 > x2)
	swapIf(&y1, &y2, y1 > y2)

	// clamp rows to the clip rectangle
	s := g.state
	top := clampInt(int(s.ClipYB), int(s.ClipYE)+1, y1)
	bottom := clampInt(int(s.ClipYB)-1, int(s.ClipYE), y2)
	for y := top; y <= bottom; y++ {
		g.hline(x1, x2, y, c)
	}
}

// Circ outlines a circle of radius r about ox, oy in the pen color. A
// radius of 0 is a single point; negative radii draw nothing.
func (g *Graphics) Circ(ox, oy, r int) {
	g.circ(ox, oy, r, g.state.Color)
}

func (g *Graphics) CircColor(ox, oy, r int, c uint8) {
	g.state.Color = c
	g.circ(ox, oy, r, c)
}

// Circfill is Circ with every row between the perimeter extents filled.
func (g *Graphics) Circfill(ox, oy, r int) {
	g.circfill(ox, oy, r, g.state.Color)
}

func (g *Graphics) CircfillColor(ox, oy, r int, c uint8) {
	g.state.Color = c
	g.circfill(ox, oy, r, c)
}

// octantY is the y the midpoint walk holds at column x of the octant
// that starts at 12 o'clock: the largest y with x² + y(y-1) < r². The
// squares are formed with big integers so any int radius is exact.
func octantY(r, x int) int {
	if x == 0 {
		return r
	}
	t := big.NewInt(int64(r))
	t.Mul(t, t)
	xx := big.NewInt(int64(x))
	t.Sub(t, xx.Mul(xx, xx))
	if t.Sign() <= 0 {
		return 0
	}

	y := new(big.Int).Sqrt(t)
	next := new(big.Int).Add(y, big.NewInt(1))
	if next.Mul(next, y).Cmp(t) < 0 {
		return int(y.Int64()) + 1
	}
	return int(y.Int64())
}

// octantEnd is the last column of the octant, where x reaches y.
func octantEnd(r int) int {
	lo, hi := 0, r
	for lo < hi {
		m := lo + (hi-lo+1)/2
		if m <= octantY(r, m) {
			lo = m
		} else {
			hi = m - 1
		}
	}
	return lo
}

// octantRow finds the half-width of row v for rows past the octant end:
// the last column whose y is v, or false when the walk skips that row.
func octantRow(r, v, end int) (int, bool) {
	lo, hi := 0, end
	for lo < hi {
		m := lo + (hi-lo+1)/2
		if octantY(r, m) >= v {
			lo = m
		} else {
			hi = m - 1
		}
	}
	return lo, octantY(r, lo) == v
}

type span struct{ lo, hi int }

// offsetSpans lists the offsets d in [0, limit] for which o+d or o-d lands
// in [lo, hi].
func offsetSpans(o, lo, hi, limit int) []span {
	var out []span
	for _, sp := range [...]span{{lo - o, hi - o}, {o - hi, o - lo}} {
		sp.lo, sp.hi = max(sp.lo, 0), min(sp.hi, limit)
		if sp.lo <= sp.hi {
			out = append(out, sp)
		}
	}
	return out
}

// eachOffset calls fn once per offset covered by spans.
func eachOffset(spans []span, fn func(d int)) {
	for i, sp := range spans {
	next:
		for d := sp.lo; d <= sp.hi; d++ {
			for _, seen := range spans[:i] {
				if d >= seen.lo && d <= seen.hi {
					continue next
				}
			}
			fn(d)
		}
	}
}

// circ visits only the octant columns whose mirrors can reach the clip
// rectangle, so the cost is bounded by the screen rather than by r.
func (g *Graphics) circ(ox, oy, r int, c uint8) {
	if r < 0 {
		return
	}
	s := g.state
	end := octantEnd(r)
	spans := append(
		offsetSpans(ox, int(s.ClipXB), int(s.ClipXE), end),
		offsetSpans(oy, int(s.ClipYB), int(s.ClipYE), end)...,
	)
	eachOffset(spans, func(x int) {
		y := octantY(r, x)
		g.plot4(ox, oy, x, y, c)
		if x != y {
			g.plot4(ox, oy, y, x, c)
		}
	})
}

// plot4 mirrors an offset into each quadrant, skipping mirrors that land
// on the same pixel.
func (g *Graphics) plot4(ox, oy, x, y int, c uint8) {
	g.plot(ox+x, oy+y, c)
	if x != 0 {
		g.plot(ox-x, oy+y, c)
	}
	if y != 0 {
		g.plot(ox+x, oy-y, c)
		if x != 0 {
			g.plot(ox-x, oy-y, c)
		}
	}
}

// circfill draws one span per row offset v that can reach the clip
// rectangle. Rows up to the octant end take their half-width from the
// octant directly; rows beyond it take the last column the walk held at
// that height.
func (g *Graphics) circfill(ox, oy, r int, c uint8) {
	if r < 0 {
		return
	}
	s := g.state
	end := octantEnd(r)
	eachOffset(offsetSpans(oy, int(s.ClipYB), int(s.ClipYE), r), func(v int) {
		w := 0
		if v <= end {
			w = octantY(r, v)
		} else {
			x, ok := octantRow(r, v, end)
			if !ok {
				return
			}
			w = x
		}
		g.hline(ox-w, ox+w, oy-v, c)
		if v != 0 {
			g.hline(ox-w, ox+w, oy+v, c)
		}
	})
}
