package pico

import "math/big"

// LineReset clears the line anchor without drawing.
func (g *Graphics) LineReset() {
	g.state.ResetLine()
}

// LineResetColor clears the line anchor and sets the pen color.
func (g *Graphics) LineResetColor(c uint8) {
	g.state.Color = c
	g.state.ResetLine()
}

// LineTo continues a polyline from the anchor to x, y in the pen color.
// With no valid anchor nothing is drawn and x, y only seeds the anchor.
func (g *Graphics) LineTo(x, y int) {
	s := g.state
	if s.LineValid {
		g.line(int(s.LineX), int(s.LineY), x, y, s.Color)
	}
	s.LineX, s.LineY, s.LineValid = int16(x), int16(y), true
}

func (g *Graphics) LineToColor(x, y int, c uint8) {
	g.state.Color = c
	g.LineTo(x, y)
}

// Line draws between two explicit points in the pen color. The anchor
// is not consulted or moved.
func (g *Graphics) Line(x1, y1, x2, y2 int) {
	g.line(x1, y1, x2, y2, g.state.Color)
}

func (g *Graphics) LineColor(x1, y1, x2, y2 int, c uint8) {
	g.state.Color = c
	g.line(x1, y1, x2, y2, c)
}

// line is a Bresenham walk along the dominant axis, inclusive of both
// endpoints, plotting each pixel once. Steps outside the clip rectangle
// along the dominant axis are skipped rather than walked.
func (g *Graphics) line(x1, y1, x2, y2 int, c uint8) {
	switch {
	case x1 == x2:
		g.vline(x1, y1, y2, c)
		return
	case y1 == y2:
		g.hline(x1, x2, y1, c)
		return
	}

	s := g.state
	if absInt(x2-x1) > absInt(y2-y1) {
		walkLine(x1, y1, x2, y2, int(s.ClipXB), int(s.ClipXE), func(a, b int) {
			g.plot(a, b, c)
		})
	} else {
		walkLine(y1, x1, y2, x2, int(s.ClipYB), int(s.ClipYE), func(a, b int) {
			g.plot(b, a, c)
		})
	}
}

// walkLine steps from (a1, b1) to (a2, b2) along the major axis a, calling
// plot only for steps whose a lies in [lo, hi].
func walkLine(a1, b1, a2, b2, lo, hi int, plot func(a, b int)) {
	stepA, stepB := 1, 1
	if a2 < a1 {
		stepA = -1
	}
	if b2 < b1 {
		stepB = -1
	}
	n := absInt(a2 - a1)
	da, db := n<<1, absInt(b2-b1)<<1

	first, last := 0, n
	if stepA > 0 {
		first, last = max(first, lo-a1), min(last, hi-a1)
	} else {
		first, last = max(first, a1-hi), min(last, a1-lo)
	}
	if first > last {
		return
	}

	b, fraction := b1, db-(da>>1)
	if first > 0 {
		var minor int
		minor, fraction = skipSteps(fraction, da, db, first)
		b += stepB * minor
	}

	a := a1 + stepA*first
	plot(a, b)
	for k := first; k < last; k++ {
		if fraction >= 0 {
			b += stepB
			fraction -= da
		}
		a += stepA
		fraction += db
		plot(a, b)
	}
}

// skipSteps returns the minor steps taken and the error term left after k
// major steps of a walk that began with the given fraction. The products
// are formed with big integers since k*db can exceed an int.
func skipSteps(fraction, da, db, k int) (minor, rest int) {
	num := big.NewInt(int64(k - 1))
	num.Mul(num, big.NewInt(int64(db)))
	num.Add(num, big.NewInt(int64(fraction)))

	q, m := new(big.Int).DivMod(num, big.NewInt(int64(da)), new(big.Int))
	return int(q.Int64()) + 1, int(m.Int64()) + db - da
}
