package pico

import (
	"testing"

	"github.com/32bitkid/pico/ram"
)

func colored(c uint8, pts ...[2]int) []coloredPoint {
	out := make([]coloredPoint, len(pts))
	for i, p := range pts {
		out[i] = coloredPoint{p[0], p[1], c}
	}
	return out
}

var radius4Octants = [][2]int{
	{0, -4}, {1, -4}, {2, -3}, {3, -3},
	{4, 0}, {4, -1}, {3, -2},
}

func radius4Circle(ox, oy int) [][2]int {
	seen := map[[2]int]bool{}
	var pts [][2]int
	for _, p := range radius4Octants {
		for _, m := range [][2]int{
			{p[0], p[1]}, {-p[0], p[1]}, {p[0], -p[1]}, {-p[0], -p[1]},
			{p[1], p[0]}, {-p[1], p[0]}, {p[1], -p[0]}, {-p[1], -p[0]},
		} {
			q := [2]int{ox + m[0], oy + m[1]}
			if !seen[q] {
				seen[q] = true
				pts = append(pts, q)
			}
		}
	}
	return pts
}

func TestCircDefaultRadius(t *testing.T) {
	g, _ := newTestGraphics()
	g.Circ(40, 40, DefaultRadius)

	// quarter circle from 12 o'clock to 3 o'clock
	checkPoints(t, g, colored(7,
		[2]int{39, 36}, [2]int{40, 36}, [2]int{41, 36},
		[2]int{42, 37}, [2]int{43, 37}, [2]int{43, 38},
		[2]int{44, 39}, [2]int{44, 40},
	))
	checkExactly(t, g, colored(7, radius4Circle(40, 40)...))
}

func TestCircRadius1(t *testing.T) {
	g, _ := newTestGraphics()
	g.Color(14)
	g.Circ(40, 40, 1)
	checkExactly(t, g, colored(14,
		[2]int{40, 39}, [2]int{41, 40}, [2]int{40, 41}, [2]int{39, 40},
	))
}

func TestCircRadius2(t *testing.T) {
	g, mem := newTestGraphics()
	g.CircColor(40, 40, 2, 13)
	checkExactly(t, g, colored(13,
		[2]int{38, 39}, [2]int{38, 40}, [2]int{38, 41},
		[2]int{39, 38}, [2]int{39, 42},
		[2]int{40, 38}, [2]int{40, 42},
		[2]int{41, 38}, [2]int{41, 42},
		[2]int{42, 39}, [2]int{42, 40}, [2]int{42, 41},
	))
	if mem.Color != 13 {
		t.Fatalf("expected pen color 13, got %d", mem.Color)
	}
}

func TestCircRadius0(t *testing.T) {
	g, _ := newTestGraphics()
	g.CircColor(40, 40, 0, 13)
	checkExactly(t, g, colored(13, [2]int{40, 40}))
}

func TestCircNegativeRadius(t *testing.T) {
	g, mem := newTestGraphics()
	g.CircColor(40, 40, -1, 13)
	g.CircfillColor(40, 40, -3, 13)
	if mem.Screen != (ram.Bank{}) {
		t.Fatal("negative radius drew pixels")
	}
}

func TestCircfillRadius0(t *testing.T) {
	g, _ := newTestGraphics()
	g.CircfillColor(40, 40, 0, 13)
	checkExactly(t, g, colored(13, [2]int{40, 40}))
}

func TestCircfillRadius1(t *testing.T) {
	g, _ := newTestGraphics()
	g.Color(14)
	g.Circfill(40, 40, 1)
	checkExactly(t, g, colored(14,
		[2]int{40, 39}, [2]int{41, 40}, [2]int{40, 41}, [2]int{39, 40}, [2]int{40, 40},
	))
}

func TestCircfillRadius2(t *testing.T) {
	g, _ := newTestGraphics()
	g.CircfillColor(40, 40, 2, 13)
	checkPoints(t, g, colored(13,
		[2]int{38, 39}, [2]int{38, 40}, [2]int{38, 41},
		[2]int{39, 38}, [2]int{39, 42},
		[2]int{40, 38}, [2]int{40, 42},
		[2]int{41, 38}, [2]int{41, 42},
		[2]int{42, 39}, [2]int{42, 40}, [2]int{42, 41},
		[2]int{40, 40},
	))
}

func TestCircfillCoversCirc(t *testing.T) {
	for r := 0; r <= 20; r++ {
		outline, _ := newTestGraphics()
		outline.CircColor(64, 64, r, 1)

		filled, _ := newTestGraphics()
		filled.CircfillColor(64, 64, r, 1)

		for y := 0; y < ram.Height; y++ {
			minX, maxX := ram.Width, -1
			for x := 0; x < ram.Width; x++ {
				if outline.Pget(x, y) != 0 {
					if filled.Pget(x, y) == 0 {
						t.Fatalf("r=%d: circfill misses outline pixel (%d, %d)", r, x, y)
					}
					minX, maxX = min(minX, x), max(maxX, x)
				}
			}
			for x := minX; x <= maxX; x++ {
				if filled.Pget(x, y) == 0 {
					t.Fatalf("r=%d: gap in row %d at %d", r, y, x)
				}
			}
		}
	}
}

func TestCircfillDefaultRadiusCenter(t *testing.T) {
	g, _ := newTestGraphics()
	g.Circfill(40, 40, DefaultRadius)
	checkPoints(t, g, colored(7,
		[2]int{39, 36}, [2]int{40, 36}, [2]int{41, 36},
		[2]int{42, 37}, [2]int{43, 37}, [2]int{43, 38},
		[2]int{44, 39}, [2]int{44, 40}, [2]int{40, 40},
	))
}

func TestRect(t *testing.T) {
	g, _ := newTestGraphics()
	g.Color(15)
	g.Rect(40, 40, 43, 42)
	checkExactly(t, g, colored(15,
		[2]int{40, 40}, [2]int{40, 41}, [2]int{40, 42},
		[2]int{41, 40}, [2]int{41, 42},
		[2]int{42, 40}, [2]int{42, 42},
		[2]int{43, 40}, [2]int{43, 41}, [2]int{43, 42},
	))
}

func TestRectSwapped(t *testing.T) {
	g, _ := newTestGraphics()
	g.RectColor(42, 43, 40, 40, 1)
	checkExactly(t, g, colored(1,
		[2]int{40, 40}, [2]int{40, 41}, [2]int{40, 42}, [2]int{40, 43},
		[2]int{41, 40}, [2]int{41, 43},
		[2]int{42, 40}, [2]int{42, 41}, [2]int{42, 42}, [2]int{42, 43},
	))
}

func TestRectfill(t *testing.T) {
	g, _ := newTestGraphics()
	g.Color(10)
	g.Rectfill(40, 40, 43, 43)

	var expected []coloredPoint
	for x := 40; x <= 43; x++ {
		for y := 40; y <= 43; y++ {
			expected = append(expected, coloredPoint{x, y, 10})
		}
	}
	checkExactly(t, g, expected)
}

func TestRectCornerOrder(t *testing.T) {
	corners := [][4]int{
		{42, 43, 40, 40},
		{40, 43, 42, 40},
		{42, 40, 40, 43},
		{40, 40, 42, 43},
	}

	sortedOutline, _ := newTestGraphics()
	sortedOutline.RectColor(40, 40, 42, 43, 2)
	sortedFill, _ := newTestGraphics()
	sortedFill.RectfillColor(40, 40, 42, 43, 2)

	for _, c := range corners {
		outline, mem := newTestGraphics()
		outline.RectColor(c[0], c[1], c[2], c[3], 2)
		if mem.Screen != sortedOutline.mem.Screen {
			t.Errorf("rect%v differs from sorted corners", c)
		}

		fill, mem := newTestGraphics()
		fill.RectfillColor(c[0], c[1], c[2], c[3], 2)
		if mem.Screen != sortedFill.mem.Screen {
			t.Errorf("rectfill%v differs from sorted corners", c)
		}
	}
}

func TestRectDegenerate(t *testing.T) {
	g, _ := newTestGraphics()
	g.RectColor(5, 5, 5, 5, 3)
	checkExactly(t, g, colored(3, [2]int{5, 5}))

	g.Cls()
	g.RectColor(5, 5, 5, 7, 3)
	checkExactly(t, g, colored(3, [2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7}))
}

// midpointCircle is the full octant walk from 12 o'clock to the diagonal.
func midpointCircle(r int, fn func(x, y int)) {
	x, y := 0, r
	d := 1 - r
	for x <= y {
		fn(x, y)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

func TestOctantMatchesWalk(t *testing.T) {
	for r := 0; r <= 300; r++ {
		last := 0
		midpointCircle(r, func(x, y int) {
			if actual := octantY(r, x); actual != y {
				t.Fatalf("r=%d x=%d: expected(%d) != actual(%d)", r, x, y, actual)
			}
			last = x
		})
		if actual := octantEnd(r); actual != last {
			t.Fatalf("r=%d end: expected(%d) != actual(%d)", r, last, actual)
		}
	}
}

func TestCircClippedMatchesWalk(t *testing.T) {
	centers := []int{-300, 3, 40, 125, 400}
	radii := []int{0, 1, 7, 64, 150, 420}
	clips := []struct{ x, y, w, h int }{
		{0, 0, 128, 128},
		{10, 20, 81, 51},
	}

	for _, cl := range clips {
		inClip := func(x, y int) bool {
			return x >= cl.x && x < cl.x+cl.w && y >= cl.y && y < cl.y+cl.h
		}
		for _, ox := range centers {
			for _, oy := range centers {
				for _, r := range radii {
					outline := map[[2]int]bool{}
					// widest half-width per row
					rows := map[int]int{}
					midpointCircle(r, func(x, y int) {
						for _, p := range [][2]int{
							{x, y}, {-x, y}, {x, -y}, {-x, -y},
							{y, x}, {-y, x}, {y, -x}, {-y, -x},
						} {
							outline[[2]int{ox + p[0], oy + p[1]}] = true
							if w, ok := rows[oy+p[1]]; !ok || absInt(p[0]) > w {
								rows[oy+p[1]] = absInt(p[0])
							}
						}
					})

					var expected []coloredPoint
					for p := range outline {
						if inClip(p[0], p[1]) {
							expected = append(expected, coloredPoint{p[0], p[1], 6})
						}
					}
					g, _ := newTestGraphics()
					g.Clip(cl.x, cl.y, cl.w, cl.h)
					g.CircColor(ox, oy, r, 6)
					checkExactly(t, g, expected)

					expected = expected[:0]
					for y, w := range rows {
						for x := ox - w; x <= ox+w; x++ {
							if inClip(x, y) {
								expected = append(expected, coloredPoint{x, y, 6})
							}
						}
					}
					g, _ = newTestGraphics()
					g.Clip(cl.x, cl.y, cl.w, cl.h)
					g.CircfillColor(ox, oy, r, 6)
					checkExactly(t, g, expected)

					if t.Failed() {
						t.Fatalf("circle (%d,%d) r=%d clip %v", ox, oy, r, cl)
					}
				}
			}
		}
	}
}

func TestCircHugeRadius(t *testing.T) {
	r := 1 << 40
	oy := r + 5

	g, _ := newTestGraphics()
	g.CircColor(64, oy, r, 3)
	var expected []coloredPoint
	for x := 0; x < 128; x++ {
		expected = append(expected, coloredPoint{x, 5, 3})
	}
	checkExactly(t, g, expected)

	g, _ = newTestGraphics()
	g.CircfillColor(64, oy, r, 3)
	expected = expected[:0]
	for y := 5; y < 128; y++ {
		for x := 0; x < 128; x++ {
			expected = append(expected, coloredPoint{x, y, 3})
		}
	}
	checkExactly(t, g, expected)
}
