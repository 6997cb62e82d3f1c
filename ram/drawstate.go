package ram

// DefaultColor is the pen color after reset.
const DefaultColor = 7

// DrawState holds the draw registers shared between the program and the
// rasterizer. Clip bounds are inclusive.
type DrawState struct {
	Color uint8

	ClipXB, ClipYB uint8
	ClipXE, ClipYE uint8

	LineX, LineY int16
	LineValid    bool

	TextX, TextY int16
}

// Reset restores the power-on register values.
func (s *DrawState) Reset() {
	*s = DrawState{
		Color:  DefaultColor,
		ClipXE: Width - 1,
		ClipYE: Height - 1,
	}
}

// ResetLine clears the line anchor.
func (s *DrawState) ResetLine() {
	s.LineX, s.LineY, s.LineValid = 0, 0, false
}

// InClip reports whether x, y falls inside the clip rectangle.
func (s *DrawState) InClip(x, y int) bool {
	return x >= int(s.ClipXB) && x <= int(s.ClipXE) &&
		y >= int(s.ClipYB) && y <= int(s.ClipYE)
}
