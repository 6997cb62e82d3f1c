// Package font reads the bitmap fonts used by the text renderer.
//
// A font is a little-endian header followed by a pointer table and one
// record per character:
//
//	offset | size | field
//	0      | 2    | reserved
//	2      | 2    | character count
//	4      | 2    | line height
//	6      | 2*n  | offsets to each character record
//
// Each character record is a width and height byte followed by
// width*height bits of foreground mask, row-major and most significant
// bit first, padded to a whole byte.
package font

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/32bitkid/bitreader"
)

var ErrTruncated = errors.New("font: truncated data")

type Font struct {
	Characters uint16
	LineHeight uint16
	Bitmaps    []Character
}

// Character is the foreground mask of one glyph.
type Character struct {
	Width  uint8
	Height uint8
	bitmap []bool
}

// At reports whether x, y is a foreground pixel. Positions outside the
// glyph are background.
func (c Character) At(x, y int) bool {
	if x < 0 || y < 0 || x >= int(c.Width) || y >= int(c.Height) {
		return false
	}
	return c.bitmap[y*int(c.Width)+x]
}

func (c Character) String() string {
	var sb strings.Builder
	for y := 0; y < int(c.Height); y++ {
		for x := 0; x < int(c.Width); x++ {
			if c.At(x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Glyph returns the character for r. Runes past the end of the font are
// reported as missing.
func (f *Font) Glyph(r rune) (Character, bool) {
	if r < 0 || int(r) >= len(f.Bitmaps) {
		return Character{}, false
	}
	return f.Bitmaps[r], true
}

func ReadFont(b []byte) (*Font, error) {
	r := bytes.NewReader(b)

	var h struct {
		_          [2]uint8
		Characters uint16
		LineHeight uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("font: header: %w", ErrTruncated)
	}

	pointers := make([]uint16, h.Characters)
	if err := binary.Read(r, binary.LittleEndian, &pointers); err != nil {
		return nil, fmt.Errorf("font: pointer table: %w", ErrTruncated)
	}

	font := Font{
		Characters: h.Characters,
		LineHeight: h.LineHeight,
		Bitmaps:    make([]Character, int(h.Characters)),
	}

	for i, offset := range pointers {
		if int(offset) >= len(b) {
			return nil, fmt.Errorf("font: character %d at %#04x: %w", i, offset, ErrTruncated)
		}
		ch, err := readCharacter(b[offset:])
		if err != nil {
			return nil, fmt.Errorf("font: character %d: %w", i, err)
		}
		font.Bitmaps[i] = ch
	}

	return &font, nil
}

func readCharacter(b []byte) (Character, error) {
	if len(b) < 2 {
		return Character{}, ErrTruncated
	}
	ch := Character{Width: b[0], Height: b[1]}
	total := int(ch.Width) * int(ch.Height)
	if len(b)-2 < (total+7)>>3 {
		return Character{}, ErrTruncated
	}

	br := bitreader.NewReader(bytes.NewReader(b[2:]))
	ch.bitmap = make([]bool, total)
	for i := range ch.bitmap {
		bit, err := br.Read1()
		if err != nil {
			return Character{}, err
		}
		ch.bitmap[i] = bit
	}
	return ch, nil
}
