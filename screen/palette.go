package screen

import (
	"image/color"
)

// Colors is the number of entries in the console palette.
const Colors = 16

// BasePalette is the fixed output color of each of the 16 indices.
var BasePalette = color.Palette{
	hexColor("#000000"), // black
	hexColor("#1d2b53"), // dark-blue
	hexColor("#7e2553"), // dark-purple
	hexColor("#008751"), // dark-green
	hexColor("#ab5236"), // brown
	hexColor("#5f574f"), // dark-grey
	hexColor("#c2c3c7"), // light-grey
	hexColor("#fff1e8"), // white

	hexColor("#ff004d"), // red
	hexColor("#ffa300"), // orange
	hexColor("#fff024"), // yellow
	hexColor("#00e756"), // green
	hexColor("#29adff"), // blue
	hexColor("#83769c"), // lavender
	hexColor("#ff77a8"), // pink
	hexColor("#ffccaa"), // light-peach
}

// Palettes holds the mutable color tables: the remap applied when a pixel
// is drawn, the remap applied when the screen is output, and the set of
// indices skipped by sprite blits.
type Palettes struct {
	draw        [Colors]uint8
	screen      [Colors]uint8
	transparent uint16
}

func NewPalettes() *Palettes {
	p := &Palettes{}
	p.Reset()
	return p
}

// Reset restores identity draw and screen palettes and makes only color
// 0 transparent.
func (p *Palettes) Reset() {
	for c := range p.draw {
		p.draw[c] = uint8(c)
		p.screen[c] = uint8(c)
	}
	p.ResetTransparency()
}

func (p *Palettes) ResetTransparency() {
	p.transparent = 1 << 0
}

func (p *Palettes) MapDraw(c uint8) uint8   { return p.draw[c&0x0f] }
func (p *Palettes) MapScreen(c uint8) uint8 { return p.screen[c&0x0f] }

func (p *Palettes) SetDraw(c, mapped uint8)   { p.draw[c&0x0f] = mapped & 0x0f }
func (p *Palettes) SetScreen(c, mapped uint8) { p.screen[c&0x0f] = mapped & 0x0f }

func (p *Palettes) IsTransparent(c uint8) bool {
	return p.transparent&(1<<(c&0x0f)) != 0
}

func (p *Palettes) SetTransparent(c uint8, transparent bool) {
	bit := uint16(1) << (c & 0x0f)
	if transparent {
		p.transparent |= bit
	} else {
		p.transparent &^= bit
	}
}
