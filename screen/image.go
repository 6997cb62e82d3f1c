// Package screen turns the packed 4-bit screen into output colors.
package screen

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/32bitkid/pico/ram"
)

// Render resolves every pixel of bank through the screen palette and
// returns an image over BasePalette.
func Render(bank *ram.Bank, p *Palettes) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, ram.Width, ram.Height), BasePalette)
	for y := 0; y < ram.Height; y++ {
		offset := y * img.Stride
		for x := 0; x < ram.Width; x++ {
			img.Pix[offset+x] = p.MapScreen(bank.Get(x, y))
		}
	}
	return img
}

// Scale enlarges src by an integer factor. Factors below 2 return src.
func Scale(src *image.Paletted, factor int) *image.Paletted {
	if factor < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor), src.Palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
