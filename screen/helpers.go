package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

func hexColor(s string) color.RGBA {
	c, err := clr.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return rgb(r, g, b)
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
