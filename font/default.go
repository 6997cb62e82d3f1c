package font

import "sync"

// Cell dimensions of the built-in font. Glyphs are 3x5 inside a 4x6 cell.
const (
	AdvanceWidth = 4
	LineHeight   = 6
)

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Default returns the built-in console font. Lowercase and uppercase
// letters share the same small-caps glyphs.
func Default() *Font {
	defaultOnce.Do(func() {
		f, err := ReadFont(defaultFontData)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	})
	return defaultFont
}

var defaultFontData = []byte{
	0x00, 0x00, 0x80, 0x00, 0x06, 0x00, 0x06, 0x01, 0x0a, 0x01, 0x0e, 0x01,
	0x12, 0x01, 0x16, 0x01, 0x1a, 0x01, 0x1e, 0x01, 0x22, 0x01, 0x26, 0x01,
	0x2a, 0x01, 0x2e, 0x01, 0x32, 0x01, 0x36, 0x01, 0x3a, 0x01, 0x3e, 0x01,
	0x42, 0x01, 0x46, 0x01, 0x4a, 0x01, 0x4e, 0x01, 0x52, 0x01, 0x56, 0x01,
	0x5a, 0x01, 0x5e, 0x01, 0x62, 0x01, 0x66, 0x01, 0x6a, 0x01, 0x6e, 0x01,
	0x72, 0x01, 0x76, 0x01, 0x7a, 0x01, 0x7e, 0x01, 0x82, 0x01, 0x86, 0x01,
	0x8a, 0x01, 0x8e, 0x01, 0x92, 0x01, 0x96, 0x01, 0x9a, 0x01, 0x9e, 0x01,
	0xa2, 0x01, 0xa6, 0x01, 0xaa, 0x01, 0xae, 0x01, 0xb2, 0x01, 0xb6, 0x01,
	0xba, 0x01, 0xbe, 0x01, 0xc2, 0x01, 0xc6, 0x01, 0xca, 0x01, 0xce, 0x01,
	0xd2, 0x01, 0xd6, 0x01, 0xda, 0x01, 0xde, 0x01, 0xe2, 0x01, 0xe6, 0x01,
	0xea, 0x01, 0xee, 0x01, 0xf2, 0x01, 0xf6, 0x01, 0xfa, 0x01, 0xfe, 0x01,
	0x02, 0x02, 0x06, 0x02, 0x0a, 0x02, 0x0e, 0x02, 0x12, 0x02, 0x16, 0x02,
	0x1a, 0x02, 0x1e, 0x02, 0x22, 0x02, 0x26, 0x02, 0x2a, 0x02, 0x2e, 0x02,
	0x32, 0x02, 0x36, 0x02, 0x3a, 0x02, 0x3e, 0x02, 0x42, 0x02, 0x46, 0x02,
	0x4a, 0x02, 0x4e, 0x02, 0x52, 0x02, 0x56, 0x02, 0x5a, 0x02, 0x5e, 0x02,
	0x62, 0x02, 0x66, 0x02, 0x6a, 0x02, 0x6e, 0x02, 0x72, 0x02, 0x76, 0x02,
	0x7a, 0x02, 0x7e, 0x02, 0x82, 0x02, 0x86, 0x02, 0x8a, 0x02, 0x8e, 0x02,
	0x92, 0x02, 0x96, 0x02, 0x9a, 0x02, 0x9e, 0x02, 0xa2, 0x02, 0xa6, 0x02,
	0xaa, 0x02, 0xae, 0x02, 0xb2, 0x02, 0xb6, 0x02, 0xba, 0x02, 0xbe, 0x02,
	0xc2, 0x02, 0xc6, 0x02, 0xca, 0x02, 0xce, 0x02, 0xd2, 0x02, 0xd6, 0x02,
	0xda, 0x02, 0xde, 0x02, 0xe2, 0x02, 0xe6, 0x02, 0xea, 0x02, 0xee, 0x02,
	0xf2, 0x02, 0xf6, 0x02, 0xfa, 0x02, 0xfe, 0x02, 0x02, 0x03, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05, 0x00, 0x00, 0x03, 0x05,
	0x49, 0x04, 0x03, 0x05, 0xb4, 0x00, 0x03, 0x05, 0xbe, 0xfa, 0x03, 0x05,
	0xfb, 0xbe, 0x03, 0x05, 0xa5, 0x4a, 0x03, 0x05, 0xdb, 0xde, 0x03, 0x05,
	0x50, 0x00, 0x03, 0x05, 0x52, 0x44, 0x03, 0x05, 0x44, 0x94, 0x03, 0x05,
	0xab, 0xaa, 0x03, 0x05, 0x0b, 0xa0, 0x03, 0x05, 0x00, 0x28, 0x03, 0x05,
	0x03, 0x80, 0x03, 0x05, 0x00, 0x04, 0x03, 0x05, 0x29, 0x28, 0x03, 0x05,
	0xf6, 0xde, 0x03, 0x05, 0xc9, 0x2e, 0x03, 0x05, 0xe7, 0xce, 0x03, 0x05,
	0xe5, 0x9e, 0x03, 0x05, 0xb7, 0x92, 0x03, 0x05, 0xf3, 0x9e, 0x03, 0x05,
	0x93, 0xde, 0x03, 0x05, 0xe4, 0x92, 0x03, 0x05, 0xf7, 0xde, 0x03, 0x05,
	0xf7, 0x92, 0x03, 0x05, 0x08, 0x20, 0x03, 0x05, 0x08, 0x28, 0x03, 0x05,
	0x2a, 0x22, 0x03, 0x05, 0x1c, 0x70, 0x03, 0x05, 0x88, 0xa8, 0x03, 0x05,
	0xe5, 0x84, 0x03, 0x05, 0x56, 0xc6, 0x03, 0x05, 0xf7, 0xda, 0x03, 0x05,
	0xf7, 0x5e, 0x03, 0x05, 0xf2, 0x4e, 0x03, 0x05, 0xd6, 0xdc, 0x03, 0x05,
	0xf3, 0x4e, 0x03, 0x05, 0xf3, 0x48, 0x03, 0x05, 0xf2, 0x5e, 0x03, 0x05,
	0xb7, 0xda, 0x03, 0x05, 0xe9, 0x2e, 0x03, 0x05, 0xe9, 0x2c, 0x03, 0x05,
	0xb7, 0x5a, 0x03, 0x05, 0x92, 0x4e, 0x03, 0x05, 0xfe, 0xda, 0x03, 0x05,
	0xd6, 0xda, 0x03, 0x05, 0x76, 0xdc, 0x03, 0x05, 0xf7, 0xc8, 0x03, 0x05,
	0x56, 0xe6, 0x03, 0x05, 0xf7, 0x5a, 0x03, 0x05, 0x73, 0x9c, 0x03, 0x05,
	0xe9, 0x24, 0x03, 0x05, 0xb6, 0xd6, 0x03, 0x05, 0xb6, 0xf4, 0x03, 0x05,
	0xb6, 0xfe, 0x03, 0x05, 0xb5, 0x5a, 0x03, 0x05, 0xb7, 0x9e, 0x03, 0x05,
	0xe5, 0x4e, 0x03, 0x05, 0xd2, 0x4c, 0x03, 0x05, 0x89, 0x22, 0x03, 0x05,
	0x64, 0x96, 0x03, 0x05, 0x54, 0x00, 0x03, 0x05, 0x00, 0x0e, 0x03, 0x05,
	0x44, 0x00, 0x03, 0x05, 0xf7, 0xda, 0x03, 0x05, 0xf7, 0x5e, 0x03, 0x05,
	0xf2, 0x4e, 0x03, 0x05, 0xd6, 0xdc, 0x03, 0x05, 0xf3, 0x4e, 0x03, 0x05,
	0xf3, 0x48, 0x03, 0x05, 0xf2, 0x5e, 0x03, 0x05, 0xb7, 0xda, 0x03, 0x05,
	0xe9, 0x2e, 0x03, 0x05, 0xe9, 0x2c, 0x03, 0x05, 0xb7, 0x5a, 0x03, 0x05,
	0x92, 0x4e, 0x03, 0x05, 0xfe, 0xda, 0x03, 0x05, 0xd6, 0xda, 0x03, 0x05,
	0x76, 0xdc, 0x03, 0x05, 0xf7, 0xc8, 0x03, 0x05, 0x56, 0xe6, 0x03, 0x05,
	0xf7, 0x5a, 0x03, 0x05, 0x73, 0x9c, 0x03, 0x05, 0xe9, 0x24, 0x03, 0x05,
	0xb6, 0xd6, 0x03, 0x05, 0xb6, 0xf4, 0x03, 0x05, 0xb6, 0xfe, 0x03, 0x05,
	0xb5, 0x5a, 0x03, 0x05, 0xb7, 0x9e, 0x03, 0x05, 0xe5, 0x4e, 0x03, 0x05,
	0x6b, 0x26, 0x03, 0x05, 0x49, 0x24, 0x03, 0x05, 0xc9, 0xac, 0x03, 0x05,
	0x07, 0xc0, 0x03, 0x05, 0x00, 0x00,
}
