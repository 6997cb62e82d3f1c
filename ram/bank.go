package ram

// Width and Height are the pixel dimensions of every bank.
const (
	Width  = 128
	Height = 128

	// BankSize is the number of bytes backing one 128x128 4-bit bank.
	BankSize = Width * Height / 2
)

// Bank is 128x128 4-bit pixels packed two per byte, row-major. The even
// x of each pair lives in the low nibble.
type Bank [BankSize]uint8

func offset(x, y int) (int, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, false
	}
	return (y*Width + x) >> 1, true
}

// Get returns the color index at x, y. Reads outside the bank return 0.
func (b *Bank) Get(x, y int) uint8 {
	i, ok := offset(x, y)
	if !ok {
		return 0
	}
	if x&1 == 0 {
		return b[i] & 0x0f
	}
	return b[i] >> 4
}

// Set stores c at x, y, leaving the neighbouring nibble intact. Writes
// outside the bank are ignored.
func (b *Bank) Set(x, y int, c uint8) {
	i, ok := offset(x, y)
	if !ok {
		return
	}
	c &= 0x0f
	if x&1 == 0 {
		b[i] = b[i]&0xf0 | c
	} else {
		b[i] = b[i]&0x0f | c<<4
	}
}

// Fill sets every pixel in the bank to c.
func (b *Bank) Fill(c uint8) {
	c &= 0x0f
	v := c<<4 | c
	for i := range b {
		b[i] = v
	}
}
