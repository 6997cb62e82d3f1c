// Package ram models the slice of console memory the graphics core works
// against: the sprite sheet, the screen and the draw-state registers.
package ram

// Base addresses of the regions reachable through Peek and Poke.
const (
	AddrSpriteSheet uint16 = 0x0000
	AddrScreen      uint16 = 0x6000
)

// Memory is owned by the caller. The zero value has a blank sprite sheet
// and screen and zeroed registers; see DrawState.Reset.
//
// Only the sprite sheet and screen have addresses. The draw-state
// registers are plain fields and are not reachable through Peek or Poke;
// the console's 0x5f00 block reads as 0 and ignores writes.
type Memory struct {
	SpriteSheet Bank
	Screen      Bank
	DrawState
}

func (m *Memory) region(addr uint16) (*Bank, int, bool) {
	switch {
	case addr < AddrSpriteSheet+BankSize:
		return &m.SpriteSheet, int(addr - AddrSpriteSheet), true
	case addr >= AddrScreen && int(addr) < int(AddrScreen)+BankSize:
		return &m.Screen, int(addr - AddrScreen), true
	}
	return nil, 0, false
}

// Peek reads one byte of the sprite sheet or screen region. Unmapped
// addresses read as 0.
func (m *Memory) Peek(addr uint16) uint8 {
	b, i, ok := m.region(addr)
	if !ok {
		return 0
	}
	return b[i]
}

// Poke writes one byte of the sprite sheet or screen region. Writes to
// unmapped addresses are dropped.
func (m *Memory) Poke(addr uint16, v uint8) {
	b, i, ok := m.region(addr)
	if !ok {
		return
	}
	b[i] = v
}
