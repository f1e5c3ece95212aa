package screenblock

import "fmt"

// Entry is a 16-bit SNES tilemap entry.
type Entry uint16

// NewEntry encodes c as a tilemap entry. Empty cells are always zero, their
// flip flags are ignored.
func NewEntry(c Cell) Entry {
	if c.IsEmpty() {
		return 0
	}

	e := Entry(c.TileID & tileMask)
	if c.FlippedHorizontally {
		e |= hFlip
	}
	if c.FlippedVertically {
		e |= vFlip
	}
	return e
}

// TileID returns the tile number stored in the entry.
func (e Entry) TileID() int {
	return int(e & tileMask)
}

// HFlip reports whether the horizontal flip bit is set.
func (e Entry) HFlip() bool {
	return e&hFlip != 0
}

// VFlip reports whether the vertical flip bit is set.
func (e Entry) VFlip() bool {
	return e&vFlip != 0
}

// String returns the entry as a WLA-DX hexadecimal literal, such as $4005.
func (e Entry) String() string {
	return fmt.Sprintf("$%04X", uint16(e))
}
