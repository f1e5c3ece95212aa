/*
Package screenblock implements the SNES tilemap screenblock encoder.

A screenblock is 32 by 32 tilemap entries. Each entry is a 16-bit word where
the low bits hold the tile number, bit 14 mirrors the tile horizontally and
bit 15 mirrors it vertically. Larger maps are split into screenblocks in
row-major order, so a 64 by 64 map becomes four screenblocks numbered 0 to 3:

	+---+---+
	| 0 | 1 |
	+---+---+
	| 2 | 3 |
	+---+---+

Entries are written as WLA-DX assembler source, one ".dw" line of 32 words
per screenblock row.
*/
package screenblock

const (
	// Width is the number of entries in a screenblock row
	Width = 32
	// Height is the number of rows in a screenblock
	Height = Width

	hFlip    = 1 << 14
	vFlip    = 1 << 15
	tileMask = hFlip - 1
)

// Cell is a single map cell as authored in the map editor.
type Cell struct {
	// TileID is the tileset-local tile number or -1 for an empty cell
	TileID              int
	FlippedHorizontally bool
	FlippedVertically   bool
}

// EmptyCell is a cell with no tile.
var EmptyCell = Cell{TileID: -1}

// IsEmpty reports whether the cell references no tile.
func (c Cell) IsEmpty() bool {
	return c.TileID < 0
}

// Grid is anything that can return the cell at a given coordinate.
type Grid interface {
	CellAt(x, y int) Cell
}

// Block is one screenblock of a layer.
type Block struct {
	// X and Y are the block coordinates, not tile coordinates
	X, Y int
	// Index is the sequential block number within the layer
	Index int
}

// Origin returns the tile coordinates of the top-left cell of the block.
func (b Block) Origin() (int, int) {
	return b.X * Width, b.Y * Height
}

// Blocks returns the screenblocks covering a layer of width by height tiles
// in row-major order.
func Blocks(width, height int) []Block {
	bx, by := width/Width, height/Height
	if bx <= 0 || by <= 0 {
		return nil
	}

	blocks := make([]Block, 0, bx*by)
	for y := 0; y < by; y++ {
		for x := 0; x < bx; x++ {
			blocks = append(blocks, Block{
				X:     x,
				Y:     y,
				Index: y*bx + x,
			})
		}
	}
	return blocks
}
