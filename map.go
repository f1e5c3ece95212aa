package snesmap

import "github.com/bodgit/snesmap/screenblock"

// Cell is a single map cell.
type Cell = screenblock.Cell

// Map is a tile map with an ordered list of layers.
type Map interface {
	Width() int
	Height() int
	LayerCount() int
	LayerAt(int) Layer
}

// Layer is a single layer of a Map. Only tile layers are exported.
type Layer interface {
	Name() string
	Width() int
	Height() int
	IsTileLayer() bool
	CellAt(x, y int) Cell
}

// EmptyCell is a cell with no tile.
var EmptyCell = screenblock.EmptyCell
