package snesmap

import (
	"errors"

	"github.com/bodgit/snesmap/screenblock"
)

// ErrInvalidMapSize is returned when the map width or height is not a
// multiple of the screenblock size.
var ErrInvalidMapSize = errors.New("Export failed: Invalid map size! Map width and height must be a multiple of 32.")

// Validate checks m can be split into whole screenblocks.
func Validate(m Map) error {
	if m.Width()%screenblock.Width != 0 || m.Height()%screenblock.Height != 0 {
		return ErrInvalidMapSize
	}
	return nil
}
