package screenblock

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNoGrid = errors.New("screenblock: nil grid")

type encoder struct {
	w io.Writer

	// Enough to hold one row of entries
	row [Width]string
}

func (e *encoder) encode(layer int, b Block, g Grid) error {
	if _, err := fmt.Fprintf(e.w, ";Layer %d Screenblock %d\n", layer, b.Index); err != nil {
		return err
	}

	ox, oy := b.Origin()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			e.row[x] = NewEntry(g.CellAt(ox+x, oy+y)).String()
		}

		if _, err := fmt.Fprintf(e.w, ".dw %s\n", strings.Join(e.row[:], ", ")); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes block b of grid g to w as a comment line naming the 1-based
// layer number and block index, followed by 32 ".dw" rows. Every line,
// including the last row, ends with a newline.
func Encode(w io.Writer, layer int, b Block, g Grid) error {
	if g == nil {
		return errNoGrid
	}

	e := encoder{w: w}

	return e.encode(layer, b, g)
}
