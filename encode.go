package snesmap

import (
	"bytes"
	"io"

	"github.com/bodgit/snesmap/screenblock"
)

func (e *Exporter) encode(w io.Writer, label string, m Map) error {
	if err := Validate(m); err != nil {
		return err
	}

	b := new(bytes.Buffer)
	b.WriteString(label + ":\n")

	for i := 0; i < m.LayerCount(); i++ {
		layer := m.LayerAt(i)
		if layer == nil || !layer.IsTileLayer() {
			e.logger.Printf("Skipping layer %d, not a tile layer\n", i+1)
			continue
		}

		blocks := screenblock.Blocks(layer.Width(), layer.Height())
		e.logger.Printf("Layer %d \"%s\" has %d screenblocks\n", i+1, SanitizeName(layer.Name()), len(blocks))

		for _, block := range blocks {
			if err := screenblock.Encode(b, i+1, block, layer); err != nil {
				return err
			}
		}
	}

	// Only drop the final newline, a map without tile layers ends with the label
	out := b.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}

	_, err := w.Write(out)
	return err
}

// Encode writes every tile layer of m to w as screenblocks under the given
// assembler label. Nothing is written if m fails validation.
func Encode(w io.Writer, label string, m Map) error {
	return New(nil).encode(w, label, m)
}
