package snesmap

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/lafriks/go-tiled"
)

// Top-level TMX elements that Tiled presents as layers
const (
	elementLayer       = "layer"
	elementObjectGroup = "objectgroup"
	elementImageLayer  = "imagelayer"
	elementGroup       = "group"
)

type tmxMap struct {
	width, height int
	layers        []*tmxLayer
}

func (m *tmxMap) Width() int      { return m.width }
func (m *tmxMap) Height() int     { return m.height }
func (m *tmxMap) LayerCount() int { return len(m.layers) }

func (m *tmxMap) LayerAt(i int) Layer {
	if i < 0 || i >= len(m.layers) {
		return nil
	}
	return m.layers[i]
}

type tmxLayer struct {
	name          string
	width, height int
	tiles         []*tiled.LayerTile
	tile          bool
}

func (l *tmxLayer) Name() string      { return l.name }
func (l *tmxLayer) Width() int        { return l.width }
func (l *tmxLayer) Height() int       { return l.height }
func (l *tmxLayer) IsTileLayer() bool { return l.tile }

// CellAt ignores the diagonal flip flag as the SNES has no equivalent
func (l *tmxLayer) CellAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return EmptyCell
	}

	i := y*l.width + x
	if i >= len(l.tiles) {
		return EmptyCell
	}

	t := l.tiles[i]
	if t == nil || t.IsNil() {
		return EmptyCell
	}

	return Cell{
		TileID:              int(t.ID),
		FlippedHorizontally: t.HorizontalFlip,
		FlippedVertically:   t.VerticalFlip,
	}
}

// layerOrder returns the top-level layer elements of a TMX document in the
// order they appear, go-tiled splits them into one slice per kind.
func layerOrder(r io.Reader) ([]string, error) {
	d := xml.NewDecoder(r)

	var order []string
	depth := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return order, nil
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 {
				switch t.Name.Local {
				case elementLayer, elementObjectGroup, elementImageLayer, elementGroup:
					order = append(order, t.Name.Local)
				}
				if err := d.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

func newTMXMap(m *tiled.Map, order []string) (*tmxMap, error) {
	tm := &tmxMap{
		width:  m.Width,
		height: m.Height,
	}

	var layer, objectGroup, imageLayer, group int
	for _, kind := range order {
		l := &tmxLayer{
			width:  m.Width,
			height: m.Height,
		}

		switch kind {
		case elementLayer:
			if layer >= len(m.Layers) {
				return nil, fmt.Errorf("tmx: missing tile layer %d", layer)
			}
			l.name = m.Layers[layer].Name
			l.tiles = m.Layers[layer].Tiles
			l.tile = true
			layer++
		case elementObjectGroup:
			if objectGroup < len(m.ObjectGroups) {
				l.name = m.ObjectGroups[objectGroup].Name
			}
			objectGroup++
		case elementImageLayer:
			if imageLayer < len(m.ImageLayers) {
				l.name = m.ImageLayers[imageLayer].Name
			}
			imageLayer++
		case elementGroup:
			if group < len(m.Groups) {
				l.name = m.Groups[group].Name
			}
			group++
		}

		tm.layers = append(tm.layers, l)
	}

	if layer != len(m.Layers) {
		return nil, fmt.Errorf("tmx: found %d of %d tile layers", layer, len(m.Layers))
	}

	return tm, nil
}

func loadTMX(m *tiled.Map, r io.Reader) (Map, error) {
	order, err := layerOrder(r)
	if err != nil {
		return nil, err
	}
	tm, err := newTMXMap(m, order)
	if err != nil {
		return nil, err
	}
	return tm, nil
}

// LoadTMX reads the TMX file at path within fsys.
func LoadTMX(fsys fs.FS, path string) (Map, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tm, err := loadTMX(m, f)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	return tm, nil
}

// LoadTMXFile reads the TMX file from the local filesystem. Tilesets are
// resolved relative to the file so they may live in a parent directory.
func LoadTMXFile(file string) (Map, error) {
	m, err := tiled.LoadFile(file)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", file, err)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tm, err := loadTMX(m, f)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", file, err)
	}
	return tm, nil
}
