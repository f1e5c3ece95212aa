package snesmap

type testLayer struct {
	name          string
	width, height int
	tile          bool
	cell          func(x, y int) Cell
}

func (l *testLayer) Name() string      { return l.name }
func (l *testLayer) Width() int        { return l.width }
func (l *testLayer) Height() int       { return l.height }
func (l *testLayer) IsTileLayer() bool { return l.tile }

func (l *testLayer) CellAt(x, y int) Cell {
	if l.cell == nil {
		return EmptyCell
	}
	return l.cell(x, y)
}

type testMap struct {
	width, height int
	layers        []Layer
}

func (m *testMap) Width() int          { return m.width }
func (m *testMap) Height() int         { return m.height }
func (m *testMap) LayerCount() int     { return len(m.layers) }
func (m *testMap) LayerAt(i int) Layer { return m.layers[i] }

func newTestMap(width, height int, cell func(x, y int) Cell) *testMap {
	return &testMap{
		width:  width,
		height: height,
		layers: []Layer{
			&testLayer{
				name:   "Background",
				width:  width,
				height: height,
				tile:   true,
				cell:   cell,
			},
		},
	}
}
