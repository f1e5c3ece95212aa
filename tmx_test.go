package snesmap

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	gidHFlip = 0x80000000
	gidVFlip = 0x40000000
	gidDFlip = 0x20000000
)

type fixtureLayer struct {
	element string
	name    string
	gid     func(x, y int) uint32
}

func tmxFixture(width, height int, layers ...fixtureLayer) []byte {
	b := new(strings.Builder)
	fmt.Fprintf(b, `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="8" tileheight="8" infinite="0" nextlayerid="%d" nextobjectid="1">
 <tileset firstgid="1" name="tiles" tilewidth="8" tileheight="8" tilecount="1024" columns="32">
  <image source="tiles.png" width="256" height="256"/>
 </tileset>
`, width, height, len(layers)+1)

	for i, l := range layers {
		switch l.element {
		case elementLayer:
			fmt.Fprintf(b, " <layer id=\"%d\" name=\"%s\" width=\"%d\" height=\"%d\">\n  <data encoding=\"csv\">\n", i+1, l.name, width, height)
			rows := make([]string, height)
			for y := range rows {
				cols := make([]string, width)
				for x := range cols {
					var gid uint32
					if l.gid != nil {
						gid = l.gid(x, y)
					}
					cols[x] = fmt.Sprint(gid)
				}
				rows[y] = strings.Join(cols, ",")
			}
			b.WriteString(strings.Join(rows, ",\n"))
			b.WriteString("\n</data>\n </layer>\n")
		case elementImageLayer:
			fmt.Fprintf(b, " <imagelayer id=\"%d\" name=\"%s\">\n  <image source=\"sky.png\" width=\"256\" height=\"256\"/>\n </imagelayer>\n", i+1, l.name)
		default:
			fmt.Fprintf(b, " <%s id=\"%d\" name=\"%s\"/>\n", l.element, i+1, l.name)
		}
	}

	b.WriteString("</map>\n")

	return []byte(b.String())
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/level.tmx": &fstest.MapFile{
			Data: tmxFixture(64, 32,
				fixtureLayer{element: elementObjectGroup, name: "Spawns"},
				fixtureLayer{element: elementLayer, name: "Background", gid: func(x, y int) uint32 {
					switch {
					case x == 0 && y == 0:
						return 0
					case x == 1 && y == 0:
						return 6 | gidHFlip
					case x == 2 && y == 0:
						return 6 | gidVFlip
					case x == 3 && y == 0:
						return 6 | gidHFlip | gidVFlip | gidDFlip
					}
					return uint32(x + 1)
				}},
				fixtureLayer{element: elementImageLayer, name: "Sky"},
				fixtureLayer{element: elementLayer, name: "Foreground"},
			),
		},
	}

	m, err := LoadTMX(fsys, "maps/level.tmx")
	require.NoError(t, err)

	assert.Equal(t, 64, m.Width())
	assert.Equal(t, 32, m.Height())
	require.Equal(t, 4, m.LayerCount())

	names := make([]string, m.LayerCount())
	tiles := make([]bool, m.LayerCount())
	for i := range names {
		names[i] = m.LayerAt(i).Name()
		tiles[i] = m.LayerAt(i).IsTileLayer()
	}
	assert.Equal(t, []string{"Spawns", "Background", "Sky", "Foreground"}, names)
	assert.Equal(t, []bool{false, true, false, true}, tiles)

	l := m.LayerAt(1)
	assert.Equal(t, 64, l.Width())
	assert.Equal(t, 32, l.Height())
	assert.Equal(t, EmptyCell, l.CellAt(0, 0))
	assert.Equal(t, Cell{TileID: 5, FlippedHorizontally: true}, l.CellAt(1, 0))
	assert.Equal(t, Cell{TileID: 5, FlippedVertically: true}, l.CellAt(2, 0))
	assert.Equal(t, Cell{TileID: 5, FlippedHorizontally: true, FlippedVertically: true}, l.CellAt(3, 0))
	assert.Equal(t, Cell{TileID: 63}, l.CellAt(63, 31))
	assert.Equal(t, EmptyCell, l.CellAt(64, 0))

	assert.Equal(t, EmptyCell, m.LayerAt(3).CellAt(10, 10))
	assert.Nil(t, m.LayerAt(4))
}

func TestLoadTMXMissing(t *testing.T) {
	_, err := LoadTMX(fstest.MapFS{}, "missing.tmx")
	assert.Error(t, err)
}

func TestLayerOrder(t *testing.T) {
	order, err := layerOrder(strings.NewReader(`<map>
 <tileset firstgid="1"/>
 <group name="g"><layer name="nested"/></group>
 <layer name="a"><data>1,2</data></layer>
 <objectgroup name="o"><object id="1"/></objectgroup>
 <imagelayer name="i"/>
</map>`))
	require.NoError(t, err)
	assert.Equal(t, []string{elementGroup, elementLayer, elementObjectGroup, elementImageLayer}, order)
}

func TestLayerOrderInvalid(t *testing.T) {
	_, err := layerOrder(strings.NewReader(`<map><layer>`))
	assert.Error(t, err)
}
