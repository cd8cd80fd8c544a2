package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/portals/content"
)

func testRoom() *Room {
	return NewRoom(Cols, Rows, TileSize, content.DefaultPortals(), rand.New(rand.NewSource(1)))
}

func TestRoomSpawn(t *testing.T) {
	x, y := testRoom().Spawn()
	assert.Equal(t, 322.0, x)
	assert.Equal(t, 226.0, y)
}

func TestRoomWallRing(t *testing.T) {
	r := testRoom()
	for c := 0; c < Cols; c++ {
		assert.Equal(t, Wall, r.Cell(c, 0))
		assert.Equal(t, Wall, r.Cell(c, Rows-1))
	}
	for row := 0; row < Rows; row++ {
		assert.Equal(t, Wall, r.Cell(0, row))
		assert.Equal(t, Wall, r.Cell(Cols-1, row))
	}
	assert.Equal(t, Floor, r.Cell(1, 1))
	assert.Equal(t, Floor, r.Cell(Cols-2, Rows-2))
	assert.Equal(t, Wall, r.Cell(-1, 5))
	assert.Equal(t, Wall, r.Cell(5, Rows))
}

func TestRoomCollidesWithWall(t *testing.T) {
	r := testRoom()
	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"interior", 100, 100, 28, 28, false},
		{"touching left wall edge", 32, 100, 28, 28, false},
		{"one unit into left wall", 31.5, 100, 28, 28, true},
		{"flush with right wall", float64((Cols-1)*TileSize) - 28, 100, 28, 28, false},
		{"overlapping right wall", float64((Cols-1)*TileSize) - 27, 100, 28, 28, true},
		{"outside grid", -100, -100, 28, 28, true},
		{"bottom wall", 100, float64((Rows-1)*TileSize) - 27, 28, 28, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.CollidesWithWall(tt.x, tt.y, tt.w, tt.h))
		})
	}
}

func TestRoomPortalsFollowDefinitions(t *testing.T) {
	r := testRoom()
	defs := content.DefaultPortals()
	require.Len(t, r.Portals(), len(defs))
	for i, p := range r.Portals() {
		assert.Equal(t, defs[i].Kind, p.Kind)
		cx, cy := p.Center()
		assert.Equal(t, float64(defs[i].Col*TileSize+TileSize/2), cx)
		assert.Equal(t, float64(defs[i].Row*TileSize+TileSize/2), cy)
	}
}

func TestRoomSize(t *testing.T) {
	w, h := testRoom().Size()
	assert.Equal(t, ScreenWidth, w)
	assert.Equal(t, ScreenHeight, h)
}

func TestRoomMatchesContentGrid(t *testing.T) {
	assert.Equal(t, content.RoomCols, Cols)
	assert.Equal(t, content.RoomRows, Rows)
}
