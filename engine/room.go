package engine

import (
	"math"
	"math/rand"

	"github.com/zucenko/portals/content"
)

type Cell int

const (
	Floor Cell = iota
	Wall
)

// Room is a rectangular tile grid with a wall ring and a fixed set of portals.
// Matrix is indexed [col][row].
type Room struct {
	Matrix     [][]Cell
	Cols, Rows int
	tileSize   int
	portals    []*Portal
}

// NewRoom builds the grid and places one portal per definition, in order.
// rng seeds the glow phases; nil means a time seeded source.
func NewRoom(cols, rows, tileSize int, defs []content.PortalDef, rng *rand.Rand) *Room {
	if rng == nil {
		rng = newRand()
	}
	matrix := make([][]Cell, cols)
	for c := 0; c < cols; c++ {
		matrix[c] = make([]Cell, rows)
		for r := 0; r < rows; r++ {
			if c == 0 || r == 0 || c == cols-1 || r == rows-1 {
				matrix[c][r] = Wall
			}
		}
	}
	portals := make([]*Portal, 0, len(defs))
	for _, def := range defs {
		portals = append(portals, NewPortal(def, tileSize, rng.Float64()*2*math.Pi))
	}
	return &Room{
		Matrix:   matrix,
		Cols:     cols,
		Rows:     rows,
		tileSize: tileSize,
		portals:  portals,
	}
}

// Cell is Wall for any address outside the grid.
func (r *Room) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return Wall
	}
	return r.Matrix[col][row]
}

// CollidesWithWall samples the four corners of the box. Only corners are
// checked, which is exact while boxes are no larger than a tile.
func (r *Room) CollidesWithWall(x, y, w, h float64) bool {
	corners := [4][2]float64{
		{x, y},
		{x + w - 1, y},
		{x, y + h - 1},
		{x + w - 1, y + h - 1},
	}
	ts := float64(r.tileSize)
	for _, c := range corners {
		col := int(math.Floor(c[0] / ts))
		row := int(math.Floor(c[1] / ts))
		if r.Cell(col, row) == Wall {
			return true
		}
	}
	return false
}

// Spawn is the top-left corner of the player at the center tile, inset slightly.
func (r *Room) Spawn() (float64, float64) {
	return float64(r.Cols/2*r.tileSize + spawnInset), float64(r.Rows/2*r.tileSize + spawnInset)
}

func (r *Room) Portals() []*Portal {
	return r.portals
}

func (r *Room) TileSize() int {
	return r.tileSize
}

// Size is the room extent in pixels.
func (r *Room) Size() (int, int) {
	return r.Cols * r.tileSize, r.Rows * r.tileSize
}
