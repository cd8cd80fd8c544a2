package engine

import (
	"math"

	"github.com/zucenko/portals/sprite"
)

// Collider answers whether an axis-aligned box overlaps a wall.
type Collider interface {
	CollidesWithWall(x, y, w, h float64) bool
}

// Player is the walking character. X and Y are the top-left corner of its box.
type Player struct {
	X, Y          float64
	Width, Height float64
	Facing        Direction
	Moving        bool
	Frame         int
	Speed         float64
	FrameDuration int

	frameTimer int
}

func NewPlayer(x, y float64) *Player {
	return &Player{
		X:             x,
		Y:             y,
		Width:         PlayerSize,
		Height:        PlayerSize,
		Facing:        DirDown,
		Speed:         PlayerSpeed,
		FrameDuration: PlayerFrameDuration,
	}
}

// Update moves the player one tick in dir. Each axis is tried on its own so
// the player slides along walls instead of sticking to them.
func (p *Player) Update(dir Direction, room Collider) {
	if dir == DirNone {
		p.Moving = false
		return
	}
	p.Facing = dir
	p.Moving = true

	dx, dy := dir.delta()
	if nx := p.X + dx*p.Speed; dx != 0 && !room.CollidesWithWall(nx, p.Y, p.Width, p.Height) {
		p.X = nx
	}
	if ny := p.Y + dy*p.Speed; dy != 0 && !room.CollidesWithWall(p.X, ny, p.Width, p.Height) {
		p.Y = ny
	}

	p.frameTimer++
	if p.frameTimer >= p.FrameDuration {
		p.frameTimer = 0
		p.Frame = (p.Frame + 1) % 2
	}
}

// SpriteName is the sheet key for the current pose. A standing player always
// shows frame 0.
func (p *Player) SpriteName() string {
	frame := 0
	if p.Moving {
		frame = p.Frame
	}
	return sprite.Name(p.Facing.String(), frame)
}

func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// DrawPosition is the top-left corner rounded to whole pixels.
func (p *Player) DrawPosition() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
