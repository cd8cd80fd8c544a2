package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseID is the pointer id of the mouse. Touch ids are never negative.
const mouseID = -1

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	ID() int
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) ID() int {
	return mouseID
}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	TouchID ebiten.TouchID
}

func (t *TouchStrokeSource) ID() int {
	return int(t.TouchID)
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.TouchID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.TouchID)
}

// Stroke follows one pointer from press to release.
type Stroke struct {
	source StrokeSource

	currentX int
	currentY int
	moved    bool

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.moved = x != s.currentX || y != s.currentY
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) ID() int {
	return s.source.ID()
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

// Moved reports whether the last Update changed the position.
func (s *Stroke) Moved() bool {
	return s.moved
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}
