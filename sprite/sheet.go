// Package sprite synthesizes the player character images at startup.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Size is the width and height of every sprite.
const Size = 28

// Facings lists the sprite views in generation order.
var Facings = []string{"down", "up", "left", "right"}

// Name builds the lookup key of a sprite, e.g. "player_left_1".
func Name(facing string, frame int) string {
	return fmt.Sprintf("player_%s_%d", facing, frame)
}

// Sheet holds the generated images.
type Sheet struct {
	images map[string]*image.RGBA
}

// New draws 4 facings x 2 frames.
func New() *Sheet {
	s := &Sheet{images: make(map[string]*image.RGBA, len(Facings)*2)}
	for _, f := range Facings {
		for frame := 0; frame < 2; frame++ {
			s.images[Name(f, frame)] = draw28(f, frame)
		}
	}
	return s
}

// Get returns the image for name or nil when the name is unknown.
func (s *Sheet) Get(name string) *image.RGBA {
	if s == nil {
		return nil
	}
	return s.images[name]
}

// Len is the number of generated images.
func (s *Sheet) Len() int {
	return len(s.images)
}

type rect struct {
	x, y, w, h int
	c          color.RGBA
}

func draw28(facing string, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	var parts []rect
	switch facing {
	case "down":
		parts = front(frame)
	case "up":
		parts = back(frame)
	case "left":
		parts = side(frame, false)
	case "right":
		parts = side(frame, true)
	}
	for _, p := range parts {
		if p.w <= 0 || p.h <= 0 {
			continue
		}
		draw.Draw(img, image.Rect(p.x, p.y, p.x+p.w, p.y+p.h), image.NewUniform(p.c), image.Point{}, draw.Src)
	}
	return img
}
