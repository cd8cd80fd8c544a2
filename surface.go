package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/zucenko/portals/render"
	"golang.org/x/image/font"
)

// Surface draws frames on an offscreen ebiten image. Images passed by
// pointer are uploaded once; DrawImageScaled sources are uploaded per frame
// and released by the next BeginFrame.
type Surface struct {
	img      *ebiten.Image
	images   map[image.Image]*ebiten.Image
	faces    map[font.Face]*text.GoXFace
	frame    []*ebiten.Image
	disposed bool
}

func NewSurface(width, height int) *Surface {
	return &Surface{
		img:    ebiten.NewImage(width, height),
		images: make(map[image.Image]*ebiten.Image),
		faces:  make(map[font.Face]*text.GoXFace),
	}
}

func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// BeginFrame releases the uploads of the previous frame.
func (s *Surface) BeginFrame() {
	for _, img := range s.frame {
		img.Deallocate()
	}
	s.frame = s.frame[:0]
}

func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	s.BeginFrame()
	for _, img := range s.images {
		img.Deallocate()
	}
	s.img.Deallocate()
	s.disposed = true
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Disposed() bool {
	return s.disposed
}

func (s *Surface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *Surface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	ei, ok := s.images[img]
	if !ok {
		ei = ebiten.NewImageFromImage(img)
		s.images[img] = ei
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(int(x)), float64(int(y)))
	s.img.DrawImage(ei, op)
}

func (s *Surface) DrawImageScaled(img image.Image, dst image.Rectangle) {
	if img == nil || img.Bounds().Empty() || dst.Empty() {
		return
	}
	b := img.Bounds()
	ei := ebiten.NewImageFromImage(img)
	s.frame = append(s.frame, ei)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(b.Dx()), float64(dst.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.img.DrawImage(ei, op)
}

// DrawText places the baseline at y. text/v2 positions the top of the line,
// so the ascent is subtracted.
func (s *Surface) DrawText(str string, x, y float64, face font.Face, c color.Color) {
	if str == "" || face == nil {
		return
	}
	f, ok := s.faces[face]
	if !ok {
		f = text.NewGoXFace(face)
		s.faces[face] = f
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-render.Ascent(face))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, f, op)
}
