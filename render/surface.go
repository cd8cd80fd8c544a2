// Package render holds the drawing abstraction the game composites onto and a
// CPU implementation of it.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Surface is the drawing target of a frame. Coordinates are in room units,
// which are pixels of the logical screen.
type Surface interface {
	Size() (width, height int)
	// Disposed reports whether the backing image is gone. Drawing on a
	// disposed surface must be skipped by callers.
	Disposed() bool

	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64)
	// DrawImageScaled stretches img over dst.
	DrawImageScaled(img image.Image, dst image.Rectangle)
	// DrawText draws s with its baseline starting at (x, y).
	DrawText(s string, x, y float64, face font.Face, c color.Color)
}

// TextWidth measures s in face, in surface units.
func TextWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// Ascent is the distance from the top of a line to its baseline.
func Ascent(face font.Face) float64 {
	return float64(face.Metrics().Ascent) / 64
}

// LineHeight is the recommended distance between two baselines.
func LineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}
