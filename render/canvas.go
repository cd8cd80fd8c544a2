package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const circleSegments = 48

// Canvas is a Surface backed by an in-memory RGBA image. Circles are
// rasterized with anti-aliasing, rectangles and images are pixel aligned.
type Canvas struct {
	img      *image.RGBA
	rast     *raster.Rasterizer
	painter  *raster.RGBAPainter
	disposed bool
}

func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		img:     img,
		rast:    raster.NewRasterizer(width, height),
		painter: raster.NewRGBAPainter(img),
	}
}

// Image exposes the backing image. It is overwritten by the next frame.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Dispose marks the canvas as torn down; later draws are ignored.
func (c *Canvas) Dispose() {
	c.disposed = true
}

func (c *Canvas) Disposed() bool {
	return c.disposed
}

func (c *Canvas) Clear(col color.Color) {
	if c.disposed {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if c.disposed || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if c.disposed || r <= 0 {
		return
	}
	c.rast.Clear()
	c.rast.UseNonZeroWinding = false
	addCircle(c.rast, cx, cy, r)
	c.paint(col)
}

// StrokeCircle draws a ring centered on radius r. The ring is filled as two
// concentric polygons under the even-odd rule.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	if c.disposed || r <= 0 || width <= 0 {
		return
	}
	inner := r - width/2
	c.rast.Clear()
	c.rast.UseNonZeroWinding = false
	addCircle(c.rast, cx, cy, r+width/2)
	if inner > 0 {
		addCircle(c.rast, cx, cy, inner)
	}
	c.paint(col)
}

func (c *Canvas) DrawImage(img image.Image, x, y float64) {
	if c.disposed || img == nil {
		return
	}
	b := img.Bounds()
	dst := image.Rect(round(x), round(y), round(x)+b.Dx(), round(y)+b.Dy())
	draw.Draw(c.img, dst, img, b.Min, draw.Over)
}

func (c *Canvas) DrawImageScaled(img image.Image, dst image.Rectangle) {
	if c.disposed || img == nil || dst.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, dst, img, img.Bounds(), xdraw.Over, nil)
}

func (c *Canvas) DrawText(s string, x, y float64, face font.Face, col color.Color) {
	if c.disposed || s == "" || face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
}

func (c *Canvas) paint(col color.Color) {
	c.painter.SetColor(col)
	c.rast.Rasterize(c.painter)
}

func addCircle(r *raster.Rasterizer, cx, cy, radius float64) {
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		p := fixed.Point26_6{
			X: toFixed(cx + radius*math.Cos(a)),
			Y: toFixed(cy + radius*math.Sin(a)),
		}
		if i == 0 {
			r.Start(p)
			continue
		}
		r.Add1(p)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func round(v float64) int {
	return int(math.Round(v))
}
