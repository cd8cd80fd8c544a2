package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// backdrop shows through translucent pixels and the letterbox.
var backdrop = colorful.Color{R: 0, G: 0, B: 0}

// presenter draws an image on a terminal using one half block per two
// vertical pixels, letterboxed to keep the aspect ratio.
type presenter struct {
	screen tcell.Screen
	buf    *image.RGBA
	// placement of buf in pixel units, two per cell row
	offX, offY int
	scale      float64
}

func newPresenter(screen tcell.Screen) *presenter {
	return &presenter{screen: screen}
}

// fit sizes the buffer for a src of w x h pixels on the current terminal.
func (p *presenter) fit(w, h int) {
	cols, rows := p.screen.Size()
	pw, ph := cols, rows*2
	p.scale = min(float64(pw)/float64(w), float64(ph)/float64(h))
	bw, bh := int(math.Round(float64(w)*p.scale)), int(math.Round(float64(h)*p.scale))
	if p.buf == nil || p.buf.Bounds().Dx() != bw || p.buf.Bounds().Dy() != bh {
		p.buf = image.NewRGBA(image.Rect(0, 0, bw, bh))
	}
	p.offX = (pw - bw) / 2
	p.offY = (ph - bh) / 2
	// half blocks pair rows, keep the image on an even row
	p.offY -= p.offY % 2
}

// Present scales src into the terminal and shows it.
func (p *presenter) Present(src *image.RGBA) {
	b := src.Bounds()
	p.fit(b.Dx(), b.Dy())
	xdraw.ApproxBiLinear.Scale(p.buf, p.buf.Bounds(), src, b, xdraw.Src, nil)

	cols, rows := p.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := p.pixel(col, row*2)
			bottom := p.pixel(col, row*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	p.screen.Show()
}

func (p *presenter) pixel(x, y int) tcell.Color {
	x -= p.offX
	y -= p.offY
	if p.buf == nil || !image.Pt(x, y).In(p.buf.Bounds()) {
		return toTcell(backdrop)
	}
	return toTcell(flatten(p.buf.RGBAAt(x, y)))
}

// flatten blends a premultiplied pixel over the backdrop.
func flatten(c color.RGBA) colorful.Color {
	if c.A == 0xff {
		cf, _ := colorful.MakeColor(c)
		return cf
	}
	if c.A == 0 {
		return backdrop
	}
	a := float64(c.A) / 0xff
	return colorful.Color{
		R: float64(c.R)/0xff + backdrop.R*(1-a),
		G: float64(c.G)/0xff + backdrop.G*(1-a),
		B: float64(c.B)/0xff + backdrop.B*(1-a),
	}.Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// toPixel maps a terminal cell to source image coordinates.
func (p *presenter) toPixel(col, row int) (int, int) {
	if p.scale == 0 {
		return 0, 0
	}
	x := float64(col-p.offX) / p.scale
	y := float64(row*2-p.offY) / p.scale
	return int(x), int(y)
}
