package host

import (
	"image"
	"image/color"
	"math"

	"github.com/zucenko/portals/render"
)

// Nine draws a nine-slice panel: corners keep their size scaled by Scale,
// edges and center stretch to fill the target rectangle.
type Nine struct {
	source    *image.RGBA
	tinted    *image.RGBA
	alpha     float64
	Scale     float64
	positions [4][2]int // slice boundaries in the source image
	x, y      int
	width     int
	height    int
	targets   [4][2]int
}

func NewNine(source *image.RGBA, inset int, scale float64) *Nine {
	b := source.Bounds()
	n := &Nine{
		source: source,
		Scale:  scale,
		positions: [4][2]int{
			{b.Min.X, b.Min.Y},
			{b.Min.X + inset, b.Min.Y + inset},
			{b.Max.X - inset, b.Max.Y - inset},
			{b.Max.X, b.Max.Y},
		},
	}
	n.SetAlpha(1)
	return n
}

// SetAlpha fades the whole panel. The tinted copy is rebuilt only on change.
func (n *Nine) SetAlpha(a float64) {
	a = math.Max(0, math.Min(1, a))
	if n.tinted != nil && a == n.alpha {
		return
	}
	n.alpha = a
	if n.tinted == nil {
		n.tinted = image.NewRGBA(n.source.Bounds())
	}
	for i := 0; i < len(n.source.Pix); i++ {
		// premultiplied, so every channel scales
		n.tinted.Pix[i] = uint8(float64(n.source.Pix[i])*a + 0.5)
	}
}

func (n *Nine) Alpha() float64 {
	return n.alpha
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	cornerW := int(math.Round(n.Scale * float64(n.positions[1][0]-n.positions[0][0])))
	cornerH := int(math.Round(n.Scale * float64(n.positions[1][1]-n.positions[0][1])))
	farW := int(math.Round(n.Scale * float64(n.positions[3][0]-n.positions[2][0])))
	farH := int(math.Round(n.Scale * float64(n.positions[3][1]-n.positions[2][1])))

	n.targets[0] = [2]int{n.x, n.y}
	n.targets[1] = [2]int{n.x + cornerW, n.y + cornerH}
	n.targets[2] = [2]int{n.x + width - farW, n.y + height - farH}
	n.targets[3] = [2]int{n.x + width, n.y + height}
}

// Bounds is the area the panel covers.
func (n *Nine) Bounds() image.Rectangle {
	return image.Rect(n.targets[0][0], n.targets[0][1], n.targets[3][0], n.targets[3][1])
}

func (n *Nine) Draw(s render.Surface) {
	if n.alpha == 0 {
		return
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			dst := image.Rect(
				n.targets[col][0], n.targets[row][1],
				n.targets[col+1][0], n.targets[row+1][1])
			if src.Empty() || dst.Empty() {
				continue
			}
			s.DrawImageScaled(n.tinted.SubImage(src), dst)
		}
	}
}

// PanelImage draws a rounded panel of size x size with a border, for use as
// a nine-slice source with inset equal to radius.
func PanelImage(size, radius int, fill, border color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// distance outside the inner rectangle that the corners round off
			cx := math.Max(0, math.Max(r-float64(x)-0.5, float64(x)+0.5-float64(size)+r))
			cy := math.Max(0, math.Max(r-float64(y)-0.5, float64(y)+0.5-float64(size)+r))
			d := math.Hypot(cx, cy)
			switch {
			case d > r:
			case d > r-2:
				img.SetRGBA(x, y, border)
			default:
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}
