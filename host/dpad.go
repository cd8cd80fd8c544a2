package host

import (
	"image"
	"image/color"

	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/render"
)

const (
	dpadSize   = 160
	dpadButton = 50
	dpadInset  = 20
)

var (
	colorButton        = color.NRGBA{0xff, 0xff, 0xff, 0x4d}
	colorButtonPressed = color.NRGBA{0xff, 0xff, 0xff, 0x80}
	colorButtonLabel   = color.White
)

type dpadKey struct {
	dir   engine.Direction
	label string
	rect  image.Rectangle
}

// DPad is the on-screen direction pad. Each pointer that went down on a
// button holds its direction until it is lifted or leaves the button.
type DPad struct {
	keys    []dpadKey
	presses []dpadPress
	current engine.Direction
}

// dpadPress is a live pointer, oldest first in DPad.presses.
type dpadPress struct {
	id  int
	dir engine.Direction
}

// NewDPad lays the pad out in the bottom-left corner of a screen of the
// given height.
func NewDPad(screenHeight int) *DPad {
	ox, oy := dpadInset, screenHeight-dpadInset-dpadSize
	mid := (dpadSize - dpadButton) / 2
	button := func(x, y int) image.Rectangle {
		return image.Rect(ox+x, oy+y, ox+x+dpadButton, oy+y+dpadButton)
	}
	return &DPad{
		keys: []dpadKey{
			{engine.DirUp, "▲", button(mid, 0)},
			{engine.DirLeft, "◄", button(0, mid)},
			{engine.DirRight, "►", button(dpadSize-dpadButton, mid)},
			{engine.DirDown, "▼", button(mid, dpadSize-dpadButton)},
		},
	}
}

// HitTest returns the button direction under (x, y), DirNone outside.
func (d *DPad) HitTest(x, y int) engine.Direction {
	pt := image.Pt(x, y)
	for _, k := range d.keys {
		if pt.In(k.rect) {
			return k.dir
		}
	}
	return engine.DirNone
}

// Press starts pointer id at (x, y) and reports whether it hit a button.
func (d *DPad) Press(id, x, y int) bool {
	dir := d.HitTest(x, y)
	if dir == engine.DirNone {
		return false
	}
	d.drop(id)
	d.presses = append(d.presses, dpadPress{id: id, dir: dir})
	d.current = dir
	return true
}

// Move releases pointer id when it has slid off its button.
func (d *DPad) Move(id, x, y int) {
	if i := d.find(id); i >= 0 && d.HitTest(x, y) != d.presses[i].dir {
		d.Release(id)
	}
}

func (d *DPad) Release(id int) {
	if !d.drop(id) {
		return
	}
	d.current = engine.DirNone
	if n := len(d.presses); n > 0 {
		d.current = d.presses[n-1].dir
	}
}

func (d *DPad) find(id int) int {
	for i, p := range d.presses {
		if p.id == id {
			return i
		}
	}
	return -1
}

func (d *DPad) drop(id int) bool {
	i := d.find(id)
	if i < 0 {
		return false
	}
	d.presses = append(d.presses[:i], d.presses[i+1:]...)
	return true
}

// Direction is the direction of the most recent live press.
func (d *DPad) Direction() engine.Direction {
	return d.current
}

func (d *DPad) Reset() {
	d.presses = nil
	d.current = engine.DirNone
}

func (d *DPad) Draw(s render.Surface, fonts *render.Fonts) {
	for _, k := range d.keys {
		c := colorButton
		if k.dir == d.current {
			c = colorButtonPressed
		}
		r := k.rect
		s.FillRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
		tw := render.TextWidth(fonts.Prompt, k.label)
		cx := float64(r.Min.X+r.Max.X) / 2
		cy := float64(r.Min.Y+r.Max.Y) / 2
		s.DrawText(k.label, cx-tw/2, cy+render.Ascent(fonts.Prompt)/2, fonts.Prompt, colorButtonLabel)
	}
}
