package host

import (
	"github.com/zucenko/portals/render"
)

var (
	colorTitleBg   = render.Hex("#120a24")
	colorTitleText = render.Hex("#ffd700")
	colorTitleHint = render.Hex("#8a8a94")
	colorCodeOn    = render.Hex("#00ffcc")
	colorCodeOff   = render.Hex("#3d2a6e")
)

const (
	titleHint  = "↑ ↑ ↓ ↓ ← → ← → B A"
	codeDotR   = 5
	codeDotGap = 18
)

// drawTitle paints the idle screen with a dot per matched key of the code.
func (s *Session) drawTitle() {
	sw, sh := s.surface.Size()
	w, h := float64(sw), float64(sh)
	f := s.opts.Fonts

	s.surface.Clear(colorTitleBg)
	title := s.opts.Title
	s.surface.DrawText(title, (w-render.TextWidth(f.Title, title))/2, h/2-40, f.Title, colorTitleText)
	s.surface.DrawText(titleHint, (w-render.TextWidth(f.HUD, titleHint))/2, h/2, f.HUD, colorTitleHint)

	n := len(s.code.seq)
	x := (w - float64(n-1)*codeDotGap) / 2
	for i := 0; i < n; i++ {
		c := colorCodeOff
		if i < s.code.Progress() {
			c = colorCodeOn
		}
		s.surface.FillCircle(x+float64(i)*codeDotGap, h/2+30, codeDotR, c)
	}
}
