package host

import (
	"image/color"
	"math"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/render"
	"golang.org/x/image/font"
)

const (
	overlayMargin  = 40
	overlayPadding = 20
	overlayOpen    = 0.25 // seconds
	overlayClose   = 0.18
	overlaySlide   = 24 // pixels the panel travels while fading
	scrollStep     = 24
)

var (
	colorBackdrop    = color.NRGBA{0, 0, 0, 0xb3}
	colorPanelFill   = render.Hex("#202023")
	colorPanelBorder = render.Hex("#4a4a52")
	colorTitle       = render.Hex("#ffd700")
	colorBody        = render.Hex("#e8e8e8")
	colorHeading     = render.Hex("#ff63c3")
	colorFooter      = render.Hex("#8a8a94")
)

const footerHint = "ENTER / SPACE to close   ↑↓ to scroll"

type overlayLine struct {
	text string
	face font.Face
	col  color.Color
}

// Overlay shows a portal page over the room. Open and close animate; the
// closed callback fires once the close animation has finished.
type Overlay struct {
	fonts    *render.Fonts
	panel    *Nine
	tweens   *Tweens
	anim     *gween.Tween
	onClosed func(content.Kind)

	kind     content.Kind
	title    string
	lines    []overlayLine
	scroll   float64
	progress float64
	visible  bool
	closing  bool

	// body height of the last drawn frame; zero before the first
	viewHeight float64
}

func NewOverlay(fonts *render.Fonts, tweens *Tweens, onClosed func(content.Kind)) *Overlay {
	return &Overlay{
		fonts:    fonts,
		panel:    NewNine(PanelImage(24, 8, colorPanelFill, colorPanelBorder), 8, 1),
		tweens:   tweens,
		onClosed: onClosed,
	}
}

// Open shows page for kind. A nil page shows the title only.
func (o *Overlay) Open(kind content.Kind, page content.Page, width int) {
	o.kind = kind
	o.visible = true
	o.closing = false
	o.scroll = 0
	o.title = kind.String()
	o.lines = nil
	if page != nil {
		o.title = page.Heading()
		o.layout(page, float64(width-2*overlayMargin-2*overlayPadding))
	}
	o.animate(gween.New(float32(o.progress), 1, overlayOpen, ease.OutCubic))
}

// animate replaces the running open or close animation with t.
func (o *Overlay) animate(t *gween.Tween) *Action {
	if o.anim != nil {
		o.tweens.Remove(o.anim)
	}
	o.anim = t
	return o.tweens.Start(t, o.setProgress)
}

// Close starts the close animation. It is a no-op when hidden or already
// closing.
func (o *Overlay) Close() {
	if !o.visible || o.closing {
		return
	}
	o.closing = true
	kind := o.kind
	o.animate(gween.New(float32(o.progress), 0, overlayClose, ease.InCubic)).
		OnFinish(func() {
			o.anim = nil
			o.visible = false
			o.closing = false
			o.kind = content.KindNone
			if o.onClosed != nil {
				o.onClosed(kind)
			}
		})
}

// Reset hides the overlay at once without calling back.
func (o *Overlay) Reset() {
	if o.anim != nil {
		o.tweens.Remove(o.anim)
		o.anim = nil
	}
	o.visible = false
	o.closing = false
	o.progress = 0
	o.kind = content.KindNone
}

func (o *Overlay) Visible() bool {
	return o.visible
}

func (o *Overlay) Closing() bool {
	return o.closing
}

// Kind is the open portal, KindNone when hidden.
func (o *Overlay) Kind() content.Kind {
	return o.kind
}

func (o *Overlay) setProgress(v float32) {
	o.progress = float64(v)
}

// HandleKey reacts to a key going down while the overlay is visible.
func (o *Overlay) HandleKey(k engine.Key) {
	switch k {
	case engine.KeyEnter, engine.KeySpace:
		o.Close()
	case engine.KeyArrowUp, engine.KeyW:
		o.Scroll(-scrollStep)
	case engine.KeyArrowDown, engine.KeyS:
		o.Scroll(scrollStep)
	}
}

func (o *Overlay) Scroll(dy float64) {
	o.scroll = math.Max(0, math.Min(o.scroll+dy, o.maxScroll()))
}

func (o *Overlay) layout(page content.Page, width float64) {
	for _, p := range content.Paragraphs(page) {
		switch {
		case p == "":
			o.lines = append(o.lines, overlayLine{face: o.fonts.Body})
		case strings.HasPrefix(p, "# "):
			o.lines = append(o.lines, overlayLine{text: strings.TrimPrefix(p, "# "), face: o.fonts.Prompt, col: colorHeading})
		default:
			for _, l := range wrap(o.fonts.Body, p, width) {
				o.lines = append(o.lines, overlayLine{text: l, face: o.fonts.Body, col: colorBody})
			}
		}
	}
}

func (o *Overlay) contentHeight() float64 {
	h := 0.0
	for _, l := range o.lines {
		h += render.LineHeight(l.face)
	}
	return h
}

func (o *Overlay) maxScroll() float64 {
	return math.Max(0, o.contentHeight()-o.viewHeight)
}

func (o *Overlay) bodyArea(h float64) (top, bottom float64) {
	top = overlayMargin + overlayPadding + render.LineHeight(o.fonts.Title) + 12
	bottom = h - overlayMargin - overlayPadding - render.LineHeight(o.fonts.HUD)
	return top, bottom
}

func (o *Overlay) Draw(s render.Surface) {
	if !o.visible || s == nil || s.Disposed() {
		return
	}
	sw, sh := s.Size()
	w, h := float64(sw), float64(sh)
	a := o.progress

	backdrop := colorBackdrop
	backdrop.A = uint8(float64(backdrop.A) * a)
	s.FillRect(0, 0, w, h, backdrop)

	offset := (1 - a) * overlaySlide
	o.panel.SetAlpha(a)
	o.panel.SetPosition(overlayMargin, overlayMargin+int(offset))
	o.panel.SetSize(sw-2*overlayMargin, sh-2*overlayMargin)
	o.panel.Draw(s)
	if a < 0.5 {
		return
	}

	left := float64(overlayMargin + overlayPadding)
	top, bottom := o.bodyArea(h)
	top += offset
	bottom += offset
	o.viewHeight = bottom - top

	s.DrawText(o.title, left, top-12-render.LineHeight(o.fonts.Title)+render.Ascent(o.fonts.Title), o.fonts.Title, colorTitle)
	s.FillRect(left, top-6, w-2*left, 1, colorPanelBorder)

	y := top - o.scroll
	for _, l := range o.lines {
		lh := render.LineHeight(l.face)
		if y >= top && y+lh <= bottom && l.text != "" {
			s.DrawText(l.text, left, y+render.Ascent(l.face), l.face, l.col)
		}
		y += lh
	}
	s.DrawText(footerHint, left, h-overlayMargin-overlayPadding/2+offset, o.fonts.HUD, colorFooter)
}
