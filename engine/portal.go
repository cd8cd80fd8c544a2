package engine

import (
	"image/color"
	"math"

	"github.com/zucenko/portals/content"
)

// Portal is a glowing circle centered in its tile.
type Portal struct {
	Kind      content.Kind
	Label     string
	Color     color.RGBA
	X, Y      float64
	Width     float64
	Height    float64
	GlowPhase float64
	GlowSpeed float64
}

func NewPortal(def content.PortalDef, tileSize int, phase float64) *Portal {
	offset := float64(tileSize-PortalSize) / 2
	return &Portal{
		Kind:      def.Kind,
		Label:     def.Label,
		Color:     def.Color,
		X:         float64(def.Col*tileSize) + offset,
		Y:         float64(def.Row*tileSize) + offset,
		Width:     PortalSize,
		Height:    PortalSize,
		GlowPhase: phase,
		GlowSpeed: PortalGlowSpeed,
	}
}

func (p *Portal) Update() {
	p.GlowPhase += p.GlowSpeed
}

// GlowAlpha oscillates in [0, 0.8].
func (p *Portal) GlowAlpha() float64 {
	return 0.4 + 0.4*math.Sin(p.GlowPhase)
}

func (p *Portal) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

func (p *Portal) Radius() float64 {
	return p.Width / 2
}

func (p *Portal) distance(pl *Player) float64 {
	cx, cy := p.Center()
	px, py := pl.Center()
	return math.Hypot(cx-px, cy-py)
}

func (p *Portal) Nearby(pl *Player) bool {
	return p.distance(pl) < PortalNearby
}

func (p *Portal) Touching(pl *Player) bool {
	return p.distance(pl) < PortalHitbox
}
