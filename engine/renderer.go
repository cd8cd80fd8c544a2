package engine

import (
	"fmt"
	"math"

	"github.com/zucenko/portals/render"
	"github.com/zucenko/portals/sprite"
)

const hudHint = "WASD / Arrow Keys to move  |  ESC to exit"

// Renderer draws one frame of the room. It keeps no state besides its
// collaborators.
type Renderer struct {
	surface render.Surface
	sprites *sprite.Sheet
	fonts   *render.Fonts
}

func NewRenderer(surface render.Surface, sprites *sprite.Sheet, fonts *render.Fonts) *Renderer {
	return &Renderer{surface: surface, sprites: sprites, fonts: fonts}
}

// Render draws the room, portals, player and HUD. nearby may be nil.
func (r *Renderer) Render(room *Room, player *Player, nearby *Portal) {
	if r.surface == nil || r.surface.Disposed() {
		return
	}
	r.surface.Clear(colorClear)
	r.drawRoom(room)
	r.drawPortals(room.Portals())
	r.drawPlayer(player)
	r.drawHUD(nearby)
}

func (r *Renderer) drawRoom(room *Room) {
	ts := float64(room.TileSize())
	for c := 0; c < room.Cols; c++ {
		for row := 0; row < room.Rows; row++ {
			x, y := float64(c)*ts, float64(row)*ts
			if room.Cell(c, row) == Wall {
				r.surface.FillRect(x, y, ts, ts, colorWall)
				r.surface.FillRect(x, y, ts, 4, colorWallTop)
				continue
			}
			floor := colorFloor
			if (row+c)%2 != 0 {
				floor = colorFloorAlt
			}
			r.surface.FillRect(x, y, ts, ts, floor)
		}
	}
}

func (r *Renderer) drawPortals(portals []*Portal) {
	for _, p := range portals {
		cx, cy := p.Center()
		rad := p.Radius()

		r.surface.FillCircle(cx, cy, rad+8, render.WithAlpha(colorPortalGlow, p.GlowAlpha()*0.3))
		r.surface.StrokeCircle(cx, cy, rad, 3, colorPortalFrame)
		r.surface.FillCircle(cx, cy, rad-3, render.WithAlpha(p.Color, 0x40/255.0))

		sx := cx + math.Cos(p.GlowPhase)*6
		sy := cy + math.Sin(p.GlowPhase)*6
		r.surface.FillCircle(sx, sy, rad/3, render.WithAlpha(p.Color, 0x80/255.0))

		if r.fonts != nil {
			w := render.TextWidth(r.fonts.Label, p.Label)
			r.surface.DrawText(p.Label, cx-w/2, p.Y-6, r.fonts.Label, colorHUDText)
		}
	}
}

func (r *Renderer) drawPlayer(p *Player) {
	img := r.sprites.Get(p.SpriteName())
	if img == nil {
		return
	}
	x, y := p.DrawPosition()
	r.surface.DrawImage(img, float64(x), float64(y))
}

func (r *Renderer) drawHUD(nearby *Portal) {
	width, height := r.surface.Size()
	w, h := float64(width), float64(height)

	r.surface.FillRect(0, 0, w, hudHeight, colorHUDBg)
	if r.fonts == nil {
		return
	}
	r.surface.DrawText(hudHint, 10, 16, r.fonts.HUD, colorHUDText)

	if nearby == nil {
		return
	}
	text := PromptText(nearby.Label)
	tw := render.TextWidth(r.fonts.Prompt, text)
	r.surface.FillRect((w-tw)/2-10, h-36, tw+20, 28, colorHUDBg)
	r.surface.DrawText(text, (w-tw)/2, h-16, r.fonts.Prompt, colorPortalGlow)
}

// PromptText is shown while the player stands near a portal.
func PromptText(label string) string {
	return fmt.Sprintf("Press ENTER or walk into %s", label)
}
