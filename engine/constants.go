// Package engine runs the portal room: input resolution, player movement
// against the tile grid, portal proximity and the pause/cooldown state machine.
package engine

import (
	"image/color"

	"github.com/zucenko/portals/render"
	"github.com/zucenko/portals/sprite"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TileSize     = 32
	Cols         = ScreenWidth / TileSize  // 20
	Rows         = ScreenHeight / TileSize // 15

	PlayerSpeed         = 2.5
	PlayerSize          = sprite.Size
	PlayerFrameDuration = 10 // ticks per walk frame

	PortalSize      = 48
	PortalHitbox    = 40
	PortalNearby    = PortalHitbox + 20
	PortalGlowSpeed = 0.05

	spawnInset = 2
	hudHeight  = 24
)

var (
	colorFloor       = render.Hex("#2a1a4e")
	colorFloorAlt    = render.Hex("#231442")
	colorWall        = render.Hex("#1a0f35")
	colorWallTop     = render.Hex("#3d2a6e")
	colorPortalFrame = render.Hex("#ffd700")
	colorPortalGlow  = render.Hex("#00ffcc")
	colorHUDText     = render.Hex("#ffffff")
	colorHUDBg       = color.NRGBA{0, 0, 0, 153}
	colorClear       = color.RGBA{0, 0, 0, 0xff}
)
