package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/host"
	"github.com/zucenko/portals/server"
)

var keymap = map[ebiten.Key]engine.Key{
	ebiten.KeyArrowUp:     engine.KeyArrowUp,
	ebiten.KeyArrowDown:   engine.KeyArrowDown,
	ebiten.KeyArrowLeft:   engine.KeyArrowLeft,
	ebiten.KeyArrowRight:  engine.KeyArrowRight,
	ebiten.KeyW:           engine.KeyW,
	ebiten.KeyA:           engine.KeyA,
	ebiten.KeyS:           engine.KeyS,
	ebiten.KeyD:           engine.KeyD,
	ebiten.KeyB:           engine.KeyB,
	ebiten.KeyEscape:      engine.KeyEscape,
	ebiten.KeyEnter:       engine.KeyEnter,
	ebiten.KeyNumpadEnter: engine.KeyEnter,
	ebiten.KeySpace:       engine.KeySpace,
}

type Game struct {
	ctx     context.Context
	session *host.Session
	surface *Surface
	bridge  *server.Bridge
	strokes map[*Stroke]struct{}
	keys    []ebiten.Key
	touches []ebiten.TouchID
	touched bool
}

func NewGame(ctx context.Context, session *host.Session, surface *Surface, bridge *server.Bridge) *Game {
	return &Game{
		ctx:     ctx,
		session: session,
		surface: surface,
		bridge:  bridge,
		strokes: map[*Stroke]struct{}{},
	}
}

func (g *Game) updateKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ek, ok := keymap[k]; ok {
			g.session.KeyDown(ek)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ek, ok := keymap[k]; ok {
			g.session.KeyUp(ek)
		}
	}
}

func (g *Game) startStroke(source StrokeSource) {
	s := NewStroke(source)
	g.strokes[s] = struct{}{}
	x, y := s.Position()
	g.session.PointerDown(s.ID(), x, y)
}

func (g *Game) updateStrokes() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.startStroke(&MouseStrokeSource{})
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if !g.touched {
			// the pad only shows up on touch devices
			g.touched = true
			g.session.SetShowDPad(true)
		}
		g.startStroke(&TouchStrokeSource{TouchID: id})
	}

	for s := range g.strokes {
		s.Update()
		switch {
		case s.IsReleased():
			g.session.PointerUp(s.ID())
			delete(g.strokes, s)
		case s.Moved():
			x, y := s.Position()
			g.session.PointerMove(s.ID(), x, y)
		}
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		log.Info("shutting down")
		return ebiten.Termination
	}
	g.updateKeys()
	g.updateStrokes()
	if g.bridge != nil {
		g.bridge.Drain(g.session.Command)
	}
	g.surface.BeginFrame()
	g.session.Tick(1 / float32(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return engine.ScreenWidth, engine.ScreenHeight
}
