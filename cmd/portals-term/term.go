package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/host"
	"github.com/zucenko/portals/render"
	"github.com/zucenko/portals/server"
)

const mouseID = -1

// Terminal runs a session on a tcell screen. Frames are drawn on a CPU
// canvas and presented as half blocks.
type Terminal struct {
	screen  tcell.Screen
	session *host.Session
	canvas  *render.Canvas
	present *presenter
	bridge  *server.Bridge
	keys    *keyHold
	frame   time.Duration
	clock   func() time.Time
	mouse   bool
}

func NewTerminal(screen tcell.Screen, session *host.Session, canvas *render.Canvas, fps int, hold time.Duration) *Terminal {
	return &Terminal{
		screen:  screen,
		session: session,
		canvas:  canvas,
		present: newPresenter(screen),
		keys:    newKeyHold(hold),
		frame:   time.Second / time.Duration(fps),
		clock:   time.Now,
	}
}

// Run ticks the session until ctx is done or the user quits with Ctrl+C.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handle(ev) {
				log.Info("quit from terminal")
				return nil
			}
		case <-ticker.C:
			t.tick()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		k, ok := translateKey(ev)
		if !ok {
			return true
		}
		t.keys.Press(k, t.clock())
		t.session.KeyDown(k)
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := t.present.toPixel(col, row)
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !t.mouse:
			t.session.PointerDown(mouseID, x, y)
		case pressed:
			t.session.PointerMove(mouseID, x, y)
		case t.mouse:
			t.session.PointerUp(mouseID)
		}
		t.mouse = pressed
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) tick() {
	for _, k := range t.keys.Expire(t.clock()) {
		t.session.KeyUp(k)
	}
	if t.bridge != nil {
		t.bridge.Drain(t.session.Command)
	}
	t.session.Tick(float32(t.frame.Seconds()))
	t.present.Present(t.canvas.Image())
}
