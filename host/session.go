// Package host runs the game for a concrete front end: it owns the engine
// for each visit to game mode, the portal overlay, the on-screen d-pad and
// the secret code that switches modes.
package host

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/model"
	"github.com/zucenko/portals/render"
	"github.com/zucenko/portals/sprite"
)

type Mode int

const (
	ModeTitle Mode = iota
	ModeGame
)

func (m Mode) Name() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeGame:
		return "game"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Sound plays the portal chimes.
type Sound interface {
	PlayEnter(content.Kind)
	PlayLeave(content.Kind)
}

// Bridge receives events and state for remote clients.
type Bridge interface {
	Publish(model.Event)
	SetSnapshot(model.Snapshot)
}

// Options configure a Session. Title is shown on the idle screen, ShowDPad
// draws the touch d-pad in game mode, Clock defaults to time.Now and a nil
// Rand gives every engine its own time seed.
type Options struct {
	Title             string
	Library           *content.Library
	Fonts             *render.Fonts
	Sprites           *sprite.Sheet
	Sound             Sound
	Bridge            Bridge
	Logger            log.FieldLogger
	SecretCodeTimeout time.Duration
	ShowDPad          bool
	Clock             func() time.Time
	Rand              *rand.Rand
}

// Session is the host side of the game. All methods must be called from the
// host loop goroutine.
type Session struct {
	surface render.Surface
	opts    Options
	logger  log.FieldLogger

	mode    Mode
	keys    *engine.KeyBus
	sched   *engine.FrameScheduler
	engine  *engine.Engine
	tweens  *Tweens
	overlay *Overlay
	dpad    *DPad
	code    *SecretCode
}

func NewSession(surface render.Surface, opts Options) *Session {
	if opts.Title == "" {
		opts.Title = "Portals"
	}
	if opts.Library == nil {
		opts.Library = content.Default()
	}
	if opts.Fonts == nil {
		opts.Fonts = render.DefaultFonts()
	}
	if opts.Sprites == nil {
		opts.Sprites = sprite.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if opts.SecretCodeTimeout <= 0 {
		opts.SecretCodeTimeout = 3 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	s := &Session{
		surface: surface,
		opts:    opts,
		logger:  opts.Logger.WithField("component", "session"),
		keys:    &engine.KeyBus{},
		sched:   engine.NewFrameScheduler(),
		tweens:  NewTweens(),
		dpad:    NewDPad(engine.ScreenHeight),
		code:    NewSecretCode(KonamiCode, opts.SecretCodeTimeout),
	}
	s.overlay = NewOverlay(opts.Fonts, s.tweens, s.overlayClosed)
	return s
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Engine is the running engine, nil on the title screen.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

func (s *Session) Overlay() *Overlay {
	return s.overlay
}

// EnterGame builds a fresh engine and starts it.
func (s *Session) EnterGame() {
	if s.mode == ModeGame {
		return
	}
	s.mode = ModeGame
	s.engine = engine.New(s.surface, engine.Callbacks{
		OnPortalEnter: s.portalEntered,
		OnExit:        s.ExitGame,
	}, engine.Options{
		Scheduler: s.sched,
		Keys:      s.keys,
		Portals:   s.opts.Library.Portals,
		Sprites:   s.opts.Sprites,
		Fonts:     s.opts.Fonts,
		Logger:    s.opts.Logger,
		Rand:      s.opts.Rand,
	})
	s.engine.Start()
	s.logger.WithField("mode", s.mode.Name()).Info("entered game mode")
	s.publish(model.Event{Type: model.EventMode, Mode: s.mode.Name()})
}

// ExitGame stops and drops the engine and returns to the title screen.
func (s *Session) ExitGame() {
	if s.mode != ModeGame {
		return
	}
	s.engine.Stop()
	s.engine = nil
	s.tweens.Clear()
	s.overlay.Reset()
	s.dpad.Reset()
	s.mode = ModeTitle
	s.logger.WithField("mode", s.mode.Name()).Info("left game mode")
	s.publish(model.Event{Type: model.EventExit})
	s.publish(model.Event{Type: model.EventMode, Mode: s.mode.Name()})
}

// SetShowDPad turns the touch d-pad on or off.
func (s *Session) SetShowDPad(on bool) {
	s.opts.ShowDPad = on
	if !on {
		s.dpad.Reset()
	}
}

func (s *Session) ToggleMode() {
	if s.mode == ModeGame {
		s.ExitGame()
	} else {
		s.EnterGame()
	}
}

func (s *Session) portalEntered(kind content.Kind) {
	width := engine.ScreenWidth
	if s.surface != nil {
		width, _ = s.surface.Size()
	}
	s.dpad.Reset()
	s.engine.SetTouchDirection(engine.DirNone)
	s.overlay.Open(kind, s.opts.Library.Page(kind), width)
	if s.opts.Sound != nil {
		s.opts.Sound.PlayEnter(kind)
	}
	s.publish(model.Event{Type: model.EventPortalEnter, Portal: kind.ID()})
}

func (s *Session) overlayClosed(kind content.Kind) {
	if s.engine == nil {
		return
	}
	s.engine.Resume(kind)
	if s.opts.Sound != nil {
		s.opts.Sound.PlayLeave(kind)
	}
	s.publish(model.Event{Type: model.EventResume, Portal: kind.ID()})
}

// KeyDown routes a pressed key. While the overlay is up only Escape reaches
// the engine; the overlay gets the rest.
func (s *Session) KeyDown(k engine.Key) {
	if s.code.Feed(k, s.opts.Clock()) {
		s.logger.Debug("secret code entered")
		s.ToggleMode()
		return
	}
	if s.mode != ModeGame {
		return
	}
	if s.overlay.Visible() && k != engine.KeyEscape {
		s.overlay.HandleKey(k)
		return
	}
	s.keys.Publish(engine.KeyEvent{Key: k, Down: true})
}

// KeyUp always reaches the engine so no key stays held across the overlay.
func (s *Session) KeyUp(k engine.Key) {
	if s.mode != ModeGame {
		return
	}
	s.keys.Publish(engine.KeyEvent{Key: k})
}

// PointerDown handles a click or touch. It closes an open overlay and
// presses d-pad buttons.
func (s *Session) PointerDown(id, x, y int) {
	if s.mode != ModeGame {
		return
	}
	if s.overlay.Visible() {
		s.overlay.Close()
		return
	}
	if s.opts.ShowDPad && s.dpad.Press(id, x, y) && s.engine != nil {
		s.engine.SetTouchDirection(s.dpad.Direction())
	}
}

func (s *Session) PointerMove(id, x, y int) {
	s.pointerChanged(func() { s.dpad.Move(id, x, y) })
}

func (s *Session) PointerUp(id int) {
	s.pointerChanged(func() { s.dpad.Release(id) })
}

func (s *Session) pointerChanged(f func()) {
	if s.mode != ModeGame || s.engine == nil {
		return
	}
	before := s.dpad.Direction()
	f()
	if after := s.dpad.Direction(); after != before {
		s.engine.SetTouchDirection(after)
	}
}

// Command applies a bridge command.
func (s *Session) Command(cmd model.Command) {
	l := s.logger.WithFields(log.Fields{"command": cmd.Type, "client": cmd.Client})
	switch cmd.Type {
	case model.CommandStart:
		s.EnterGame()
	case model.CommandExit:
		s.ExitGame()
	case model.CommandTouch:
		if s.engine != nil && !s.overlay.Visible() {
			s.engine.SetTouchDirection(cmd.TouchDirection())
		}
	case model.CommandResume:
		switch {
		case s.overlay.Visible():
			s.overlay.Close()
		case s.engine != nil && s.engine.State() == engine.Paused:
			s.engine.Resume(cmd.ResumeKind())
		}
	default:
		l.Warn("unknown command")
		return
	}
	l.Debug("command applied")
}

// Tick advances one frame of dt seconds and draws it.
func (s *Session) Tick(dt float32) {
	s.tweens.Update(dt)
	s.sched.Advance()

	if s.surface != nil && !s.surface.Disposed() {
		switch s.mode {
		case ModeGame:
			s.overlay.Draw(s.surface)
			if s.opts.ShowDPad && !s.overlay.Visible() {
				s.dpad.Draw(s.surface, s.opts.Fonts)
			}
		default:
			s.drawTitle()
		}
	}
	if s.opts.Bridge != nil {
		s.opts.Bridge.SetSnapshot(s.Snapshot())
	}
}

func (s *Session) Snapshot() model.Snapshot {
	st := engine.Status{State: engine.Stopped}
	if s.engine != nil {
		st = s.engine.Status()
	}
	return model.NewSnapshot(s.mode.Name(), st, s.overlay.Kind())
}

// Close stops the engine, if any, and returns to the title mode without
// publishing events.
func (s *Session) Close() {
	if s.engine != nil {
		s.engine.Stop()
		s.engine = nil
	}
	s.tweens.Clear()
	s.overlay.Reset()
	s.dpad.Reset()
	s.mode = ModeTitle
}

// KeySubscribers and PendingSteps expose the engine wiring for leak checks.
func (s *Session) KeySubscribers() int { return s.keys.Subscribers() }
func (s *Session) PendingSteps() int   { return s.sched.Pending() }

func (s *Session) publish(ev model.Event) {
	if s.opts.Bridge != nil {
		s.opts.Bridge.Publish(ev)
	}
}
