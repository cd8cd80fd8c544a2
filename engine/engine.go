package engine

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/render"
	"github.com/zucenko/portals/sprite"
)

type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) Name() string {
	switch s {
	case Stopped:
		return "STOPPED"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Callbacks are invoked on the goroutine that advances the scheduler.
type Callbacks struct {
	OnPortalEnter func(content.Kind)
	OnExit        func()
}

// Options configure an Engine. Zero fields take defaults: a FrameScheduler,
// a private KeyBus, the built in portals, sprites and fonts, the standard
// logger and a time seeded source.
type Options struct {
	Scheduler Scheduler
	Keys      KeySource
	Portals   []content.PortalDef
	Sprites   *sprite.Sheet
	Fonts     *render.Fonts
	Logger    log.FieldLogger
	Rand      *rand.Rand
}

// Status is a copy of the engine state for hosts.
type Status struct {
	State    State
	X, Y     float64
	Facing   Direction
	Moving   bool
	Nearby   content.Kind
	Cooldown content.Kind
}

type Engine struct {
	cb        Callbacks
	input     *InputManager
	room      *Room
	player    *Player
	renderer  *Renderer
	scheduler Scheduler
	logger    log.FieldLogger

	running  bool
	paused   bool
	step     StepHandle
	nearby   *Portal
	cooldown content.Kind
}

func New(surface render.Surface, cb Callbacks, opts Options) *Engine {
	if opts.Scheduler == nil {
		opts.Scheduler = NewFrameScheduler()
	}
	if opts.Keys == nil {
		opts.Keys = &KeyBus{}
	}
	if opts.Portals == nil {
		opts.Portals = content.DefaultPortals()
	}
	if opts.Sprites == nil {
		opts.Sprites = sprite.New()
	}
	if opts.Fonts == nil {
		opts.Fonts = render.DefaultFonts()
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if opts.Rand == nil {
		opts.Rand = newRand()
	}

	room := NewRoom(Cols, Rows, TileSize, opts.Portals, opts.Rand)
	return &Engine{
		cb:        cb,
		input:     NewInputManager(opts.Keys),
		room:      room,
		player:    NewPlayer(room.Spawn()),
		renderer:  NewRenderer(surface, opts.Sprites, opts.Fonts),
		scheduler: opts.Scheduler,
		logger:    opts.Logger.WithField("component", "engine"),
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Start attaches input and schedules the first step.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.input.Attach()
	e.step = e.scheduler.RequestStep(e.loop)
	e.logger.WithField("state", e.State().Name()).Info("engine started")
}

// Stop detaches input and drops the pending step. The engine may be started
// again.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.input.Detach()
	if e.step != 0 {
		e.scheduler.CancelStep(e.step)
		e.step = 0
	}
	e.logger.Info("engine stopped")
}

func (e *Engine) Pause() {
	e.paused = true
}

// Resume unpauses and puts kind on cooldown: it will not fire again until the
// player has stepped off it. KindNone clears any cooldown.
func (e *Engine) Resume(kind content.Kind) {
	e.cooldown = kind
	e.paused = false
	e.logger.WithField("portal", kind.ID()).Debug("engine resumed")
}

func (e *Engine) SetTouchDirection(d Direction) {
	e.input.SetTouchDirection(d)
}

func (e *Engine) State() State {
	switch {
	case !e.running:
		return Stopped
	case e.paused:
		return Paused
	default:
		return Running
	}
}

func (e *Engine) Status() Status {
	s := Status{
		State:    e.State(),
		X:        e.player.X,
		Y:        e.player.Y,
		Facing:   e.player.Facing,
		Moving:   e.player.Moving,
		Cooldown: e.cooldown,
	}
	if e.nearby != nil {
		s.Nearby = e.nearby.Kind
	}
	return s
}

func (e *Engine) loop() {
	e.step = 0
	if !e.running {
		return
	}
	if e.input.TakeExit() {
		e.logger.Info("exit requested")
		if e.cb.OnExit != nil {
			e.cb.OnExit()
		}
	} else if e.paused {
		e.input.TakeInteract()
	} else {
		e.update()
	}
	// a callback may have restarted the engine, which queued its own step
	if !e.running || e.step != 0 {
		return
	}
	e.renderer.Render(e.room, e.player, e.nearby)
	e.step = e.scheduler.RequestStep(e.loop)
}

func (e *Engine) update() {
	interact := e.input.TakeInteract()
	e.player.Update(e.input.Direction(), e.room)
	for _, p := range e.room.Portals() {
		p.Update()
	}

	e.nearby = nil
	for _, p := range e.room.Portals() {
		touching := p.Touching(e.player)
		if e.cooldown == p.Kind && !touching {
			e.cooldown = content.KindNone
		}
		if e.cooldown == p.Kind {
			continue
		}
		if touching {
			e.enter(p)
			return
		}
		if p.Nearby(e.player) {
			e.nearby = p
		}
	}
	if interact && e.nearby != nil {
		e.enter(e.nearby)
	}
}

func (e *Engine) enter(p *Portal) {
	e.Pause()
	e.logger.WithFields(log.Fields{
		"portal": p.Kind.ID(),
		"state":  e.State().Name(),
	}).Info("portal entered")
	if e.cb.OnPortalEnter != nil {
		e.cb.OnPortalEnter(p.Kind)
	}
}
