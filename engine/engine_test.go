package engine

import (
	"io"
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/render"
)

type harness struct {
	sched   *FrameScheduler
	bus     *KeyBus
	canvas  *render.Canvas
	engine  *Engine
	entered []content.Kind
	exits   int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := log.New()
	logger.Out = io.Discard
	h := &harness{
		sched:  NewFrameScheduler(),
		bus:    &KeyBus{},
		canvas: render.NewCanvas(ScreenWidth, ScreenHeight),
	}
	h.engine = New(h.canvas, Callbacks{
		OnPortalEnter: func(k content.Kind) { h.entered = append(h.entered, k) },
		OnExit:        func() { h.exits++ },
	}, Options{
		Scheduler: h.sched,
		Keys:      h.bus,
		Logger:    logger,
		Rand:      rand.New(rand.NewSource(1)),
	})
	return h
}

func (h *harness) press(k Key)   { h.bus.Publish(KeyEvent{Key: k, Down: true}) }
func (h *harness) release(k Key) { h.bus.Publish(KeyEvent{Key: k}) }

// place centers the player on (cx, cy).
func (h *harness) place(cx, cy float64) {
	h.engine.player.X = cx - PlayerSize/2
	h.engine.player.Y = cy - PlayerSize/2
}

func (h *harness) advance(n int) {
	for i := 0; i < n; i++ {
		h.sched.Advance()
	}
}

const expX, expY = 336.0, 80.0

func TestEngineStartStopIdempotent(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, Stopped, h.engine.State())

	h.engine.Start()
	h.engine.Start()
	assert.Equal(t, Running, h.engine.State())
	assert.Equal(t, 1, h.sched.Pending())
	assert.Equal(t, 1, h.bus.Subscribers())

	h.advance(3)
	assert.Equal(t, 1, h.sched.Pending())

	h.engine.Stop()
	h.engine.Stop()
	assert.Equal(t, Stopped, h.engine.State())
	assert.Equal(t, 0, h.sched.Pending())
	assert.Equal(t, 0, h.bus.Subscribers())

	h.engine.Start()
	assert.Equal(t, 1, h.sched.Pending())
	assert.Equal(t, 1, h.bus.Subscribers())
}

func TestEngineMovesWithKeys(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.press(KeyArrowRight)
	h.advance(1)
	st := h.engine.Status()
	assert.Equal(t, 324.5, st.X)
	assert.Equal(t, 226.0, st.Y)
	assert.Equal(t, DirRight, st.Facing)
	assert.True(t, st.Moving)

	h.release(KeyArrowRight)
	h.advance(1)
	assert.False(t, h.engine.Status().Moving)
	assert.Equal(t, 324.5, h.engine.Status().X)
}

func TestEngineTouchDirection(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.engine.SetTouchDirection(DirUp)
	h.advance(2)
	assert.Equal(t, 221.0, h.engine.Status().Y)
	h.engine.SetTouchDirection(DirNone)
	h.advance(1)
	assert.Equal(t, 221.0, h.engine.Status().Y)
}

func TestEnginePortalEnterPauses(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.place(expX, expY)
	h.advance(1)
	require.Equal(t, []content.Kind{content.Experience}, h.entered)
	assert.Equal(t, Paused, h.engine.State())

	h.press(KeyArrowDown)
	h.advance(5)
	assert.Len(t, h.entered, 1)
	assert.Equal(t, expY-PlayerSize/2, h.engine.Status().Y)
	assert.Equal(t, 1, h.sched.Pending())
}

func TestEngineCooldown(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.place(expX, expY)
	h.advance(1)
	require.Len(t, h.entered, 1)

	h.engine.Resume(content.Experience)
	h.advance(30)
	assert.Len(t, h.entered, 1)
	assert.Equal(t, Running, h.engine.State())
	assert.Equal(t, content.Experience, h.engine.Status().Cooldown)

	h.place(expX, expY+45)
	h.advance(1)
	assert.Equal(t, content.KindNone, h.engine.Status().Cooldown)
	assert.Equal(t, content.Experience, h.engine.Status().Nearby)
	assert.Len(t, h.entered, 1)

	h.place(expX, expY)
	h.advance(1)
	assert.Equal(t, []content.Kind{content.Experience, content.Experience}, h.entered)
}

func TestEngineResumeWithoutCooldownRetriggers(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.place(expX, expY)
	h.advance(1)
	h.engine.Resume(content.KindNone)
	h.advance(1)
	assert.Len(t, h.entered, 2)
}

func TestEngineCooldownOnlyCoversOnePortal(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.engine.Resume(content.Experience)
	// projects portal sits at col 17, row 7
	h.place(17*TileSize+TileSize/2, 7*TileSize+TileSize/2)
	h.advance(1)
	assert.Equal(t, []content.Kind{content.Projects}, h.entered)
}

func TestEngineInteractEntersNearbyPortal(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()

	h.press(KeyEnter)
	h.advance(1)
	assert.Empty(t, h.entered)

	h.place(expX, expY+50)
	h.advance(1)
	assert.Empty(t, h.entered)
	assert.Equal(t, content.Experience, h.engine.Status().Nearby)

	h.press(KeyEnter)
	h.advance(1)
	assert.Equal(t, []content.Kind{content.Experience}, h.entered)
	assert.Equal(t, Paused, h.engine.State())
}

func TestEngineExit(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()

	h.press(KeyArrowRight)
	h.press(KeyEscape)
	h.advance(1)
	assert.Equal(t, 1, h.exits)
	assert.Equal(t, 322.0, h.engine.Status().X, "no update on the exit step")

	h.advance(1)
	assert.Equal(t, 1, h.exits)
	assert.Equal(t, 324.5, h.engine.Status().X)

	h.engine.Pause()
	h.press(KeyEscape)
	h.advance(1)
	assert.Equal(t, 2, h.exits)
}

func TestEngineExitCallbackMayStop(t *testing.T) {
	h := newHarness(t)
	h.engine.cb.OnExit = func() {
		h.exits++
		h.engine.Stop()
	}
	h.engine.Start()
	h.press(KeyEscape)
	h.advance(1)
	assert.Equal(t, 1, h.exits)
	assert.Equal(t, Stopped, h.engine.State())
	assert.Equal(t, 0, h.sched.Pending())
	assert.Equal(t, 0, h.bus.Subscribers())
}

func TestEngineRestartFromCallbackKeepsOneStep(t *testing.T) {
	h := newHarness(t)
	h.engine.cb.OnExit = func() {
		h.exits++
		h.engine.Stop()
		h.engine.Start()
	}
	h.engine.Start()
	h.press(KeyEscape)
	h.advance(1)
	assert.Equal(t, 1, h.exits)
	assert.Equal(t, Running, h.engine.State())
	assert.Equal(t, 1, h.sched.Pending())
	assert.Equal(t, 1, h.bus.Subscribers())

	h.engine.Stop()
	assert.Equal(t, 0, h.sched.Pending())
}

func TestEngineRendersRoom(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()
	h.advance(1)
	img := h.canvas.Image()
	assert.Equal(t, colorWall, img.RGBAAt(5, 100))
	assert.Equal(t, colorWallTop, img.RGBAAt(5, 97))
	assert.Equal(t, colorFloor, img.RGBAAt(40, 40))
	assert.Equal(t, colorFloorAlt, img.RGBAAt(72, 40))
}

func TestEngineRendersPromptWhenNearby(t *testing.T) {
	h := newHarness(t)
	h.engine.Start()

	tw := render.TextWidth(render.DefaultFonts().Prompt, PromptText("Experience"))
	x := int((ScreenWidth-tw)/2 - 10 + 3)
	y := ScreenHeight - 34

	h.advance(1)
	before := h.canvas.Image().RGBAAt(x, y)

	h.place(expX, expY+50)
	h.advance(1)
	after := h.canvas.Image().RGBAAt(x, y)
	assert.Less(t, after.B, before.B)
}

func TestEngineSkipsDisposedSurface(t *testing.T) {
	h := newHarness(t)
	h.canvas.Dispose()
	h.engine.Start()
	assert.NotPanics(t, func() { h.advance(3) })
	assert.Equal(t, 1, h.sched.Pending())

	e := New(nil, Callbacks{}, Options{Scheduler: h.sched, Logger: h.engine.logger})
	e.Start()
	assert.NotPanics(t, func() { h.advance(1) })
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "PAUSED", Paused.Name())
	assert.Equal(t, "N/A(9)", State(9).Name())
}
