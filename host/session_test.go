package host

import (
	"io"
	"math/rand"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/model"
	"github.com/zucenko/portals/render"
)

type soundLog struct {
	entered, left []content.Kind
}

func (s *soundLog) PlayEnter(k content.Kind) { s.entered = append(s.entered, k) }
func (s *soundLog) PlayLeave(k content.Kind) { s.left = append(s.left, k) }

type bridgeLog struct {
	events []model.Event
	last   model.Snapshot
}

func (b *bridgeLog) Publish(ev model.Event)      { b.events = append(b.events, ev) }
func (b *bridgeLog) SetSnapshot(s model.Snapshot) { b.last = s }

func (b *bridgeLog) types() []model.EventType {
	var ts []model.EventType
	for _, ev := range b.events {
		ts = append(ts, ev.Type)
	}
	return ts
}

const frame = float32(1) / 60

type fixture struct {
	session *Session
	canvas  *render.Canvas
	sound   *soundLog
	bridge  *bridgeLog
	now     time.Time
}

// newFixture puts the skills portal one tile right of the spawn point, close
// enough to be entered on the first step.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := log.New()
	logger.Out = io.Discard
	lib := content.Default()
	lib.Portals = []content.PortalDef{{Kind: content.Skills, Label: "Skills", Col: 11, Row: 7, Color: render.Hex("#ffe66d")}}

	f := &fixture{
		canvas: render.NewCanvas(engine.ScreenWidth, engine.ScreenHeight),
		sound:  &soundLog{},
		bridge: &bridgeLog{},
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	f.session = NewSession(f.canvas, Options{
		Library: lib,
		Sound:   f.sound,
		Bridge:  f.bridge,
		Logger:  logger,
		Clock:   func() time.Time { return f.now },
		Rand:    rand.New(rand.NewSource(1)),
	})
	return f
}

func (f *fixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.session.Tick(frame)
	}
}

func (f *fixture) tap(k engine.Key) {
	f.session.KeyDown(k)
	f.session.KeyUp(k)
}

func TestSessionStartsOnTitle(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ModeTitle, f.session.Mode())
	assert.Nil(t, f.session.Engine())

	f.tap(engine.KeyEscape)
	f.tick(1)
	assert.Equal(t, ModeTitle, f.session.Mode())
	assert.Equal(t, "title", f.bridge.last.Mode)
	assert.Equal(t, engine.Stopped.Name(), f.bridge.last.State)
	assert.Equal(t, 0, f.session.KeySubscribers())
}

func TestSecretCodeEntersGame(t *testing.T) {
	f := newFixture(t)
	for _, k := range KonamiCode {
		f.tap(k)
		f.now = f.now.Add(100 * time.Millisecond)
	}
	require.Equal(t, ModeGame, f.session.Mode())
	require.NotNil(t, f.session.Engine())
	assert.Equal(t, engine.Running, f.session.Engine().State())
	assert.Equal(t, 1, f.session.KeySubscribers())
	assert.Equal(t, []model.EventType{model.EventMode}, f.bridge.types())
	assert.Equal(t, "game", f.bridge.events[0].Mode)
}

func TestSecretCodeTooSlow(t *testing.T) {
	f := newFixture(t)
	for _, k := range KonamiCode {
		f.tap(k)
		f.now = f.now.Add(4 * time.Second)
	}
	assert.Equal(t, ModeTitle, f.session.Mode())
}

func TestPortalEnterAndResume(t *testing.T) {
	f := newFixture(t)
	f.session.EnterGame()
	f.tick(1)

	e := f.session.Engine()
	require.Equal(t, engine.Paused, e.State())
	assert.True(t, f.session.Overlay().Visible())
	assert.Equal(t, content.Skills, f.session.Overlay().Kind())
	assert.Equal(t, []content.Kind{content.Skills}, f.sound.entered)
	assert.Equal(t, "skills", f.bridge.last.Overlay)

	f.tick(20) // open animation
	f.session.KeyDown(engine.KeyEnter)
	f.session.KeyUp(engine.KeyEnter)
	f.tick(20)

	assert.False(t, f.session.Overlay().Visible())
	assert.Equal(t, engine.Running, e.State())
	assert.Equal(t, []content.Kind{content.Skills}, f.sound.left)
	assert.Equal(t, content.Skills, e.Status().Cooldown)

	// still standing on the portal: the cooldown holds it shut
	f.tick(10)
	assert.Equal(t, engine.Running, e.State())
	assert.Len(t, f.sound.entered, 1)

	assert.Equal(t, []model.EventType{model.EventMode, model.EventPortalEnter, model.EventResume}, f.bridge.types())
}

func TestCooldownClearsAfterLeaving(t *testing.T) {
	f := newFixture(t)
	f.session.EnterGame()
	f.tick(1)
	f.session.Command(model.Command{Type: model.CommandResume})
	f.tick(20)
	e := f.session.Engine()
	require.Equal(t, engine.Running, e.State())

	f.session.KeyDown(engine.KeyArrowLeft)
	f.tick(10)
	f.session.KeyUp(engine.KeyArrowLeft)
	f.tick(1)
	assert.Equal(t, content.KindNone, e.Status().Cooldown)

	f.session.KeyDown(engine.KeyArrowRight)
	f.tick(10)
	assert.Equal(t, engine.Paused, e.State())
	assert.Len(t, f.sound.entered, 2)
}

func TestKeysGoToOverlayWhileOpen(t *testing.T) {
	f := newFixture(t)
	f.session.EnterGame()
	f.tick(1)
	require.True(t, f.session.Overlay().Visible())

	f.session.KeyDown(engine.KeyArrowLeft)
	f.tick(20)
	f.session.KeyUp(engine.KeyArrowLeft)
	assert.True(t, f.session.Overlay().Visible())
	assert.Equal(t, engine.Paused, f.session.Engine().State())
}

func TestEscapeExitsFromOverlay(t *testing.T) {
	f := newFixture(t)
	f.session.EnterGame()
	f.tick(1)
	require.True(t, f.session.Overlay().Visible())

	f.tap(engine.KeyEscape)
	f.tick(1)
	assert.Equal(t, ModeTitle, f.session.Mode())
	assert.Nil(t, f.session.Engine())
	assert.False(t, f.session.Overlay().Visible())
	assert.Empty(t, f.sound.left)
	assert.Equal(t, 0, f.session.KeySubscribers())
	assert.Equal(t, 0, f.session.PendingSteps())
	assert.Equal(t, 0, f.session.tweens.Len())

	types := f.bridge.types()
	assert.Equal(t, []model.EventType{model.EventExit, model.EventMode}, types[len(types)-2:])
}

func TestRepeatedVisitsDoNotLeak(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.session.EnterGame()
		f.tick(3)
		f.tap(engine.KeyEscape)
		f.tick(2)
		require.Equal(t, ModeTitle, f.session.Mode())
		require.Equal(t, 0, f.session.KeySubscribers())
		require.Equal(t, 0, f.session.PendingSteps())
	}
}

func TestPointerClosesOverlay(t *testing.T) {
	f := newFixture(t)
	f.session.EnterGame()
	f.tick(1)
	f.tick(20)
	f.session.PointerDown(1, 300, 200)
	f.tick(20)
	assert.False(t, f.session.Overlay().Visible())
	assert.Equal(t, engine.Running, f.session.Engine().State())
}

func TestDPadDrivesEngine(t *testing.T) {
	f := newFixture(t)
	f.session.opts.ShowDPad = true
	f.session.EnterGame()
	f.tick(1)
	f.session.Command(model.Command{Type: model.CommandResume})
	f.tick(20)
	e := f.session.Engine()
	x := e.Status().X

	// left button of the pad
	r := f.session.dpad.keys[1].rect
	f.session.PointerDown(7, r.Min.X+5, r.Min.Y+5)
	f.tick(4)
	assert.Equal(t, x-10, e.Status().X)
	assert.Equal(t, engine.DirLeft, e.Status().Facing)

	f.session.PointerUp(7)
	f.tick(2)
	assert.Equal(t, x-10, e.Status().X)
	assert.False(t, e.Status().Moving)
}

func TestCloseReturnsToTitle(t *testing.T) {
	f := newFixture(t)
	f.session.opts.ShowDPad = true
	f.session.EnterGame()
	f.tick(1)
	f.session.Close()
	assert.Equal(t, ModeTitle, f.session.Mode())
	assert.Nil(t, f.session.Engine())
	assert.False(t, f.session.Overlay().Visible())

	r := f.session.dpad.keys[1].rect
	assert.NotPanics(t, func() {
		f.session.PointerDown(1, r.Min.X+5, r.Min.Y+5)
		f.session.PointerMove(1, 600, 10)
		f.session.PointerUp(1)
		f.session.KeyDown(engine.KeyArrowLeft)
		f.tick(2)
	})
	assert.Equal(t, 0, f.session.KeySubscribers())
	assert.Equal(t, 0, f.session.PendingSteps())
}

func TestBridgeCommands(t *testing.T) {
	f := newFixture(t)
	f.session.Command(model.Command{Type: model.CommandStart})
	require.Equal(t, ModeGame, f.session.Mode())
	f.tick(1)
	f.session.Command(model.Command{Type: model.CommandResume})
	f.tick(20)
	e := f.session.Engine()
	require.Equal(t, engine.Running, e.State())

	f.session.Command(model.Command{Type: model.CommandTouch, Direction: "up"})
	f.tick(1)
	assert.Equal(t, engine.DirUp, e.Status().Facing)
	f.session.Command(model.Command{Type: model.CommandTouch})
	f.tick(1)
	assert.False(t, e.Status().Moving)

	f.session.Command(model.Command{Type: model.CommandExit})
	assert.Equal(t, ModeTitle, f.session.Mode())
	assert.Equal(t, engine.Stopped, e.State())
}

func TestTitleScreenDraws(t *testing.T) {
	f := newFixture(t)
	f.tap(KonamiCode[0])
	f.tick(1)
	w, h := f.canvas.Size()
	assert.Equal(t, colorTitleBg, f.canvas.Image().RGBAAt(2, 2))

	n := len(KonamiCode)
	x0 := (w - (n-1)*codeDotGap) / 2
	assert.Equal(t, colorCodeOn, f.canvas.Image().RGBAAt(x0, h/2+30))
	assert.Equal(t, colorCodeOff, f.canvas.Image().RGBAAt(x0+codeDotGap, h/2+30))
}

func TestModeName(t *testing.T) {
	assert.Equal(t, "title", ModeTitle.Name())
	assert.Equal(t, "game", ModeGame.Name())
	assert.Equal(t, "mode(7)", Mode(7).Name())
}
