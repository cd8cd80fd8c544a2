package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func attached() (*KeyBus, *InputManager) {
	bus := &KeyBus{}
	m := NewInputManager(bus)
	m.Attach()
	return bus, m
}

func TestInputPriority(t *testing.T) {
	bus, m := attached()
	bus.Publish(KeyEvent{Key: KeyArrowLeft, Down: true})
	assert.Equal(t, DirLeft, m.Direction())
	bus.Publish(KeyEvent{Key: KeyArrowUp, Down: true})
	assert.Equal(t, DirUp, m.Direction())
	bus.Publish(KeyEvent{Key: KeyArrowUp})
	assert.Equal(t, DirLeft, m.Direction())

	bus.Publish(KeyEvent{Key: KeyD, Down: true})
	assert.Equal(t, DirLeft, m.Direction())
	bus.Publish(KeyEvent{Key: KeyS, Down: true})
	assert.Equal(t, DirDown, m.Direction())
	bus.Publish(KeyEvent{Key: KeyW, Down: true})
	assert.Equal(t, DirUp, m.Direction())
}

func TestInputTouchOverridesKeys(t *testing.T) {
	bus, m := attached()
	bus.Publish(KeyEvent{Key: KeyArrowUp, Down: true})
	m.SetTouchDirection(DirRight)
	assert.Equal(t, DirRight, m.Direction())
	m.SetTouchDirection(DirNone)
	assert.Equal(t, DirUp, m.Direction())
}

func TestInputExitIsOneShot(t *testing.T) {
	bus, m := attached()
	bus.Publish(KeyEvent{Key: KeyEscape, Down: true})
	assert.True(t, m.ExitPressed())
	assert.True(t, m.ExitPressed())
	m.ConsumeExit()
	assert.False(t, m.ExitPressed())

	bus.Publish(KeyEvent{Key: KeyEscape, Down: true})
	assert.True(t, m.TakeExit())
	assert.False(t, m.TakeExit())

	bus.Publish(KeyEvent{Key: KeyEscape})
	assert.False(t, m.TakeExit())
}

func TestInputInteract(t *testing.T) {
	bus, m := attached()
	assert.False(t, m.TakeInteract())
	bus.Publish(KeyEvent{Key: KeyEnter, Down: true})
	assert.True(t, m.TakeInteract())
	assert.False(t, m.TakeInteract())
}

func TestInputAttachDetach(t *testing.T) {
	bus, m := attached()
	m.Attach()
	assert.Equal(t, 1, bus.Subscribers())
	assert.True(t, m.Attached())

	bus.Publish(KeyEvent{Key: KeyArrowDown, Down: true})
	bus.Publish(KeyEvent{Key: KeyEscape, Down: true})
	m.SetTouchDirection(DirLeft)

	m.Detach()
	m.Detach()
	assert.Equal(t, 0, bus.Subscribers())
	assert.False(t, m.Attached())
	assert.Equal(t, DirNone, m.Direction())
	assert.False(t, m.ExitPressed())

	bus.Publish(KeyEvent{Key: KeyArrowDown, Down: true})
	assert.Equal(t, DirNone, m.Direction())
}

func TestInputWithoutSource(t *testing.T) {
	m := NewInputManager(nil)
	m.Attach()
	assert.False(t, m.Attached())
	assert.Equal(t, DirNone, m.Direction())
}

func TestKeyBusUnsubscribeDuringPublish(t *testing.T) {
	bus := &KeyBus{}
	var calls int
	var cancel func()
	cancel = bus.Subscribe(func(KeyEvent) {
		calls++
		cancel()
	})
	bus.Subscribe(func(KeyEvent) { calls++ })
	bus.Publish(KeyEvent{Key: KeyA, Down: true})
	assert.Equal(t, 2, calls)
	bus.Publish(KeyEvent{Key: KeyA, Down: true})
	assert.Equal(t, 3, calls)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirNone, DirUp, DirDown, DirLeft, DirRight} {
		got, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDirection("diagonal")
	assert.False(t, ok)
}
