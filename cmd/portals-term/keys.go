package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zucenko/portals/engine"
)

var namedKeys = map[tcell.Key]engine.Key{
	tcell.KeyUp:     engine.KeyArrowUp,
	tcell.KeyDown:   engine.KeyArrowDown,
	tcell.KeyLeft:   engine.KeyArrowLeft,
	tcell.KeyRight:  engine.KeyArrowRight,
	tcell.KeyEscape: engine.KeyEscape,
	tcell.KeyEnter:  engine.KeyEnter,
}

var runeKeys = map[rune]engine.Key{
	'w': engine.KeyW, 'W': engine.KeyW,
	'a': engine.KeyA, 'A': engine.KeyA,
	's': engine.KeyS, 'S': engine.KeyS,
	'd': engine.KeyD, 'D': engine.KeyD,
	'b': engine.KeyB, 'B': engine.KeyB,
	' ': engine.KeySpace,
}

// translateKey maps a terminal key event; ok is false for unmapped keys.
func translateKey(ev *tcell.EventKey) (engine.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeKeys[ev.Rune()]
		return k, ok
	}
	k, ok := namedKeys[ev.Key()]
	return k, ok
}

// keyHold turns the press-only key stream of a terminal into presses and
// releases. A key counts as held until hold has passed without a repeat.
type keyHold struct {
	hold  time.Duration
	until map[engine.Key]time.Time
}

func newKeyHold(hold time.Duration) *keyHold {
	return &keyHold{hold: hold, until: make(map[engine.Key]time.Time)}
}

// Press records k at now and reports whether it was not held before.
func (h *keyHold) Press(k engine.Key, now time.Time) bool {
	_, held := h.until[k]
	h.until[k] = now.Add(h.hold)
	return !held
}

// Expire returns the keys whose hold ran out by now and forgets them.
func (h *keyHold) Expire(now time.Time) []engine.Key {
	var released []engine.Key
	for k, t := range h.until {
		if !now.Before(t) {
			released = append(released, k)
			delete(h.until, k)
		}
	}
	return released
}

// Held is the number of keys currently held.
func (h *keyHold) Held() int {
	return len(h.until)
}
