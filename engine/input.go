package engine

// Key is a platform independent key code. Hosts translate their native key
// events into these.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyB
	KeyEscape
	KeyEnter
	KeySpace
)

// KeyEvent is a key going down or up.
type KeyEvent struct {
	Key  Key
	Down bool
}

// KeySource delivers key events to subscribers until the returned cancel
// func is called.
type KeySource interface {
	Subscribe(fn func(KeyEvent)) (cancel func())
}

// KeyBus is an in-process KeySource. Publish calls subscribers synchronously;
// it must be used from the goroutine that runs the game loop.
type KeyBus struct {
	next int
	subs []keySub
}

type keySub struct {
	id int
	fn func(KeyEvent)
}

func (b *KeyBus) Subscribe(fn func(KeyEvent)) func() {
	b.next++
	id := b.next
	b.subs = append(b.subs, keySub{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *KeyBus) Publish(ev KeyEvent) {
	for _, s := range append([]keySub(nil), b.subs...) {
		s.fn(ev)
	}
}

// Subscribers is the number of live subscriptions.
func (b *KeyBus) Subscribers() int {
	return len(b.subs)
}

// OneShot is an edge-triggered flag: Set latches it, Take returns and clears it.
type OneShot struct {
	set bool
}

func (o *OneShot) Set()       { o.set = true }
func (o *OneShot) Peek() bool { return o.set }
func (o *OneShot) Clear()     { o.set = false }
func (o *OneShot) Take() bool {
	v := o.set
	o.set = false
	return v
}

var directionKeys = []struct {
	dir  Direction
	keys [2]Key
}{
	{DirUp, [2]Key{KeyArrowUp, KeyW}},
	{DirDown, [2]Key{KeyArrowDown, KeyS}},
	{DirLeft, [2]Key{KeyArrowLeft, KeyA}},
	{DirRight, [2]Key{KeyArrowRight, KeyD}},
}

// InputManager resolves held keys and the touch override into one direction.
type InputManager struct {
	source   KeySource
	cancel   func()
	pressed  map[Key]bool
	touch    Direction
	exit     OneShot
	interact OneShot
}

func NewInputManager(source KeySource) *InputManager {
	return &InputManager{
		source:  source,
		pressed: make(map[Key]bool),
	}
}

// Attach subscribes to the key source. Attaching twice keeps one subscription.
func (m *InputManager) Attach() {
	if m.cancel != nil || m.source == nil {
		return
	}
	m.cancel = m.source.Subscribe(m.onKey)
}

// Detach unsubscribes and forgets every held key, the touch override and
// pending one-shots.
func (m *InputManager) Detach() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.pressed = make(map[Key]bool)
	m.touch = DirNone
	m.exit.Clear()
	m.interact.Clear()
}

// Attached reports whether a subscription is live.
func (m *InputManager) Attached() bool {
	return m.cancel != nil
}

func (m *InputManager) onKey(ev KeyEvent) {
	m.pressed[ev.Key] = ev.Down
	if !ev.Down {
		return
	}
	switch ev.Key {
	case KeyEscape:
		m.exit.Set()
	case KeyEnter:
		m.interact.Set()
	}
}

// SetTouchDirection overrides the keyboard; DirNone releases the override.
func (m *InputManager) SetTouchDirection(d Direction) {
	m.touch = d
}

// Direction returns the touch override, else the first held direction in the
// fixed order up, down, left, right.
func (m *InputManager) Direction() Direction {
	if m.touch != DirNone {
		return m.touch
	}
	for _, dk := range directionKeys {
		if m.pressed[dk.keys[0]] || m.pressed[dk.keys[1]] {
			return dk.dir
		}
	}
	return DirNone
}

func (m *InputManager) ExitPressed() bool { return m.exit.Peek() }
func (m *InputManager) ConsumeExit()      { m.exit.Clear() }
func (m *InputManager) TakeExit() bool    { return m.exit.Take() }

// TakeInteract reports and clears a pending Enter press.
func (m *InputManager) TakeInteract() bool { return m.interact.Take() }
