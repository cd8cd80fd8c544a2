package host

import "github.com/tanema/gween"

// Action is what happens while a tween runs and after it finishes. Next
// chains another tween that starts when this one ends.
type Action struct {
	nexts    []func(ts *Tweens)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) OnFinish(f func()) *Action {
	a.onFinish = append(a.onFinish, f)
	return a
}

func (a *Action) Next(t *gween.Tween, onChange func(float32)) *Action {
	action := &Action{onChange: onChange}
	a.nexts = append(a.nexts, func(ts *Tweens) {
		ts.active[t] = action
	})
	return action
}

// Tweens runs a set of tweens from the host loop.
type Tweens struct {
	active map[*gween.Tween]*Action
}

func NewTweens() *Tweens {
	return &Tweens{active: make(map[*gween.Tween]*Action)}
}

func (ts *Tweens) Start(t *gween.Tween, onChange func(float32)) *Action {
	a := &Action{onChange: onChange}
	ts.active[t] = a
	return a
}

// Update advances every tween by dt seconds. Finish callbacks run after the
// final onChange, and chained tweens first advance on the next Update.
func (ts *Tweens) Update(dt float32) {
	var done []*Action
	for t, a := range ts.active {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			delete(ts.active, t)
			done = append(done, a)
		}
	}
	for _, a := range done {
		for _, onFinish := range a.onFinish {
			onFinish()
		}
		for _, next := range a.nexts {
			next(ts)
		}
	}
}

func (ts *Tweens) Len() int {
	return len(ts.active)
}

// Remove drops t without running its finish callbacks.
func (ts *Tweens) Remove(t *gween.Tween) {
	delete(ts.active, t)
}

// Clear drops every tween without running finish callbacks.
func (ts *Tweens) Clear() {
	for t := range ts.active {
		delete(ts.active, t)
	}
}
