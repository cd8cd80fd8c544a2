package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestTweensRunToEnd(t *testing.T) {
	ts := NewTweens()
	var v float32
	finished := 0
	ts.Start(gween.New(0, 10, 1, ease.Linear), func(x float32) { v = x }).
		OnFinish(func() { finished++ })

	ts.Update(0.5)
	assert.InDelta(t, 5, v, 0.001)
	assert.Equal(t, 0, finished)

	ts.Update(0.6)
	assert.Equal(t, float32(10), v)
	assert.Equal(t, 1, finished)
	assert.Equal(t, 0, ts.Len())
}

func TestTweensChain(t *testing.T) {
	ts := NewTweens()
	var steps []string
	ts.Start(gween.New(0, 1, 0.1, ease.Linear), nil).
		OnFinish(func() { steps = append(steps, "first") }).
		Next(gween.New(1, 0, 0.1, ease.Linear), nil).
		OnFinish(func() { steps = append(steps, "second") })

	ts.Update(0.2)
	assert.Equal(t, []string{"first"}, steps)
	assert.Equal(t, 1, ts.Len())
	ts.Update(0.2)
	assert.Equal(t, []string{"first", "second"}, steps)
	assert.Equal(t, 0, ts.Len())
}

func TestTweensRemoveAndClear(t *testing.T) {
	ts := NewTweens()
	finished := false
	a := gween.New(0, 1, 1, ease.Linear)
	ts.Start(a, nil).OnFinish(func() { finished = true })
	ts.Start(gween.New(0, 1, 1, ease.Linear), nil)
	assert.Equal(t, 2, ts.Len())

	ts.Remove(a)
	assert.Equal(t, 1, ts.Len())
	ts.Clear()
	assert.Equal(t, 0, ts.Len())
	ts.Update(2)
	assert.False(t, finished)
}
