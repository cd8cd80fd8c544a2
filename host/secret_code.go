package host

import (
	"slices"
	"time"

	"github.com/zucenko/portals/engine"
)

// KonamiCode toggles game mode: up up down down left right left right B A.
var KonamiCode = []engine.Key{
	engine.KeyArrowUp, engine.KeyArrowUp,
	engine.KeyArrowDown, engine.KeyArrowDown,
	engine.KeyArrowLeft, engine.KeyArrowRight,
	engine.KeyArrowLeft, engine.KeyArrowRight,
	engine.KeyB, engine.KeyA,
}

// SecretCode matches a key sequence typed with at most timeout between keys.
type SecretCode struct {
	seq     []engine.Key
	timeout time.Duration
	pos     int
	last    time.Time
}

func NewSecretCode(seq []engine.Key, timeout time.Duration) *SecretCode {
	return &SecretCode{seq: seq, timeout: timeout}
}

// Feed reports whether k at now completes the sequence. A wrong key falls
// back to the longest prefix of the sequence that ends the keys typed so far.
func (c *SecretCode) Feed(k engine.Key, now time.Time) bool {
	if c.pos > 0 && now.Sub(c.last) > c.timeout {
		c.pos = 0
	}
	c.last = now
	if k == c.seq[c.pos] {
		c.pos++
	} else {
		c.pos = c.fallback(k)
	}
	if c.pos == len(c.seq) {
		c.pos = 0
		return true
	}
	return false
}

// fallback is the length of the longest prefix of seq that is a suffix of
// seq[:pos] followed by k.
func (c *SecretCode) fallback(k engine.Key) int {
	for n := c.pos; n > 0; n-- {
		if c.seq[n-1] != k {
			continue
		}
		if slices.Equal(c.seq[:n-1], c.seq[c.pos-n+1:c.pos]) {
			return n
		}
	}
	return 0
}

// Progress is how many keys of the sequence have matched.
func (c *SecretCode) Progress() int {
	return c.pos
}
