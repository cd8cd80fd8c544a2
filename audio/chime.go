package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)

	speakerBuffer = 100 * time.Millisecond
	noteDuration  = 220 * time.Millisecond
	noteDecay     = 9.0 // exponential decay rate per second
	noteAmplitude = 0.25
)

// Bell is a decaying sine with a soft octave partial.
type Bell struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func NewBell(sr beep.SampleRate, freq float64, d time.Duration) *Bell {
	return &Bell{sr: sr, freq: freq, total: sr.N(d)}
}

func (b *Bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.sr)
		env := math.Exp(-t * noteDecay)
		// 5ms linear attack
		if attack := t / 0.005; attack < 1 {
			env *= attack
		}
		v := noteAmplitude * env * (0.8*math.Sin(2*math.Pi*b.freq*t) + 0.2*math.Sin(4*math.Pi*b.freq*t))
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Bell) Err() error {
	return nil
}

// Chime plays the notes one after another.
func Chime(sr beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, NewBell(sr, f, noteDuration))
	}
	return beep.Seq(notes...)
}
