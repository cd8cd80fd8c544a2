// Package audio synthesizes the portal chimes.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/zucenko/portals/content"
)

// base pitch of each portal, C major pentatonic
var portalPitch = map[content.Kind]float64{
	content.Experience: 523.25,
	content.Projects:   587.33,
	content.Skills:     659.25,
	content.About:      783.99,
}

// SoundManager plays chimes through the speaker. Every method is safe to call
// when the speaker could not be initialized; it then does nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager with volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEnter rings a rising fifth on the portal's pitch.
func (sm *SoundManager) PlayEnter(kind content.Kind) {
	f := Pitch(kind)
	sm.play(Chime(sampleRate, f, f*1.5))
}

// PlayLeave rings the same interval falling.
func (sm *SoundManager) PlayLeave(kind content.Kind) {
	f := Pitch(kind)
	sm.play(Chime(sampleRate, f*1.5, f))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	speaker.Lock()
	sm.mixer.Add(Volume(s, sm.volume))
	speaker.Unlock()
}

// Pitch is the base frequency of kind; unknown kinds get A4.
func Pitch(kind content.Kind) float64 {
	if f, ok := portalPitch[kind]; ok {
		return f
	}
	return 440
}

// Volume scales s linearly by vol in [0, 1].
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
