// Package audio provides short generated cue tones for sandbox feedback.
// Speaker-backed via beep; degrades to silence when no backend is available
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	attackDuration  = 5 * time.Millisecond
	releaseDuration = 40 * time.Millisecond
)

// Chime plays generated sine blips through a shared speaker
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

// Init sets up the speaker; failure leaves the chime silent, not broken
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues a blip at the given frequency. No-op before Init
func (c *Chime) Play(freq float64, dur time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone := newToneStreamer(freq, dur)
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Cleanup stops all queued tones
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// toneStreamer generates a fixed-length sine with attack/release envelope
type toneStreamer struct {
	freq    float64
	pos     int
	total   int
	attack  int
	release int
}

func newToneStreamer(freq float64, dur time.Duration) *toneStreamer {
	return &toneStreamer{
		freq:    freq,
		total:   sampleRate.N(dur),
		attack:  sampleRate.N(attackDuration),
		release: sampleRate.N(releaseDuration),
	}
}

// Stream implements beep.Streamer
func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := math.Sin(2 * math.Pi * t.freq * float64(t.pos) / float64(sampleRate))
		v *= t.envelope(t.pos)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer
func (t *toneStreamer) Err() error {
	return nil
}

// envelope returns the gain at sample position p
func (t *toneStreamer) envelope(p int) float64 {
	vol := 1.0
	if p < t.attack && t.attack > 0 {
		vol = float64(p) / float64(t.attack)
	}
	releaseStart := t.total - t.release
	if releaseStart < t.attack {
		releaseStart = t.attack
	}
	if p >= releaseStart && t.release > 0 {
		vol = float64(t.total-p) / float64(t.release)
	}
	return vol
}
