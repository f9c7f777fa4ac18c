// Package audio plays the pad tones. Tones are synthesized with beep
// streamers and mixed onto the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Envelope lengths of a pad tone
const (
	toneAttack  = 10 * time.Millisecond
	toneRelease = 80 * time.Millisecond
)

// oscillator generates a sine tone with a soft second harmonic.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := 0.8*math.Sin(2*math.Pi*o.phase) + 0.2*math.Sin(4*math.Pi*o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone builds the complete streamer of one pad press.
func Tone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, rate)
	shaped := NewEnvelope(osc, duration, toneAttack, toneRelease, rate)
	return newVolume(shaped, volume)
}
