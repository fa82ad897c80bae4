package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator plays a fixed tone for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay fades s out over duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.position < d.total {
			vol = 1 - float64(d.position)/float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewDecay(NewOscillator(freq, d, wave, rate), d, rate)
}

// HitSound is a short blip; critical hits are higher and louder.
func HitSound(critical bool, rate beep.SampleRate) beep.Streamer {
	if critical {
		return newVolume(tone(880, 120*time.Millisecond, WaveSquare, rate), 0.5)
	}
	return newVolume(tone(440, 80*time.Millisecond, WaveSquare, rate), 0.3)
}

// HurtSound is a low buzz for damage taken by the player.
func HurtSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110, 100*time.Millisecond, WaveSaw, rate), 0.3)
}

// LevelUpSound is a rising major arpeggio.
func LevelUpSound(rate beep.SampleRate) beep.Streamer {
	note := 90 * time.Millisecond
	return newVolume(beep.Seq(
		tone(523.25, note, WaveSine, rate),
		tone(659.25, note, WaveSine, rate),
		tone(783.99, note, WaveSine, rate),
		tone(1046.5, 2*note, WaveSine, rate),
	), 0.5)
}

// GameOverSound is a falling three-note phrase.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	note := 220 * time.Millisecond
	return newVolume(beep.Seq(
		tone(392, note, WaveSaw, rate),
		tone(311.13, note, WaveSaw, rate),
		tone(196, 2*note, WaveSaw, rate),
	), 0.4)
}
