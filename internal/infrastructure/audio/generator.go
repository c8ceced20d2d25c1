package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator is a finite waveform whose frequency may glide linearly
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
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
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over duration
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
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, sampleRate), d, 5*time.Millisecond, d/2, sampleRate)
}

// NewCueStreamer builds the sound for a cue at the given volume (0..1).
// It returns nil for an unknown cue.
func NewCueStreamer(c Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueJump:
		d := 120 * time.Millisecond
		s = NewEnvelope(NewSweep(330, 660, d, WaveSquare, sampleRate), d, 5*time.Millisecond, 60*time.Millisecond, sampleRate)
		vol *= 0.4
	case CueScore:
		s = beep.Seq(
			note(987.77, 70*time.Millisecond, WaveSquare),
			note(1318.51, 160*time.Millisecond, WaveSquare),
		)
		vol *= 0.5
	case CueDeath:
		d := 600 * time.Millisecond
		s = NewEnvelope(NewSweep(440, 55, d, WaveSaw, sampleRate), d, 10*time.Millisecond, 300*time.Millisecond, sampleRate)
	case CueWin:
		s = beep.Seq(
			note(523.25, 120*time.Millisecond, WaveSquare),
			note(659.25, 120*time.Millisecond, WaveSquare),
			note(783.99, 120*time.Millisecond, WaveSquare),
			beep.Mix(
				newVolume(note(1046.5, 400*time.Millisecond, WaveSine), 0.7),
				newVolume(note(2093.0, 400*time.Millisecond, WaveSine), 0.3),
			),
		)
		vol *= 0.6
	case CuePause:
		s = note(440, 90*time.Millisecond, WaveSine)
	case CueResume:
		s = note(880, 90*time.Millisecond, WaveSine)
	case CueLevel:
		sine, err := generators.SineTone(sampleRate, 587.33)
		if err != nil {
			return nil
		}
		d := 250 * time.Millisecond
		s = NewEnvelope(beep.Take(sampleRate.N(d), sine), d, 10*time.Millisecond, 150*time.Millisecond, sampleRate)
		vol *= 0.6
	default:
		return nil
	}
	return newVolume(s, vol)
}
