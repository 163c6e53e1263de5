package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed number of samples of one wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
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
			val = 1
			if o.phase >= 0.5 {
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

// release fades the last samples of a stream to avoid clicks.
type release struct {
	streamer beep.Streamer
	position int
	total    int
	fade     int
}

func newRelease(s beep.Streamer, total, fade int) *release {
	return &release{streamer: s, total: total, fade: min(fade, total)}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	start := r.total - r.fade
	for i := 0; i < n; i++ {
		if r.position >= start && r.fade > 0 {
			vol := float64(r.total-r.position) / float64(r.fade)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// tone is one oscillator note.
type tone struct {
	freq     float64
	duration time.Duration
	wave     Wave
}

// streamer renders the note with a short release.
func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.duration)
	return newRelease(newOscillator(t.freq, t.duration, t.wave, rate), total, rate.N(10*time.Millisecond))
}

// withVolume scales a stream linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
