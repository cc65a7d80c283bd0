package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample returns the wave value at phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// tone is a fixed-length oscillator
type tone struct {
	wave   WaveType
	step   float64 // phase advance per sample
	phase  float64
	remain int
}

// NewTone creates a streamer playing freq for duration
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:   wave,
		step:   freq / float64(rate),
		remain: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.remain <= 0 {
		return 0, false
	}
	for i := range samples {
		if t.remain == 0 {
			return i, true
		}
		v := t.wave.sample(t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.remain--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s; attack and release are clamped to fit inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

// gain returns the envelope level at sample position p
func (e *envelope) gain(p int) float64 {
	switch {
	case p >= e.total:
		return 0
	case e.attack > 0 && p < e.attack:
		return float64(p) / float64(e.attack)
	case e.release > 0 && p >= e.total-e.release:
		return float64(e.total-p) / float64(e.release)
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at linear volume vol
// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped tone
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, d, wave, rate), d, cueAttack, cueRelease, rate)
}

// Synthesize builds the streamer for cue at the configured volumes
// Returns nil for an unknown cue
func Synthesize(cue Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CuePlace:
		// Soft wooden knock: low sine with an octave on top
		s = beep.Take(rate.N(placeDuration), beep.Mix(
			newVolume(note(330, placeDuration, WaveSine, rate), 0.7),
			newVolume(note(660, placeDuration, WaveSine, rate), 0.3),
		))
	case CueReject:
		s = note(110, rejectDuration, WaveSaw, rate)
	case CueFlip:
		s = newVolume(note(0, flipDuration, WaveNoise, rate), 0.4)
	case CueDraw:
		s = newVolume(note(880, drawDuration, WaveSine, rate), 0.5)
	case CueRecycle:
		// Descending sweep G5 E5 C5
		s = beep.Seq(
			note(783.99, recycleNote, WaveSine, rate),
			note(659.25, recycleNote, WaveSine, rate),
			note(523.25, recycleNote, WaveSine, rate),
		)
	case CueWin:
		// C major arpeggio up to C6
		s = beep.Seq(
			note(523.25, winNote, WaveSquare, rate),
			note(659.25, winNote, WaveSquare, rate),
			note(783.99, winNote, WaveSquare, rate),
			note(1046.50, 2*winNote, WaveSquare, rate),
		)
	default:
		return nil
	}

	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
