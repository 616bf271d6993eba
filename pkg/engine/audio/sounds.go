package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SoundType identifies a UI sound effect.
type SoundType int

const (
	SoundHover SoundType = iota // cursor enters a planet
	SoundClick                  // planet or button pressed
	SoundLand                   // descent into the selected planet
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundHover:
		return "hover"
	case SoundClick:
		return "click"
	case SoundLand:
		return "land"
	default:
		return "unknown"
	}
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(duration), s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero is
// handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(rate beep.SampleRate, freq float64, duration, attack, release time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return generators.Silence(rate.N(duration))
	}
	return newEnvelope(sine, duration, attack, release, rate)
}

func square(rate beep.SampleRate, freq float64, duration, attack, release time.Duration) beep.Streamer {
	sq, err := generators.SquareTone(rate, freq)
	if err != nil {
		return generators.Silence(rate.N(duration))
	}
	return newEnvelope(sq, duration, attack, release, rate)
}

// Sound returns a fresh streamer for st at the configured volume, or nil for
// an unknown sound.
func Sound(st SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case SoundHover:
		s = tone(rate, 1320, 30*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond)
	case SoundClick:
		s = square(rate, 660, 60*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond)
	case SoundLand:
		// falling three-note sweep
		s = beep.Seq(
			tone(rate, 523.25, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond),
			tone(rate, 392.00, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond),
			tone(rate, 261.63, 240*time.Millisecond, 5*time.Millisecond, 180*time.Millisecond),
		)
	default:
		return nil
	}

	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
