// Package audio plays the short synthesized UI sounds: hover ticks, clicks
// and the landing sweep.
package audio

import (
	"os"
	"strconv"
)

// Environment overrides
const (
	EnvEnabled      = "PLANETFALL_AUDIO_ENABLED"
	EnvMasterVolume = "PLANETFALL_MASTER_VOLUME"
	EnvSampleRate   = "PLANETFALL_SAMPLE_RATE"
)

// Config holds audio settings.
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the built-in audio settings.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundHover: 0.4,
			SoundClick: 0.8,
			SoundLand:  1.0,
		},
	}
}

// LoadConfig applies environment overrides on top of base, or on the
// defaults when base is nil. base is not modified.
func LoadConfig(base *Config) *Config {
	cfg := DefaultConfig()
	if base != nil {
		cfg.Enabled = base.Enabled
		cfg.MasterVolume = base.MasterVolume
		cfg.SampleRate = base.SampleRate
		for k, v := range base.EffectVolumes {
			cfg.EffectVolumes[k] = v
		}
	}

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 on the environment, 0.0-1.0 internally
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if rate := os.Getenv(EnvSampleRate); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
