// Package config holds persistent player preferences, stored as JSON in the
// user config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Limits
const (
	MinPlanets = 1
	MaxPlanets = 32
	MinScale   = 1
	MaxScale   = 8
)

// Prefs are the values stored in the config file.
type Prefs struct {
	PlanetCount   int     `json:"planet_count"`
	WindowScale   int     `json:"window_scale"`
	Scanlines     bool    `json:"scanlines"`
	Muted         bool    `json:"muted"`
	MasterVolume  float64 `json:"master_volume"`
	Language      string  `json:"language"`
	ShowPalette   bool    `json:"show_palette"`
	NamesFile     string  `json:"names_file,omitempty"`
	ScreenshotDir string  `json:"screenshot_dir,omitempty"`
}

// Config is the player's preferences for this run. Assigning a field
// directly, as command line flags do, lasts until exit; the Set methods
// also record the change in the file.
type Config struct {
	Prefs

	mu    sync.RWMutex
	path  string
	saved Prefs
}

func defaultPrefs() Prefs {
	return Prefs{
		PlanetCount:  5,
		WindowScale:  2,
		Scanlines:    true,
		MasterVolume: 0.5,
		Language:     "en",
	}
}

// Default returns the built-in preferences.
func Default() *Config {
	return &Config{Prefs: defaultPrefs(), saved: defaultPrefs()}
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the process-wide configuration.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Set replaces the process-wide configuration.
func Set(c *Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}

// DefaultPath returns <user config dir>/planetfall/config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "planetfall", "config.json"), nil
}

// Load reads preferences from path. A missing file yields the defaults;
// Save will create it.
func Load(path string) (*Config, error) {
	c := Default()
	c.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &c.Prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.Prefs.normalize()
	c.saved = c.Prefs
	return c, nil
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Saved returns the preferences as they are stored in the file.
func (c *Config) Saved() Prefs {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.saved
}

// Save writes the stored preferences back to the file they were loaded
// from. A config that was never loaded from a file is not saved.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(c.saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SetScanlines toggles the scanline filter and saves.
func (c *Config) SetScanlines(on bool) error {
	c.mu.Lock()
	c.Scanlines = on
	c.saved.Scanlines = on
	c.mu.Unlock()
	return c.Save()
}

// SetWindowScale stores the window scale, clamped to [MinScale, MaxScale],
// and saves. It returns the scale actually stored.
func (c *Config) SetWindowScale(scale int) (int, error) {
	c.mu.Lock()
	c.WindowScale = clampInt(scale, MinScale, MaxScale)
	c.saved.WindowScale = c.WindowScale
	scale = c.WindowScale
	c.mu.Unlock()
	return scale, c.Save()
}

// SetMuted stores the mute preference and saves.
func (c *Config) SetMuted(muted bool) error {
	c.mu.Lock()
	c.Muted = muted
	c.saved.Muted = muted
	c.mu.Unlock()
	return c.Save()
}

// SetShowPalette stores the palette overlay preference and saves.
func (c *Config) SetShowPalette(show bool) error {
	c.mu.Lock()
	c.ShowPalette = show
	c.saved.ShowPalette = show
	c.mu.Unlock()
	return c.Save()
}

// normalize clamps values read from disk into their valid ranges.
func (c *Prefs) normalize() {
	c.PlanetCount = clampInt(c.PlanetCount, MinPlanets, MaxPlanets)
	c.WindowScale = clampInt(c.WindowScale, MinScale, MaxScale)
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	} else if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.Language == "" {
		c.Language = "en"
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
