package main

import (
	"flag"
	"log"
	"time"

	"planetfall/pkg/engine/audio"
	"planetfall/pkg/engine/display"
	"planetfall/pkg/game/config"
	"planetfall/pkg/game/gameplay"
	"planetfall/pkg/game/i18n"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
	ebitenrenderer "planetfall/pkg/game/renderer/ebiten"
)

func loadConfig() *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		log.Printf("Warning: no config directory, preferences will not be saved: %v", err)
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Warning: could not load preferences: %v", err)
		return config.Default()
	}
	return cfg
}

// loadNames returns the planet names from the configured file, falling
// back to the built-in list.
func loadNames(path string) *planet.NameSource {
	if path == "" {
		return planet.DefaultNames()
	}
	names, err := planet.LoadNamesFile(path)
	if err != nil {
		log.Printf("Warning: could not load planet names from %s: %v", path, err)
		return planet.DefaultNames()
	}
	return names
}

func newSounds(cfg *config.Config) *audio.SoundManager {
	base := audio.DefaultConfig()
	base.MasterVolume = cfg.MasterVolume
	sm := audio.NewSoundManager(audio.LoadConfig(base))
	if err := sm.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}
	if cfg.Muted && sm.IsEnabled() {
		sm.ToggleMute()
	}
	return sm
}

func main() {
	cfg := loadConfig()

	seed := flag.Int64("seed", 0, "expedition seed (0 picks one from the clock)")
	planets := flag.Int("planets", cfg.PlanetCount, "planets per expedition")
	scale := flag.Int("scale", cfg.WindowScale, "initial window scale")
	scanlines := flag.Bool("scanlines", cfg.Scanlines, "draw the scanline filter")
	mute := flag.Bool("mute", cfg.Muted, "start with sound muted")
	lang := flag.String("lang", cfg.Language, "interface language")
	flag.Parse()

	// Flags apply to this run only and are not written back.
	cfg.PlanetCount = min(max(*planets, config.MinPlanets), config.MaxPlanets)
	cfg.WindowScale = min(max(*scale, config.MinScale), config.MaxScale)
	cfg.Scanlines = *scanlines
	cfg.Muted = *mute
	cfg.Language = *lang
	config.Set(cfg)

	if err := i18n.Load(cfg.Language); err != nil {
		log.Printf("Warning: %v, using English", err)
		if err := i18n.Load("en"); err != nil {
			log.Fatalf("Failed to load translations: %v", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting expedition with seed %d", *seed)

	sounds := newSounds(cfg)
	defer sounds.Cleanup()

	session, err := gameplay.NewSession(gameplay.Options{
		Seed:     *seed,
		Config:   cfg,
		Viewport: display.Default(),
		Names:    loadNames(cfg.NamesFile),
		Sounds:   sounds,
	})
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	window, err := ebitenrenderer.New(session, cfg)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	renderer.SetRenderer(window)
	renderer.Init()

	if err := window.Run(); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
