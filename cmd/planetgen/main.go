// Command planetgen renders planets without opening a window: PNG files,
// a contact sheet, a terminal preview or the colour self-check.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"planetfall/pkg/game/devtools"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/renderer/tui"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	count := flag.Int("count", 5, "number of planets")
	out := flag.String("out", "planets", "directory for PNG output")
	names := flag.String("names", "", "planet names file, one per line")
	sheet := flag.Bool("sheet", false, "write one contact sheet instead of a file per planet")
	preview := flag.Bool("preview", false, "browse planets in the terminal")
	selfcheck := flag.Bool("selfcheck", false, "run the colour self-check and exit")
	flag.Parse()

	t := tui.New(os.Stdout)
	t.Init()
	renderer.SetRenderer(t)

	if *selfcheck {
		if !runSelfCheck(t) {
			os.Exit(1)
		}
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *count < 1 {
		log.Fatalf("planetgen: -count must be at least 1, got %d", *count)
	}

	gen := planet.NewGenerator(*seed, loadNames(*names))

	if *preview {
		if err := runPreview(t, gen, *count); err != nil {
			log.Fatalf("planetgen: %v", err)
		}
		return
	}

	planets, err := gen.GenerateN(*count)
	if err != nil {
		log.Fatalf("planetgen: %v", err)
	}

	if *sheet {
		path, err := devtools.SavePNG(devtools.ContactSheet(planets, sheetColumns(len(planets))), *out, fmt.Sprintf("sheet-%d.png", *seed))
		if err != nil {
			log.Fatalf("planetgen: %v", err)
		}
		t.ShowMessage("Wrote ACTION{" + path + "}")
		return
	}

	if err := writePlanets(planets, *out); err != nil {
		log.Fatalf("planetgen: %v", err)
	}
	t.ShowMessage(fmt.Sprintf("Wrote %d planets to ACTION{%s} (seed %d)", len(planets), *out, *seed))
}

func loadNames(path string) *planet.NameSource {
	if path == "" {
		return nil
	}
	names, err := planet.LoadNamesFile(path)
	if err != nil {
		log.Printf("planetgen: %v, using built-in names", err)
		return nil
	}
	return names
}

// writePlanets saves land, atmosphere and background for every planet.
func writePlanets(planets []*planet.Planet, dir string) error {
	for _, p := range planets {
		base := fileBase(p)
		layers := []struct {
			suffix string
			img    image.Image
		}{
			{"land", p.Land},
			{"atmosphere", p.Atmosphere},
			{"background", p.Background},
		}
		for _, l := range layers {
			if _, err := devtools.SavePNG(l.img, dir, base+"-"+l.suffix+".png"); err != nil {
				return err
			}
		}
	}
	return nil
}
