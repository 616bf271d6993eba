package devtools

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/state"
)

func testGame(t *testing.T) *state.Game {
	t.Helper()
	gen := planet.NewGenerator(3, nil)
	gen.BackgroundSize = 16
	planets, err := gen.GenerateN(2)
	if err != nil {
		t.Fatalf("GenerateN: %v", err)
	}
	g := state.NewGame(3)
	g.Chart(planets, 3)
	g.Visited.Put(planets[1])
	g.AddMessage("Landed on PLANET{" + planets[1].Name + "}")
	return g
}

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})

	path, err := SaveScreenshot(img, dir)
	if err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "screenshot-") || filepath.Ext(path) != ".png" {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if r, _, _, _ := decoded.At(1, 1).RGBA(); r>>8 != 255 {
		t.Errorf("pixel (1,1) red = %d, want 255", r>>8)
	}
}

func TestDumpWorld(t *testing.T) {
	g := testGame(t)
	var buf bytes.Buffer
	if err := DumpWorld(&buf, g); err != nil {
		t.Fatalf("DumpWorld: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"seed: 3", "visited: 1/2", "* ", g.Planets[0].Name, "Landed on " + g.Planets[1].Name, "count: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestReportHTML(t *testing.T) {
	g := testGame(t)
	page, err := ReportHTML(g)
	if err != nil {
		t.Fatalf("ReportHTML: %v", err)
	}
	if strings.Count(page, "data:image/png;base64,") != 2 {
		t.Error("want one inlined texture per planet")
	}
	if strings.Count(page, `class="planet visited"`) != 1 {
		t.Error("want exactly one visited planet")
	}
	if strings.Contains(page, "PLANET{") {
		t.Error("markup leaked into the report")
	}
}

func TestContactSheet(t *testing.T) {
	g := testGame(t)
	sheet := ContactSheet(g.Planets, 4)
	cell := g.Planets[0].Atmosphere.Bounds().Dx()
	b := sheet.Bounds()
	if b.Dy() != cell+2*sheetGap {
		t.Errorf("sheet height = %d, want one row of %d", b.Dy(), cell+2*sheetGap)
	}
	if b.Dx() < 2*cell {
		t.Errorf("sheet width = %d, too narrow for two planets", b.Dx())
	}
}
