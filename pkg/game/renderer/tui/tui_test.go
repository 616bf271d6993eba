package tui

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	gcolor "github.com/gookit/color"

	"planetfall/pkg/game/renderer"
)

func TestHalfBlocks_Shape(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	// Left column opaque, right half transparent
	for y := 0; y < 4; y++ {
		img.Set(0, y, color.RGBA{255, 0, 0, 255})
	}
	// Only the top pixel of the second column's first cell
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	// Only the bottom pixel of the third column's first cell
	img.Set(2, 1, color.RGBA{0, 0, 255, 255})

	lines := strings.Split(strings.TrimRight(gcolor.ClearCode(HalfBlocks(img, 1)), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != upperHalf+upperHalf+lowerHalf+" " {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != upperHalf+"   " {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestHalfBlocks_Step(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	out := gcolor.ClearCode(HalfBlocks(img, 2))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 4 {
		t.Errorf("step 2 over 8x8 = %d lines of %d cells, want 2 of 4", len(lines), len([]rune(lines[0])))
	}
}

func TestFormatAndShowMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	r.ShowMessage("Found PLANET{Vega}")
	if got := gcolor.ClearCode(buf.String()); got != "Found Vega\n" {
		t.Errorf("ShowMessage wrote %q", got)
	}

	if got := gcolor.ClearCode(r.StyleText("ok", renderer.StylePassed)); got != "ok" {
		t.Errorf("StyleText = %q", got)
	}
}
