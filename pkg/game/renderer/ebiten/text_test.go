package ebiten

import (
	"image/color"
	"testing"
)

func TestParseMarkup(t *testing.T) {
	saved := dynamicGet
	dynamicGet = func(key string, _ ...interface{}) string { return "<" + key + ">" }
	t.Cleanup(func() { dynamicGet = saved })

	segs := parseMarkup("GT{LANDED_ON} PLANET{Kepler} now")
	want := []textSegment{
		{"<LANDED_ON>", colorText},
		{" ", colorText},
		{"Kepler", colorPlanet},
		{" now", colorText},
	}
	if len(segs) != len(want) {
		t.Fatalf("segments = %+v", segs)
	}
	for i := range want {
		if segs[i].text != want[i].text || segs[i].color != want[i].color {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}

	if plain := parseMarkup("plain"); len(plain) != 1 || plain[0].text != "plain" {
		t.Errorf("plain text = %+v", plain)
	}
}

func TestApplyAlpha(t *testing.T) {
	c := applyAlpha(color.RGBA{200, 100, 50, 255}, 0.5).(color.RGBA)
	if c != (color.RGBA{100, 50, 25, 127}) {
		t.Errorf("half alpha = %v", c)
	}
	if applyAlpha(colorText, -1).(color.RGBA).A != 0 {
		t.Error("negative alpha not clamped to transparent")
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		total, selected, rows int
		first, last           int
	}{
		{3, 0, 10, 0, 3},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
		{4, 1, 0, 0, 0},
	}
	for _, tc := range tests {
		first, last := visibleRange(tc.total, tc.selected, tc.rows)
		if first != tc.first || last != tc.last {
			t.Errorf("visibleRange(%d, %d, %d) = %d, %d, want %d, %d",
				tc.total, tc.selected, tc.rows, first, last, tc.first, tc.last)
		}
	}
}

func TestMenuRowAt(t *testing.T) {
	e := &EbitenRenderer{menuRows: []menuRow{
		{index: 2, x: 10, y: 20, w: 100, h: 15},
		{index: 3, x: 10, y: 35, w: 100, h: 15},
	}}
	if got := e.menuRowAt(50, 40); got != 3 {
		t.Errorf("row at (50,40) = %d, want 3", got)
	}
	if got := e.menuRowAt(5, 25); got != -1 {
		t.Errorf("row left of panel = %d, want -1", got)
	}
}

func TestShowMessage_KeepsRecent(t *testing.T) {
	e := &EbitenRenderer{}
	for i := 0; i < maxTrackedMessages+5; i++ {
		e.ShowMessage("m")
	}
	if len(e.trackedMessages) != maxTrackedMessages {
		t.Errorf("tracked %d messages, want %d", len(e.trackedMessages), maxTrackedMessages)
	}
}
