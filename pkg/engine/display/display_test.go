package display

import "testing"

func TestFit(t *testing.T) {
	tests := []struct {
		name              string
		w, h              int
		scale, offX, offY float64
	}{
		{"exact 2x", 960, 540, 2, 0, 0},
		{"wide window", 1200, 540, 2, 120, 0},
		{"tall window", 960, 700, 2, 0, 80},
		{"same size", 480, 270, 1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Default().Fit(tc.w, tc.h)
			if l.Scale != tc.scale || l.OffsetX != tc.offX || l.OffsetY != tc.offY {
				t.Errorf("Fit(%d,%d) = scale %v offset (%v,%v), want %v (%v,%v)",
					tc.w, tc.h, l.Scale, l.OffsetX, l.OffsetY, tc.scale, tc.offX, tc.offY)
			}
		})
	}
}

func TestToLogical(t *testing.T) {
	l := Default().Fit(1200, 540)

	x, y := l.ToLogical(120+200, 100)
	if x != 100 || y != 50 {
		t.Errorf("ToLogical(320,100) = (%v,%v), want (100,50)", x, y)
	}

	// clicks in the bars clamp to the edge
	x, y = l.ToLogical(10, 2000)
	if x != 0 || y != LogicalHeight {
		t.Errorf("ToLogical(10,2000) = (%v,%v), want (0,%d)", x, y, LogicalHeight)
	}
}

func TestFit_EmptyViewport(t *testing.T) {
	l := Viewport{}.Fit(100, 100)
	if l.Scale != 1 {
		t.Errorf("empty viewport scale = %v, want 1", l.Scale)
	}
}
