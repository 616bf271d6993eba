package terminal

import "testing"

func TestSampleStep(t *testing.T) {
	tests := []struct {
		name                   string
		imgW, imgH, cols, rows int
		reserve, want          int
	}{
		{"fits", 64, 64, 80, 40, 0, 1},
		{"too wide", 160, 20, 80, 40, 0, 2},
		{"too tall", 64, 200, 80, 24, 0, 5},
		{"reserved rows", 64, 64, 80, 33, 2, 2},
		{"degenerate terminal", 4, 4, 0, 0, 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SampleStep(tc.imgW, tc.imgH, tc.cols, tc.rows, tc.reserve)
			if got != tc.want {
				t.Errorf("SampleStep(%d,%d,%d,%d,%d) = %d, want %d",
					tc.imgW, tc.imgH, tc.cols, tc.rows, tc.reserve, got, tc.want)
			}
		})
	}
}
