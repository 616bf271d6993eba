// Package terminal reports the size of the controlling terminal and how much
// of an image fits in it as half-block cells.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height in cells.
// Falls back to defaults when stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SampleStep returns the pixel stride needed to fit an imgW x imgH image into
// cols x rows cells, where each cell shows two vertically stacked pixels.
// reserveRows lines are kept free for captions.
func SampleStep(imgW, imgH, cols, rows, reserveRows int) int {
	rows -= reserveRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	step := 1
	for imgW/step > cols || (imgH/step+1)/2 > rows {
		step++
	}
	return step
}
