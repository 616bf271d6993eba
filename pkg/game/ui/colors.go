// Package ui builds textboxes, labels and buttons as donburi entities and
// provides the draw callbacks that render them.
package ui

import "image/color"

// Gruvbox palette
var (
	ColorDark0  = color.RGBA{0x28, 0x28, 0x28, 0xff}
	ColorDark1  = color.RGBA{0x3c, 0x38, 0x36, 0xff}
	ColorDark2  = color.RGBA{0x50, 0x49, 0x45, 0xff}
	ColorLight1 = color.RGBA{0xeb, 0xdb, 0xb2, 0xff}
	ColorGray   = color.RGBA{0x92, 0x83, 0x74, 0xff}
	ColorBlue   = color.RGBA{0x45, 0x85, 0x88, 0xff}
	ColorRed    = color.RGBA{0xcc, 0x24, 0x1d, 0xff}
	ColorGreen  = color.RGBA{0x98, 0x97, 0x1a, 0xff}
	ColorYellow = color.RGBA{0xd7, 0x99, 0x21, 0xff}
	ColorWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Draw layers
const (
	LayerBackground = 0
	LayerPlanet     = 2
	LayerShip       = 3
	LayerTextbox    = 10
	LayerButton     = 20
)
