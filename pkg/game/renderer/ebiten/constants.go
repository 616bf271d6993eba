package ebiten

import "image/color"

// Color palette for overlays and message markup
var (
	colorBackground      = color.RGBA{10, 8, 20, 255}     // Letterbox bars
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorPlanet          = color.RGBA{250, 200, 120, 255} // Warm sand for planet names
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorMenuHighlight   = color.RGBA{100, 60, 160, 255}  // Dark purple
	colorMessageBorder   = color.RGBA{80, 80, 100, 255}
)

// Font sizes in logical pixels
const (
	uiFontSize    = 10.0
	titleFontSize = 14.0
)

// Message log
const (
	maxTrackedMessages = 20
	maxVisibleMessages = 4
	messageLifetime    = 10000 // milliseconds
)
