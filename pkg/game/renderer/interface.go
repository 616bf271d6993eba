package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StylePlanet
	StyleAction
	StyleActionShort
	StyleSubtle
	StylePassed
	StyleFailed
	StyleTitle
)

// Renderer defines the interface for text output backends.
// The terminal preview and the Ebiten message log both implement it.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string.
	// For the terminal this applies ANSI colors, Ebiten returns the text as is
	// and colors it when drawing.
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return Format(nil, msg, args...)
}

// ShowMessage displays a message through the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
