package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts.
func (e *EbitenRenderer) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("loading bold font: %w", err)
	}
	e.sansFontSource = regular
	e.sansBoldFontSource = bold
	e.faces = make(map[float64]*text.GoTextFace)
	e.boldFaces = make(map[float64]*text.GoTextFace)
	return nil
}

// getSansFontFace returns a cached sans-serif face of the given size
func (e *EbitenRenderer) getSansFontFace(size float64) *text.GoTextFace {
	face, ok := e.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: e.sansFontSource, Size: size}
		e.faces[size] = face
	}
	return face
}

// getSansBoldFontFace returns a cached bold face for titles
func (e *EbitenRenderer) getSansBoldFontFace(size float64) *text.GoTextFace {
	face, ok := e.boldFaces[size]
	if !ok {
		face = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size}
		e.boldFaces[size] = face
	}
	return face
}
