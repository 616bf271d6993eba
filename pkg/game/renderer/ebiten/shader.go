package ebiten

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed scanlines.kage
var scanlineShaderSource []byte

const scanlineIntensity = 0.25

func loadScanlineShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(scanlineShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compiling scanline shader: %w", err)
	}
	return s, nil
}

// drawScanlines draws src onto screen at (x, y), darkening every other row.
// src must already be at window scale.
func (e *EbitenRenderer) drawScanlines(screen, src *ebiten.Image, x, y, scale float64) {
	b := src.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(x, y)
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Intensity": float32(scanlineIntensity),
		"LineSize":  float32(max(scale/2, 1)),
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), e.scanlines, op)
}
