package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Textures not drawn for this many frames are released.
const textureMaxAge = 120

type cachedTexture struct {
	img      *ebiten.Image
	lastUsed int64
}

// canvas draws onto an ebiten image. Source images are uploaded once and
// kept while they are in use.
type canvas struct {
	dst      *ebiten.Image
	textures map[image.Image]*cachedTexture
	frame    int64
	face     func(size float64) *text.GoTextFace
}

func newCanvas(face func(size float64) *text.GoTextFace) *canvas {
	return &canvas{
		textures: make(map[image.Image]*cachedTexture),
		face:     face,
	}
}

// begin starts a frame on dst.
func (c *canvas) begin(dst *ebiten.Image) {
	c.dst = dst
	c.frame++
}

// texture returns the GPU copy of img, uploading it on first use.
func (c *canvas) texture(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	t, ok := c.textures[img]
	if !ok {
		t = &cachedTexture{img: ebiten.NewImageFromImage(img)}
		c.textures[img] = t
	}
	t.lastUsed = c.frame
	return t.img
}

// sweep deallocates textures of images that left the scene.
func (c *canvas) sweep() {
	for src, t := range c.textures {
		if c.frame-t.lastUsed > textureMaxAge {
			t.img.Deallocate()
			delete(c.textures, src)
		}
	}
}

func (c *canvas) DrawImage(img image.Image, x, y, scale float64) {
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(c.texture(img), op)
}

func (c *canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *canvas) StrokeRect(x, y, w, h, width float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), col, false)
}

func (c *canvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c *canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), col, true)
}

func (c *canvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col, false)
}

func (c *canvas) Text(s string, x, y, size float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.face(size), op)
}

func (c *canvas) MeasureText(s string, size float64) (float64, float64) {
	return text.Measure(s, c.face(size), 0)
}
