package noise

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Cellular generates a w x h Worley-style field. Each tileSize square tile
// gets one random seed point; a pixel's intensity grows with the distance to
// the nearest seed in its own and the eight surrounding tiles.
func Cellular(rng *rand.Rand, w, h, tileSize int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	if tileSize < 1 {
		tileSize = 1
	}

	perRow := w / tileSize
	perCol := h / tileSize

	seeds := make([]image.Point, perRow*perCol)
	for i := range seeds {
		seeds[i] = image.Point{
			X: (i%perRow)*tileSize + rng.Intn(tileSize),
			Y: (i/perRow)*tileSize + rng.Intn(tileSize),
		}
	}

	for y := 0; y < h; y++ {
		tileY := y / tileSize
		for x := 0; x < w; x++ {
			tileX := x / tileSize
			minDist := 65536.0

			for i := -1; i <= 1; i++ {
				if tileX+i < 0 || tileX+i >= perRow {
					continue
				}
				for j := -1; j <= 1; j++ {
					if tileY+j < 0 || tileY+j >= perCol {
						continue
					}
					s := seeds[(tileY+j)*perRow+tileX+i]
					d := math.Hypot(float64(x-s.X), float64(y-s.Y))
					minDist = math.Min(minDist, d)
				}
			}

			intensity := int(minDist * 256 / float64(tileSize))
			if intensity > 255 {
				intensity = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(intensity)})
		}
	}

	return img
}

// Field generates a field of the given kind. For cellular noise the scale is
// used as the tile size and the offsets are ignored.
func Field(kind Kind, rng *rand.Rand, w, h, offsetX, offsetY int, scale float64) *image.Gray {
	if kind == KindCellular {
		return Cellular(rng, w, h, int(scale))
	}
	return Perlin(rng, w, h, offsetX, offsetY, scale)
}
