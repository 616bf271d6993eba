package devtools

import (
	"image"
	"image/color"
	"image/draw"

	"planetfall/pkg/game/planet"
)

const sheetGap = 4

// ContactSheet lays the planets out in a grid of cols columns, each cell
// holding the atmosphere with the land on top, centred.
func ContactSheet(planets []*planet.Planet, cols int) *image.RGBA {
	if cols <= 0 {
		cols = 1
	}
	cell := 0
	for _, p := range planets {
		cell = max(cell, p.Atmosphere.Bounds().Dx(), p.Land.Bounds().Dx())
	}
	rows := (len(planets) + cols - 1) / cols
	if len(planets) < cols {
		cols = len(planets)
	}

	w := cols*(cell+sheetGap) + sheetGap
	h := rows*(cell+sheetGap) + sheetGap
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.RGBA{10, 8, 20, 255}), image.Point{}, draw.Src)

	for i, p := range planets {
		x := sheetGap + (i%cols)*(cell+sheetGap)
		y := sheetGap + (i/cols)*(cell+sheetGap)
		drawCentred(sheet, p.Atmosphere, x, y, cell)
		drawCentred(sheet, p.Land, x, y, cell)
	}
	return sheet
}

func drawCentred(dst *image.RGBA, src image.Image, x, y, cell int) {
	b := src.Bounds()
	off := image.Pt(x+(cell-b.Dx())/2, y+(cell-b.Dy())/2)
	draw.Draw(dst, b.Sub(b.Min).Add(off), src, b.Min, draw.Over)
}
