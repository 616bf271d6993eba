package ebiten

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const starDriftSpeed = 0.4

// Star tints, dim enough to sit behind the menu panel
var starColors = []color.Color{
	color.RGBA{160, 170, 220, 255},
	color.RGBA{200, 180, 240, 255},
	color.RGBA{240, 220, 180, 255},
	color.RGBA{150, 200, 230, 255},
}

// initFloatingStars scatters 60-90 stars over a w x h area.
func (e *EbitenRenderer) initFloatingStars(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	e.floatingStars = make([]floatingStar, 60+rand.Intn(31))
	for i := range e.floatingStars {
		s := &e.floatingStars[i]
		s.x = rand.Float64() * float64(w)
		s.y = rand.Float64() * float64(h)
		s.vx = (rand.Float64() - 0.5) * starDriftSpeed
		s.vy = (rand.Float64() - 0.5) * starDriftSpeed
		s.radius = 0.5 + rand.Float64()
		s.color = starColors[rand.Intn(len(starColors))]
		s.twinkle = rand.Float64() * 2 * math.Pi
		s.twinkleSpeed = 0.02 + rand.Float64()*0.06
	}
}

// updateFloatingStars moves every star one tick, wrapping at the edges.
func (e *EbitenRenderer) updateFloatingStars(w, h int) {
	if len(e.floatingStars) == 0 {
		e.initFloatingStars(w, h)
	}
	fw, fh := float64(w), float64(h)
	for i := range e.floatingStars {
		s := &e.floatingStars[i]
		s.x += s.vx
		s.y += s.vy

		if s.x < 0 {
			s.x += fw
		} else if s.x >= fw {
			s.x -= fw
		}
		if s.y < 0 {
			s.y += fh
		} else if s.y >= fh {
			s.y -= fh
		}

		s.twinkle = math.Mod(s.twinkle+s.twinkleSpeed, 2*math.Pi)

		// Occasional nudge so the drift does not look mechanical
		if rand.Float64() < 0.01 {
			s.vx = clampVelocity(s.vx + (rand.Float64()-0.5)*0.1)
			s.vy = clampVelocity(s.vy + (rand.Float64()-0.5)*0.1)
		}
	}
}

func clampVelocity(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// drawFloatingStars draws the drifting stars behind the main menu.
func (e *EbitenRenderer) drawFloatingStars(screen *ebiten.Image) {
	for _, s := range e.floatingStars {
		brightness := 0.45 + 0.35*math.Sin(s.twinkle)
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), float32(s.radius),
			applyAlpha(s.color, brightness), true)
	}
}
