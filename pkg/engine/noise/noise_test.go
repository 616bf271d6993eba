package noise

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestPerlin_Deterministic(t *testing.T) {
	a := Perlin(rand.New(rand.NewSource(42)), 32, 32, 10, 20, 5)
	b := Perlin(rand.New(rand.NewSource(42)), 32, 32, 10, 20, 5)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Perlin with the same seed produced different fields")
	}

	c := Perlin(rand.New(rand.NewSource(43)), 32, 32, 10, 20, 5)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("Perlin with different seeds produced identical fields")
	}
}

func TestPerlin_Size(t *testing.T) {
	img := Perlin(rand.New(rand.NewSource(1)), 40, 24, 0, 0, 3)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 24 {
		t.Errorf("bounds = %v, want 40x24", b)
	}

	empty := Perlin(rand.New(rand.NewSource(1)), 0, 10, 0, 0, 3)
	if !empty.Bounds().Empty() {
		t.Errorf("zero width bounds = %v, want empty", empty.Bounds())
	}
}

func TestPerlin_NotFlat(t *testing.T) {
	img := Perlin(rand.New(rand.NewSource(5)), 64, 64, 0, 0, 5)
	lo, hi := uint8(255), uint8(0)
	for _, p := range img.Pix {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	if hi-lo < 32 {
		t.Errorf("intensity range [%d,%d] is too narrow for fractal noise", lo, hi)
	}
}

func TestPerlin_OffsetShiftsField(t *testing.T) {
	// Sampling with offset 8 must match the unshifted field 8 pixels in.
	a := Perlin(rand.New(rand.NewSource(9)), 32, 32, 0, 0, 4)
	b := Perlin(rand.New(rand.NewSource(9)), 32, 32, 8, 0, 4)
	for y := 0; y < 32; y++ {
		for x := 0; x < 24; x++ {
			if a.GrayAt(x+8, y) != b.GrayAt(x, y) {
				t.Fatalf("pixel (%d,%d) of shifted field = %v, want %v", x, y, b.GrayAt(x, y), a.GrayAt(x+8, y))
			}
		}
	}
}

func TestCellular_SeedPointsAreDark(t *testing.T) {
	const tile = 8
	img := Cellular(rand.New(rand.NewSource(3)), 32, 32, tile)

	for ty := 0; ty < 32/tile; ty++ {
		for tx := 0; tx < 32/tile; tx++ {
			found := false
			for y := ty * tile; y < (ty+1)*tile && !found; y++ {
				for x := tx * tile; x < (tx+1)*tile; x++ {
					if img.GrayAt(x, y).Y == 0 {
						found = true
						break
					}
				}
			}
			if !found {
				t.Errorf("tile (%d,%d) has no zero-intensity seed pixel", tx, ty)
			}
		}
	}
}

func TestCellular_Deterministic(t *testing.T) {
	a := Cellular(rand.New(rand.NewSource(11)), 48, 48, 6)
	b := Cellular(rand.New(rand.NewSource(11)), 48, 48, 6)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Cellular with the same seed produced different fields")
	}
}

func TestCellular_TileLargerThanImage(t *testing.T) {
	img := Cellular(rand.New(rand.NewSource(1)), 4, 4, 16)
	for i, p := range img.Pix {
		if p != 255 {
			t.Fatalf("Pix[%d] = %d, want 255 when no tile fits", i, p)
		}
	}
}

func TestField_Dispatch(t *testing.T) {
	a := Field(KindCellular, rand.New(rand.NewSource(2)), 16, 16, 0, 0, 4)
	b := Cellular(rand.New(rand.NewSource(2)), 16, 16, 4)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Field(KindCellular) differs from Cellular")
	}

	c := Field(KindPerlin, rand.New(rand.NewSource(2)), 16, 16, 1, 2, 4)
	d := Perlin(rand.New(rand.NewSource(2)), 16, 16, 1, 2, 4)
	if !bytes.Equal(c.Pix, d.Pix) {
		t.Error("Field(KindPerlin) differs from Perlin")
	}
}

func TestKind_String(t *testing.T) {
	if KindPerlin.String() != "perlin" || KindCellular.String() != "cellular" {
		t.Errorf("Kind strings = %q, %q", KindPerlin, KindCellular)
	}
}
