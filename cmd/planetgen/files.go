package main

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"planetfall/pkg/game/planet"
)

// fileBase turns a planet into a file-system safe name prefix.
func fileBase(p *planet.Planet) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, p.Name)
	name = strings.Trim(name, "-")
	if name == "" {
		name = "planet"
	}
	return fmt.Sprintf("%02d-%s", p.Order, name)
}

// sheetColumns picks a roughly square grid.
func sheetColumns(n int) int {
	if n < 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}
