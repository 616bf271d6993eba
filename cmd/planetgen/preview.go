package main

import (
	"errors"
	"fmt"

	"planetfall/pkg/engine/input"
	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer/tui"
)

// captionRows is kept free under the picture for the caption and key help.
const captionRows = 3

// runPreview shows one planet at a time. Left and right browse, regenerate
// replaces the whole set, back or quit leaves.
func runPreview(t *tui.TUIRenderer, gen *planet.Generator, count int) error {
	planets, err := gen.GenerateN(count)
	if err != nil {
		return err
	}

	b := browser{count: len(planets)}
	for {
		p := planets[b.current]
		t.Clear()
		t.PrintImage(p.Atmosphere, captionRows)
		t.ShowMessage(fmt.Sprintf("PLANET{%s}  SUBTLE{%d/%d}", p.Name, b.current+1, b.count))
		t.ShowMessage("ACTION{←/→} browse  ACTION{r} regenerate  ACTION{esc} quit")

		intent, err := t.GetInput()
		if errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch b.apply(intent.Action) {
		case browseQuit:
			return nil
		case browseRegenerate:
			if planets, err = gen.GenerateN(count); err != nil {
				return err
			}
			b.current = 0
		}
	}
}

type browseResult int

const (
	browseStay browseResult = iota
	browseRegenerate
	browseQuit
)

// browser tracks the previewed index, wrapping at both ends.
type browser struct {
	current int
	count   int
}

func (b *browser) apply(a input.Action) browseResult {
	switch a {
	case input.ActionScrollLeft:
		b.current = (b.current - 1 + b.count) % b.count
	case input.ActionScrollRight:
		b.current = (b.current + 1) % b.count
	case input.ActionRegenerate:
		return browseRegenerate
	case input.ActionBack, input.ActionQuit:
		return browseQuit
	}
	return browseStay
}
