package devtools

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"planetfall/pkg/game/components"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/state"
)

const worldDumpFilename = "world.txt"

var dumpable = donburi.NewQuery(filter.Or(
	filter.Contains(components.Position),
	filter.Contains(components.Renderable),
))

var tagNames = []struct {
	name string
	tag  donburi.IComponentType
}{
	{"controllable", components.Controllable},
	{"bouncy", components.Bouncy},
	{"scrollable", components.ScrollablePlanet},
	{"textbox", components.TextboxTag},
}

// DumpWorldToFile writes a full debug dump of the expedition and the
// current scene's entities to world.txt in dir and returns its path.
func DumpWorldToFile(g *state.Game, dir string) (string, error) {
	f, path, err := createIn(dir, worldDumpFilename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpWorld(f, g); err != nil {
		return "", err
	}
	return path, f.Close()
}

// DumpWorld writes the dump to w. The format is sections of key: value
// lines, one entity per block.
func DumpWorld(w io.Writer, g *state.Game) error {
	b := bufio.NewWriter(w)

	fmt.Fprintln(b, "=== WORLD DUMP ===")
	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "--- Metadata ---")
	fmt.Fprintf(b, "seed: %d\n", g.Seed)
	fmt.Fprintf(b, "scene: %s\n", g.Scene)
	fmt.Fprintf(b, "elapsed_seconds: %.1f\n", g.Elapsed)
	fmt.Fprintf(b, "selected: %d\n", g.Selected)
	landed := "none"
	if g.Landed != nil {
		landed = g.Landed.Name
	}
	fmt.Fprintf(b, "landed: %s\n", landed)
	fmt.Fprintf(b, "visited: %d/%d\n", g.Visited.Size(), len(g.Planets))
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Planets ---")
	for _, p := range g.Planets {
		mark := " "
		if g.Visited.Has(p) {
			mark = "*"
		}
		fmt.Fprintf(b, "%s %2d %-12s atmosphere_offset=%d avg=#%02x%02x%02x palette=%d\n",
			mark, p.Order, p.Name, p.AtmosphereOffset, p.Avg.R, p.Avg.G, p.Avg.B, p.Palette.Len())
	}
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Messages ---")
	for _, msg := range g.Messages {
		fmt.Fprintln(b, renderer.StripMarkup(msg))
	}
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Entities ---")
	var blocks []string
	dumpable.Each(g.World, func(e *donburi.Entry) {
		blocks = append(blocks, describeEntity(e))
	})
	sort.Strings(blocks)
	fmt.Fprintf(b, "count: %d\n", len(blocks))
	for _, block := range blocks {
		fmt.Fprintln(b, block)
	}

	return b.Flush()
}

// describeEntity lists the components an entity carries with their key
// values.
func describeEntity(e *donburi.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "entity %d\n", e.Entity().Id())
	if e.HasComponent(components.Position) {
		p := components.Position.Get(e)
		fmt.Fprintf(&sb, "  position: %.1f,%.1f\n", p.X, p.Y)
	}
	if e.HasComponent(components.Velocity) {
		v := components.Velocity.Get(e)
		fmt.Fprintf(&sb, "  velocity: %.1f,%.1f\n", v.X, v.Y)
	}
	if e.HasComponent(components.Sprite) {
		s := components.Sprite.Get(e)
		if s.Image != nil {
			b := s.Image.Bounds()
			fmt.Fprintf(&sb, "  sprite: %dx%d scale=%.2f\n", b.Dx(), b.Dy(), s.Scale)
		} else {
			fmt.Fprintf(&sb, "  sprite: circle r=%.1f\n", s.Radius)
		}
	}
	if e.HasComponent(components.Renderable) {
		fmt.Fprintf(&sb, "  layer: %d\n", components.Renderable.Get(e).Layer)
	}
	if e.HasComponent(components.Clickable) {
		c := components.Clickable.Get(e)
		fmt.Fprintf(&sb, "  clickable: %.0fx%.0f hovered=%v\n", c.Hitbox.X, c.Hitbox.Y, c.Hovered)
	}
	if e.HasComponent(components.PlanetVisual) {
		fmt.Fprintf(&sb, "  planet: %s\n", components.PlanetVisual.Get(e).Planet.Name)
	}
	if e.HasComponent(components.Label) {
		fmt.Fprintf(&sb, "  label: %q\n", components.Label.Get(e).Text)
	}
	if e.HasComponent(components.Textbox) {
		t := components.Textbox.Get(e)
		fmt.Fprintf(&sb, "  textbox: %q lines=%d\n", t.Title, len(t.Lines))
	}
	if e.HasComponent(components.Carousel) {
		c := components.Carousel.Get(e)
		fmt.Fprintf(&sb, "  carousel: index=%d count=%d settled=%v\n", c.Index, c.Count, c.Settled)
	}
	for _, t := range tagNames {
		if e.HasComponent(t.tag) {
			fmt.Fprintf(&sb, "  tag: %s\n", t.name)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
