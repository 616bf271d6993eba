package devtools

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"planetfall/pkg/game/planet"
	"planetfall/pkg/game/renderer"
	"planetfall/pkg/game/state"
)

// SaveReportHTML writes an HTML page describing the expedition, with every
// planet's texture inlined, to report-<time>.html in dir.
func SaveReportHTML(g *state.Game, dir string) (string, error) {
	page, err := ReportHTML(g)
	if err != nil {
		return "", err
	}
	f, path, err := createIn(dir, timestamped("report", "html"))
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(page); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// ReportHTML renders the expedition report page.
func ReportHTML(g *state.Game) (string, error) {
	var out strings.Builder

	out.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Planetfall - Expedition</title>
    <style>
        body {
            background-color: #0a0814;
            color: #c8d2f5;
            font-family: sans-serif;
            padding: 20px;
        }
        .header { color: #b496fa; font-size: 18px; margin-bottom: 10px; }
        .meta { color: #7882b4; margin-bottom: 20px; }
        .planets { display: flex; flex-wrap: wrap; gap: 16px; }
        .planet {
            background-color: #1e1e32;
            padding: 12px;
            border-radius: 8px;
            text-align: center;
        }
        .planet img { image-rendering: pixelated; width: 128px; height: 128px; }
        .visited { border: 1px solid #fac878; }
        .swatch { display: inline-block; width: 10px; height: 10px; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&out, `    <div class="header">Expedition %d</div>`+"\n", g.Seed)
	fmt.Fprintf(&out, `    <div class="meta">%s &middot; %d of %d planets visited &middot; %.0fs</div>`+"\n",
		html.EscapeString(g.Scene.String()), g.Visited.Size(), len(g.Planets), g.Elapsed)

	out.WriteString(`    <div class="planets">` + "\n")
	for _, p := range g.Planets {
		if err := writePlanetHTML(&out, p, g.Visited.Has(p)); err != nil {
			return "", err
		}
	}
	out.WriteString(`    </div>` + "\n")

	if len(g.Messages) > 0 {
		out.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&out, `        <div class="message">%s</div>`+"\n", html.EscapeString(renderer.StripMarkup(msg)))
		}
		out.WriteString(`    </div>` + "\n")
	}

	out.WriteString(`</body>
</html>
`)
	return out.String(), nil
}

func writePlanetHTML(out *strings.Builder, p *planet.Planet, visited bool) error {
	class := "planet"
	if visited {
		class += " visited"
	}
	src, err := dataURI(p.Land)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", p.Name, err)
	}

	fmt.Fprintf(out, `        <div class="%s">`+"\n", class)
	fmt.Fprintf(out, `            <img src="%s" alt="%s"><br>`+"\n", src, html.EscapeString(p.Name))
	fmt.Fprintf(out, `            <div>%d. %s</div>`+"\n", p.Order, html.EscapeString(p.Name))
	out.WriteString(`            <div>`)
	for _, c := range p.Palette.Colors {
		fmt.Fprintf(out, `<span class="swatch" style="background:%s"></span>`, hex(c))
	}
	out.WriteString("</div>\n")
	out.WriteString("        </div>\n")
	return nil
}

func dataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func hex(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	return cf.Hex()
}
