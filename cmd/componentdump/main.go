// Command componentdump lists the donburi components declared in a source
// tree together with the fields of their data types.
//
// Usage:
//
//	componentdump [dir] [output]
//
// dir defaults to pkg/game/components and output to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"

	"planetfall/pkg/engine/terminal"
)

var (
	styleName  = color.Style{color.FgCyan, color.OpBold}
	styleType  = color.Style{color.FgYellow}
	styleField = color.Style{color.FgGray}
	styleWarn  = color.Style{color.FgRed}
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: componentdump [dir] [output]")
		flag.PrintDefaults()
	}
	flag.Parse()

	dir := "pkg/game/components"
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	comps, err := Scan(dir)
	if err != nil {
		log.Fatalf("componentdump: %v", err)
	}

	var out io.Writer = os.Stdout
	styled := terminal.IsTerminal()
	if flag.NArg() > 1 {
		f, err := os.Create(flag.Arg(1))
		if err != nil {
			log.Fatalf("componentdump: %v", err)
		}
		defer f.Close()
		out = f
		styled = false
	}

	if err := Write(out, comps, styled); err != nil {
		log.Fatalf("componentdump: %v", err)
	}
	if flag.NArg() > 1 {
		log.Printf("Component data written to %s", flag.Arg(1))
	}
}

// Write prints one block per component. Styled output uses ANSI colors.
func Write(w io.Writer, comps []Component, styled bool) error {
	paint := func(s color.Style, text string) string {
		if !styled {
			return text
		}
		return s.Sprint(text)
	}

	for _, c := range comps {
		var err error
		switch {
		case c.IsTag():
			_, err = fmt.Fprintf(w, "Tag: %s\n\n", paint(styleName, c.Name))
		default:
			typ := c.Type
			if c.Alias != "" {
				typ += " = " + c.Alias
			}
			_, err = fmt.Fprintf(w, "Component: %s (%s)\n", paint(styleName, c.Name), paint(styleType, typ))
			if err != nil {
				return err
			}
			err = writeFields(w, c, paint)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFields(w io.Writer, c Component, paint func(color.Style, string) string) error {
	var err error
	switch {
	case !c.Found:
		_, err = fmt.Fprintln(w, paint(styleWarn, "No type declaration found."))
	case len(c.Fields) == 0:
		_, err = fmt.Fprintln(w, "No fields.")
	default:
		_, err = fmt.Fprintln(w, "Fields:")
		for _, f := range c.Fields {
			if err != nil {
				break
			}
			_, err = fmt.Fprintln(w, paint(styleField, f))
		}
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
