package renderer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// markupPattern matches FUNC{operand}. Operands run to the first closing
// brace, so planet names and file paths pass through whole.
var markupPattern = regexp.MustCompile(`([A-Z][A-Z_]*)\{([^{}]*)\}`)

// StyleFunc styles a piece of text. A nil StyleFunc leaves text unstyled.
type StyleFunc func(text string, style TextStyle) string

// Format runs fmt.Sprintf over msg and then expands markup:
//
//	GT{KEY}        translated string
//	PLANET{name}   planet name
//	ACTION{word}   action word with a highlighted first letter
//	SUBTLE{text}   de-emphasized text
func Format(style StyleFunc, msg string, args ...any) string {
	if style == nil {
		style = func(text string, _ TextStyle) string { return text }
	}

	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range markupPattern.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "PLANET":
			val = style(operand, StylePlanet)
		case "ACTION":
			_, n := utf8.DecodeRuneInString(operand)
			val = style(operand[:n], StyleActionShort) + style(operand[n:], StyleAction)
		case "SUBTLE":
			val = style(operand, StyleSubtle)
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// StripMarkup removes markup wrappers, keeping translated keys and operands.
func StripMarkup(msg string) string {
	return Format(nil, "%s", msg)
}
