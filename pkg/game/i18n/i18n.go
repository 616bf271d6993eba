// Package i18n loads the embedded translation catalogues into gotext.
//
// UI strings are keys such as MENU_EXPLORE; markup like GT{MENU_EXPLORE}
// is resolved through gotext.Get once a catalogue is loaded.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const domain = "default"

//go:embed locales/*.po
var locales embed.FS

// ErrUnknownLanguage is returned by Load for a language with no catalogue.
var ErrUnknownLanguage = errors.New("unknown language")

// Languages lists the embedded catalogues.
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".po") {
			langs = append(langs, strings.TrimSuffix(name, ".po"))
		}
	}
	sort.Strings(langs)
	return langs
}

// Catalogue parses the embedded catalogue for lang.
func Catalogue(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// Load makes lang the active gotext language.
func Load(lang string) error {
	po, err := Catalogue(lang)
	if err != nil {
		return err
	}
	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)
	return nil
}
