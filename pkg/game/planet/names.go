package planet

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

//go:embed names.txt
var embeddedNames string

// ErrNoNames is returned by Pick when every name has been handed out.
var ErrNoNames = errors.New("planet: no unused names left")

// NameSource hands out planet names without repeats.
type NameSource struct {
	names []string
	used  mapset.Set[string]
}

// DefaultNames returns a name source backed by the built-in list.
func DefaultNames() *NameSource {
	ns, err := LoadNames(strings.NewReader(embeddedNames))
	if err != nil {
		return newNameSource(nil)
	}
	return ns
}

func newNameSource(names []string) *NameSource {
	return &NameSource{names: names, used: mapset.New[string]()}
}

// LoadNames reads one name per line. Blank lines are skipped and long names
// are cut to NameMaxLen characters.
func LoadNames(r io.Reader) (*NameSource, error) {
	var names []string
	seen := mapset.New[string]()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := truncateName(strings.TrimSpace(scanner.Text()))
		if name == "" || seen.Has(name) {
			continue
		}
		seen.Put(name)
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading planet names: %w", err)
	}

	return newNameSource(names), nil
}

// LoadNamesFile reads a name list from path.
func LoadNamesFile(path string) (*NameSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening planet names: %w", err)
	}
	defer f.Close()
	return LoadNames(f)
}

// Len returns the number of names in the source.
func (n *NameSource) Len() int {
	return len(n.names)
}

// Remaining returns how many names have not been picked yet.
func (n *NameSource) Remaining() int {
	return len(n.names) - n.used.Size()
}

// Pick returns a random name that has not been returned before.
func (n *NameSource) Pick(rng *rand.Rand) (string, error) {
	var unused []string
	for _, name := range n.names {
		if !n.used.Has(name) {
			unused = append(unused, name)
		}
	}
	if len(unused) == 0 {
		return "", ErrNoNames
	}

	name := unused[rng.Intn(len(unused))]
	n.used.Put(name)
	return name, nil
}

// Reset makes every name available again.
func (n *NameSource) Reset() {
	n.used = mapset.New[string]()
}

func truncateName(name string) string {
	r := []rune(name)
	if len(r) > NameMaxLen {
		return string(r[:NameMaxLen])
	}
	return name
}
