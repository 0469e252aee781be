package wordio

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a TOML file naming raw words for batch inspection:
//
//	[words]
//	"free-list-head" = "0x8000000000fe3a05"
//	"sentinel"       = "0x0000000000000007"
//
// Word values are hex strings rather than TOML integers because TOML
// integers are signed 64-bit and a raw word routinely has bit 63 set.
type Manifest struct {
	Words map[string]string `toml:"words"`
}

// LoadManifest parses a manifest file from the given path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return &m, nil
}

// Resolve decodes every named word, returning names in sorted order so
// output is deterministic.
func (m *Manifest) Resolve() (names []string, words []uint64, err error) {
	names = make([]string, 0, len(m.Words))
	for name := range m.Words {
		names = append(names, name)
	}
	sort.Strings(names)

	words = make([]uint64, 0, len(names))
	for _, name := range names {
		w, err := ParseWord(m.Words[name])
		if err != nil {
			return nil, nil, fmt.Errorf("word %q: %w", name, err)
		}
		words = append(words, w)
	}
	return names, words, nil
}

// ParseWord parses a raw word from a hex string, with or without the
// "0x" prefix.
func ParseWord(s string) (uint64, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	w, err := strconv.ParseUint(t, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex word %q: %w", s, err)
	}
	return w, nil
}
