package knowledge

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyGuide = errors.New("process guide has no steps")

// Base is the read-only knowledge base: process guides, canned phrases and
// the catalog of example voice commands. It is immutable after construction.
type Base struct {
	guides   map[string][]string
	phrases  map[string]string
	commands []string
}

// fileFormat is the YAML layout accepted by LoadFile.
type fileFormat struct {
	Guides   map[string][]string `yaml:"guides"`
	Phrases  map[string]string   `yaml:"phrases"`
	Commands []string            `yaml:"commands"`
}

// Default returns the built-in knowledge base.
func Default() *Base {
	b := &Base{
		guides:   make(map[string][]string, len(defaultGuides)),
		phrases:  make(map[string]string, len(defaultPhrases)),
		commands: append([]string(nil), defaultCommands...),
	}
	for name, steps := range defaultGuides {
		b.guides[name] = append([]string(nil), steps...)
	}
	for key, text := range defaultPhrases {
		b.phrases[key] = text
	}
	return b
}

// LoadFile reads a YAML file and overlays it on the defaults. Entries present
// in the file replace the built-in entry with the same key.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML-encoded knowledge on the defaults.
func Parse(data []byte) (*Base, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse knowledge yaml: %w", err)
	}

	b := Default()
	for name, steps := range f.Guides {
		if len(steps) == 0 {
			return nil, fmt.Errorf("guide %q: %w", name, ErrEmptyGuide)
		}
		b.guides[name] = append([]string(nil), steps...)
	}
	for key, text := range f.Phrases {
		b.phrases[key] = text
	}
	if len(f.Commands) > 0 {
		b.commands = append([]string(nil), f.Commands...)
	}
	return b, nil
}

// Guide returns a copy of the ordered steps of the named guide.
func (b *Base) Guide(name string) ([]string, bool) {
	steps, ok := b.guides[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), steps...), true
}

// Phrase returns the canned phrase for key, or "" when absent.
func (b *Base) Phrase(key string) string {
	return b.phrases[key]
}

// Commands returns a copy of the example voice command catalog.
func (b *Base) Commands() []string {
	return append([]string(nil), b.commands...)
}
