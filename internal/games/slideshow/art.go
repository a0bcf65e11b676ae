// Package slideshow cycles 16x16 pixel-art sprites with animated
// transitions. Art is shipped as embedded YAML: palette-indexed
// character rows, one character per pixel.
package slideshow

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ledgrid/ledarcade/internal/core"
)

//go:embed assets/*.yaml
var assetFS embed.FS

// defaultPalette maps row characters to colors. '.' is off. Individual
// art files may override entries with their own palette block.
var defaultPalette = map[string]core.RGB{
	".": {},
	"W": {R: 255, G: 255, B: 255},
	"R": {R: 255},
	"G": {G: 255},
	"B": {B: 255},
	"Y": {R: 255, G: 255},
	"O": {R: 255, G: 150},
	"P": {R: 255, G: 100, B: 200},
	"C": {G: 255, B: 255},
	"M": {R: 255, B: 255},
	"L": {R: 150, G: 100, B: 50},
	"D": {R: 100, G: 100, B: 100},
	"S": {R: 200, G: 150, B: 100},
	"N": {R: 50, G: 50, B: 80},
	"T": {G: 150},
	"K": {R: 30, G: 30, B: 30},
	"F": {R: 255, G: 200, B: 150},
	"A": {R: 150, G: 200, B: 255},
}

// artFile is the YAML structure of one embedded sprite.
type artFile struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Palette map[string][3]int `yaml:"palette,omitempty"`
	Rows    []string          `yaml:"rows"`
}

// Art is a parsed sprite ready for display.
type Art struct {
	ID   string
	Name string
	Grid [core.Height][core.Width]core.RGB
}

// ParseArt decodes one YAML sprite. Rows must be exactly 16 strings of
// 16 characters; unknown palette characters render as off, matching the
// transparent '.' convention.
func ParseArt(data []byte) (Art, error) {
	var af artFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return Art{}, fmt.Errorf("art unmarshal: %w", err)
	}
	if af.ID == "" {
		return Art{}, fmt.Errorf("art missing id")
	}
	if len(af.Rows) != core.Height {
		return Art{}, fmt.Errorf("art %q: %d rows, want %d", af.ID, len(af.Rows), core.Height)
	}

	art := Art{ID: af.ID, Name: af.Name}
	for y, row := range af.Rows {
		if len(row) != core.Width {
			return Art{}, fmt.Errorf("art %q row %d: %d chars, want %d", af.ID, y, len(row), core.Width)
		}
		for x := 0; x < core.Width; x++ {
			ch := string(row[x])
			if c, ok := af.Palette[ch]; ok {
				art.Grid[y][x] = core.RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
				continue
			}
			art.Grid[y][x] = defaultPalette[ch]
		}
	}
	return art, nil
}

// LoadAll parses every embedded sprite, sorted by ID for deterministic
// cycling order.
func LoadAll() ([]Art, error) {
	entries, err := assetFS.ReadDir("assets")
	if err != nil {
		return nil, fmt.Errorf("reading assets: %w", err)
	}

	arts := make([]Art, 0, len(entries))
	for _, e := range entries {
		data, err := assetFS.ReadFile("assets/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		art, err := ParseArt(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		arts = append(arts, art)
	}

	sort.Slice(arts, func(i, j int) bool { return arts[i].ID < arts[j].ID })
	return arts, nil
}
