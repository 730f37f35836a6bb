package donors

import (
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Palette assigns colors to series labels.
//
// Known labels (statuses, categories...) get a fixed color from Named. Other
// labels get a color from Rotation, picked by their position in the series.
type Palette struct {
	Named    map[string]string `yaml:"named"`
	Rotation []string          `yaml:"rotation"`
}

// fallback color when a palette has no rotation at all.
const fallbackColor = "#9ca3af"

// Color returns the color of the label at position i in a series.
func (p *Palette) Color(label string, i int) string {
	if c, ok := p.Named[strings.ToUpper(label)]; ok {
		return c
	}
	if len(p.Rotation) == 0 {
		return fallbackColor
	}
	if i < 0 {
		i = -i
	}
	return p.Rotation[i%len(p.Rotation)]
}

// Clone returns a deep copy of the palette.
func (p *Palette) Clone() *Palette {
	return &Palette{Named: maps.Clone(p.Named), Rotation: slices.Clone(p.Rotation)}
}

// DefaultPalette is the palette used when none is configured. It must not be
// modified, use Clone.
var DefaultPalette = &Palette{
	Named: map[string]string{
		// statuses
		"ACTIVE":      "#22c55e",
		"APPROVED":    "#22c55e",
		"RECEIVED":    "#22c55e",
		"PAID":        "#22c55e",
		"PENDING":     "#f59e0b",
		"IN_PROGRESS": "#f59e0b",
		"SUBMITTED":   "#f59e0b",
		"COMPLETED":   "#3b82f6",
		"CLOSED":      "#3b82f6",
		"CANCELLED":   "#ef4444",
		"REJECTED":    "#ef4444",
		"FAILED":      "#ef4444",
		"OVERDUE":     "#ef4444",
		"DRAFT":       "#6b7280",
		"PAUSED":      "#6b7280",
		Unspecified:   "#d1d5db",
		// health tiers
		"HEALTHY":       "#22c55e",
		"WARNING":       "#f59e0b",
		"CRITICAL":      "#ef4444",
		"UNDERUTILIZED": "#8b5cf6",
		// funding sources
		"INDIVIDUAL":    "#0ea5e9",
		"CORPORATE":     "#6366f1",
		"FOUNDATION":    "#14b8a6",
		"GOVERNMENT":    "#a855f7",
		"INSTITUTIONAL": "#ec4899",
	},
	Rotation: []string{
		"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
		"#ec4899", "#14b8a6", "#f97316", "#6366f1", "#84cc16",
	},
}

var colorRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DecodePalette reads a YAML palette and merges it over DefaultPalette:
//
//	named:
//	  ACTIVE: "#00ff00"
//	rotation: ["#111111", "#222222"]
//
// A non empty rotation replaces the default one.
func DecodePalette(r io.Reader) (*Palette, error) {
	var in Palette
	if err := yaml.NewDecoder(r).Decode(&in); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot decode palette: %w", err)
	}
	p := DefaultPalette.Clone()
	for k, c := range in.Named {
		if !colorRE.MatchString(c) {
			return nil, fmt.Errorf("invalid color %q for %q: want #rgb or #rrggbb", c, k)
		}
		p.Named[strings.ToUpper(k)] = c
	}
	for _, c := range in.Rotation {
		if !colorRE.MatchString(c) {
			return nil, fmt.Errorf("invalid rotation color %q: want #rgb or #rrggbb", c)
		}
	}
	if len(in.Rotation) > 0 {
		p.Rotation = slices.Clone(in.Rotation)
	}
	return p, nil
}
