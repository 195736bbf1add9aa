package theme

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/darksworm/colortable/pkg/config"
)

// Palette holds the color roles the table is drawn with. Every palette shares
// the neutral roles and differs only in the accent-derived ones (header
// background, selection highlight, footer border).
type Palette struct {
	Name string

	BufferBG     color.Color // table background
	HeaderBG     color.Color // accent
	HeaderFG     color.Color
	RowFG        color.Color
	SelectedFG   color.Color // accent
	NormalRowBG  color.Color // even rows
	AltRowBG     color.Color // odd rows
	FooterBorder color.Color // accent
}

// Shades is the subset of a tailwind color scale the palettes draw from.
type Shades struct {
	C200 color.Color
	C400 color.Color
	C900 color.Color
	C950 color.Color
}

// NewPalette derives a palette from an accent scale and the shared neutral
// scale.
func NewPalette(name string, accent Shades) Palette {
	return Palette{
		Name:         name,
		BufferBG:     neutral.C950,
		HeaderBG:     accent.C900,
		HeaderFG:     neutral.C200,
		RowFG:        neutral.C200,
		SelectedFG:   accent.C400,
		NormalRowBG:  neutral.C950,
		AltRowBG:     neutral.C900,
		FooterBorder: accent.C400,
	}
}

// Count returns the number of palettes available for cycling.
func Count() int {
	return len(palettes)
}

// Resolve returns the palette at index i. Indexes outside the list wrap
// around, so any int resolves.
func Resolve(i int) Palette {
	n := len(palettes)
	return palettes[((i%n)+n)%n]
}

// Names returns palette names in cycling order.
func Names() []string {
	out := make([]string, len(palettes))
	for i, p := range palettes {
		out[i] = p.Name
	}
	return out
}

// IndexOf returns the cycling position of the named palette, ignoring case.
func IndexOf(name string) (int, bool) {
	for i, p := range palettes {
		if strings.EqualFold(p.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// Resolver resolves palettes by index and layers fixed color overrides on
// top. The overrides are copied at construction and never change, so
// resolving the same index always gives the same palette.
type Resolver struct {
	overrides map[string]string
}

// NewResolver copies overrides into a new Resolver.
func NewResolver(overrides map[string]string) Resolver {
	cp := make(map[string]string, len(overrides))
	for k, v := range overrides {
		cp[strings.ToLower(k)] = v
	}
	return Resolver{overrides: cp}
}

// Resolve returns the palette at index i with overrides applied.
func (r Resolver) Resolve(i int) Palette {
	return applyOverrides(Resolve(i), r.overrides)
}

// FromConfig builds a Resolver from the configured overrides and returns the
// index of the configured starting theme. Unknown theme names start at the
// default theme.
func FromConfig(cfg *config.Config) (Resolver, int) {
	if cfg == nil {
		start, _ := IndexOf(config.DefaultThemeName)
		return NewResolver(nil), start
	}
	start, ok := IndexOf(cfg.Appearance.Theme)
	if !ok {
		start, _ = IndexOf(config.DefaultThemeName)
	}
	return NewResolver(cfg.Appearance.Overrides), start
}

// applyOverrides replaces palette roles named in overrides. Values may be hex
// ("#88c0d0") or ANSI ("33"). "accent" sets every accent role and is applied
// first, so a role named explicitly always wins. Unknown keys and empty
// values are ignored.
func applyOverrides(p Palette, overrides map[string]string) Palette {
	if v := overrides["accent"]; v != "" {
		c := lipgloss.Color(v)
		p.HeaderBG = c
		p.SelectedFG = c
		p.FooterBorder = c
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		c := lipgloss.Color(value)
		switch key {
		case "buffer_bg":
			p.BufferBG = c
		case "header_bg":
			p.HeaderBG = c
		case "header_fg":
			p.HeaderFG = c
		case "row_fg":
			p.RowFG = c
		case "selected_fg":
			p.SelectedFG = c
		case "normal_row_bg":
			p.NormalRowBG = c
		case "alt_row_bg":
			p.AltRowBG = c
		case "footer_border":
			p.FooterBorder = c
		}
	}
	return p
}

// Colors exposes palette roles by name.
func Colors(p Palette) map[string]color.Color {
	return map[string]color.Color{
		"buffer_bg":     p.BufferBG,
		"header_bg":     p.HeaderBG,
		"header_fg":     p.HeaderFG,
		"row_fg":        p.RowFG,
		"selected_fg":   p.SelectedFG,
		"normal_row_bg": p.NormalRowBG,
		"alt_row_bg":    p.AltRowBG,
		"footer_border": p.FooterBorder,
	}
}
