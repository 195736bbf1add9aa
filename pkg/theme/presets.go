package theme

import "github.com/charmbracelet/lipgloss/v2"

// Tailwind color scales. Only the shades the palettes use are listed.
var (
	slate = Shades{
		C200: lipgloss.Color("#e2e8f0"),
		C400: lipgloss.Color("#94a3b8"),
		C900: lipgloss.Color("#0f172a"),
		C950: lipgloss.Color("#020617"),
	}
	blue = Shades{
		C200: lipgloss.Color("#bfdbfe"),
		C400: lipgloss.Color("#60a5fa"),
		C900: lipgloss.Color("#1e3a8a"),
		C950: lipgloss.Color("#172554"),
	}
	emerald = Shades{
		C200: lipgloss.Color("#a7f3d0"),
		C400: lipgloss.Color("#34d399"),
		C900: lipgloss.Color("#064e3b"),
		C950: lipgloss.Color("#022c22"),
	}
	indigo = Shades{
		C200: lipgloss.Color("#c7d2fe"),
		C400: lipgloss.Color("#818cf8"),
		C900: lipgloss.Color("#312e81"),
		C950: lipgloss.Color("#1e1b4b"),
	}
	red = Shades{
		C200: lipgloss.Color("#fecaca"),
		C400: lipgloss.Color("#f87171"),
		C900: lipgloss.Color("#7f1d1d"),
		C950: lipgloss.Color("#450a0a"),
	}
)

// neutral backs the shared background and text roles of every palette.
var neutral = slate

// palettes is the cycling order. Index 0 is the first theme shown.
var palettes = [...]Palette{
	NewPalette("blue", blue),
	NewPalette("emerald", emerald),
	NewPalette("indigo", indigo),
	NewPalette("red", red),
}
