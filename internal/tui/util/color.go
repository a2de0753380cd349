package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"tedit/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors a theme supplies to every widget.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	CursorLine lipgloss.Color
	Primary    lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Warning    lipgloss.Color
	Muted      lipgloss.Color
}

var palettes = map[state.Theme]Palette{
	state.SolarizedDark: {
		Background: "#002B36", Foreground: "#839496", CursorLine: "#073642",
		Primary: "#268BD2", Success: "#859900", Danger: "#DC322F", Warning: "#B58900", Muted: "#586E75",
	},
	state.Base16Mocha: {
		Background: "#3B3228", Foreground: "#D0C8C6", CursorLine: "#534636",
		Primary: "#8AB3B5", Success: "#BEB55B", Danger: "#CB6077", Warning: "#F4BC87", Muted: "#7E705A",
	},
	state.Base16Ocean: {
		Background: "#2B303B", Foreground: "#C0C5CE", CursorLine: "#343D46",
		Primary: "#8FA1B3", Success: "#A3BE8C", Danger: "#BF616A", Warning: "#EBCB8B", Muted: "#65737E",
	},
	state.Base16Eighties: {
		Background: "#2D2D2D", Foreground: "#D3D0C8", CursorLine: "#393939",
		Primary: "#6699CC", Success: "#99CC99", Danger: "#F2777A", Warning: "#FFCC66", Muted: "#747369",
	},
	state.InspiredGitHub: {
		Background: "#FFFFFF", Foreground: "#323232", CursorLine: "#F5F5F5",
		Primary: "#183691", Success: "#63A35C", Danger: "#A71D5D", Warning: "#795DA3", Muted: "#969896",
	},
}

// PaletteFor returns the palette of theme t.
func PaletteFor(t state.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[state.SolarizedDark]
}
