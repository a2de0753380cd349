package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
)

// Section is a titled group of key bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help. Disabled bindings are listed but dimmed.
func (HelpOverlay) View(s state.UIState, sections []Section) string {
	noColor := util.NoColor(s.NoColor)
	p := util.PaletteFor(s.Theme)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	dim := lipgloss.NewStyle().Faint(true)
	if noColor {
		title = lipgloss.NewStyle()
		dim = lipgloss.NewStyle()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title.Render(fmt.Sprintf("Help (theme: %s)", s.Theme.Label())))
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", title.Render(sec.Title))
		for _, k := range sec.Bindings {
			h := k.Help()
			line := fmt.Sprintf("  %-12s %s", h.Key, h.Desc)
			if !k.Enabled() {
				line = dim.Render(line + " (unavailable)")
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\nF1 or esc: close help\n")
	return b.String()
}
