package toolbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
)

// Button is one toolbar action.
type Button struct {
	Icon     string
	Label    string
	Key      string
	Disabled bool
}

// Buttons returns the Open/New/Save buttons. Open and Save are disabled
// while a file operation is in flight.
func Buttons(busy state.Op) []Button {
	return []Button{
		{Icon: "▤", Label: "Open", Key: "^O", Disabled: busy != state.OpNone},
		{Icon: "✚", Label: "New", Key: "^N"},
		{Icon: "⤓", Label: "Save", Key: "^S", Disabled: busy != state.OpNone},
	}
}

// View renders the buttons on the left and the theme selector plus document
// chips on the right, using colored chips when possible and ASCII fallbacks
// when color is disabled or not desired.
func View(s state.UIState, tags []state.Tag) string {
	noColor := util.NoColor(s.NoColor)
	p := util.PaletteFor(s.Theme)

	btns := make([]string, 0, 3)
	for _, b := range Buttons(s.Busy) {
		btns = append(btns, renderButton(b, p, noColor))
	}
	left := strings.Join(btns, " ")

	chips := make([]string, 0, len(tags))
	for _, t := range tags {
		chips = append(chips, renderChip(t, p, noColor))
	}
	right := strings.Join(append(chips, renderTheme(s.Theme, p, noColor)), " ")

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderButton(b Button, p util.Palette, noColor bool) string {
	label := fmt.Sprintf("%s %s %s", b.Icon, b.Label, b.Key)
	if noColor {
		if b.Disabled {
			return fmt.Sprintf("(%s)", label)
		}
		return fmt.Sprintf("[%s]", label)
	}
	style := lipgloss.NewStyle().Padding(0, 1).Background(p.CursorLine).Foreground(p.Primary).Bold(true)
	if b.Disabled {
		style = style.Foreground(p.Muted).Bold(false).Faint(true)
	}
	return style.Render(label)
}

func renderTheme(t state.Theme, p util.Palette, noColor bool) string {
	label := fmt.Sprintf("%s ▾ ^T", t.Label())
	if noColor {
		return fmt.Sprintf("<%s>", label)
	}
	return lipgloss.NewStyle().Padding(0, 1).Background(p.CursorLine).Foreground(p.Foreground).Render(label)
}

func renderChip(t state.Tag, p util.Palette, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t, p).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.MODIFIED:
		return "Modified"
	case state.UNTITLED:
		return "Untitled"
	case state.BUSY:
		return state.Op(t.Value).String() + "…"
	case state.LINES:
		return fmt.Sprintf("Ln %d", t.Value)
	case state.CHARS:
		return fmt.Sprintf("Ch %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch t.Kind {
	case state.MODIFIED:
		return base.Background(p.Warning).Foreground(p.Background)
	case state.UNTITLED:
		return base.Background(p.Primary).Foreground(p.Background)
	case state.BUSY:
		return base.Background(p.Success).Foreground(p.Background)
	default:
		return base.Bold(false).Foreground(p.Muted)
	}
}
