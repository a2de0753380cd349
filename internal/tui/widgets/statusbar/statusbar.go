package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
)

// Untitled is shown in place of a path for a document never saved or loaded.
const Untitled = "New File"

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// Left is the document part of the status line: the last error if any,
// otherwise the path, otherwise the untitled sentinel.
func Left(doc state.DocStatus) string {
	switch {
	case doc.Err != nil:
		return doc.Err.Error()
	case doc.Path != "":
		return doc.Path
	default:
		return Untitled
	}
}

// Position formats the 1-based cursor position.
func Position(doc state.DocStatus) string {
	return fmt.Sprintf("%d : %d", doc.Line+1, doc.Col+1)
}

// View composes the status line: document on the left, notice and cursor
// position on the right, padded to the full width.
func (StatusBar) View(s state.UIState, doc state.DocStatus) string {
	p := util.PaletteFor(s.Theme)
	noColor := util.NoColor(s.NoColor)

	left := Left(doc)
	if doc.Dirty {
		left += " [+]"
	}
	right := Position(doc)
	if s.Notice != "" {
		right = s.Notice + "   " + right
	}

	width := s.Width
	if width <= 0 {
		return left + "  " + right
	}
	room := width - runewidth.StringWidth(right) - 1
	if room < 1 {
		room = 1
	}
	left = runewidth.Truncate(left, room, "…")
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	if noColor {
		return left + strings.Repeat(" ", gap) + right
	}
	bar := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.CursorLine)
	leftStyle := bar
	if doc.Err != nil {
		leftStyle = bar.Foreground(p.Danger).Bold(true)
	}
	return leftStyle.Render(left) + bar.Render(strings.Repeat(" ", gap)+right)
}
