package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// Line is one row of a line-level diff.
type Line struct {
	Op   dmp.Operation
	Text string
}

// Lines computes a line-level diff from saved to current.
func Lines(saved, current string) []Line {
	d := dmp.New()
	a, b, table := d.DiffLinesToChars(saved, current)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), table)
	var out []Line
	for _, df := range diffs {
		text := strings.TrimSuffix(df.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, Line{Op: df.Type, Text: l})
		}
	}
	return out
}

// Count returns the number of inserted and deleted lines.
func Count(lines []Line) (added, removed int) {
	for _, l := range lines {
		switch l.Op {
		case dmp.DiffInsert:
			added++
		case dmp.DiffDelete:
			removed++
		}
	}
	return added, removed
}

// View renders the unsaved changes of the document: saved is the text as last
// loaded or saved, current is the buffer. For SideBySide it aligns two
// columns with a vertical separator. For Unified it prefixes lines with +/-
// markers. offset scrolls past the first rows; height is the number of rows
// available, header and footer included (0 = unlimited).
func (DiffView) View(s state.UIState, saved, current string, offset, height int) string {
	if saved == current {
		return "No unsaved changes\n"
	}
	st := newStyles(s)
	lines := Lines(saved, current)
	added, removed := Count(lines)
	var b strings.Builder
	if s.View == state.SideBySide {
		b.WriteString(st.title.Render("SAVED │ BUFFER") + "\n")
	} else {
		b.WriteString(st.title.Render("SAVED vs BUFFER (Unified)") + "\n")
	}
	writeRows(&b, rows(s, lines, st), offset, height)
	fmt.Fprintf(&b, "%s\n", st.faint.Render(fmt.Sprintf("+%d -%d", added, removed)))
	return b.String()
}

// MaxOffset is the largest useful scroll offset for View with the same
// arguments: past it the last row would leave the screen's bottom.
func MaxOffset(s state.UIState, saved, current string, height int) int {
	if saved == current || height <= 0 {
		return 0
	}
	n := len(rows(s, Lines(saved, current), newStyles(s)))
	return max(0, n-room(height))
}

func rows(s state.UIState, lines []Line, st styles) []string {
	if s.View == state.SideBySide {
		return sideBySide(lines, s, st)
	}
	return unified(lines, st)
}

// room is the number of diff rows that fit beside the header and footer.
func room(height int) int { return max(1, height-2) }

type styles struct {
	title, add, del, faint lipgloss.Style
}

func newStyles(s state.UIState) styles {
	if util.NoColor(s.NoColor) {
		plain := lipgloss.NewStyle()
		return styles{title: plain, add: plain, del: plain, faint: plain}
	}
	p := util.PaletteFor(s.Theme)
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		add:   lipgloss.NewStyle().Foreground(p.Success),
		del:   lipgloss.NewStyle().Foreground(p.Danger),
		faint: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// writeRows writes rows[offset:] limited to the space left by the header and
// footer when height is known.
func writeRows(b *strings.Builder, rows []string, offset, height int) {
	if height > 0 {
		offset = min(offset, max(0, len(rows)-room(height)))
	}
	offset = max(0, min(offset, len(rows)))
	rows = rows[offset:]
	if height > 0 && len(rows) > room(height) {
		rows = rows[:room(height)]
	}
	for _, r := range rows {
		b.WriteString(r + "\n")
	}
}

func unified(lines []Line, st styles) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Op {
		case dmp.DiffDelete:
			out = append(out, st.del.Render("- "+l.Text))
		case dmp.DiffInsert:
			out = append(out, st.add.Render("+ "+l.Text))
		default:
			out = append(out, "  "+st.faint.Render(l.Text))
		}
	}
	return out
}

// sideBySide pairs each run of deletions with the insertions that follow it.
func sideBySide(lines []Line, s state.UIState, st styles) []string {
	const sep = " │ "
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - runewidth.StringWidth(sep)) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	row := func(l, r string, ls, rs lipgloss.Style) string {
		return ls.Render(pad(clip(l, colWidth), colWidth)) + sep + rs.Render(clip(r, colWidth))
	}
	var out []string
	for i := 0; i < len(lines); {
		if lines[i].Op == dmp.DiffEqual {
			out = append(out, row(lines[i].Text, lines[i].Text, st.faint, st.faint))
			i++
			continue
		}
		var dels, adds []string
		for i < len(lines) && lines[i].Op == dmp.DiffDelete {
			dels = append(dels, lines[i].Text)
			i++
		}
		for i < len(lines) && lines[i].Op == dmp.DiffInsert {
			adds = append(adds, lines[i].Text)
			i++
		}
		n := len(dels)
		if len(adds) > n {
			n = len(adds)
		}
		for j := 0; j < n; j++ {
			var l, r string
			if j < len(dels) {
				l = "- " + dels[j]
			}
			if j < len(adds) {
				r = "+ " + adds[j]
			}
			out = append(out, row(l, r, st.del, st.add))
		}
	}
	return out
}

func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
