package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"tedit/internal/tui/state"
)

func TestLinesDetectsChangedLine(t *testing.T) {
	lines := Lines("a\nb\nc\n", "a\nB\nc\n")
	added, removed := Count(lines)
	if added != 1 || removed != 1 {
		t.Fatalf("expected +1 -1, got +%d -%d (%v)", added, removed, lines)
	}
	for _, l := range lines {
		if l.Op == dmp.DiffDelete && l.Text != "b" {
			t.Fatalf("unexpected deleted line %q", l.Text)
		}
		if l.Op == dmp.DiffInsert && l.Text != "B" {
			t.Fatalf("unexpected inserted line %q", l.Text)
		}
	}
}

func TestNoChanges(t *testing.T) {
	out := NewDiffView().View(state.UIState{NoColor: true}, "same", "same", 0, 0)
	if out != "No unsaved changes\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUnifiedSnapshot(t *testing.T) {
	v := NewDiffView()
	s := state.UIState{View: state.Unified, NoColor: true}
	out := v.View(s, "a\nb", "a\nc", 0, 0)
	if !strings.Contains(out, "SAVED vs BUFFER (Unified)") {
		t.Fatalf("missing unified header")
	}
	if !strings.Contains(out, "- b") || !strings.Contains(out, "+ c") {
		t.Fatalf("expected +/- lines in unified output: %q", out)
	}
	if !strings.Contains(out, "+1 -1") {
		t.Fatalf("missing counts: %q", out)
	}
}

func TestSideBySideSnapshot(t *testing.T) {
	v := NewDiffView()
	s := state.UIState{View: state.SideBySide, Width: 60, NoColor: true}
	out := v.View(s, "left", "right", 0, 0)
	if !strings.HasPrefix(out, "SAVED │ BUFFER\n") {
		t.Fatalf("missing sbs header: %q", out)
	}
	if !strings.Contains(out, "- left") || !strings.Contains(out, " │ + right") {
		t.Fatalf("expected paired row: %q", out)
	}
}

func TestOffsetAndHeightLimitRows(t *testing.T) {
	v := NewDiffView()
	s := state.UIState{View: state.Unified, NoColor: true}
	out := v.View(s, "", "1\n2\n3\n4\n5", 2, 4)
	if strings.Contains(out, "+ 1") || !strings.Contains(out, "+ 3") || strings.Contains(out, "+ 5") {
		t.Fatalf("unexpected window: %q", out)
	}
}

func TestTallDiffFitsHeightAndKeepsFooter(t *testing.T) {
	var cur []string
	for i := 1; i <= 60; i++ {
		cur = append(cur, fmt.Sprintf("line %d", i))
	}
	current := strings.Join(cur, "\n")
	s := state.UIState{View: state.Unified, NoColor: true}
	const height = 27

	out := NewDiffView().View(s, "", current, 0, height)
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != height {
		t.Fatalf("got %d rows, want %d", len(rows), height)
	}
	if rows[len(rows)-1] != "+60 -0" {
		t.Fatalf("footer missing, last row %q", rows[len(rows)-1])
	}

	maxOff := MaxOffset(s, "", current, height)
	if maxOff != 60-(height-2) {
		t.Fatalf("max offset = %d", maxOff)
	}
	out = NewDiffView().View(s, "", current, 1000, height)
	if !strings.Contains(out, "+ line 60") || !strings.Contains(out, "+60 -0") {
		t.Fatalf("scrolled past the end should show the last page: %q", out)
	}
	if MaxOffset(s, "", "", height) != 0 {
		t.Fatalf("no changes: nothing to scroll")
	}
}

func TestSideBySideAlignsWideRunes(t *testing.T) {
	s := state.UIState{View: state.SideBySide, Width: 43, NoColor: true}
	out := NewDiffView().View(s, "日本語のテキストです長い長い長い行", "plain", 0, 0)
	var row string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "+ plain") {
			row = l
		}
	}
	if row == "" {
		t.Fatalf("missing paired row: %q", out)
	}
	left := row[:strings.Index(row, " │ ")]
	if w := runewidth.StringWidth(left); w != 20 {
		t.Fatalf("left column is %d cells wide, want 20: %q", w, left)
	}
}
