package statusbar

import (
	"strings"
	"testing"

	"tedit/internal/fileio"
	"tedit/internal/tui/state"
)

func TestLeftPrecedence(t *testing.T) {
	if got := Left(state.DocStatus{}); got != Untitled {
		t.Fatalf("untitled: got %q", got)
	}
	if got := Left(state.DocStatus{Path: "/tmp/a.txt"}); got != "/tmp/a.txt" {
		t.Fatalf("path: got %q", got)
	}
	doc := state.DocStatus{Path: "/tmp/a.txt", Err: fileio.ErrDialogClosed}
	if got := Left(doc); got != "dialog closed" {
		t.Fatalf("error should replace path: got %q", got)
	}
}

func TestPositionIsOneBased(t *testing.T) {
	if got := Position(state.DocStatus{Line: 0, Col: 0}); got != "1 : 1" {
		t.Fatalf("got %q", got)
	}
	if got := Position(state.DocStatus{Line: 4, Col: 9}); got != "5 : 10" {
		t.Fatalf("got %q", got)
	}
}

func TestViewNoColorLayout(t *testing.T) {
	sb := NewStatusBar()
	s := state.UIState{Width: 40, NoColor: true, Notice: "saved"}
	out := sb.View(s, state.DocStatus{Path: "/tmp/a.txt", Dirty: true, Line: 1, Col: 2})
	if !strings.HasPrefix(out, "/tmp/a.txt [+]") {
		t.Fatalf("missing path and dirty marker: %q", out)
	}
	if !strings.HasSuffix(out, "saved   2 : 3") {
		t.Fatalf("missing notice/position: %q", out)
	}
	if len(out) != 40 {
		t.Fatalf("expected padding to width 40, got %d", len(out))
	}
}

func TestViewTruncatesLongPath(t *testing.T) {
	sb := NewStatusBar()
	s := state.UIState{Width: 20, NoColor: true}
	out := sb.View(s, state.DocStatus{Path: "/a/very/long/path/to/some/file.txt"})
	if !strings.Contains(out, "…") || !strings.HasSuffix(out, "1 : 1") {
		t.Fatalf("expected truncated path: %q", out)
	}
}
