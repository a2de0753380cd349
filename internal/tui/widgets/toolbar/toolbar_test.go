package toolbar

import (
	"strings"
	"testing"

	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
)

func TestNoColorToolbar(t *testing.T) {
	s := state.UIState{Width: 120, NoColor: true, Theme: state.Base16Ocean}
	tags := util.ComputeTags(state.DocStatus{Dirty: true, Lines: 2, Chars: 7}, state.OpNone)
	out := View(s, tags)
	wants := []string{"[▤ Open ^O]", "[✚ New ^N]", "[⤓ Save ^S]", "[Modified]", "[Untitled]", "[Ln 2]", "[Ch 7]", "<Ocean ▾ ^T>"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
}

func TestBusyDisablesOpenAndSave(t *testing.T) {
	s := state.UIState{Width: 120, NoColor: true, Busy: state.OpSave}
	tags := util.ComputeTags(state.DocStatus{Path: "/a"}, s.Busy)
	out := View(s, tags)
	for _, w := range []string{"(▤ Open ^O)", "[✚ New ^N]", "(⤓ Save ^S)", "[save…]"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
	for _, b := range Buttons(state.OpOpen) {
		if b.Label == "New" && b.Disabled {
			t.Fatalf("New is never disabled")
		}
	}
}
