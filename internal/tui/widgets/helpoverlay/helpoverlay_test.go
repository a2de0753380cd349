package helpoverlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"tedit/internal/tui/state"
)

func TestViewListsSections(t *testing.T) {
	save := key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))
	open := key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open"))
	open.SetEnabled(false)
	out := NewHelpOverlay().View(state.UIState{NoColor: true, Theme: state.Base16Mocha}, []Section{
		{Title: "File", Bindings: []key.Binding{open, save}},
	})
	for _, w := range []string{"Help (theme: Mocha)", "File:", "ctrl+s       save", "open (unavailable)"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in %q", w, out)
		}
	}
}
