package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"tedit/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Open  key.Binding
	New   key.Binding
	Save  key.Binding
	Theme key.Binding
	Diff  key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding

	// diff view
	DiffLayout key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Back       key.Binding

	// confirmation
	Yes key.Binding
	No  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
		New:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new file")),
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save file")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next theme")),
		Diff:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "unsaved changes")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy document")),
		Help:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),

		DiffLayout: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "unified/side-by-side")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "discard changes")),
		No:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "keep editing")),
	}
}

// ShortHelp implements help.KeyMap for the one-line help under the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Save, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.New, k.Save},
		{k.Theme, k.Diff, k.Copy, k.Help, k.Quit},
		{k.DiffLayout, k.ScrollUp, k.ScrollDown, k.Back},
	}
}

func (k keyMap) sections() []helpoverlay.Section {
	return []helpoverlay.Section{
		{Title: "File", Bindings: []key.Binding{k.Open, k.New, k.Save}},
		{Title: "Editor", Bindings: []key.Binding{k.Theme, k.Diff, k.Copy, k.Help, k.Quit}},
		{Title: "Diff view", Bindings: []key.Binding{k.DiffLayout, k.ScrollUp, k.ScrollDown, k.Back}},
	}
}

// setBusy disables the bindings that start a file operation.
func (k *keyMap) setBusy(busy bool) {
	k.Open.SetEnabled(!busy)
	k.Save.SetEnabled(!busy)
}
