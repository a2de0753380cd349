package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tedit/internal/tui/state"
)

// EditMsg forwards an edit action (key, paste, ...) to the buffer.
type EditMsg struct {
	Action tea.Msg
}

// RequestOpenMsg asks to pick a file and load it.
type RequestOpenMsg struct{}

// RequestNewMsg replaces the document with an empty, untitled one.
type RequestNewMsg struct{}

// RequestSaveMsg saves the document to its path, asking for one if needed.
type RequestSaveMsg struct{}

// FileOpenedMsg is the result of a load. Err is a fileio.Error on failure.
type FileOpenedMsg struct {
	Path    string
	Content string
	Err     error
}

// FileSavedMsg is the result of a save. Err is a fileio.Error on failure.
type FileSavedMsg struct {
	Path string
	Err  error
}

// ThemeSelectedMsg changes the display theme.
type ThemeSelectedMsg struct {
	Theme state.Theme
}

// clipboardMsg reports the result of copying the document.
type clipboardMsg struct {
	chars int
	err   error
}
