package tui

import (
	"errors"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"tedit/internal/fileio"
	"tedit/internal/logging"
	"tedit/internal/store"
	"tedit/internal/tui/widgets/editor"
)

// prefTheme is the store key of the last selected theme.
const prefTheme = "theme"

func loadTask(path string) tea.Cmd {
	return func() tea.Msg {
		p, content, err := fileio.Load(path)
		return FileOpenedMsg{Path: p, Content: content, Err: err}
	}
}

func pickAndLoadTask(p fileio.Picker) tea.Cmd {
	return func() tea.Msg {
		path, content, err := fileio.PickAndLoad(p)
		return FileOpenedMsg{Path: path, Content: content, Err: err}
	}
}

// saveTask writes a snapshot of the document; the buffer itself is not held
// while the write runs.
func saveTask(p fileio.Picker, path, content string) tea.Cmd {
	return func() tea.Msg {
		saved, err := fileio.Save(p, path, content)
		return FileSavedMsg{Path: saved, Err: err}
	}
}

// logFailure records a failed task. The OS error behind it only goes to the
// debug log.
func logFailure(log *logging.Logger, op string, err error) {
	log.Infof("%s failed: %v", op, err)
	if cause := errors.Unwrap(err); cause != nil {
		log.Debugf("%s failed: %v", op, cause)
	}
}

// bufferFailure turns a refused SetText into the error of a failed open.
func bufferFailure(err error) error {
	if errors.Is(err, editor.ErrTooManyLines) {
		return fileio.Failure(fileio.FileTooLarge, err)
	}
	return fileio.Failure(fileio.InvalidData, err)
}

// failed delivers a failure result without doing any work, used when a
// terminal dialog is dismissed.
func failed(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func copyTask(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{chars: utf8.RuneCountInString(text), err: clipboard.WriteAll(text)}
	}
}

// recordRecentTask remembers path in the store. Failures are only logged.
func recordRecentTask(s *store.Store, log *logging.Logger, path string) tea.Cmd {
	if s == nil || path == "" {
		return nil
	}
	return func() tea.Msg {
		if err := s.AddRecent(path); err != nil {
			log.Errorf("record recent file %s: %v", path, err)
		}
		return nil
	}
}

func savePrefTask(s *store.Store, log *logging.Logger, key, value string) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		if err := s.SetPref(key, value); err != nil {
			log.Errorf("store preference %s: %v", key, err)
		}
		return nil
	}
}
