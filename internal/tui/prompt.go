package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tedit/internal/fileio"
	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
)

// Terminal stand-ins for the native file dialogs. Dismissing either one
// produces the same ErrDialogClosed result a native dialog would.

const maxSuggestions = 8

func newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = 12
	return fp
}

func newSaveInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "Save as: "
	in.Placeholder = "path/to/file.txt"
	in.ShowSuggestions = true
	in.CharLimit = 0
	return in
}

// startDir picks where the open dialog starts: the current document's
// directory, then the most recent file's, then the working directory.
func (m *model) startDir() string {
	if m.path != "" {
		return filepath.Dir(m.path)
	}
	if m.opts.Store != nil {
		if recent, err := m.opts.Store.Recent(1); err == nil && len(recent) > 0 {
			dir := filepath.Dir(recent[0])
			if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
				return dir
			}
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (m *model) openPicker() tea.Cmd {
	m.picker = newPicker()
	m.picker.CurrentDirectory = m.startDir()
	if m.ui.Height > 0 {
		m.picker.Height = max(3, m.ui.Height-4)
	}
	m.ui = state.Enter(m.ui, state.Picking)
	m.buf.Blur()
	return m.picker.Init()
}

func (m *model) updatePicker(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyEsc || k.String() == "ctrl+c") {
		return tea.Batch(failed(FileOpenedMsg{Err: fileio.ErrDialogClosed}), m.closePrompt())
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		focus := m.closePrompt()
		ui, started := state.Begin(m.ui, state.OpOpen)
		m.ui = ui
		if !started {
			return focus
		}
		m.opts.Log.Debugf("task: load %s", path)
		return tea.Batch(loadTask(path), focus)
	}
	return cmd
}

func (m *model) openSaveAs() tea.Cmd {
	m.saveInput = newSaveInput()
	m.saveInput.Width = max(20, m.ui.Width-len(m.saveInput.Prompt)-2)
	m.saveInput.SetValue(m.startDir() + string(filepath.Separator))
	m.saveInput.CursorEnd()
	m.saveInput.SetSuggestions(util.Suggest(m.saveInput.Value(), maxSuggestions))
	m.ui = state.Enter(m.ui, state.SavingAs)
	m.buf.Blur()
	return m.saveInput.Focus()
}

func (m *model) updateSaveAs(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.Type == tea.KeyEsc || k.String() == "ctrl+c":
			return tea.Batch(failed(FileSavedMsg{Err: fileio.ErrDialogClosed}), m.closePrompt())
		case k.Type == tea.KeyEnter:
			raw := strings.TrimSpace(m.saveInput.Value())
			focus := m.closePrompt()
			if raw == "" || strings.HasSuffix(raw, string(filepath.Separator)) {
				return tea.Batch(failed(FileSavedMsg{Err: fileio.ErrDialogClosed}), focus)
			}
			path := util.ExpandPath(raw)
			ui, started := state.Begin(m.ui, state.OpSave)
			m.ui = ui
			if !started {
				return focus
			}
			m.opts.Log.Debugf("task: save %s (%d bytes)", path, len(m.snapshot))
			return tea.Batch(saveTask(nil, path, m.snapshot), focus)
		}
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.saveInput.SetSuggestions(util.Suggest(m.saveInput.Value(), maxSuggestions))
	}
	return cmd
}

// closePrompt returns keys to the buffer and restarts its cursor blink.
func (m *model) closePrompt() tea.Cmd {
	m.saveInput.Blur()
	m.ui = state.Enter(m.ui, state.Editing)
	return m.buf.Focus()
}
