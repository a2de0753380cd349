package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tedit/internal/fileio"
	"tedit/internal/logging"
	"tedit/internal/store"
	"tedit/internal/tui/state"
	"tedit/internal/tui/util"
	"tedit/internal/tui/widgets/diff"
	"tedit/internal/tui/widgets/editor"
	"tedit/internal/tui/widgets/helpoverlay"
	"tedit/internal/tui/widgets/statusbar"
	"tedit/internal/tui/widgets/toolbar"
)

// Options configures an editor session.
type Options struct {
	// StartupPath is loaded as soon as the editor starts; empty starts untitled.
	StartupPath string
	Theme       state.Theme
	// Picker shows native dialogs. Nil uses the in-terminal picker and prompt.
	Picker         fileio.Picker
	Store          *store.Store // optional recent-files store
	Log            *logging.Logger
	ConfirmDiscard bool
	LineNumbers    bool
	NoColor        bool
	ProgramOptions []tea.ProgramOption
}

// Run starts the editor and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	popts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)
	p := tea.NewProgram(m, popts...)
	_, err := p.Run()
	return err
}

// ===== Model =====

// chrome is the number of rows around the buffer: toolbar, status, help.
const chrome = 3

type pending int

const (
	pendingNone pending = iota
	pendingNew
	pendingQuit
)

type model struct {
	opts Options
	keys keyMap
	help help.Model

	// document
	buf      editor.Buffer
	path     string // "" while untitled
	err      error
	errOp    state.Op // operation that produced err
	baseline string   // text as last loaded or saved
	snapshot string   // text handed to the save in flight

	ui state.UIState

	// overlays
	picker     filepicker.Model
	saveInput  textinput.Model
	confirm    pending
	diffOffset int

	quitAfterSave bool // quit once the save in flight succeeds
	discardOK     bool // user already agreed to drop unsaved edits on quit
}

func newModel(opts Options) model {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	m := model{
		opts:      opts,
		keys:      defaultKeyMap(),
		help:      help.New(),
		buf:       editor.New(opts.LineNumbers),
		saveInput: newSaveInput(),
		ui: state.UIState{
			Theme:   opts.Theme,
			NoColor: util.NoColor(opts.NoColor),
			MinCol:  20,
		},
	}
	m.buf.ApplyTheme(util.PaletteFor(opts.Theme), m.ui.NoColor)
	if opts.StartupPath != "" {
		m.ui, _ = state.Begin(m.ui, state.OpOpen)
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.opts.StartupPath != "" {
		m.opts.Log.Infof("startup: loading %s", m.opts.StartupPath)
		cmds = append(cmds, loadTask(m.opts.StartupPath))
	}
	return tea.Batch(cmds...)
}

// Update routes UI events to the active surface and applies state machine
// messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.buf.SetSize(msg.Width, max(1, msg.Height-chrome))
		if m.ui.Mode == state.Diffing {
			m.diffOffset = min(m.diffOffset, m.maxDiffOffset())
		}
		m.help.Width = msg.Width
		if m.ui.Mode == state.Picking {
			m.picker.Height = max(3, msg.Height-4)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EditMsg:
		return m, m.buf.Perform(msg.Action)

	case RequestOpenMsg:
		if m.opts.Picker == nil {
			if m.ui.Busy != state.OpNone {
				m.ui, _ = state.Begin(m.ui, state.OpOpen) // sets the busy notice
				return m, nil
			}
			return m, m.openPicker()
		}
		ui, ok := state.Begin(m.ui, state.OpOpen)
		m.ui = ui
		if !ok {
			return m, nil
		}
		m.opts.Log.Debugf("task: pick and load")
		return m, pickAndLoadTask(m.opts.Picker)

	case RequestNewMsg:
		m.buf.Reset()
		m.path = ""
		m.baseline = ""
		m.diffOffset = 0
		return m, nil

	case RequestSaveMsg:
		if m.ui.Busy != state.OpNone {
			m.ui, _ = state.Begin(m.ui, state.OpSave)
			return m, nil
		}
		m.snapshot = m.buf.Text()
		if m.path == "" && m.opts.Picker == nil {
			return m, m.openSaveAs()
		}
		m.ui, _ = state.Begin(m.ui, state.OpSave)
		m.opts.Log.Debugf("task: save %q (%d bytes)", m.path, len(m.snapshot))
		return m, saveTask(m.opts.Picker, m.path, m.snapshot)

	case FileOpenedMsg:
		m.ui = state.Finish(m.ui)
		if msg.Err == nil {
			if err := m.buf.SetText(msg.Content); err != nil {
				msg.Err = bufferFailure(err)
			}
		}
		if msg.Err != nil {
			logFailure(m.opts.Log, "open", msg.Err)
			m.err, m.errOp = msg.Err, state.OpOpen
			return m, nil
		}
		m.opts.Log.Infof("opened %s (%d bytes)", msg.Path, len(msg.Content))
		m.path = msg.Path
		m.baseline = msg.Content
		m.diffOffset = 0
		m.clearErr(state.OpOpen)
		m.ui = state.Notify(m.ui, "opened")
		return m, recordRecentTask(m.opts.Store, m.opts.Log, msg.Path)

	case FileSavedMsg:
		m.ui = state.Finish(m.ui)
		quit := m.quitAfterSave
		m.quitAfterSave = false
		if msg.Err != nil {
			m.discardOK = false
			logFailure(m.opts.Log, "save", msg.Err)
			m.err, m.errOp = msg.Err, state.OpSave
			return m, nil
		}
		m.opts.Log.Infof("saved %s", msg.Path)
		m.path = msg.Path
		m.baseline = m.snapshot
		m.clearErr(state.OpSave)
		m.ui = state.Notify(m.ui, "saved")
		record := recordRecentTask(m.opts.Store, m.opts.Log, msg.Path)
		if quit {
			next, cmd := m.requestQuit()
			switch {
			case cmd == nil:
				return next, record
			case record == nil:
				return next, cmd
			}
			return next, tea.Sequence(record, cmd)
		}
		return m, record

	case ThemeSelectedMsg:
		m.ui = state.SelectTheme(m.ui, msg.Theme)
		m.buf.ApplyTheme(util.PaletteFor(msg.Theme), m.ui.NoColor)
		return m, savePrefTask(m.opts.Store, m.opts.Log, prefTheme, msg.Theme.String())

	case clipboardMsg:
		if msg.err != nil {
			m.opts.Log.Errorf("clipboard: %v", msg.err)
			m.ui = state.Notify(m.ui, "copy failed")
		} else {
			m.ui = state.Notify(m.ui, "copied %d chars", msg.chars)
		}
		return m, nil
	}

	// cursor blinks, directory listings, pastes...
	var cmds []tea.Cmd
	switch m.ui.Mode {
	case state.Picking:
		cmds = append(cmds, m.updatePicker(msg))
	case state.SavingAs:
		cmds = append(cmds, m.updateSaveAs(msg))
	}
	cmds = append(cmds, m.buf.Perform(msg))
	return m, tea.Batch(cmds...)
}

// clearErr drops the stored error if it came from an operation of kind op.
func (m *model) clearErr(op state.Op) {
	if m.err != nil && m.errOp == op {
		m.err, m.errOp = nil, state.OpNone
	}
}

func (m model) dirty() bool { return m.buf.Text() != m.baseline }

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ui.ShowHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.ui = state.ToggleHelp(m.ui)
		}
		return m, nil
	}

	switch m.ui.Mode {
	case state.Picking:
		return m, m.updatePicker(msg)
	case state.SavingAs:
		return m, m.updateSaveAs(msg)
	case state.Confirming:
		return m.updateConfirm(msg)
	case state.Diffing:
		return m.updateDiff(msg), nil
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		return m.Update(RequestOpenMsg{})
	case key.Matches(msg, m.keys.New):
		if m.shouldConfirm() {
			return m.ask(pendingNew), nil
		}
		return m.Update(RequestNewMsg{})
	case key.Matches(msg, m.keys.Save):
		return m.Update(RequestSaveMsg{})
	case key.Matches(msg, m.keys.Theme):
		return m.Update(ThemeSelectedMsg{Theme: m.ui.Theme.Next()})
	case key.Matches(msg, m.keys.Diff):
		m.diffOffset = 0
		m.ui = state.Enter(m.ui, state.Diffing)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, copyTask(m.buf.Text())
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()
	}
	return m.Update(EditMsg{Action: msg})
}

func (m model) shouldConfirm() bool { return m.opts.ConfirmDiscard && m.dirty() }

// requestQuit quits unless unsaved edits need confirming. A save in flight
// is allowed to finish first so the file is never left half written.
func (m model) requestQuit() (tea.Model, tea.Cmd) {
	if m.ui.Busy == state.OpSave {
		m.quitAfterSave = true
		m.ui = state.Notify(m.ui, "save in progress: quitting when it finishes")
		return m, nil
	}
	if m.shouldConfirm() && !m.discardOK {
		return m.ask(pendingQuit), nil
	}
	return m, tea.Quit
}

func (m model) ask(p pending) model {
	m.confirm = p
	m.ui = state.Enter(m.ui, state.Confirming)
	return m
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		p := m.confirm
		m.confirm = pendingNone
		m.ui = state.Enter(m.ui, state.Editing)
		if p == pendingQuit {
			m.discardOK = true
			return m.requestQuit()
		}
		return m.Update(RequestNewMsg{})
	case key.Matches(msg, m.keys.No):
		m.confirm = pendingNone
		m.ui = state.Enter(m.ui, state.Editing)
	}
	return m, nil
}

func (m model) updateDiff(msg tea.KeyMsg) model {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Diff):
		m.ui = state.Enter(m.ui, state.Editing)
	case key.Matches(msg, m.keys.DiffLayout):
		m.ui = state.ToggleView(m.ui)
		m.diffOffset = min(m.diffOffset, m.maxDiffOffset())
	case key.Matches(msg, m.keys.ScrollUp):
		if m.diffOffset > 0 {
			m.diffOffset--
		}
	case key.Matches(msg, m.keys.ScrollDown):
		if m.diffOffset < m.maxDiffOffset() {
			m.diffOffset++
		}
	}
	return m
}

// bodyHeight is the number of rows between the toolbar and the status line,
// or 0 before the first resize.
func (m model) bodyHeight() int { return max(0, m.ui.Height-chrome) }

func (m model) maxDiffOffset() int {
	return diff.MaxOffset(m.ui, m.baseline, m.buf.Text(), m.bodyHeight())
}

// docStatus snapshots what the status widgets need.
func (m model) docStatus() state.DocStatus {
	line, col := m.buf.Cursor()
	text := m.buf.Text()
	lines, chars := editor.Stats(text)
	return state.DocStatus{
		Path:  m.path,
		Err:   m.err,
		Line:  line,
		Col:   col,
		Dirty: text != m.baseline,
		Lines: lines,
		Chars: chars,
	}
}

// ===== Views =====

func (m model) View() string {
	doc := m.docStatus()
	keys := m.keys
	keys.setBusy(m.ui.Busy != state.OpNone)

	var body string
	switch {
	case m.ui.ShowHelp:
		body = helpoverlay.NewHelpOverlay().View(m.ui, keys.sections())
	case m.ui.Mode == state.Picking:
		body = "Open file (enter: open, esc: cancel)\n\n" + m.picker.View()
	case m.ui.Mode == state.SavingAs:
		body = m.viewSaveAs()
	case m.ui.Mode == state.Confirming:
		body = m.viewConfirm()
	case m.ui.Mode == state.Diffing:
		body = diff.NewDiffView().View(m.ui, m.baseline, m.buf.Text(), m.diffOffset, m.bodyHeight())
	default:
		body = m.buf.View()
	}
	if h := m.ui.Height - chrome; h > 0 {
		body = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		toolbar.View(m.ui, util.ComputeTags(doc, m.ui.Busy)),
		body,
		statusbar.NewStatusBar().View(m.ui, doc),
		m.help.View(keys),
	)
}

func (m model) viewSaveAs() string {
	var b strings.Builder
	b.WriteString("Save document\n\n")
	b.WriteString(m.saveInput.View() + "\n\n")
	b.WriteString("enter: save   tab: complete   esc: cancel\n")
	return b.String()
}

func (m model) viewConfirm() string {
	what := "start a new file"
	if m.confirm == pendingQuit {
		what = "quit"
	}
	return fmt.Sprintf("The document has unsaved changes.\n\nDiscard them and %s? (y/n)\n", what)
}
