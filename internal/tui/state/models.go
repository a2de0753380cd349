package state

// Mode is which surface currently receives keys.
type Mode int

const (
	Editing    Mode = iota
	Picking         // terminal open-file picker
	SavingAs        // terminal save-as prompt
	Confirming      // y/n before discarding unsaved edits
	Diffing         // unsaved-changes diff
)

// DiffMode controls how the diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// Op is an asynchronous file operation.
type Op int

const (
	OpNone Op = iota
	OpOpen
	OpSave
)

func (o Op) String() string {
	switch o {
	case OpOpen:
		return "open"
	case OpSave:
		return "save"
	default:
		return "none"
	}
}

// UIState holds cross-widget UI state used by toolbar, status bar, diff and help.
type UIState struct {
	Mode     Mode
	Theme    Theme
	View     DiffMode
	ShowHelp bool
	NoColor  bool

	// Layout
	Width  int
	Height int
	MinCol int // narrowest usable side-by-side column

	// Busy is the operation in flight, if any. At most one runs at a time.
	Busy Op

	// Notices and ephemeral messages
	Notice string
}

// DocStatus is what the status surfaces know about the document.
type DocStatus struct {
	Path  string // "" for an untitled document
	Err   error
	Line  int // 0-based, as reported by the buffer
	Col   int
	Dirty bool
	Lines int
	Chars int
}
