package editor

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tedit/internal/tui/util"
)

// MaxLines is the most lines the textarea holds; longer input is cut.
const MaxLines = 10000

var (
	ErrTooManyLines    = errors.New("too many lines to edit")
	ErrUnrepresentable = errors.New("text contains characters the editor cannot keep")
)

// The textarea rewrites tabs and carriage returns and drops other control
// characters. The buffer stores each C0 control (and DEL) as its Unicode
// control picture instead, so a tab shows as ␉ and is saved as a tab again.
const (
	pictureBase = 0x2400 // ␀
	pictureDEL  = 0x2421 // ␡
)

// Buffer is the document text buffer. Cursor movement, selection and
// editing are delegated to the textarea widget; Buffer adds lossless
// whole-text replacement and a 0-based cursor report.
type Buffer struct {
	ta   textarea.Model
	crlf bool // document uses \r\n line endings throughout
}

func New(lineNumbers bool) Buffer {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ""
	ta.ShowLineNumbers = lineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Focus()
	return Buffer{ta: ta}
}

// Perform applies an edit action (key, paste, blink...) in place. The tab
// key inserts a tab; pasted control characters are kept.
func (b *Buffer) Perform(action tea.Msg) tea.Cmd {
	if k, ok := action.(tea.KeyMsg); ok {
		switch {
		case k.Type == tea.KeyTab:
			b.ta.InsertRune(toPicture('\t'))
			return nil
		case k.Type == tea.KeyRunes && k.Paste:
			k.Runes = []rune(strings.Map(toPicture, strings.ReplaceAll(string(k.Runes), "\r\n", "\n")))
			action = k
		}
	}
	var cmd tea.Cmd
	b.ta, cmd = b.ta.Update(action)
	return cmd
}

// Text returns the document exactly as it would be saved.
func (b Buffer) Text() string {
	s := strings.Map(fromPicture, b.ta.Value())
	if b.crlf {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	return s
}

// SetText replaces the whole document and puts the cursor at 1:1. Text that
// would not read back unchanged is refused and the buffer is left alone.
func (b *Buffer) SetText(s string) error {
	if err := Check(s); err != nil {
		return err
	}
	b.crlf = isCRLF(s)
	if b.crlf {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	enc := strings.Map(toPicture, s)
	b.ta.SetValue(enc)
	b.toStart(utf8.RuneCountInString(enc) + 1)
	return nil
}

func (b *Buffer) Reset() {
	b.ta.Reset()
	b.crlf = false
}

// Check reports whether s survives SetText followed by Text unchanged.
func Check(s string) error {
	if strings.Count(s, "\n")+1 > MaxLines {
		return ErrTooManyLines
	}
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			return ErrUnrepresentable
		case r >= pictureBase && r <= pictureDEL:
			return ErrUnrepresentable
		case r >= 0x80 && unicode.IsControl(r):
			return ErrUnrepresentable
		}
	}
	return nil
}

// isCRLF reports whether every line break in s is \r\n and s has no other \r.
func isCRLF(s string) bool {
	n := strings.Count(s, "\r\n")
	return n > 0 && n == strings.Count(s, "\n") && n == strings.Count(s, "\r")
}

func toPicture(r rune) rune {
	switch {
	case r == '\n':
		return r
	case r < 0x20:
		return pictureBase + r
	case r == 0x7f:
		return pictureDEL
	}
	return r
}

func fromPicture(r rune) rune {
	switch {
	case r == pictureDEL:
		return 0x7f
	case r >= pictureBase && r < pictureBase+0x20:
		return r - pictureBase
	}
	return r
}

// Cursor returns the 0-based line and column of the cursor within the
// logical (unwrapped) line.
func (b Buffer) Cursor() (line, col int) {
	li := b.ta.LineInfo()
	return b.ta.Line(), li.StartColumn + li.ColumnOffset
}

func (b *Buffer) SetSize(width, height int) {
	b.ta.SetWidth(width)
	b.ta.SetHeight(height)
}

func (b *Buffer) Focus() tea.Cmd { return b.ta.Focus() }

func (b *Buffer) Blur() { b.ta.Blur() }

// ApplyTheme restyles the buffer with palette p. With noColor only
// structural styling is kept.
func (b *Buffer) ApplyTheme(p util.Palette, noColor bool) {
	var st textarea.Style
	if noColor {
		st = textarea.Style{
			CursorLineNumber: lipgloss.NewStyle().Bold(true),
			LineNumber:       lipgloss.NewStyle().Faint(true),
		}
	} else {
		base := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
		st = textarea.Style{
			Base:             base,
			Text:             base,
			CursorLine:       lipgloss.NewStyle().Foreground(p.Foreground).Background(p.CursorLine),
			CursorLineNumber: lipgloss.NewStyle().Foreground(p.Primary).Background(p.CursorLine),
			LineNumber:       lipgloss.NewStyle().Foreground(p.Muted).Background(p.Background),
			EndOfBuffer:      lipgloss.NewStyle().Foreground(p.Muted).Background(p.Background),
			Placeholder:      lipgloss.NewStyle().Foreground(p.Muted),
			Prompt:           lipgloss.NewStyle().Foreground(p.Primary),
		}
	}
	b.ta.FocusedStyle = st
	b.ta.BlurredStyle = st
	// the textarea keeps a pointer to the active style; re-point it
	if b.ta.Focused() {
		b.ta.Focus()
	} else {
		b.ta.Blur()
	}
}

func (b Buffer) View() string { return b.ta.View() }

// toStart walks the cursor back to the first row; the textarea only moves
// one visual row at a time. limit bounds the walk.
func (b *Buffer) toStart(limit int) {
	for i := 0; i < limit && (b.ta.Line() > 0 || b.ta.LineInfo().RowOffset > 0); i++ {
		b.ta.CursorUp()
	}
	b.ta.CursorStart()
}

// Stats returns line and character counts of s the way the status chips
// present them.
func Stats(s string) (lines, chars int) {
	return strings.Count(s, "\n") + 1, utf8.RuneCountInString(s)
}
