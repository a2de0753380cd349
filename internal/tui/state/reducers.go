package state

import "fmt"

// Enter switches input to mode m and clears any stale notice.
func Enter(s UIState, m Mode) UIState {
	s.Mode = m
	s.Notice = ""
	return s
}

// ToggleHelp shows or hides the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// ToggleView switches between Unified and SideBySide diff views, refusing
// side-by-side when the terminal is too narrow.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		if s.Width > 0 && s.Width < sideBySideThreshold(s) {
			s.Notice = "Narrow width: using unified view"
			return s
		}
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// Resize updates the layout and falls back to unified if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	if s.View == SideBySide && s.Width < sideBySideThreshold(s) {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}

func sideBySideThreshold(s UIState) int {
	return 2*s.MinCol + 3
}

// SelectTheme records the display theme. Document state is never touched.
func SelectTheme(s UIState, t Theme) UIState {
	s.Theme = t
	return s
}

// Begin marks op as in flight. It reports false, with a notice, when another
// operation is still outstanding.
func Begin(s UIState, op Op) (UIState, bool) {
	if s.Busy != OpNone {
		s.Notice = fmt.Sprintf("busy: %s in progress", s.Busy)
		return s, false
	}
	s.Busy = op
	s.Notice = ""
	return s, true
}

// Finish clears the in-flight operation.
func Finish(s UIState) UIState {
	s.Busy = OpNone
	return s
}

// Notify sets a one-line notice.
func Notify(s UIState, format string, args ...any) UIState {
	s.Notice = fmt.Sprintf(format, args...)
	return s
}
