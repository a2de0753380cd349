// Package dialog shows the platform's native open/save file dialogs.
package dialog

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"

	"tedit/internal/fileio"
	"tedit/internal/logging"
)

// Native implements fileio.Picker with OS dialogs.
type Native struct {
	StartDir string
	Log      *logging.Logger
}

var _ fileio.Picker = Native{}

func (n Native) PickOpen() (string, error) {
	b := dialog.File().Title("Choose a file")
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return n.result("open", b.Load)
}

func (n Native) PickSave() (string, error) {
	b := dialog.File().Title("Save a file")
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return n.result("save", b.Save)
}

// result runs a dialog and maps every way of not choosing a file to
// ErrDialogClosed. The GTK backend panics when no display is reachable;
// that is reported the same way instead of taking the editor down.
func (n Native) result(what string, show func() (string, error)) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			n.Log.Debugf("native %s dialog panicked: %v", what, r)
			path, err = "", fileio.ErrDialogClosed
		}
	}()
	path, err = show()
	switch {
	case errors.Is(err, dialog.ErrCancelled):
		return "", fileio.ErrDialogClosed
	case err != nil:
		n.Log.Debugf("native %s dialog: %v", what, err)
		return "", fileio.ErrDialogClosed
	case path == "":
		return "", fileio.ErrDialogClosed
	}
	return filepath.Clean(path), nil
}

// Available reports whether native dialogs can be shown at all. On X11 and
// Wayland systems that needs a display; other platforms always have one.
func Available(goos string, getenv func(string) string) bool {
	switch goos {
	case "windows", "darwin":
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
