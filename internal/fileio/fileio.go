// Package fileio implements the one-shot file tasks behind Open and Save.
// Each function runs to completion and returns either a result or an Error.
package fileio

import (
	"errors"
	"os"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Picker chooses a path for opening or saving. Both methods return
// ErrDialogClosed when the user cancels.
type Picker interface {
	PickOpen() (string, error)
	PickSave() (string, error)
}

// Load reads the whole file at path as text.
func Load(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", ioFailure(err)
	}
	if !utf8.Valid(data) {
		return "", "", ioFailure(errInvalidUTF8)
	}
	return path, string(data), nil
}

// PickAndLoad asks p for a file and loads it.
func PickAndLoad(p Picker) (string, string, error) {
	path, err := pick(p, true)
	if err != nil {
		return "", "", err
	}
	return Load(path)
}

// Save writes content to path, replacing any existing file. With an empty
// path the user is asked for a location first. It returns the path written.
func Save(p Picker, path, content string) (string, error) {
	if path == "" {
		var err error
		if path, err = pick(p, false); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", ioFailure(err)
	}
	return path, nil
}

func pick(p Picker, open bool) (string, error) {
	if p == nil {
		return "", ErrDialogClosed
	}
	var (
		path string
		err  error
	)
	if open {
		path, err = p.PickOpen()
	} else {
		path, err = p.PickSave()
	}
	if err != nil || path == "" {
		// anything short of a chosen path counts as a dismissed dialog
		return "", ErrDialogClosed
	}
	return path, nil
}
