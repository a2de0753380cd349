package fileio

import (
	"errors"
	"io/fs"
	"syscall"
)

// Kind separates I/O failures from a dismissed file dialog.
type Kind int

const (
	IOFailed Kind = iota + 1
	DialogClosed
)

// Category is a coarse OS error class. Errors compare by Kind and Category
// only, so they match across platforms.
type Category int

const (
	Other Category = iota
	NotFound
	PermissionDenied
	AlreadyExists
	IsADirectory
	NotADirectory
	InvalidData
	StorageFull
	ReadOnlyFilesystem
	FileTooLarge
)

func (c Category) String() string {
	switch c {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case AlreadyExists:
		return "already exists"
	case IsADirectory:
		return "is a directory"
	case NotADirectory:
		return "not a directory"
	case InvalidData:
		return "invalid data"
	case StorageFull:
		return "storage full"
	case ReadOnlyFilesystem:
		return "read-only filesystem"
	case FileTooLarge:
		return "file too large"
	default:
		return "other error"
	}
}

// Error is the only error type produced by file tasks. errors.Is matches on
// Kind and Category; the OS error it came from is available via Unwrap.
type Error struct {
	Kind     Kind
	Category Category

	cause error
}

// ErrDialogClosed is returned when the user dismisses a file dialog.
var ErrDialogClosed = Error{Kind: DialogClosed}

func (e Error) Error() string {
	if e.Kind == DialogClosed {
		return "dialog closed"
	}
	return "I/O failed: " + e.Category.String()
}

func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind && t.Category == e.Category
}

// Unwrap returns the underlying OS error, if any. It is meant for logs; the
// status line only shows Error().
func (e Error) Unwrap() error { return e.cause }

// Failure builds an IOFailed error of category c caused by err.
func Failure(c Category, err error) Error {
	return Error{Kind: IOFailed, Category: c, cause: err}
}

// ioFailure converts an OS error into an IOFailed Error.
func ioFailure(err error) Error {
	return Failure(Classify(err), err)
}

// Classify maps err to its coarse Category.
func Classify(err error) Category {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, errInvalidUTF8):
		return InvalidData
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, syscall.EISDIR):
		return IsADirectory
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	case errors.Is(err, syscall.ENOSPC):
		return StorageFull
	case errors.Is(err, syscall.EROFS):
		return ReadOnlyFilesystem
	}
	return Other
}
