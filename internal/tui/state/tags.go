package state

// TagKind enumerates the document chips shown next to the toolbar.
type TagKind int

const (
	// Stable ordering for display: Modified, Untitled, Busy, Lines, Chars
	MODIFIED TagKind = iota
	UNTITLED
	BUSY
	LINES
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (line and character counts). Non-numeric tags use Value = 0, except BUSY
// which carries the Op.
type Tag struct {
	Kind  TagKind
	Value int
}
