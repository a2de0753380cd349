package util

import (
	"tedit/internal/tui/state"
)

// ComputeTags derives the document chips from the status of the document and
// the operation in flight.
//
// The returned slice preserves a stable order:
//
//	Modified, Untitled, Busy, Lines, Chars
//
// Lines and Chars are always included (counters).
func ComputeTags(doc state.DocStatus, busy state.Op) []state.Tag {
	tags := make([]state.Tag, 0, 5)
	if doc.Dirty {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
	}
	if doc.Path == "" {
		tags = append(tags, state.Tag{Kind: state.UNTITLED})
	}
	if busy != state.OpNone {
		tags = append(tags, state.Tag{Kind: state.BUSY, Value: int(busy)})
	}
	tags = append(tags,
		state.Tag{Kind: state.LINES, Value: doc.Lines},
		state.Tag{Kind: state.CHARS, Value: doc.Chars},
	)
	return tags
}
