package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tedit/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestCountersAlwaysPresent(t *testing.T) {
	tags := ComputeTags(state.DocStatus{Path: "/a", Lines: 3, Chars: 12}, state.OpNone)
	want := []state.Tag{
		{Kind: state.LINES, Value: 3},
		{Kind: state.CHARS, Value: 12},
	}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestStableOrder(t *testing.T) {
	tags := ComputeTags(state.DocStatus{Dirty: true, Lines: 1}, state.OpSave)
	order := []state.TagKind{state.MODIFIED, state.UNTITLED, state.BUSY, state.LINES, state.CHARS}
	if len(tags) != len(order) {
		t.Fatalf("expected %d tags, got %d", len(order), len(tags))
	}
	for i, k := range order {
		if tags[i].Kind != k {
			t.Fatalf("tag %d: got %v want %v", i, tags[i].Kind, k)
		}
	}
	if idx, _ := findKind(tags, state.BUSY); tags[idx].Value != int(state.OpSave) {
		t.Fatalf("busy tag should carry the op")
	}
}

func TestNamedCleanDocumentHasNoFlags(t *testing.T) {
	tags := ComputeTags(state.DocStatus{Path: "/x"}, state.OpNone)
	for _, k := range []state.TagKind{state.MODIFIED, state.UNTITLED, state.BUSY} {
		if _, ok := findKind(tags, k); ok {
			t.Fatalf("unexpected tag %v", k)
		}
	}
}
