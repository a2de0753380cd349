package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecentNewestFirstAndDeduplicated(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"/a", "/b", "/c", "/a"} {
		if err := s.AddRecent(p); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Recent(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/a", "/c", "/b"}, got); diff != "" {
		t.Fatalf("recent mismatch (-want +got):\n%s", diff)
	}
	got, _ = s.Recent(2)
	if diff := cmp.Diff([]string{"/a", "/c"}, got); diff != "" {
		t.Fatalf("limited recent mismatch (-want +got):\n%s", diff)
	}
}

func TestRecentIsPruned(t *testing.T) {
	s := openTemp(t)
	for i := 0; i < MaxRecent+5; i++ {
		if err := s.AddRecent(fmt.Sprintf("/file%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	got, _ := s.Recent(0)
	if len(got) != MaxRecent {
		t.Fatalf("expected %d entries, got %d", MaxRecent, len(got))
	}
	if got[0] != fmt.Sprintf("/file%d", MaxRecent+4) {
		t.Fatalf("newest entry lost: %q", got[0])
	}
}

func TestPrefs(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Pref("theme"); !errors.Is(err, ErrNoPref) {
		t.Fatalf("expected ErrNoPref, got %v", err)
	}
	if err := s.SetPref("theme", "Base16Ocean"); err != nil {
		t.Fatal(err)
	}
	v, err := s.Pref("theme")
	if err != nil || v != "Base16Ocean" {
		t.Fatalf("got %q, %v", v, err)
	}
}
