package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuggestCompletesFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"notes.txt", "nothing.md", "other.go", ".nohidden"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nodes"), 0o755); err != nil {
		t.Fatal(err)
	}
	prefix := dir + string(filepath.Separator)
	got := Suggest(prefix+"no", 0)
	want := []string{
		prefix + "nodes" + string(filepath.Separator),
		prefix + "notes.txt",
		prefix + "nothing.md",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}
	if got := Suggest(prefix+"no", 1); len(got) != 1 {
		t.Fatalf("limit ignored: %v", got)
	}
}

func TestSuggestEmptyAndMissing(t *testing.T) {
	if Suggest("  ", 5) != nil {
		t.Fatalf("blank input should give no suggestions")
	}
	if Suggest(filepath.Join(t.TempDir(), "missing", "x"), 5) != nil {
		t.Fatalf("missing dir should give no suggestions")
	}
}

func TestExpandPath(t *testing.T) {
	if ExpandPath("") != "" {
		t.Fatalf("empty stays empty")
	}
	if p := ExpandPath("rel.txt"); !filepath.IsAbs(p) {
		t.Fatalf("expected absolute path, got %q", p)
	}
	t.Setenv("TEDIT_TEST_DIR", "/tmp")
	if p := ExpandPath("$TEDIT_TEST_DIR/a.txt"); p != filepath.Clean("/tmp/a.txt") {
		t.Fatalf("env not expanded: %q", p)
	}
}
