package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerbosityFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Info)
	l.Errorf("boom %d", 1)
	l.Infof("hello")
	l.Debugf("hidden")
	out := buf.String()
	if !strings.Contains(out, "[ERROR] boom 1") || !strings.Contains(out, "[INFO] hello") {
		t.Fatalf("missing lines: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at Info: %q", out)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Infof("nothing")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tedit.log")
	l, err := Open(path, "tedit", "1.0", Debug)
	if err != nil {
		t.Fatal(err)
	}
	l.Debugf("task issued")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "=== tedit 1.0 started at ") {
		t.Fatalf("missing header: %q", data)
	}
	if !strings.Contains(string(data), "task issued") {
		t.Fatalf("missing line: %q", data)
	}
}
