package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves ~/, environment variables and relative paths.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

// Suggest lists up to limit completions for a partially typed path. Each
// suggestion keeps the input's prefix verbatim so it can replace the input.
// Directories end with a separator.
func Suggest(in string, limit int) []string {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	dirPart, base := in, ""
	if !strings.HasSuffix(in, string(filepath.Separator)) {
		dirPart, base = filepath.Split(in)
	}
	dir := dirPart
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(ExpandPath(dir))
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		cand := dirPart + name
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		out = append(out, cand)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
