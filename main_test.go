package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfg "tedit/internal/config"
	"tedit/internal/logging"
	"tedit/internal/store"
	"tedit/internal/tui/state"
)

func TestResolveThemePrecedence(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	c := cfg.Default()
	c.Theme = "Base16Eighties"
	log := logging.Discard()

	if got, err := resolveTheme("", st, &c, log); err != nil || got != state.Base16Eighties {
		t.Fatalf("config theme: got %v, %v", got, err)
	}
	if err := st.SetPref(prefTheme, "Base16Ocean"); err != nil {
		t.Fatal(err)
	}
	if got, _ := resolveTheme("", st, &c, log); got != state.Base16Ocean {
		t.Fatalf("stored theme should beat config, got %v", got)
	}
	if got, _ := resolveTheme("inspired-github", st, &c, log); got != state.InspiredGitHub {
		t.Fatalf("flag should win, got %v", got)
	}
	if got, _ := resolveTheme("", nil, &c, log); got != state.Base16Eighties {
		t.Fatalf("without a store the config applies, got %v", got)
	}
	if _, err := resolveTheme("nope", st, &c, log); err == nil {
		t.Fatalf("unknown flag theme must be an error")
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(conf, []byte("store_path: \"-\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := cmdRecent([]string{"--config", conf})
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("expected disabled-store error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("theme: Nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cmdEdit([]string{"--config", bad}); err == nil {
		t.Fatalf("invalid config must be reported")
	}
	if err := cmdEdit([]string{"--config", conf, "--theme", "Nope"}); err == nil {
		t.Fatalf("unknown theme must be reported")
	}
}

func TestInitWritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	if err := cmdInit([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	c, err := cfg.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != cfg.Default().Theme {
		t.Fatalf("unexpected theme %q", c.Theme)
	}
	if err := os.WriteFile(path, []byte("theme: Base16Mocha\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cmdInit([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	if c, _ := cfg.Load(path); c.Theme != "Base16Mocha" {
		t.Fatalf("existing config overwritten without --force")
	}
}
