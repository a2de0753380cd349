package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tedit/internal/tui/state"
)

// Dialog backends.
const (
	DialogTerminal = "terminal"
	DialogNative   = "native"
)

// StoreDisabled as store_path turns off the recent-files store.
const StoreDisabled = "-"

// Config is the user's editor configuration (~/.config/tedit/config.yaml).
// Keys absent from the file keep their Default values.
type Config struct {
	Theme          string `yaml:"theme"`
	Dialog         string `yaml:"dialog"`                 // terminal | native
	StartupFile    string `yaml:"startup_file,omitempty"` // loaded at launch when no file is given
	ConfirmDiscard bool   `yaml:"confirm_discard"`        // ask before New/Quit drop unsaved edits
	LineNumbers    bool   `yaml:"line_numbers"`
	StorePath      string `yaml:"store_path,omitempty"` // "" = default location, "-" = disabled
	LogFile        string `yaml:"log_file,omitempty"`
}

func Default() Config {
	return Config{
		Theme:          state.SolarizedDark.String(),
		Dialog:         DialogTerminal,
		ConfirmDiscard: true,
		LineNumbers:    true,
	}
}

// DefaultPath is the config location under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".tedit.yaml")
	}
	return filepath.Join(dir, "tedit", "config.yaml")
}

// DefaultStorePath is where recent files and preferences live unless
// store_path says otherwise.
func DefaultStorePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", ".tedit.db")
	}
	return filepath.Join(dir, "tedit", "state.db")
}

// Load reads the config at path. A missing file is not an error and yields
// the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if _, ok := state.ParseTheme(c.Theme); !ok {
		return fmt.Errorf("config: unknown theme %q (try: %s)", c.Theme, strings.Join(state.ThemeNames(), ", "))
	}
	switch c.Dialog {
	case DialogTerminal, DialogNative:
	default:
		return fmt.Errorf("config: dialog must be %q or %q, got %q", DialogTerminal, DialogNative, c.Dialog)
	}
	return nil
}

// ResolvedStorePath returns the store location, or "" when disabled.
func (c *Config) ResolvedStorePath() string {
	switch c.StorePath {
	case StoreDisabled:
		return ""
	case "":
		return DefaultStorePath()
	}
	return c.StorePath
}

func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
