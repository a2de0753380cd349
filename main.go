// tedit: a small terminal text editor with async open/save and themes
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"

	cfg "tedit/internal/config"
	"tedit/internal/dialog"
	"tedit/internal/fileio"
	"tedit/internal/logging"
	"tedit/internal/store"
	appTUI "tedit/internal/tui"
	"tedit/internal/tui/state"
)

const Version = "0.3.0"

const prefTheme = "theme"

/* ---------- CLI ---------- */

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			if len(args) > 1 {
				helpTopic(args[1])
			} else {
				usage()
			}
			return
		case "version", "--version":
			fmt.Println("tedit", Version)
			return
		case "themes":
			cmdThemes()
			return
		case "recent":
			run(cmdRecent(args[1:]))
			return
		case "init":
			run(cmdInit(args[1:]))
			return
		case "edit":
			args = args[1:]
		}
	}
	run(cmdEdit(args))
}

func usage() {
	fmt.Println(`tedit ` + Version + `
A minimal terminal text editor. Open, edit and save one plain-text file.
USAGE
  tedit [options] [FILE]
  tedit <command> [options]
COMMANDS
  edit         Open the editor (default when no command is given)
  themes       List the available themes
  recent       List recently opened or saved files
  init         Write a default config file
  help         Show help (try: tedit help edit)
  version      Print version
NOTES
  • ctrl+o open, ctrl+n new, ctrl+s save, ctrl+t theme, F1 help, ctrl+q quit.
  • Logs only go to --log-file (or log_file in the config); use -v or -vv for more detail.`)
}

func helpTopic(name string) {
	switch name {
	case "edit":
		fmt.Printf(`USAGE
  tedit [edit] [--config PATH] [--theme NAME] [--dialog terminal|native]
              [--line-numbers=BOOL] [--no-store] [-v | -vv] [--log-file PATH] [FILE]
DESCRIPTION
  Opens FILE (or the config's startup_file) and starts the editor. Without a
  file the editor starts on an empty, untitled document.
OPTIONS
  --config PATH        Config file (default: %s)
  --theme NAME         One of: %s
  --dialog KIND        terminal (in-terminal picker) or native (OS dialogs)
  --line-numbers       Show line numbers in the gutter
  --no-store           Do not read or record recent files and theme
  -v, -vv              Log INFO / DEBUG details to the log file
  --log-file PATH      Append logs to PATH
`, cfg.DefaultPath(), strings.Join(state.ThemeNames(), ", "))
	case "recent":
		fmt.Println(`USAGE
  tedit recent [--config PATH] [-n N]
DESCRIPTION
  Prints the files most recently opened or saved, newest first.`)
	case "init":
		fmt.Printf(`USAGE
  tedit init [--config PATH] [--force]
DESCRIPTION
  Writes a config file with the default settings (default: %s).
  An existing file is kept unless --force is given.
`, cfg.DefaultPath())
	case "themes":
		fmt.Println(`USAGE
  tedit themes
DESCRIPTION
  Lists the theme names accepted by --theme and the config's theme key.`)
	default:
		usage()
	}
}

// run exits 1 on a command error. Commands return errors instead of exiting
// so their deferred closes run first.
func run(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "tedit:", err)
		os.Exit(1)
	}
}

/* ---------- commands ---------- */

func cmdEdit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	fs.Usage = func() { helpTopic("edit") }
	configPath := fs.String("config", cfg.DefaultPath(), "config file")
	themeName := fs.String("theme", "", "theme name")
	dialogKind := fs.String("dialog", "", "terminal | native")
	lineNumbers := fs.Bool("line-numbers", true, "show line numbers")
	noStore := fs.Bool("no-store", false, "disable the recent-files store")
	verbose := fs.Bool("v", false, "verbose logs")
	debug := fs.Bool("vv", false, "debug logs")
	logPath := fs.String("log-file", "", "append logs to this file")
	_ = fs.Parse(args)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	c, err := cfg.Load(*configPath)
	if err != nil {
		return err
	}
	if *dialogKind != "" {
		c.Dialog = *dialogKind
	}
	if set["line-numbers"] {
		c.LineNumbers = *lineNumbers
	}
	if *logPath != "" {
		c.LogFile = *logPath
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if *themeName != "" {
		if _, ok := state.ParseTheme(*themeName); !ok {
			return fmt.Errorf("unknown theme %q (try: %s)", *themeName, strings.Join(state.ThemeNames(), ", "))
		}
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	verbosity := logging.Quiet
	if *debug {
		verbosity = logging.Debug
	} else if *verbose {
		verbosity = logging.Info
	}
	log := logging.Discard()
	if c.LogFile != "" {
		l, err := logging.Open(c.LogFile, "tedit", Version, verbosity)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Could not open log file:", err)
		} else {
			log = l
		}
	}
	defer log.Close()

	var st *store.Store
	if p := c.ResolvedStorePath(); p != "" && !*noStore {
		s, err := store.Open(p)
		if err != nil {
			// Another tedit holding the lock is common; edit without history.
			log.Errorf("open store %s: %v", p, err)
		} else {
			st = s
			defer st.Close()
		}
	}

	theme, err := resolveTheme(*themeName, st, c, log)
	if err != nil {
		return err
	}

	startup := c.StartupFile
	if fs.NArg() > 0 {
		startup = fs.Arg(0)
	}
	if startup != "" {
		if abs, err := filepath.Abs(startup); err == nil {
			startup = abs
		}
	}

	var picker fileio.Picker
	if c.Dialog == cfg.DialogNative {
		if dialog.Available(runtime.GOOS, os.Getenv) {
			start := ""
			if startup != "" {
				start = filepath.Dir(startup)
			}
			picker = dialog.Native{StartDir: start, Log: log}
		} else {
			log.Infof("no display for native dialogs; using the terminal picker")
		}
	}

	log.Infof("edit: file=%q theme=%s dialog=%s store=%v", startup, theme, c.Dialog, st != nil)
	err = appTUI.Run(appTUI.Options{
		StartupPath:    startup,
		Theme:          theme,
		Picker:         picker,
		Store:          st,
		Log:            log,
		ConfirmDiscard: c.ConfirmDiscard,
		LineNumbers:    c.LineNumbers,
	})
	if err != nil {
		log.Errorf("tui: %v", err)
	}
	return err
}

// resolveTheme applies flag > stored preference > config.
func resolveTheme(flagName string, st *store.Store, c *cfg.Config, log *logging.Logger) (state.Theme, error) {
	if flagName != "" {
		t, ok := state.ParseTheme(flagName)
		if !ok {
			return 0, fmt.Errorf("unknown theme %q (try: %s)", flagName, strings.Join(state.ThemeNames(), ", "))
		}
		return t, nil
	}
	if st != nil {
		name, err := st.Pref(prefTheme)
		switch {
		case err == nil:
			if t, ok := state.ParseTheme(name); ok {
				return t, nil
			}
			log.Infof("ignoring stored theme %q", name)
		case !errors.Is(err, store.ErrNoPref):
			log.Errorf("read theme preference: %v", err)
		}
	}
	t, ok := state.ParseTheme(c.Theme)
	if !ok {
		return 0, fmt.Errorf("unknown theme %q in config", c.Theme)
	}
	return t, nil
}

func cmdThemes() {
	for _, t := range state.AllThemes {
		kind := "dark"
		if !t.IsDark() {
			kind = "light"
		}
		fmt.Printf("%-16s %-16s %s\n", t.String(), t.Label(), kind)
	}
}

func cmdRecent(args []string) error {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	fs.Usage = func() { helpTopic("recent") }
	configPath := fs.String("config", cfg.DefaultPath(), "config file")
	n := fs.Int("n", 20, "number of files to list (0 = all)")
	_ = fs.Parse(args)

	c, err := cfg.Load(*configPath)
	if err != nil {
		return err
	}
	p := c.ResolvedStorePath()
	if p == "" {
		return fmt.Errorf("the recent-files store is disabled (store_path: %q)", cfg.StoreDisabled)
	}
	st, err := store.Open(p)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	paths, err := st.Recent(*n)
	if err != nil {
		return fmt.Errorf("read recent files: %w", err)
	}
	if len(paths) == 0 {
		fmt.Println("No recent files.")
		return nil
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() { helpTopic("init") }
	configPath := fs.String("config", cfg.DefaultPath(), "config file")
	force := fs.Bool("force", false, "overwrite an existing config")
	_ = fs.Parse(args)

	if _, err := os.Stat(*configPath); err == nil && !*force {
		fmt.Println("Config already exists:", *configPath)
		return nil
	}
	c := cfg.Default()
	if err := cfg.Save(*configPath, &c); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println("Wrote", *configPath)
	return nil
}
