package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/short-order/internal/config"
	"github.com/appengine-ltd/short-order/internal/kitchen"
	"github.com/appengine-ltd/short-order/internal/save"
	"github.com/appengine-ltd/short-order/internal/session"
	"github.com/appengine-ltd/short-order/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	balance     string
	catalogPath string
	saveDir     string
	slot        int
	seed        int64
	tui         bool
	logPath     string
	logLevel    string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("short-order", flag.ContinueOnError)
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.StringVar(&opts.balance, "balance", "default", "balance preset (default, relaxed, rush) or a YAML file")
	fs.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML replacing the built-in items")
	fs.StringVar(&opts.saveDir, "save", "", "save directory (default: user config dir)")
	fs.IntVar(&opts.slot, "slot", 1, "save slot")
	fs.Int64Var(&opts.seed, "seed", 0, "order generator seed (0 picks one from the clock)")
	fs.BoolVar(&opts.tui, "tui", false, "run the terminal client")
	fs.StringVar(&opts.logPath, "log", "short-order.log", "log file ('-' for stderr, '' to disable)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func resolveBalance(name string) (config.Balance, error) {
	if b, ok := config.Preset(name); ok {
		return b, nil
	}
	if _, err := os.Stat(name); err != nil {
		return config.Balance{}, fmt.Errorf("balance: %q is neither a preset nor a readable file", name)
	}
	return config.LoadBalance(name, config.Default())
}

// openLogger writes to a file so the terminal client keeps the screen.
func openLogger(path, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}
	switch path {
	case "":
		return zerolog.Nop(), nil, nil
	case "-":
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(lvl).With().Timestamp().Logger(), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log: open %s: %w", path, err)
	}
	return zerolog.New(f).Level(lvl).With().Timestamp().Logger(), f, nil
}

func buildSession(opts options, logger zerolog.Logger) (*session.Session, error) {
	balance, err := resolveBalance(opts.balance)
	if err != nil {
		return nil, err
	}

	catalog := kitchen.DefaultCatalog()
	if opts.catalogPath != "" {
		catalog, err = kitchen.LoadCatalog(opts.catalogPath)
		if err != nil {
			return nil, err
		}
	}

	dir := opts.saveDir
	if dir == "" {
		dir, err = save.DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().
		Str("version", version).
		Int64("seed", seed).
		Str("save_dir", dir).
		Msg("starting")
	return session.New(session.Options{
		Catalog: catalog,
		Balance: balance,
		Store:   save.NewStore(dir),
		Slot:    opts.slot,
		Seed:    seed,
		Logger:  &logger,
	}), nil
}

// prepare handles flags shared by every build and returns a ready session,
// or nil when the process should exit without running a client.
func prepare(args []string) (*session.Session, options, func(), error) {
	opts, err := parseFlags(args)
	if err != nil {
		return nil, opts, nil, err
	}
	if opts.showVersion {
		fmt.Printf("Short Order %s (%s) %s\n", version, commit, date)
		return nil, opts, nil, nil
	}
	logger, closer, err := openLogger(opts.logPath, opts.logLevel)
	if err != nil {
		return nil, opts, nil, err
	}
	cleanup := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
	sess, err := buildSession(opts, logger)
	if err != nil {
		cleanup()
		return nil, opts, nil, err
	}
	return sess, opts, cleanup, nil
}

// runTerminal resumes the saved kitchen when there is one; the terminal
// client has no title menu.
func runTerminal(sess *session.Session) error {
	if err := sess.Load(); err != nil && !errors.Is(err, save.ErrNoSave) {
		return err
	}
	return ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Session:   sess,
	}).Run()
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
