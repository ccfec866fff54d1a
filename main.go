package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tinyrange/pawinput/internal/config"
	"github.com/tinyrange/pawinput/internal/debugpanel"
	"github.com/tinyrange/pawinput/internal/input"
	"github.com/tinyrange/pawinput/internal/logging"
	"github.com/tinyrange/pawinput/internal/luabind"
	"github.com/tinyrange/pawinput/internal/window"
)

type options struct {
	config   string
	tui      bool
	lua      string
	once     bool
	logLevel string
	logFile  string
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	var opts options
	fs.StringVar(&opts.config, "config", "config.json",
		"config file (.json or .toml); reloaded on change, or picked up when created later")
	fs.BoolVar(&opts.tui, "tui", false, "show the live debug panel")
	fs.StringVar(&opts.lua, "lua", "", "Lua script to run every frame")
	fs.BoolVar(&opts.once, "once", false, "print one snapshot and exit")
	fs.StringVar(&opts.logLevel, "log-level", "", "override the configured log level, including on reload")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "pawinput: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, bool, error) {
	cfg, err := config.Load(path)
	missing := errors.Is(err, config.ErrFileNotFound)
	if err != nil && !missing {
		return nil, false, err
	}
	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, missing, nil
}

func openLog(opts options, cfg *config.Config) (zerolog.Logger, *logging.LevelVar, io.Closer, error) {
	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}

	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log, levels := logging.NewLeveled(f, level)
		return log, levels, f, nil
	case opts.tui:
		// The panel owns the terminal.
		log, levels := logging.NewLeveled(io.Discard, "disabled")
		return log, levels, nil, nil
	default:
		log, levels := logging.NewLeveled(os.Stderr, level)
		return log, levels, nil, nil
	}
}

func run(ctx context.Context, opts options) error {
	cfg, missing, err := loadConfig(opts.config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, levels, closer, err := openLog(opts, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	if missing {
		log.Warn().Str("path", opts.config).Msg("config file not found, using defaults until it is created")
	}

	backend, err := window.Open()
	if err != nil {
		return fmt.Errorf("open platform backend: %w", err)
	}

	sess, err := input.Open(backend, cfg.TargetConfig(), logging.Subsystem(log, "input"))
	if err != nil {
		backend.Close()
		return err
	}
	defer sess.Close()

	if opts.once {
		sess.Update()
		for _, line := range debugpanel.Lines(debugpanel.Capture(sess)) {
			fmt.Println(line)
		}
		return nil
	}

	r := &reloader{
		sess:      sess,
		levels:    levels,
		pinLevel:  opts.logLevel != "" || (opts.tui && opts.logFile == ""),
		intervals: make(chan time.Duration, 1),
		log:       logging.Subsystem(log, "config"),
	}
	go r.watch(ctx, opts.config)

	var script *luabind.Script
	if opts.lua != "" {
		mod := luabind.NewModule(sess.Keys, sess.Cursor, logging.Subsystem(log, "lua"))
		script, err = luabind.LoadScript(opts.lua, mod)
		if err != nil {
			return err
		}
		defer script.Close()
	}

	var panel *debugpanel.Panel
	quit := ctx.Done()
	if opts.tui {
		panel, err = debugpanel.NewTerminal()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer panel.Close()
		quit = panel.Quit(ctx)
	}

	ticker := time.NewTicker(cfg.PollInterval())
	defer ticker.Stop()

	log.Info().
		Dur("interval", cfg.PollInterval()).
		Bool("tui", opts.tui).
		Str("lua", opts.lua).
		Msg("polling input")

	for {
		select {
		case <-quit:
			return ctx.Err()
		case d := <-r.intervals:
			ticker.Reset(d)
		case <-ticker.C:
			pos := sess.Update()
			if script != nil {
				if err := script.Frame(); err != nil {
					log.Warn().Err(err).Msg("lua frame")
				}
			}
			if panel != nil {
				panel.Draw(debugpanel.Capture(sess))
			} else {
				log.Trace().Float64("x", pos.X).Float64("y", pos.Y).Msg("paw")
			}
		}
	}
}

// reloader applies config file changes to a running session.
type reloader struct {
	sess      *input.Session
	levels    *logging.LevelVar
	pinLevel  bool
	intervals chan time.Duration
	log       zerolog.Logger
}

// watch runs until ctx ends. The watcher follows the file's directory, so a
// config created after startup is picked up too.
func (r *reloader) watch(ctx context.Context, path string) {
	err := config.Watch(ctx, path, r.apply)
	if err != nil && !errors.Is(err, context.Canceled) {
		r.log.Error().Err(err).Msg("config watcher stopped")
	}
}

func (r *reloader) apply(cfg *config.Config, err error) {
	if err == nil {
		err = cfg.ApplyEnv(config.EnvPrefix)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		r.log.Warn().Err(err).Msg("config reload failed, keeping previous settings")
		return
	}

	if !r.pinLevel {
		lvl := r.levels.Set(cfg.Logging.Level)
		r.log.Info().Stringer("level", lvl).Msg("log level updated")
	}

	r.sess.SetTarget(cfg.TargetConfig())

	// Keep only the newest interval.
	select {
	case <-r.intervals:
	default:
	}
	r.intervals <- cfg.PollInterval()
}
