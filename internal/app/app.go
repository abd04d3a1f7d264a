// Package app provides the main application structure for the brz editor.
// It wires configuration, logging, keymaps, buffers, the mode state and the
// terminal together and runs the event loop.
package app

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/dshills/brz/internal/config"
	"github.com/dshills/brz/internal/config/watcher"
	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/input/keymap"
	"github.com/dshills/brz/internal/input/mode"
	"github.com/dshills/brz/internal/input/register"
	"github.com/dshills/brz/internal/renderer"
	"github.com/dshills/brz/internal/renderer/backend"
)

// Application owns every component of a running editor.
type Application struct {
	config   *config.Config
	logger   *slog.Logger
	closers  []io.Closer
	register *register.Register
	buffers  *engine.Buffers
	state    *mode.State
	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *watcher.Watcher

	running atomic.Bool
	closed  atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means config.DefaultPath.
	ConfigPath string

	// Files are opened into buffers on startup. With no files a scratch
	// buffer is opened.
	Files []string

	// LogLevel and LogFile override the configured values when set.
	LogLevel string
	LogFile  string

	// Backend is the terminal. Nil means a tcell terminal.
	Backend backend.Backend

	// Logger replaces the configured log file when set.
	Logger *slog.Logger

	// DisableWatch turns off config reloading.
	DisableWatch bool
}

// New loads configuration and builds the application. Keymap and watch
// failures are logged and reported on the status line; config, logger,
// file and backend failures are returned.
func New(opts Options) (*Application, error) {
	app := &Application{}
	if err := app.bootstrap(opts); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap(opts Options) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return NewComponentError("config", "load", err)
	}
	if opts.LogLevel != "" {
		if _, err := config.ParseLevel(opts.LogLevel); err != nil {
			return NewComponentError("config", "log level", err)
		}
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	app.config = cfg

	app.logger = opts.Logger
	if app.logger == nil {
		logger, closer, err := NewLogger(cfg)
		if err != nil {
			return NewComponentError("logger", "open", err)
		}
		app.logger = logger
		app.closers = append(app.closers, closer)
	}
	app.logger.Info("starting", "config", cfg.Path(), "files", len(opts.Files))

	app.register = register.New(app.logger.With("component", "register"))
	if cfg.Clipboard.System {
		if register.SystemAvailable() {
			app.register.SetMirror(register.SystemClipboard{})
		} else {
			app.logger.Warn("system clipboard unavailable")
		}
	}

	keymaps, kerr := app.loadKeymaps(cfg)

	app.buffers = engine.NewBuffers(engine.WithMaxUndoEntries(cfg.History.MaxEntries))
	for _, f := range opts.Files {
		if _, err := app.buffers.OpenFile(f); err != nil {
			return NewComponentError("buffers", "open", err)
		}
	}
	if app.buffers.Len() == 0 {
		app.buffers.Open(engine.ScratchName, "")
	} else {
		_ = app.buffers.SetCurrent(app.buffers.All()[0].ID())
	}

	app.state = mode.NewState(
		mode.WithLogger(app.logger),
		mode.WithRegister(app.register),
		mode.WithBuffers(app.buffers),
		mode.WithKeymaps(keymaps),
	)
	if kerr != nil {
		app.state.SetMessage("keymap: %v", kerr)
	}

	app.backend = opts.Backend
	if app.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return NewComponentError("backend", "create", err)
		}
		app.backend = term
	}
	app.renderer = renderer.New(app.backend, renderer.DefaultOptions())

	if !opts.DisableWatch && cfg.Path() != "" {
		app.startWatcher()
	}
	return nil
}

// loadKeymaps builds the registry for cfg. On error the registry still
// holds the built-in keymaps plus every user keymap that did load.
func (app *Application) loadKeymaps(cfg *config.Config) (*keymap.Registry, error) {
	user, err := cfg.Keymaps()
	if err != nil {
		app.logger.Warn("loading keymaps", "error", err)
	}
	registry, rerr := mode.NewRegistry(user...)
	if rerr != nil {
		app.logger.Warn("registering keymaps", "error", rerr)
		registry, _ = mode.NewRegistry()
	}
	return registry, errors.Join(err, rerr)
}

func (app *Application) startWatcher() {
	w, err := watcher.New(watcher.WithLogger(app.logger.With("component", "watcher")))
	if err != nil {
		app.logger.Warn("config watcher disabled", "error", err)
		return
	}
	app.watcher = w
	app.closers = append(app.closers, w)
	app.watchConfig(app.config)
}

func (app *Application) watchConfig(cfg *config.Config) {
	for _, p := range cfg.WatchPaths() {
		if err := app.watcher.Add(p); err != nil {
			app.logger.Warn("watching config", "path", p, "error", err)
		}
	}
	for _, d := range cfg.WatchDirs() {
		if err := app.watcher.AddDir(d); err != nil {
			app.logger.Warn("watching keymap directory", "path", d, "error", err)
		}
	}
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// State returns the mode state.
func (app *Application) State() *mode.State {
	return app.state
}

// Logger returns the application logger.
func (app *Application) Logger() *slog.Logger {
	return app.logger
}

// IsRunning reports whether Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Close releases the watcher and the log file. It is safe to call more
// than once.
func (app *Application) Close() error {
	if !app.closed.CompareAndSwap(false, true) {
		return nil
	}
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
