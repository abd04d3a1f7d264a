package app

import (
	"context"

	"github.com/dshills/brz/internal/config"
	"github.com/dshills/brz/internal/config/watcher"
	"github.com/dshills/brz/internal/renderer/backend"
)

// Run initializes the terminal and dispatches events until a quit is
// requested or ctx is done. Keys and config reloads are handled on the
// calling goroutine, one at a time.
func (app *Application) Run(ctx context.Context) error {
	if app.closed.Load() {
		return ErrClosed
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan backend.Event)
	go app.pollEvents(ctx, events)
	defer func() {
		cancel()
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}()

	var reloads <-chan watcher.Event
	var watchErrs <-chan error
	if app.watcher != nil {
		reloads = app.watcher.Events()
		watchErrs = app.watcher.Errors()
	}

	app.renderer.Render(app.state)
	for {
		select {
		case <-ctx.Done():
			app.logger.Info("stopping", "reason", ctx.Err())
			return nil

		case ev := <-events:
			if app.handleEvent(ev) {
				app.logger.Info("quit requested")
				return nil
			}

		case ev := <-reloads:
			app.reload(ev)

		case err := <-watchErrs:
			app.logger.Warn("config watcher", "error", err)
			continue
		}
		app.renderer.Render(app.state)
	}
}

// pollEvents forwards backend events until ctx is done.
func (app *Application) pollEvents(ctx context.Context, out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventInterrupt && ctx.Err() != nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent applies one backend event and reports whether the editor
// should exit.
func (app *Application) handleEvent(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventKey:
		app.state.ClearMessage()
		app.state.Dispatch(ev.Key)
		if app.state.TakeBell() {
			app.backend.Beep()
		}
		return app.state.QuitRequested()
	case backend.EventResize:
		app.logger.Debug("resize", "width", ev.Width, "height", ev.Height)
	}
	return false
}

// reload re-reads the config file and swaps in its keymaps. Settings that
// need a restart (log file, history size, clipboard) keep their old values.
func (app *Application) reload(ev watcher.Event) {
	app.logger.Info("config changed", "paths", ev.Paths)

	cfg, err := config.Load(app.config.Path())
	if err != nil {
		app.logger.Warn("config reload failed", "error", err)
		app.state.SetMessage("config: %v", err)
		return
	}
	cfg.Log = app.config.Log
	cfg.Clipboard = app.config.Clipboard
	cfg.History = app.config.History

	registry, kerr := app.loadKeymaps(cfg)
	app.state.SetKeymaps(registry)
	app.config = cfg
	if app.watcher != nil {
		app.watchConfig(cfg)
	}

	if kerr != nil {
		app.state.SetMessage("keymap: %v", kerr)
		return
	}
	app.state.SetMessage("config reloaded")
}
