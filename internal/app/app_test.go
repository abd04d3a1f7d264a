package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/brz/internal/config"
	"github.com/dshills/brz/internal/config/watcher"
	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/mode"
	"github.com/dshills/brz/internal/renderer/backend"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

// newTestApp builds an application over a NullBackend. An empty cfgText
// leaves the config file missing.
func newTestApp(t *testing.T, cfgText string, files ...string) (*Application, *backend.NullBackend, string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if cfgText != "" {
		writeFile(t, cfgPath, cfgText)
	}
	nb := backend.NewNullBackend(40, 10)
	app, err := New(Options{
		ConfigPath:   cfgPath,
		Files:        files,
		Backend:      nb,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		DisableWatch: true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, nb, cfgPath
}

func postKeys(nb *backend.NullBackend, keys ...key.Key) {
	for _, k := range keys {
		nb.PostEvent(backend.Event{Type: backend.EventKey, Key: k})
	}
}

func runApp(t *testing.T, app *Application) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !app.State().QuitRequested() {
		t.Fatal("Run() returned without a quit request")
	}
}

func TestNewApplication(t *testing.T) {
	app, _, cfgPath := newTestApp(t, "")

	if app.Config().Path() != cfgPath {
		t.Errorf("Config().Path() = %q, want %q", app.Config().Path(), cfgPath)
	}
	buf := app.State().CurrentBuffer()
	if buf == nil || buf.Name() != engine.ScratchName {
		t.Fatalf("CurrentBuffer() = %v, want scratch buffer", buf)
	}
	if _, ok := app.State().Mode().(*mode.Normal); !ok {
		t.Errorf("Mode() = %T, want *mode.Normal", app.State().Mode())
	}
	if app.IsRunning() {
		t.Error("IsRunning() = true before Run()")
	}
	if app.watcher != nil {
		t.Error("watcher started with DisableWatch")
	}
}

func TestNewApplication_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "alpha\n")
	writeFile(t, b, "beta\n")

	app, _, _ := newTestApp(t, "", a, b)

	if got := app.buffers.Names(); strings.Join(got, ",") != "a.txt,b.txt" {
		t.Errorf("Names() = %v, want [a.txt b.txt]", got)
	}
	if got := app.State().CurrentBuffer().Name(); got != "a.txt" {
		t.Errorf("current buffer = %q, want %q", got, "a.txt")
	}
}

func TestNewApplication_Errors(t *testing.T) {
	dir := t.TempDir()
	badCfg := filepath.Join(dir, "bad.toml")
	writeFile(t, badCfg, "[log\n")

	tests := []struct {
		name      string
		opts      Options
		component string
	}{
		{"bad config", Options{ConfigPath: badCfg}, "config"},
		{"bad log level", Options{ConfigPath: filepath.Join(dir, "none.toml"), LogLevel: "loud"}, "config"},
		{"directory as file", Options{ConfigPath: filepath.Join(dir, "none.toml"), Files: []string{dir}}, "buffers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Backend = backend.NewNullBackend(10, 5)
			tt.opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			tt.opts.DisableWatch = true

			_, err := New(tt.opts)
			var cerr *ComponentError
			if !errors.As(err, &cerr) {
				t.Fatalf("New() error = %v, want *ComponentError", err)
			}
			if cerr.Component != tt.component {
				t.Errorf("Component = %q, want %q", cerr.Component, tt.component)
			}
		})
	}
}

func TestNewApplication_ParseErrorDetail(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgPath, "[log]\nlevel = \"info\"\ncolour = true\n")

	_, err := New(Options{
		ConfigPath:   cfgPath,
		Backend:      backend.NewNullBackend(10, 5),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		DisableWatch: true,
	})
	var perr *config.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("New() error = %v, want *config.ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("Line = %d, want 3", perr.Line)
	}
}

func TestNewApplication_LogFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	logPath := filepath.Join(t.TempDir(), "logs", "brz.log")

	app, err := New(Options{
		ConfigPath:   cfgPath,
		LogFile:      logPath,
		LogLevel:     "debug",
		Backend:      backend.NewNullBackend(10, 5),
		DisableWatch: true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "msg=starting") {
		t.Errorf("log = %q, want a starting record", data)
	}
	if app.Config().Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", app.Config().Log.Level)
	}
}

func TestNewApplication_KeymapFromConfig(t *testing.T) {
	app, _, _ := newTestApp(t, "[keymap.bindings.normal]\n\"<C-s>\" = \"quit\"\n")

	if got := app.State().Keymaps().ActionFor(mode.ModeNormal, key.Ctrl('s')); got != "quit" {
		t.Errorf("ActionFor(<C-s>) = %q, want %q", got, "quit")
	}
	if got := app.State().Message(); got != "" {
		t.Errorf("Message() = %q, want empty", got)
	}
}

func TestNewApplication_KeymapError(t *testing.T) {
	app, _, _ := newTestApp(t, "[keymap]\nfiles = [\"missing.yaml\"]\n")

	if got := app.State().Message(); !strings.HasPrefix(got, "keymap: ") {
		t.Errorf("Message() = %q, want keymap error", got)
	}
	if got := app.State().Keymaps().ActionFor(mode.ModeNormal, key.Char(':')); got != "command_mode" {
		t.Errorf("ActionFor(:) = %q, want built-in binding", got)
	}
}

func TestRun_Quit(t *testing.T) {
	app, nb, _ := newTestApp(t, "")
	postKeys(nb, key.Char(':'), key.Char('q'), key.Enter)

	runApp(t, app)

	if nb.ShowCount() < 3 {
		t.Errorf("ShowCount() = %d, want at least 3", nb.ShowCount())
	}
	if app.IsRunning() {
		t.Error("IsRunning() = true after Run() returned")
	}
}

func TestRun_DispatchesKeys(t *testing.T) {
	app, nb, _ := newTestApp(t, "")
	postKeys(nb, key.Char('i'), key.Char('h'), key.Char('i'), key.Esc, key.Char('h'), key.Char(':'), key.Char('q'), key.Enter)

	runApp(t, app)

	if got := app.State().CurrentBuffer().Text(); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}
	if got := nb.Line(0); !strings.HasPrefix(got, "hi") {
		t.Errorf("Line(0) = %q, want prefix %q", got, "hi")
	}
}

func TestRun_ClearsMessageOnKey(t *testing.T) {
	app, nb, _ := newTestApp(t, "")
	app.State().SetMessage("stale")
	postKeys(nb, key.Char('l'), key.Ctrl('q'))

	runApp(t, app)

	if got := app.State().Message(); got != "" {
		t.Errorf("Message() = %q, want empty", got)
	}
}

func TestRun_BeepsOnNothingToUndo(t *testing.T) {
	app, nb, _ := newTestApp(t, "")
	postKeys(nb, key.Char('u'), key.Char('l'), key.Char('U'), key.Ctrl('q'))

	runApp(t, app)

	if got := nb.BeepCount(); got != 2 {
		t.Errorf("BeepCount() = %d, want 2", got)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := app.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
	if app.State().QuitRequested() {
		t.Error("QuitRequested() = true after cancel")
	}
}

func TestRun_Closed(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.Close()

	if err := app.Run(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Run() error = %v, want ErrClosed", err)
	}
}

func TestReload(t *testing.T) {
	app, _, cfgPath := newTestApp(t, "[log]\nlevel = \"info\"\n")

	if got := app.State().Keymaps().ActionFor(mode.ModeNormal, key.Ctrl('s')); got != "" {
		t.Fatalf("ActionFor(<C-s>) = %q before reload, want empty", got)
	}

	writeFile(t, cfgPath, "[log]\nlevel = \"error\"\n[keymap.bindings.normal]\n\"<C-s>\" = \"quit\"\n")
	app.reload(watcher.Event{Paths: []string{cfgPath}})

	if got := app.State().Keymaps().ActionFor(mode.ModeNormal, key.Ctrl('s')); got != "quit" {
		t.Errorf("ActionFor(<C-s>) = %q, want %q", got, "quit")
	}
	if got := app.State().Message(); got != "config reloaded" {
		t.Errorf("Message() = %q, want %q", got, "config reloaded")
	}
	if got := app.Config().Log.Level; got != "info" {
		t.Errorf("Log.Level = %q, want info kept until restart", got)
	}
}

func TestReload_Invalid(t *testing.T) {
	app, _, cfgPath := newTestApp(t, "[keymap.bindings.normal]\n\"<C-s>\" = \"quit\"\n")

	writeFile(t, cfgPath, "[keymap\n")
	app.reload(watcher.Event{Paths: []string{cfgPath}})

	if got := app.State().Message(); !strings.HasPrefix(got, "config: ") {
		t.Errorf("Message() = %q, want config error", got)
	}
	if got := app.State().Keymaps().ActionFor(mode.ModeNormal, key.Ctrl('s')); got != "quit" {
		t.Errorf("ActionFor(<C-s>) = %q, want old binding kept", got)
	}
}

func TestWatcherStarted(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, "[keymap]\nfiles = [\"keys.yaml\"]\n")
	writeFile(t, filepath.Join(dir, "keys.yaml"), "name: mine\nmode: normal\nbindings:\n  - keys: \"<C-s>\"\n    action: quit\n")

	app, err := New(Options{
		ConfigPath: cfgPath,
		Backend:    backend.NewNullBackend(10, 5),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	if app.watcher == nil {
		t.Fatal("watcher not started")
	}
	want := []string{cfgPath, filepath.Join(dir, "keys.yaml")}
	got := app.watcher.Files()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	if got := app.watcher.Dirs(); len(got) != 0 {
		t.Errorf("Dirs() = %v, want none", got)
	}
}

func TestKeymapDirsLoadedAndWatched(t *testing.T) {
	dir := t.TempDir()
	keysDir := filepath.Join(dir, "keymaps")
	if err := os.Mkdir(keysDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(keysDir, "mine.yaml"), "mode: normal\nbindings:\n  - keys: \"<C-s>\"\n    action: quit\n")
	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, "[keymap]\ndirs = [\"keymaps\"]\n")

	app, err := New(Options{
		ConfigPath: cfgPath,
		Backend:    backend.NewNullBackend(10, 5),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	if got := app.State().Keymaps().ActionFor(mode.ModeNormal, key.Ctrl('s')); got != "quit" {
		t.Errorf("ActionFor(<C-s>) = %q, want %q", got, "quit")
	}
	if got := app.watcher.Dirs(); len(got) != 1 || got[0] != keysDir {
		t.Errorf("Dirs() = %v, want [%s]", got, keysDir)
	}
}
