package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/generator"
)

type Watch struct {
	Generate `embed:""`

	Debounce time.Duration `help:"Quiet period after a manifest change before regenerating" default:"250ms" env:"CEM_NG_WATCH_DEBOUNCE"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Start(ctx, logger)
}

// Start regenerates once, then keeps regenerating whenever the manifest
// changes until the context is cancelled. Generation errors are logged but
// never stop the watch; editors routinely produce half-written states.
func (w *Watch) Start(ctx context.Context, logger *slog.Logger) error {
	manifestPath, err := filepath.Abs(w.Manifest)
	if err != nil {
		return fmt.Errorf("resolve manifest path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors and analyzers replace the
	// manifest via rename, which drops a watch on the file itself.
	dir := filepath.Dir(manifestPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	gen := generator.New(w.Output, logger)
	regenerate := func() {
		result, err := gen.Regenerate(w.options())
		if err != nil {
			logger.Error("Regeneration failed", "error", err)
			return
		}
		logger.Info("Regenerated", "components", len(result.Components), "deleted", len(result.Deleted))
	}

	logger.Info("Watching manifest", "manifest", manifestPath, "debounce", w.Debounce)
	regenerate()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != manifestPath {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Debug("Manifest changed", "op", event.Op.String())
			pending = time.After(w.Debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		case <-pending:
			pending = nil
			regenerate()
		}
	}
}
