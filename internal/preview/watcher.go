package preview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads source whenever its configuration file changes on disk.
// It watches the parent directory, since editors often replace files by
// rename. The watcher stops when ctx is cancelled.
func Watch(ctx context.Context, source *SiteSource) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	dir := filepath.Dir(source.Path())
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go watchLoop(ctx, watcher, source)

	slog.Debug("Started site configuration watcher", "path", source.Path())
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, source *SiteSource) {
	defer func() {
		watcher.Close()
		slog.Info("Site configuration watcher stopped")
	}()

	target := filepath.Clean(source.Path())

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			handleConfigChange(source, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File system watcher error", "error", err)
		}
	}
}

func handleConfigChange(source *SiteSource, event fsnotify.Event) {
	slog.Info("Site configuration changed, reloading", "event", event.Op.String(), "path", event.Name)

	if err := source.Reload(); err != nil {
		slog.Error("Failed to reload site configuration, keeping previous", "path", event.Name, "error", err)
		return
	}
	slog.Info("Reloaded site configuration", "path", event.Name)
}
