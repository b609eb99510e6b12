package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls onChange whenever the watched file is written, created,
// renamed or removed. The parent directory is watched so the file may be
// replaced by an editor.
type FileWatcher struct {
	dir      string
	name     string
	onChange func()
}

func NewFileWatcher(path string, onChange func()) *FileWatcher {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}

	return &FileWatcher{
		dir:      dir,
		name:     name,
		onChange: onChange,
	}
}

// Run watches the file until ctx is done.
func (fw *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(fw.dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", fw.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != fw.name {
				continue
			}

			if event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {
				slog.Debug("file changed", "file", event.Name, "op", event.Op.String())
				fw.onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "dir", fw.dir, "error", err)
		}
	}
}
