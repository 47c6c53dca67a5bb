package scene

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/rotor"
)

// Watcher reloads a scene file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, since many
// editors save by writing a new file and renaming it over the old one.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching path. Call Run to receive reloads and Close
// when done.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	return &Watcher{path: abs, w: w}, nil
}

// Run calls onChange with the freshly loaded scene, or the load error,
// after every write to the file. It returns when ctx is done or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(*Scene, error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			rotor.Logger().Debug("scene changed", "path", w.path, "op", ev.Op.String())
			onChange(Load(w.path))
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			rotor.Logger().Warn("scene watch error", "path", w.path, "err", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Watch watches path until ctx is done, calling onChange after every
// change. See Watcher.
func Watch(ctx context.Context, path string, onChange func(*Scene, error)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx, onChange)
}
