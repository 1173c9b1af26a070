package lint

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch lints path immediately and again on every write until ctx is
// canceled. Each report (or check error) is delivered to fn. Watching fails
// only when the watcher itself cannot be set up.
func Watch(ctx context.Context, path string, fn func(*Report, error)) error {
	fn(Check(path))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file on save, which
	// drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fn(Check(path))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, err)
		}
	}
}
