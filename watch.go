package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 500 * time.Millisecond

// WatchContent re-indexes whenever something under dir changes, calling
// onIndexed after each successful run. Bursts of events collapse into one
// run. It blocks until ctx is done.
func (ix *Indexer) WatchContent(ctx context.Context, onIndexed func(IndexStats)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("folio: watcher: %w", err)
	}
	defer w.Close()

	if _, err := os.Stat(ix.ContentDir); errors.Is(err, fs.ErrNotExist) {
		ix.logf("content directory %s does not exist; creating it", ix.ContentDir)
		if err := os.MkdirAll(ix.ContentDir, 0o755); err != nil {
			return fmt.Errorf("folio: create content dir: %w", err)
		}
	}
	if err := addTree(w, ix.ContentDir); err != nil {
		return err
	}

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				// New directories need their own watch.
				_ = addTree(w, ev.Name)
			}
			timer.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ix.logf("content watcher: %v", err)
		case <-timer.C:
			stats, err := ix.Run(ctx)
			if err != nil {
				ix.logf("re-index failed: %v", err)
				continue
			}
			if onIndexed != nil {
				onIndexed(stats)
			}
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("folio: watch %s: %w", path, err)
			}
		}
		return nil
	})
}
