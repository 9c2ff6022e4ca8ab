package profile

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the polling fallback checks for changes.
const pollInterval = time.Second

// Watch reloads the config at path whenever the file changes and calls
// onReload with each successfully loaded result. Parse and validation
// errors go to onError (which may be nil) and the previous config stays
// in effect. Watch blocks until ctx is cancelled, returning ctx.Err().
//
// Uses fsnotify for efficient file watching with a polling fallback.
func Watch(ctx context.Context, path string, onReload func(*Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return watchPolling(ctx, path, onReload, onError)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors often replace
	// the file on save, which drops a direct watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return watchPolling(ctx, path, onReload, onError)
	}

	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(path, onReload, onError)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// watchPolling compares modification times on a timer when fsnotify
// isn't available.
func watchPolling(ctx context.Context, path string, onReload func(*Config), onError func(error)) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				reload(path, onReload, onError)
			}
		}
	}
}

func reload(path string, onReload func(*Config), onError func(error)) {
	cfg, err := Load(path)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	onReload(cfg)
}
