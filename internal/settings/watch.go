package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay coalesces bursts of writes from editors.
const DebounceDelay = 100 * time.Millisecond

// Change is a reload of the settings file. Err is set when the reload fell
// back to defaults.
type Change struct {
	Settings Settings
	Err      error
}

// Watch reloads path whenever it is written, created or renamed into place.
// The parent directory is watched so atomic replacements are seen, and it is
// created first so a fresh install picks up the file once written. The
// channel is closed once the returned Closer is closed.
func Watch(path string) (<-chan Change, io.Closer, error) {
	clean := filepath.Clean(path)
	dir := filepath.Dir(clean)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, nil, err
	}

	changes := make(chan Change, 4)

	go func() {
		var debounceTimer *time.Timer
		var closed bool
		var mu sync.Mutex

		defer func() {
			mu.Lock()
			closed = true
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			close(changes)
		}()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != clean {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				mu.Lock()
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(DebounceDelay, func() {
					s, err := Load(clean)
					mu.Lock()
					defer mu.Unlock()
					if closed {
						return
					}
					select {
					case changes <- Change{Settings: s, Err: err}:
					default:
					}
				})
				mu.Unlock()

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return changes, watcher, nil
}
