package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the config file and delivers reloaded configs to a
// callback, so HUD tuning can change without restarting the program.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger

	mu       sync.Mutex
	onChange func(*Config)
	done     chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher: fw,
		path:    path,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. onChange receives each successfully reloaded
// config; load failures are logged and skipped so a half-written file never
// clobbers live settings.
func (w *Watcher) Start(onChange func(*Config)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.onChange = onChange
	w.mu.Unlock()

	// Watch the directory: editors replace files on save, which drops the
	// watch if we follow the file itself.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.watch()
	return nil
}

// Stop ends the watch loop.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.done)
	_ = w.watcher.Close()
}

func (w *Watcher) watch() {
	name := filepath.Base(w.path)
	var debounce *time.Timer
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			// Editors emit bursts of events per save; reload once after
			// they settle.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	w.mu.Lock()
	onChange := w.onChange
	running := w.running
	w.mu.Unlock()
	if running && onChange != nil {
		w.logger.Info("config reloaded", "path", w.path)
		onChange(cfg)
	}
}
