package pathindex

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// changeOps are the operations that can add, drop or re-permission an
// executable inside a watched directory.
const changeOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename | fsnotify.Chmod

// Watcher monitors search-path directories and signals when their contents
// change. It holds no names; consumers re-run Search on each signal.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dirs      []string
	watched   []string
	logger    *slog.Logger
	mu        sync.Mutex

	// Events receives one value per burst of changes. Sends never block;
	// a pending value already means "something changed".
	Events chan struct{}
	Errors chan error
	done   chan struct{}

	stopOnce sync.Once
}

// NewWatcher creates a watcher for dirs. Nothing is watched until Start.
func NewWatcher(dirs []string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		fsWatcher: fsw,
		dirs:      dirs,
		logger:    logger,
		Events:    make(chan struct{}, 1),
		Errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}, nil
}

// Start adds every directory that can be watched and begins forwarding
// events. Directories that cannot be watched are skipped.
func (w *Watcher) Start() {
	w.mu.Lock()
	for _, dir := range w.dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			w.logger.Debug("not watching search path entry", "dir", dir, "error", err)
			continue
		}
		w.watched = append(w.watched, dir)
	}
	w.mu.Unlock()

	go w.watchLoop()
}

// Watched returns the directories successfully added by Start.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.watched))
	copy(out, w.watched)
	return out
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

// watchLoop handles fsnotify events
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&changeOps == 0 {
				continue
			}
			w.logger.Debug("search path changed", "path", event.Name, "op", event.Op.String())
			select {
			case w.Events <- struct{}{}:
			default:
				// Already signalled
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// Error channel full, drop
			}
		}
	}
}
