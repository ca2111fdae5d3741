package texture

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const debounce = 100 * time.Millisecond

// Watcher follows a texture directory and turns file changes into slot
// reloads on a Pool.
type Watcher struct {
	src     DirSource
	fsw     *fsnotify.Watcher
	changed chan string
	errs    chan error
	done    chan struct{}
	once    sync.Once
	log     *logrus.Entry
}

// NewWatcher starts watching src.Dir for changed PNG files.
func NewWatcher(src DirSource, log *logrus.Entry) (*Watcher, error) {
	if log == nil {
		log = logrus.WithField("component", "texture")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(src.Dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		src:     src,
		fsw:     fsw,
		changed: make(chan string, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
		log:     log.WithField("dir", src.Dir),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

// Changed returns the texture paths, relative to the watched directory, that
// changed since the last call. It never blocks.
func (w *Watcher) Changed() []string {
	var paths []string
	for {
		select {
		case p := <-w.changed:
			paths = append(paths, p)
		default:
			return paths
		}
	}
}

// Reload asks pool to reload every slot whose file changed and returns the
// slots that were queued. Files that are not in the pool are ignored.
func (w *Watcher) Reload(pool *Pool) []int {
	var queued []int
	for _, path := range w.Changed() {
		i, ok := pool.Index(path)
		if !ok {
			w.log.WithField("path", path).Debug("changed file is not a palette texture")
			continue
		}
		if err := pool.Reload(i); err != nil {
			w.log.WithError(err).WithField("path", path).Warn("reload texture")
			continue
		}
		queued = append(queued, i)
	}
	select {
	case err := <-w.errs:
		w.log.WithError(err).Warn("texture watcher")
	default:
	}
	return queued
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			path, ok := w.texturePath(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[path]; seen && now.Sub(t) < debounce {
				continue
			}
			last[path] = now
			select {
			case w.changed <- path:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// texturePath filters an event down to a written PNG inside the directory.
func (w *Watcher) texturePath(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isImageFile(event.Name) {
		return "", false
	}
	path, err := w.src.Rel(event.Name)
	if err != nil {
		w.log.WithError(err).WithField("file", event.Name).Debug("event outside texture dir")
		return "", false
	}
	return path, true
}

func isImageFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
