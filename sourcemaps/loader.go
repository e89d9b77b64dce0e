package sourcemaps

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Loader reads and caches source maps from disk.
//
// The cache is designed to be non-durable: an unwatchable or unreadable
// file simply leads to a cache miss and a re-read. A nil *Loader is valid
// and disables caching; every Load then reads and decodes from scratch.
type Loader struct {
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	cache map[string]*Map
}

// NewLoader returns a Loader that drops cached maps when the backing file
// changes on disk.
func NewLoader() (*Loader, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting source map watcher: %w", err)
	}
	l := &Loader{
		watcher: w,
		cache:   make(map[string]*Map),
	}
	go l.watch()
	return l, nil
}

// Load returns the map behind the given path, which may also be an inline
// data: URI. Results for file paths are cached until the file changes.
func (l *Loader) Load(path string) (*Map, error) {
	if data, ok := DecodeDataURI(path); ok {
		return Decode(data, Metadata{SourceMapURL: path})
	}
	if l == nil {
		return loadFile(path) // Caching is disabled.
	}

	l.mu.Lock()
	m, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		return m, nil
	}

	m, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := l.watcher.Add(path); err != nil {
		log.Warningf("Failed to watch source map %q: %v.", path, err)
	}
	l.mu.Lock()
	l.cache[path] = m
	l.mu.Unlock()
	return m, nil
}

func loadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source map: %w", err)
	}
	return Decode(data, Metadata{SourceMapURL: path})
}

// watch drains watcher events, evicting cache entries for changed files.
func (l *Loader) watch() {
	for {
		select {
		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			l.mu.Lock()
			_, cached := l.cache[ev.Name]
			delete(l.cache, ev.Name)
			l.mu.Unlock()
			if cached {
				log.Infof("Source map %q changed on disk, dropped cached copy.", ev.Name)
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			log.Warningf("Source map watcher error: %v.", err)
		}
	}
}

// Close stops the file watcher. Already loaded maps stay usable.
func (l *Loader) Close() error {
	if l == nil {
		return nil
	}
	return l.watcher.Close()
}
