package ui

import (
	"os"
	"sync"

	"splicegen/internal"
)

// FileStore tracks generated workbooks by download ID. It is the only
// state in the service, bounded so old files do not pile up on disk.
type FileStore struct {
	mu    sync.RWMutex
	files map[string]string
	order []string
	max   int
	log   *internal.Logger
}

// NewFileStore creates a store that keeps at most max files.
func NewFileStore(max int) *FileStore {
	return &FileStore{
		files: make(map[string]string),
		max:   max,
		log:   internal.DefaultLogger,
	}
}

// Put registers a generated file, evicting (and deleting) the oldest one
// once the store is full.
func (fs *FileStore) Put(id, path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.files[id] = path
	fs.order = append(fs.order, id)

	for len(fs.order) > fs.max {
		oldest := fs.order[0]
		fs.order = fs.order[1:]
		stale := fs.files[oldest]
		delete(fs.files, oldest)
		if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
			fs.log.Warn("[FileStore] failed to remove evicted file %s: %v", stale, err)
		} else {
			fs.log.Debug("[FileStore] evicted %s", oldest)
		}
	}
}

// Get returns the path registered for id.
func (fs *FileStore) Get(id string) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	path, ok := fs.files[id]
	return path, ok
}

// Len reports how many files are currently tracked.
func (fs *FileStore) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.files)
}
