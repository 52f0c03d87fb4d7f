// Package registry lazily loads serialized model artifacts from disk,
// at most once per artifact for the lifetime of the process.
package registry

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type entry struct {
	mu    sync.Mutex
	value any
}

// Registry caches deserialized artifacts by file name. Artifacts are assumed
// immutable while the service runs; there is no invalidation.
type Registry struct {
	dir     string
	mu      sync.Mutex
	entries map[string]*entry
}

func New(dir string) *Registry {
	return &Registry{
		dir:     dir,
		entries: make(map[string]*entry),
	}
}

// Load returns the cached artifact for name, gob-decoding it on first use into
// the value produced by blank. Concurrent first loads of the same name collapse
// into a single deserialization; every caller receives the identical instance.
// Only successful loads are cached: a failed open or decode is reported to the
// caller and retried on the next call, so artifacts written after startup
// become loadable without a restart.
func (r *Registry) Load(name string, blank func() any) (any, error) {
	r.mu.Lock()
	e, ok := r.entries[name]
	if !ok {
		e = &entry{}
		r.entries[name] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.value != nil {
		return e.value, nil
	}

	f, err := os.Open(filepath.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("open artifact %s: %w", name, err)
	}
	defer f.Close()

	v := blank()
	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", name, err)
	}
	e.value = v
	return e.value, nil
}
