package index

import (
	"encoding/json"
	"maps"
	"os"
	"sync"

	"github.com/fastcut/cdcflow"
)

// PersistentIndexJSON is a JSON-file-backed PersistentIndex. It keeps the
// full map in memory and rewrites the file atomically on every mutation.
// Modeled on storage/persistent_index_json.go, adapted to
// key on cdcflow.ChunkHash (via its hex String) and to store an Entry
// instead of a whole chunk.
//
// Concurrency:
//   - Safe for concurrent use via an internal RWMutex.
//   - Each Add is flushed to disk before it is visible to readers.
//
// Notes:
//   - Fine for small/medium indexes; PebbleIndex is the choice for scale.
type PersistentIndexJSON struct {
	path  string
	store map[string]Entry
	mu    sync.RWMutex
}

// NewPersistentIndexJSON creates (or loads) a JSON-backed persistent index
// rooted at path. A missing file is treated as an empty index.
func NewPersistentIndexJSON(path string) (*PersistentIndexJSON, error) {
	p := &PersistentIndexJSON{
		path:  path,
		store: make(map[string]Entry),
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &p.store); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return p, nil
}

// Add records hash with the given offset/size and durably persists it
// before returning.
func (p *PersistentIndexJSON) Add(hash cdcflow.ChunkHash, offset uint64, size int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := make(map[string]Entry, len(p.store)+1)
	maps.Copy(next, p.store)
	next[hash.String()] = Entry{Offset: offset, Size: size}

	data, err := json.MarshalIndent(next, "", " ")
	if err != nil {
		return err
	}

	tmpPath := p.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, p.path); err != nil {
		return err
	}

	p.store = next
	return nil
}

// Exists reports whether hash has been recorded. It never fails: any
// reload error is swallowed and treated as "not found".
func (p *PersistentIndexJSON) Exists(hash cdcflow.ChunkHash) bool {
	ok, _ := p.ExistsWithErr(hash)
	return ok
}

// ExistsWithErr reports whether hash has been recorded, reloading from
// disk on a miss in case another process has written since.
func (p *PersistentIndexJSON) ExistsWithErr(hash cdcflow.ChunkHash) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := hash.String()
	if _, ok := p.store[key]; ok {
		return true, nil
	}
	if err := p.load(); err != nil {
		return false, err
	}
	_, ok := p.store[key]
	return ok, nil
}

// Get retrieves the entry for hash, if any.
func (p *PersistentIndexJSON) Get(hash cdcflow.ChunkHash) (Entry, bool) {
	e, ok, _ := p.GetWithErr(hash)
	return e, ok
}

// GetWithErr retrieves the entry for hash, reloading from disk on a miss.
func (p *PersistentIndexJSON) GetWithErr(hash cdcflow.ChunkHash) (Entry, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := hash.String()
	if e, ok := p.store[key]; ok {
		return e, true, nil
	}
	if err := p.load(); err != nil {
		return Entry{}, false, err
	}
	e, ok := p.store[key]
	return e, ok, nil
}

// load refreshes the in-memory store from disk. Caller must hold p.mu.
func (p *PersistentIndexJSON) load() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	tmp := make(map[string]Entry)
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	p.store = tmp
	return nil
}
