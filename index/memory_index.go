package index

import (
	"sync"

	"github.com/fastcut/cdcflow"
)

// MemoryIndex is a simple in-memory Index guarded by a sync.RWMutex.
// Best suited for testing, prototyping, or a single run of the CLI;
// nothing is persisted across process restarts. Keyed on cdcflow.ChunkHash
// directly instead of a hex string, carrying an Entry instead of a whole
// chunk.
type MemoryIndex struct {
	mu    sync.RWMutex
	store map[cdcflow.ChunkHash]Entry
}

// NewMemoryIndex creates an empty MemoryIndex.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{store: make(map[cdcflow.ChunkHash]Entry)}
}

// Add records hash with the given offset/size, overwriting any prior entry.
func (m *MemoryIndex) Add(hash cdcflow.ChunkHash, offset uint64, size int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[hash] = Entry{Offset: offset, Size: size}
	return nil
}

// Exists reports whether hash has been recorded.
func (m *MemoryIndex) Exists(hash cdcflow.ChunkHash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.store[hash]
	return ok
}

// Get retrieves the entry for hash, if any.
func (m *MemoryIndex) Get(hash cdcflow.ChunkHash) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.store[hash]
	return e, ok
}
