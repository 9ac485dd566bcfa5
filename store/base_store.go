// Package store implements a content-addressable chunk store: the
// external collaborator a Chunker's output is handed to once produced
// — the chunking engine has no opinion on where chunks get stored. It pairs
// chunk bytes on disk with a deduplication index.Index so repeated
// content is written once.
package store

import (
	"sync"

	"github.com/fastcut/cdcflow"
	"github.com/fastcut/cdcflow/index"
)

// Store defines the minimal behavior for a chunk storage backend.
// Implementations must guarantee deduplication (via an index.Index) and
// safe concurrent access.
type Store interface {
	Save(c cdcflow.Chunk) error
	Load(hash cdcflow.ChunkHash) ([]byte, error)
	VerifyIntegrity() error
}

// BaseStore provides shared helpers for Store backends: deduplication
// lookups against an index.Index and a mutex for serializing writes.
// Modeled on storage/base_storage.go.
type BaseStore struct {
	Index index.Index
	mu    sync.Mutex
}

// ChunkExists checks whether a chunk is already recorded in the index,
// using the more precise ExistsWithErr path when the index supports it.
func (b *BaseStore) ChunkExists(hash cdcflow.ChunkHash) (bool, error) {
	if pi, ok := b.Index.(index.PersistentIndex); ok {
		return pi.ExistsWithErr(hash)
	}
	return b.Index.Exists(hash), nil
}

// Lock serializes a write against this store's mutex; used by backends
// whose writes are not otherwise atomic (e.g. the filesystem backend).
func (b *BaseStore) Lock()   { b.mu.Lock() }
func (b *BaseStore) Unlock() { b.mu.Unlock() }
