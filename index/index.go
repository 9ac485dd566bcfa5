// Package index implements the deduplication index that the core
// chunking engine treats as an external collaborator. It answers "have
// I seen this chunk hash before?" for a store package (or any other
// caller) without the core ever needing to know an index exists.
package index

import "github.com/fastcut/cdcflow"

// Index is the minimal interface for deduplication metadata storage,
// suitable for backends that are guaranteed to succeed (in-memory, or a
// local embedded KV store with no realistic failure mode for the caller
// to handle). Modeled on chunk/index.go.
type Index interface {
	Add(hash cdcflow.ChunkHash, offset uint64, size int) error
	Exists(hash cdcflow.ChunkHash) bool
	Get(hash cdcflow.ChunkHash) (Entry, bool)
}

// PersistentIndex extends Index for backends where storage operations may
// fail (disk I/O, a remote service): every method has an error-returning
// counterpart so a caller can handle that explicitly instead of an Index
// implementation papering over it.
type PersistentIndex interface {
	Index
	ExistsWithErr(hash cdcflow.ChunkHash) (bool, error)
	GetWithErr(hash cdcflow.ChunkHash) (Entry, bool, error)
}

// Entry is the metadata an index keeps per unique chunk hash: enough to
// locate the chunk in a store without holding onto its bytes.
type Entry struct {
	Offset uint64 `json:"offset"`
	Size   int    `json:"size"`
}
