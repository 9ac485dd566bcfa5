package index

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/fastcut/cdcflow"
)

// PebbleIndex is a PersistentIndex backed by a Pebble embedded LSM-tree
// (github.com/cockroachdb/pebble), the same engine CockroachDB uses for
// its storage layer. It is the index implementation meant for a
// long-lived dedup store where the working set does not fit comfortably
// in a single JSON document (see PersistentIndexJSON for that case).
//
// Keys are the raw 32-byte ChunkHash; values are a fixed 16-byte record
// (8-byte offset, 8-byte size) encoded big-endian, so no serialization
// library is needed for the hot path.
type PebbleIndex struct {
	db *pebble.DB
}

const pebbleValueLen = 16

// OpenPebbleIndex opens (creating if necessary) a Pebble-backed index at
// dir.
func OpenPebbleIndex(dir string) (*PebbleIndex, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("index: open pebble at %q: %w", dir, err)
	}
	return &PebbleIndex{db: db}, nil
}

// Close releases the underlying Pebble database handle.
func (p *PebbleIndex) Close() error {
	return p.db.Close()
}

// Add records hash with the given offset/size.
func (p *PebbleIndex) Add(hash cdcflow.ChunkHash, offset uint64, size int) error {
	var buf [pebbleValueLen]byte
	binary.BigEndian.PutUint64(buf[0:8], offset)
	binary.BigEndian.PutUint64(buf[8:16], uint64(size))
	return p.db.Set(hash[:], buf[:], pebble.Sync)
}

// Exists reports whether hash has been recorded, treating any read error
// as "not found".
func (p *PebbleIndex) Exists(hash cdcflow.ChunkHash) bool {
	ok, _ := p.ExistsWithErr(hash)
	return ok
}

// ExistsWithErr reports whether hash has been recorded.
func (p *PebbleIndex) ExistsWithErr(hash cdcflow.ChunkHash) (bool, error) {
	value, closer, err := p.db.Get(hash[:])
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer closer.Close()
	_ = value
	return true, nil
}

// Get retrieves the entry for hash, if any, treating any read error as
// "not found".
func (p *PebbleIndex) Get(hash cdcflow.ChunkHash) (Entry, bool) {
	e, ok, _ := p.GetWithErr(hash)
	return e, ok
}

// GetWithErr retrieves the entry for hash, if any.
func (p *PebbleIndex) GetWithErr(hash cdcflow.ChunkHash) (Entry, bool, error) {
	value, closer, err := p.db.Get(hash[:])
	if err == pebble.ErrNotFound {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	defer closer.Close()

	if len(value) != pebbleValueLen {
		return Entry{}, false, fmt.Errorf("index: corrupt pebble value for %s: want %d bytes, got %d", hash, pebbleValueLen, len(value))
	}
	e := Entry{
		Offset: binary.BigEndian.Uint64(value[0:8]),
		Size:   int(binary.BigEndian.Uint64(value[8:16])),
	}
	return e, true, nil
}
