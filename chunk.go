// Package cdcflow implements a FastCDC-style content-defined chunking
// engine: a single-stream byte pipeline that splits an incoming sequence
// of bytes into variable-length, content-addressed chunks.
package cdcflow

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fastcut/cdcflow/bytesref"
)

// ChunkHash is a 32-byte content identifier.
// Equality and ordering are raw byte comparisons.
type ChunkHash [32]byte

// String returns the lowercase hex encoding of h.
func (h ChunkHash) String() string {
	return hex.EncodeToString(h[:])
}

// Compare returns -1, 0, or 1 as h is byte-wise less than, equal to, or
// greater than other.
func (h ChunkHash) Compare(other ChunkHash) int {
	return bytes.Compare(h[:], other[:])
}

// MarshalJSON encodes h as its lowercase hex string, so manifests and
// index dumps read as ordinary JSON rather than a byte array.
func (h ChunkHash) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string produced by MarshalJSON.
func (h *ChunkHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseChunkHash(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseChunkHash decodes a 64-character lowercase hex string into a
// ChunkHash. It rejects any length other than 64 and any non-hex
// characters.
func ParseChunkHash(s string) (ChunkHash, error) {
	var h ChunkHash
	if len(s) != 64 {
		return ChunkHash{}, fmt.Errorf("cdcflow: chunk hash must be 64 hex characters, got %d", len(s))
	}
	n, err := hex.Decode(h[:], []byte(s))
	if err != nil {
		return ChunkHash{}, fmt.Errorf("cdcflow: invalid chunk hash: %w", err)
	}
	if n != len(h) {
		return ChunkHash{}, fmt.Errorf("cdcflow: chunk hash decoded to %d bytes, want %d", n, len(h))
	}
	return h, nil
}

// Chunk is one content-defined chunk emitted by a Chunker.
// Data is a zero-copy view sharing ownership of the caller's input
// buffer when the chunk lies within one Push, and a fresh copy when it
// spans bytes carried over from earlier Pushes; Offset is the chunk's
// absolute byte offset within the
// logical stream; Hash is present iff the producing Chunker's config has
// hashing enabled.
type Chunk struct {
	Data    bytesref.Bytes
	Offset  uint64
	Hash    ChunkHash
	HasHash bool
}

// Len returns the number of bytes in the chunk.
func (c Chunk) Len() int { return c.Data.Len() }

// Start returns the chunk's absolute starting offset.
func (c Chunk) Start() uint64 { return c.Offset }

// End returns the chunk's absolute end offset (exclusive).
func (c Chunk) End() uint64 { return c.Offset + uint64(c.Len()) }

// Range returns [Start(), End()).
func (c Chunk) Range() (start, end uint64) { return c.Start(), c.End() }
