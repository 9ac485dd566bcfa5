// Package blake3hash selects the incremental, fixed-32-byte-output hash
// used to fingerprint a chunk's content. BLAKE3 is the
// default and the only algorithm the core chunker itself uses; sha256 is
// kept available for manifests that need to interoperate with an external
// SHA-256 catalog, grounded on Hasher factory (hasher.go).
package blake3hash

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// Name identifies a supported algorithm. Only algorithms with a fixed
// 32-byte digest are accepted, since ChunkHash is a [32]byte value
// a fixed-width digest; a legacy hash like SHA-1 cannot satisfy that invariant and
// is deliberately not offered here.
type Name string

const (
	BLAKE3 Name = "blake3"
	SHA256 Name = "sha256"
)

// New returns a fresh hash.Hash for name. An empty name selects BLAKE3,
// the package default.
func New(name Name) (hash.Hash, error) {
	switch name {
	case BLAKE3, "":
		return blake3.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("blake3hash: unsupported algorithm %q", name)
	}
}
