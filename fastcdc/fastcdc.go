// Package fastcdc implements the Gear-hash rolling fingerprint and FastCDC
// boundary rule. The detector is a pure function of
// (rolling state, byte window): it owns no buffers and performs no I/O: the
// streaming chunker in the root package owns the window and the carry.
package fastcdc

import "github.com/fastcut/cdcflow/config"

// State is the rolling-hash accumulator and the byte count since the last
// cut. The zero value is the state at the start of a stream or immediately
// after a cut.
type State struct {
	Hash   uint64
	Length int
}

// Scan advances state byte-by-byte through window using cfg's bounds and
// masks. If a cut occurs inside window, it returns the number of bytes from
// the start of window that belong to the chunk being closed (cut <=
// len(window)), a freshly zeroed State for the chunk that begins at
// window[cut:], and found=true.
//
// If no cut occurs, it returns len(window), the carried-forward State, and
// found=false; the caller must pass that State back in on the next call
// along with the next window. Scan never looks beyond window: this is what
// makes boundaries independent of how the caller batches its input
// across repeated calls with the same inputs.
func Scan(cfg config.Config, state State, window []byte) (cut int, next State, found bool) {
	table := Gear()
	hash := state.Hash
	n := state.Length

	min := cfg.MinSize()
	avg := cfg.AvgSize()
	max := cfg.MaxSize()
	maskS := cfg.MaskS()
	maskL := cfg.MaskL()

	for i, b := range window {
		n++
		hash = (hash << 1) + table[b]

		switch {
		case n < min:
			// too short to consider a cut yet
		case n < avg:
			if hash&maskS == 0 {
				return i + 1, State{}, true
			}
		case n < max:
			if hash&maskL == 0 {
				return i + 1, State{}, true
			}
		default:
			// n >= max: forced cut regardless of hash
			return i + 1, State{}, true
		}
	}

	return len(window), State{Hash: hash, Length: n}, false
}
