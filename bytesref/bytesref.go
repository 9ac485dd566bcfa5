// Package bytesref implements the small reference-counted byte-slice
// primitive needed for zero-copy chunk spans: a view that shares
// ownership of a parent allocation so an emitted Chunk stays valid
// independently of the caller dropping its own reference to that buffer.
// A view aliases the buffer, so the caller must not write to it. Go's GC already
// keeps a slice's backing array alive for as long as any slice aliases
// it, so Bytes does not need the refcount for memory safety; it exists
// so a future pooling allocator can know when every view into a
// recycled buffer has been released, without any of the Chunk/Chunker
// types needing to change.
package bytesref

import "sync/atomic"

// Bytes is a zero-copy view into a byte slice, plus a refcount shared by
// every view derived from the same New call via Slice.
type Bytes struct {
	data []byte
	refs *int32
}

// New wraps b as a freshly owned Bytes with a refcount of 1. The caller
// must not mutate b afterward: ownership of the slice passes to the
// returned value and anything derived from it via Slice.
func New(b []byte) Bytes {
	n := int32(1)
	return Bytes{data: b, refs: &n}
}

// Slice returns a zero-copy view into b.Data()[start:end], sharing b's
// backing array and refcount.
func (b Bytes) Slice(start, end int) Bytes {
	return Bytes{data: b.data[start:end], refs: b.refs}
}

// Len reports the number of bytes in this view.
func (b Bytes) Len() int { return len(b.data) }

// Data returns the underlying bytes. Callers must not mutate the result.
func (b Bytes) Data() []byte { return b.data }

// Retain increments the shared refcount. Pair with Release.
func (b Bytes) Retain() {
	if b.refs != nil {
		atomic.AddInt32(b.refs, 1)
	}
}

// Release decrements the shared refcount and reports whether this call
// dropped it to zero. A zero Bytes (no backing allocation) always reports
// true.
func (b Bytes) Release() bool {
	if b.refs == nil {
		return true
	}
	return atomic.AddInt32(b.refs, -1) == 0
}

// Concat materializes a and b into one freshly owned Bytes. This is the
// one-copy-per-spanning-chunk strategy recommended as the
// default for chunks whose bytes cross a carry/input boundary.
func Concat(a, b []byte) Bytes {
	out := make([]byte, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return New(out)
}
