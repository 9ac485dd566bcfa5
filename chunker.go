package cdcflow

import (
	"hash"

	"github.com/fastcut/cdcflow/blake3hash"
	"github.com/fastcut/cdcflow/bytesref"
	"github.com/fastcut/cdcflow/config"
	"github.com/fastcut/cdcflow/fastcdc"
)

// Chunker owns rolling-hash state and a pending-bytes carry-over across
// calls, so the same logical stream produces identical chunk boundaries
// and hashes whether it arrives as one Push or a million one-byte Pushes
// across repeated calls with the same inputs. A Chunker is not safe for
// concurrent use by multiple goroutines; it may be handed off
// between goroutines between calls.
type Chunker struct {
	cfg    config.Config
	state  fastcdc.State
	carry  bytesref.Bytes
	offset uint64
	hasher hash.Hash
	closed bool
}

// New creates a Chunker bound to cfg. cfg is read-only and may be shared
// across many Chunker instances.
func New(cfg config.Config) *Chunker {
	c := &Chunker{cfg: cfg}
	if cfg.HashEnabled() {
		// BLAKE3 is the only algorithm the core itself selects;
		// the error is unreachable for a valid Name.
		h, err := blake3hash.New(blake3hash.BLAKE3)
		if err != nil {
			panic(err)
		}
		c.hasher = h
	}
	return c
}

// Push feeds input into the chunker. It returns every chunk that closes
// within input (in ascending offset order) and the residual tail bytes
// that remain pending (shared with the chunker's internal carry).
//
// The caller must not mutate input after calling Push: ownership of the
// slice, and of any bytes that end up referenced by an emitted Chunk or by
// the residual, passes to the Chunker.
func (c *Chunker) Push(input []byte) ([]Chunk, []byte, error) {
	if c.closed {
		return nil, nil, ErrStreamClosed
	}
	if len(input) == 0 {
		return nil, c.carry.Data(), nil
	}

	owned := bytesref.New(input)

	var chunks []Chunk
	pos := 0
	for pos < len(input) {
		cut, next, found := fastcdc.Scan(c.cfg, c.state, input[pos:])
		if !found {
			c.state = next
			break
		}

		piece := owned.Slice(pos, pos+cut)
		if c.hasher != nil {
			c.hasher.Write(piece.Data())
		}

		data := piece
		if c.carry.Len() > 0 {
			data = bytesref.Concat(c.carry.Data(), piece.Data())
		}

		chunks = append(chunks, c.emit(data))

		c.carry = bytesref.Bytes{}
		c.state = fastcdc.State{}
		pos += cut
	}

	if pos < len(input) {
		tail := owned.Slice(pos, len(input))
		if c.hasher != nil {
			c.hasher.Write(tail.Data())
		}
		if c.carry.Len() == 0 {
			c.carry = tail
		} else {
			c.carry = bytesref.Concat(c.carry.Data(), tail.Data())
		}
	}

	return chunks, c.carry.Data(), nil
}

// Finish emits the final, possibly short, chunk made of whatever bytes are
// still pending, and closes the stream: any later Push or Finish call
// returns ErrStreamClosed. Finish returns (nil, nil) if there is no
// pending tail.
func (c *Chunker) Finish() (*Chunk, error) {
	if c.closed {
		return nil, ErrStreamClosed
	}
	c.closed = true

	if c.carry.Len() == 0 {
		return nil, nil
	}

	chunk := c.emit(c.carry)
	c.carry = bytesref.Bytes{}
	return &chunk, nil
}

// emit finalizes the strong hash (if enabled) for data, stamps it with the
// current absolute offset, advances the offset, and resets the hasher for
// the next chunk.
func (c *Chunker) emit(data bytesref.Bytes) Chunk {
	chunk := Chunk{
		Data:   data,
		Offset: c.offset,
	}
	if c.hasher != nil {
		sum := c.hasher.Sum(nil)
		copy(chunk.Hash[:], sum)
		chunk.HasHash = true
		c.hasher.Reset()
	}
	c.offset += uint64(data.Len())
	return chunk
}
