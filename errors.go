package cdcflow

import (
	"errors"
	"fmt"
)

// ErrStreamClosed is returned by Push or Finish once Finish has already
// been called: the chunker is terminal after Finish.
var ErrStreamClosed = errors.New("cdcflow: push/finish called after finish")

// ChunkTooLargeError reports a chunk that exceeded max_size. A correct
// chunker never produces this; it exists so a debug build
// can surface the invariant violation instead of silently truncating.
type ChunkTooLargeError struct {
	Actual, Max int
}

func (e *ChunkTooLargeError) Error() string {
	return fmt.Sprintf("cdcflow: chunk too large: %d bytes, max %d", e.Actual, e.Max)
}
