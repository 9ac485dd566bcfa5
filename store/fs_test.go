package store

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fastcut/cdcflow"
	"github.com/fastcut/cdcflow/blake3hash"
	"github.com/fastcut/cdcflow/bytesref"
)

// testChunk builds a hashed cdcflow.Chunk from data, as a Chunker would,
// without pulling in the fastcdc boundary logic the store doesn't care
// about.
func testChunk(t testing.TB, data []byte, offset uint64) cdcflow.Chunk {
	t.Helper()
	h, err := blake3hash.New(blake3hash.BLAKE3)
	if err != nil {
		t.Fatalf("blake3hash.New: %v", err)
	}
	h.Write(data)

	c := cdcflow.Chunk{
		Data:    bytesref.New(data),
		Offset:  offset,
		HasHash: true,
	}
	copy(c.Hash[:], h.Sum(nil))
	return c
}

func TestFSStore_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		t.Fatalf("failed to create FSStore: %v", err)
	}

	data := []byte("test-data")
	c := testChunk(t, data, 0)

	if err := fs.Save(c); err != nil {
		t.Fatalf("failed to save chunk: %v", err)
	}

	loaded, err := fs.Load(c.Hash)
	if err != nil {
		t.Fatalf("failed to load chunk: %v", err)
	}
	if !bytes.Equal(loaded, data) {
		t.Errorf("chunk data does not match")
	}
}

func TestFSStore_LoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		t.Fatalf("failed to create FSStore: %v", err)
	}

	var unknown cdcflow.ChunkHash
	_, err = fs.Load(unknown)
	if !errors.Is(err, ErrChunkNotFound) {
		t.Errorf("expected ErrChunkNotFound, got: %v", err)
	}
}

func TestFSStore_SaveRequiresHash(t *testing.T) {
	tmpDir := t.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		t.Fatalf("failed to create FSStore: %v", err)
	}

	c := cdcflow.Chunk{Data: bytesref.New([]byte("no-hash"))}
	if err := fs.Save(c); err == nil {
		t.Errorf("expected Save to reject an unhashed chunk")
	}
}

func TestFSStore_SaveDuplicate(t *testing.T) {
	tmpDir := t.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		t.Fatalf("failed to create FSStore: %v", err)
	}

	data := []byte("duplicate-test")
	c := testChunk(t, data, 0)

	if err := fs.Save(c); err != nil {
		t.Fatalf("failed to save chunk first time: %v", err)
	}
	if err := fs.Save(c); err != nil {
		t.Fatalf("failed to save chunk second time: %v", err)
	}

	loaded, err := fs.Load(c.Hash)
	if err != nil {
		t.Fatalf("failed to load chunk: %v", err)
	}
	if !bytes.Equal(loaded, data) {
		t.Errorf("chunk content mismatch: got %v, want %v", loaded, data)
	}

	if err := fs.VerifyIntegrity(); err != nil {
		t.Errorf("VerifyIntegrity: %v", err)
	}
}

// BenchmarkFSStore_Save measures the throughput of writing chunks.
func BenchmarkFSStore_Save(b *testing.B) {
	tmpDir := b.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		b.Fatalf("failed to create FSStore: %v", err)
	}

	chunkSize := 1024
	b.SetBytes(int64(chunkSize))

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		data := make([]byte, chunkSize)
		data[0] = byte(i)
		c := testChunk(b, data, uint64(i*chunkSize))
		_ = fs.Save(c)
	}
}

// BenchmarkFSStore_Load measures the throughput of reading chunks back.
func BenchmarkFSStore_Load(b *testing.B) {
	tmpDir := b.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		b.Fatalf("failed to create FSStore: %v", err)
	}

	chunkSize := 1024
	data := make([]byte, chunkSize)
	b.SetBytes(int64(chunkSize))
	c := testChunk(b, data, 0)
	_ = fs.Save(c)

	b.ResetTimer()
	for b.Loop() {
		_, _ = fs.Load(c.Hash)
	}
}

// BenchmarkFSStore_Parallel simulates concurrent Save and Load calls.
func BenchmarkFSStore_Parallel(b *testing.B) {
	tmpDir := b.TempDir()
	fs, err := NewFSStore(tmpDir, nil, nil)
	if err != nil {
		b.Fatalf("failed to create FSStore: %v", err)
	}

	chunkSize := 1024
	b.SetBytes(int64(chunkSize))
	b.ResetTimer()

	var counter uint64
	b.RunParallel(func(p *testing.PB) {
		for p.Next() {
			i := atomic.AddUint64(&counter, 1)
			data := make([]byte, chunkSize)
			data[0] = byte(i)
			c := testChunk(b, data, i*uint64(chunkSize))
			_ = fs.Save(c)
			_, _ = fs.Load(c.Hash)
		}
	})
}
