package index

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/fastcut/cdcflow"
	"github.com/fastcut/cdcflow/blake3hash"
)

// hashOf returns the BLAKE3 hash of data, for building test ChunkHash
// values without going through a full Chunker.
func hashOf(t testing.TB, data []byte) cdcflow.ChunkHash {
	t.Helper()
	h, err := blake3hash.New(blake3hash.BLAKE3)
	if err != nil {
		t.Fatalf("blake3hash.New: %v", err)
	}
	h.Write(data)
	var out cdcflow.ChunkHash
	copy(out[:], h.Sum(nil))
	return out
}

func TestPersistentIndexJSON_AddAndExists(t *testing.T) {
	path := t.TempDir() + "/index.json"

	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	hash := hashOf(t, []byte("jayson"))
	if err := idx.Add(hash, 0, 6); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	if ok := idx.Exists(hash); !ok {
		t.Errorf("expected hash to exist")
	}

	idx2, err := NewPersistentIndexJSON(path)
	if err != nil {
		t.Fatalf("failed to reopen index: %v", err)
	}

	if ok := idx2.Exists(hash); !ok {
		t.Errorf("expected hash to exist after reload")
	}
}

func TestPersistentIndexJSON_Get(t *testing.T) {
	path := t.TempDir() + "/index.json"

	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	hash := hashOf(t, []byte("chunks"))
	if err := idx.Add(hash, 128, 6); err != nil {
		t.Fatalf("unexpected error adding: %v", err)
	}

	got, ok := idx.Get(hash)
	if !ok {
		t.Fatalf("expected entry to be retrievable, but it was not found")
	}
	if got.Offset != 128 || got.Size != 6 {
		t.Errorf("retrieved entry mismatch: got=%+v", got)
	}
}

func TestPersistentIndexJSON_NonExistent(t *testing.T) {
	path := t.TempDir() + "/index.json"

	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	unknown := hashOf(t, []byte("pokemon"))

	ok, err := idx.ExistsWithErr(unknown)
	if ok {
		t.Errorf("expected ExistsWithErr() to return false for unknown hash")
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, ok, err = idx.GetWithErr(unknown)
	if ok || err != nil {
		t.Errorf("expected GetWithErr() to report not-found with no error, got ok=%v err=%v", ok, err)
	}
}

func TestPersistentIndexJSON_Concurrent(t *testing.T) {
	path := t.TempDir() + "/index.json"

	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	hash := hashOf(t, []byte("jayson"))
	done := make(chan bool)

	go func() {
		for range 1000 {
			_ = idx.Add(hash, 0, 6)
		}
		done <- true
	}()

	go func() {
		for range 1000 {
			_ = idx.Exists(hash)
			_, _ = idx.Get(hash)
		}
		done <- true
	}()

	<-done
	<-done
}

func TestPersistentIndexJSON_CorruptedFile(t *testing.T) {
	path := t.TempDir() + "/index.json"

	if err := os.WriteFile(path, []byte("{not-valid-json}"), 0644); err != nil {
		t.Fatalf("failed to write corrupted file: %v", err)
	}

	_, err := NewPersistentIndexJSON(path)
	if err == nil {
		t.Fatalf("expected error due to corrupted file, got nil")
	}
}

// BenchmarkPersistentIndexJSON_Add measures write throughput (Add only).
func BenchmarkPersistentIndexJSON_Add(b *testing.B) {
	path := b.TempDir() + "/index.json"

	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		b.Fatalf("failed to create index: %v", err)
	}

	chunkSize := 1024
	b.SetBytes(int64(chunkSize))

	for i := 0; b.Loop(); i++ {
		data := make([]byte, chunkSize)
		data[0] = byte(i)
		hash := hashOf(b, data)
		_ = idx.Add(hash, uint64(i*chunkSize), chunkSize)
	}
}

// BenchmarkPersistentIndexJSON_Exists measures lookup throughput.
func BenchmarkPersistentIndexJSON_Exists(b *testing.B) {
	path := b.TempDir() + "/index.json"
	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		b.Fatalf("failed to create index: %v", err)
	}

	chunkSize := 1024
	b.SetBytes(int64(chunkSize))

	hash := hashOf(b, []byte("zoro"))
	_ = idx.Add(hash, 0, chunkSize)

	b.ResetTimer()
	for b.Loop() {
		_ = idx.Exists(hash)
	}
}

// BenchmarkPersistentIndexJSON_AddAndExists measures a mixed workload.
func BenchmarkPersistentIndexJSON_AddAndExists(b *testing.B) {
	path := b.TempDir() + "/index.json"
	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		b.Fatalf("failed to create index: %v", err)
	}

	chunkSize := 1024
	b.SetBytes(int64(chunkSize))

	for i := 0; b.Loop(); i++ {
		data := make([]byte, chunkSize)
		data[0] = byte(i)
		hash := hashOf(b, data)
		_ = idx.Add(hash, uint64(i*chunkSize), chunkSize)
		_ = idx.Exists(hash)
	}
}

// BenchmarkPersistentIndexJSON_Parallel measures concurrent workload.
func BenchmarkPersistentIndexJSON_Parallel(b *testing.B) {
	path := b.TempDir() + "/index.json"
	idx, err := NewPersistentIndexJSON(path)
	if err != nil {
		b.Fatalf("failed to create index: %v", err)
	}

	chunkSize := 1024
	b.SetBytes(int64(chunkSize))

	var counter uint64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := atomic.AddUint64(&counter, 1)
			data := make([]byte, chunkSize)
			data[0] = byte(i)
			hash := hashOf(b, data)
			_ = idx.Add(hash, i*uint64(chunkSize), chunkSize)
			_ = idx.Exists(hash)
		}
	})
}
