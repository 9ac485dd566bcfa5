package blake3hash

import (
	"bytes"
	"testing"
)

func TestNew_BLAKE3Default(t *testing.T) {
	h, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Write([]byte("hello"))
	sum := h.Sum(nil)
	if len(sum) != 32 {
		t.Errorf("digest length = %d, want 32", len(sum))
	}

	h2, _ := New(BLAKE3)
	h2.Write([]byte("hello"))
	if !bytes.Equal(sum, h2.Sum(nil)) {
		t.Errorf("BLAKE3 and empty-name digests differ")
	}
}

func TestNew_SHA256(t *testing.T) {
	h, err := New(SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Write([]byte("hello"))
	if len(h.Sum(nil)) != 32 {
		t.Errorf("sha256 digest length != 32")
	}
}

func TestNew_Unsupported(t *testing.T) {
	if _, err := New("sha1"); err == nil {
		t.Errorf("expected error for unsupported algorithm")
	}
}
