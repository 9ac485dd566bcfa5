package fastcdc

import (
	"bytes"
	"testing"

	"github.com/fastcut/cdcflow/config"
)

func TestScan_SizeBounds(t *testing.T) {
	cfg, err := config.New(50, 128, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := bytes.Repeat([]byte{0xAB}, 5000)
	state := State{}
	offset := 0

	for offset < len(data) {
		cut, next, found := Scan(cfg, state, data[offset:])
		if !found {
			break
		}
		if cut < cfg.MinSize() {
			t.Fatalf("chunk too small: got %d, min %d", cut, cfg.MinSize())
		}
		if cut > cfg.MaxSize() {
			t.Fatalf("chunk too big: got %d, max %d", cut, cfg.MaxSize())
		}
		offset += cut
		state = next
	}
}

func TestScan_ForcedCutAtMax(t *testing.T) {
	cfg, err := config.New(10, 16, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bytes chosen so the gear hash never satisfies either mask; only the
	// forced cut at max_size should fire.
	data := bytes.Repeat([]byte{0x00}, 40)
	cut, _, found := Scan(cfg, State{}, data)
	if !found {
		t.Fatalf("expected a forced cut, found none")
	}
	if cut != 40 {
		t.Errorf("forced cut at %d, want %d", cut, 40)
	}
}

func TestScan_NoCutBelowMin(t *testing.T) {
	cfg, err := config.New(100, 256, 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := bytes.Repeat([]byte{0xFF}, 90)
	cut, next, found := Scan(cfg, State{}, data)
	if found {
		t.Fatalf("unexpected cut below min_size at %d", cut)
	}
	if next.Length != len(data) {
		t.Errorf("state length = %d, want %d", next.Length, len(data))
	}
}

func TestScan_Deterministic(t *testing.T) {
	cfg, err := config.New(50, 128, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := bytes.Repeat([]byte{0x01, 0x02, 0x03}, 500)

	collect := func() []int {
		var cuts []int
		state := State{}
		offset := 0
		for offset < len(data) {
			cut, next, found := Scan(cfg, state, data[offset:])
			if !found {
				break
			}
			cuts = append(cuts, cut)
			offset += cut
			state = next
		}
		return cuts
	}

	first := collect()
	second := collect()

	if len(first) != len(second) {
		t.Fatalf("cut count differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cut %d differs: %d vs %d", i, first[i], second[i])
		}
	}
}

// TestScan_ByteAtATime enforces that feeding the same bytes one at a time
// produces the same cut offsets as a single bulk call (the determinism
// requirement, exercised at the detector level).
func TestScan_ByteAtATime(t *testing.T) {
	cfg, err := config.New(50, 128, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := bytes.Repeat([]byte{0x05, 0x09, 0x0d, 0x11}, 300)

	bulkCuts := cutsFromBulk(cfg, data)
	byteCuts := cutsFromByteAtATime(cfg, data)

	if len(bulkCuts) != len(byteCuts) {
		t.Fatalf("cut count differs: bulk=%d byte=%d", len(bulkCuts), len(byteCuts))
	}
	for i := range bulkCuts {
		if bulkCuts[i] != byteCuts[i] {
			t.Errorf("cut %d differs: bulk=%d byte=%d", i, bulkCuts[i], byteCuts[i])
		}
	}
}

func cutsFromBulk(cfg config.Config, data []byte) []int {
	var cuts []int
	state := State{}
	absolute := 0
	offset := 0
	for offset < len(data) {
		cut, next, found := Scan(cfg, state, data[offset:])
		if !found {
			break
		}
		absolute += cut
		cuts = append(cuts, absolute)
		offset += cut
		state = next
	}
	return cuts
}

func cutsFromByteAtATime(cfg config.Config, data []byte) []int {
	var cuts []int
	state := State{}
	absolute := 0
	for _, b := range data {
		cut, next, found := Scan(cfg, state, []byte{b})
		absolute++
		if found {
			cuts = append(cuts, absolute)
			state = State{}
			_ = cut
			continue
		}
		state = next
	}
	return cuts
}
