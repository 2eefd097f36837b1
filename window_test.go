package lzxd

import "testing"

func TestSlidingWindowUpdateLRU(t *testing.T) {
	w := newSlidingWindow(KB32)
	if w.r != [3]uint32{1, 1, 1} {
		t.Fatalf("initial R = %v, want all 1", w.r)
	}

	// A fresh offset (slot >= 3) is pushed into R0, shifting the others down.
	w.updateLRU(3, 100)
	if w.r != [3]uint32{100, 1, 1} {
		t.Fatalf("after fresh push, R = %v, want [100 1 1]", w.r)
	}

	w.updateLRU(3, 200)
	if w.r != [3]uint32{200, 100, 1} {
		t.Fatalf("after second fresh push, R = %v, want [200 100 1]", w.r)
	}

	// Slot 0 leaves the LRU untouched.
	w.updateLRU(0, w.r[0])
	if w.r != [3]uint32{200, 100, 1} {
		t.Fatalf("slot 0 hit changed R to %v, want unchanged [200 100 1]", w.r)
	}

	// Slot 2 promotes R2 to R0 by swapping.
	w.updateLRU(2, w.r[2])
	if w.r != [3]uint32{1, 100, 200} {
		t.Fatalf("after slot 2 hit, R = %v, want [1 100 200]", w.r)
	}

	// Slot 1 promotes R1 to R0 by swapping.
	w.updateLRU(1, w.r[1])
	if w.r != [3]uint32{100, 1, 200} {
		t.Fatalf("after slot 1 hit, R = %v, want [100 1 200]", w.r)
	}
}

// TestSlidingWindowCopyMatchOverlapping exercises a match whose length
// exceeds its distance, which must repeat a short pattern rather than
// reading uninitialized or stale bytes.
func TestSlidingWindowCopyMatchOverlapping(t *testing.T) {
	w := newSlidingWindow(KB32)
	w.beginChunk()
	w.putBytes([]byte("AB"))

	if err := w.copyMatch(2, 5, 2); err != nil {
		t.Fatalf("copyMatch: %v", err)
	}
	if string(w.out) != "ABABABA" {
		t.Fatalf("out = %q, want %q", w.out, "ABABABA")
	}
}

func TestSlidingWindowCopyMatchOutOfRange(t *testing.T) {
	w := newSlidingWindow(KB32)
	w.beginChunk()
	w.putBytes([]byte("A"))

	err := w.copyMatch(5, 1, 1)
	if err == nil {
		t.Fatalf("expected an error copying from beyond the window contents")
	}
	decErr, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decErr.Kind != OutputOverrun {
		t.Fatalf("Kind = %v, want OutputOverrun", decErr.Kind)
	}
}

func TestSlidingWindowBeginChunkResetsOutput(t *testing.T) {
	w := newSlidingWindow(KB32)
	w.beginChunk()
	w.putBytes([]byte("hello"))
	if len(w.out) != 5 {
		t.Fatalf("len(out) = %d, want 5", len(w.out))
	}
	w.beginChunk()
	if len(w.out) != 0 {
		t.Fatalf("len(out) after beginChunk = %d, want 0", len(w.out))
	}
}
