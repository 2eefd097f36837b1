package lzxd

import "testing"

func TestBitReaderWholeWordRoundTrip(t *testing.T) {
	// word = 0x1234, stored little-endian as bytes 0x34, 0x12.
	br := newBitReader([]byte{0x34, 0x12})
	got, err := br.readBits(16)
	if err != nil {
		t.Fatalf("readBits: %v", err)
	}
	if got != 0x1234 {
		t.Fatalf("readBits(16) = %#04x, want 0x1234", got)
	}
	if !br.isExhausted() {
		t.Fatalf("expected bit reader to be exhausted after consuming the whole word")
	}
}

func TestBitReaderMSBFirst(t *testing.T) {
	// word = 0x8001 = 0b1000_0000_0000_0001
	br := newBitReader([]byte{0x01, 0x80})

	first, err := br.readBits(1)
	if err != nil {
		t.Fatalf("readBits(1): %v", err)
	}
	if first != 1 {
		t.Fatalf("first bit = %d, want 1 (MSB of the word)", first)
	}

	rest, err := br.readBits(15)
	if err != nil {
		t.Fatalf("readBits(15): %v", err)
	}
	if rest != 1 {
		t.Fatalf("remaining 15 bits = %#x, want 1", rest)
	}
}

func TestBitReaderSpansWordBoundary(t *testing.T) {
	// Two words: 0xAAAA, 0x5555. Read 17 bits, which must cross the
	// boundary between them.
	br := newBitReader([]byte{0xAA, 0xAA, 0x55, 0x55})
	got, err := br.readBits(17)
	if err != nil {
		t.Fatalf("readBits(17): %v", err)
	}
	want := uint32(0xAAAA5555) >> (32 - 17)
	if got != want {
		t.Fatalf("readBits(17) = %#x, want %#x", got, want)
	}
}

func TestBitReaderAlignTo16(t *testing.T) {
	br := newBitReader([]byte{0xFF, 0xFF, 0x00, 0x01})
	if _, err := br.readBits(3); err != nil {
		t.Fatalf("readBits(3): %v", err)
	}
	if err := br.alignTo16(); err != nil {
		t.Fatalf("alignTo16: %v", err)
	}
	got, err := br.readBits(16)
	if err != nil {
		t.Fatalf("readBits(16): %v", err)
	}
	if got != 0x0100 {
		t.Fatalf("after align, readBits(16) = %#04x, want 0x0100", got)
	}
}

func TestBitReaderTruncated(t *testing.T) {
	br := newBitReader(nil)
	if _, err := br.readBits(1); err == nil {
		t.Fatalf("expected truncated-input error reading from an empty chunk")
	}
}
