package lzxd

import (
	"testing"

	"github.com/chronos-tachyon/huffman"
)

// TestBuildDecoderRejectsOverSubscribedTree covers property 6 of spec.md
// §8: a length vector whose Kraft sum exceeds 1 (three symbols all of
// length 1, when only two can coexist) is not a valid canonical Huffman
// tree and must surface as MalformedHuffman, never a panic or a silently
// wrong decode.
func TestBuildDecoderRejectsOverSubscribedTree(t *testing.T) {
	lens := make([]byte, pretreeAlphabetSize)
	lens[0] = 1
	lens[1] = 1
	lens[2] = 1

	var dec huffman.Decoder
	err := buildDecoder(&dec, lens, "over-subscribed test tree")
	if err == nil {
		t.Fatalf("expected an error building an over-subscribed tree")
	}
	decErr, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decErr.Kind != MalformedHuffman {
		t.Fatalf("Kind = %v, want MalformedHuffman", decErr.Kind)
	}
}

// TestReadSymbolDegenerateCode covers the readSymbol path where no
// canonical code matches the peeked bits at any length up to MaxSize —
// exercised here with a tree that has a single present symbol and bits
// that do not match its code (an under-subscribed tree is accepted by
// Init, but a bit pattern that still can't resolve to a symbol must report
// InvalidSymbol rather than loop forever).
func TestReadSymbolDegenerateCode(t *testing.T) {
	lens := make([]byte, pretreeAlphabetSize)
	lens[5] = 1 // a single present symbol at length 1.

	var dec huffman.Decoder
	if err := dec.Init(lens); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Symbol 5 owns code "0"; feed all-ones bits so the single valid code
	// never matches.
	br := newBitReader([]byte{0xFF, 0xFF})
	if _, err := readSymbol(br, &dec); err == nil {
		t.Fatalf("expected an error decoding a bit pattern with no matching code")
	}
}
