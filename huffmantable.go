package lzxd

import (
	"github.com/chronos-tachyon/huffman"
)

// readSymbol decodes one canonical Huffman symbol from br using hdec,
// peeking progressively wider bit windows until a complete code matches.
// It is grounded on the teacher's own readSymbol: LZXD's canonical
// Huffman tables are built and consumed exactly the same way DEFLATE's
// are, by github.com/chronos-tachyon/huffman.
func readSymbol(br *bitReader, hdec *huffman.Decoder) (huffman.Symbol, error) {
	numBits := hdec.MinSize()
	max := hdec.MaxSize()
	for numBits <= max {
		peeked, err := br.peekBits(numBits)
		if err != nil {
			return huffman.InvalidSymbol, err
		}

		hc := huffman.MakeCode(numBits, peeked)
		symbol, newMin, newMax := hdec.Decode(hc)
		if symbol >= 0 {
			br.consumeBits(numBits)
			return symbol, nil
		}
		if newMax == 0 {
			break
		}
		numBits = newMin
	}
	return huffman.InvalidSymbol, &DecodeError{Kind: InvalidSymbol, Problem: "no canonical huffman code matched the input bits"}
}

// buildDecoder constructs a canonical Huffman decoder from a path-length
// vector, wrapping the zero-length-symbol and over-subscription failures
// huffman.Decoder.Init reports into DecodeError.
func buildDecoder(dec *huffman.Decoder, lens []byte, what string) error {
	if err := dec.Init(lens); err != nil {
		return &DecodeError{Kind: MalformedHuffman, Problem: what + ": " + err.Error()}
	}
	return nil
}
