package lzxd

import (
	"fmt"

	"github.com/chronos-tachyon/huffman"
)

// readPretreeLengths decodes a run of 20 4-bit code lengths and builds the
// pretree decoder used to update one of the persistent alphabets (main or
// length) for the block about to be read.
func readPretreeLengths(br *bitReader, dec *huffman.Decoder) error {
	var lens [pretreeAlphabetSize]byte
	for i := range lens {
		v, err := br.readBits(4)
		if err != nil {
			return err
		}
		lens[i] = byte(v)
	}
	return buildDecoder(dec, lens[:], "pretree")
}

// applyPretreeDeltas updates lens in place using the pretree-delta-mod-17
// run-length scheme (spec.md §4.3): each pretree symbol is either a delta
// applied to a single element, or a run-length opcode that zero-fills or
// repeats a value across several elements at once. This mirrors
// update_range_with_pretree in the reference decoder and readTree in the
// WIM-LZX decoder, both of which decode the same wire format.
func applyPretreeDeltas(br *bitReader, dec *huffman.Decoder, lens []byte) error {
	target := len(lens)
	i := 0
	for i < target {
		sym, err := readSymbol(br, dec)
		if err != nil {
			return err
		}

		switch {
		case sym <= 16:
			lens[i] = byte((int(lens[i]) - int(sym) + 17) % 17)
			i++

		case sym == 17:
			extra, err := br.readBits(4)
			if err != nil {
				return err
			}
			i, err = zeroFillPretreeRun(lens, i, int(extra)+4)
			if err != nil {
				return err
			}

		case sym == 18:
			extra, err := br.readBits(5)
			if err != nil {
				return err
			}
			i, err = zeroFillPretreeRun(lens, i, int(extra)+20)
			if err != nil {
				return err
			}

		case sym == 19:
			extra, err := br.readBits(1)
			if err != nil {
				return err
			}
			count := int(extra) + 4

			sym2, err := readSymbol(br, dec)
			if err != nil {
				return err
			}
			if sym2 > 16 {
				return &DecodeError{Kind: InvalidPretreeOp, Problem: fmt.Sprintf("opcode 19 secondary symbol %d out of range", sym2)}
			}
			if i+count > target {
				return &DecodeError{Kind: InvalidPretreeOp, Problem: "opcode 19 run overruns alphabet"}
			}
			value := byte((int(lens[i]) - int(sym2) + 17) % 17)
			for j := 0; j < count; j++ {
				lens[i+j] = value
			}
			i += count

		default:
			return &DecodeError{Kind: InvalidPretreeOp, Problem: fmt.Sprintf("pretree symbol %d out of range", sym)}
		}
	}
	return nil
}

func zeroFillPretreeRun(lens []byte, i, count int) (int, error) {
	if i+count > len(lens) {
		return i, &DecodeError{Kind: InvalidPretreeOp, Problem: "zero-fill run overruns alphabet"}
	}
	for j := 0; j < count; j++ {
		lens[i+j] = 0
	}
	return i + count, nil
}
