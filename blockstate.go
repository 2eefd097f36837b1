package lzxd

import (
	"encoding/binary"

	"github.com/chronos-tachyon/huffman"
)

// blockState holds everything that persists across block and chunk
// boundaries: the two length vectors whose deltas are transmitted via the
// pretree, their built decoders, and the bookkeeping for whichever block
// is currently being decoded. This is the LZXD analogue of the teacher's
// dynamic-tree fields on Reader, generalized from DEFLATE's two
// alphabets to LZXD's four.
type blockState struct {
	mainLens   []byte
	lengthLens []byte
	mainDec    huffman.Decoder
	lengthDec  huffman.Decoder
	alignedDec huffman.Decoder

	blockType      BlockType
	blockRemaining uint32
	oddPad         bool

	pretreeDec huffman.Decoder
}

func newBlockState(ws WindowSize) *blockState {
	return &blockState{
		mainLens:   make([]byte, ws.MainAlphabetSize()),
		lengthLens: make([]byte, lengthAlphabetSize),
	}
}

// awaitingHeader reports whether the decoder is between blocks and must
// read a new block header before decoding further tokens.
func (bs *blockState) awaitingHeader() bool {
	return bs.blockRemaining == 0
}

// readBlockHeader parses the 3-bit block type, 24-bit block size, and
// (for verbatim/aligned blocks) refreshes the main and length trees via
// the pretree scheme; for uncompressed blocks it realigns to a 16-bit
// boundary and reloads R0/R1/R2 from a 12-byte raw header. Grounded on
// the reference decoder's block-head reader and the WIM-LZX decoder's
// readBlockHeader/readTrees.
func (bs *blockState) readBlockHeader(br *bitReader, w *slidingWindow) error {
	kind, err := br.readBits(3)
	if err != nil {
		return err
	}
	bt := BlockType(kind)
	if !bt.IsValid() {
		return &DecodeError{Kind: InvalidBlockTypeError, Problem: bt.String()}
	}
	bs.blockType = bt

	size, err := br.readU24()
	if err != nil {
		return err
	}

	switch bt {
	case UncompressedBlockType:
		if err := br.alignTo16(); err != nil {
			return err
		}
		var raw [12]byte
		if err := br.readAlignedBytes(raw[:]); err != nil {
			return err
		}
		w.r[0] = binary.LittleEndian.Uint32(raw[0:4])
		w.r[1] = binary.LittleEndian.Uint32(raw[4:8])
		w.r[2] = binary.LittleEndian.Uint32(raw[8:12])

	case AlignedOffsetBlockType:
		var alignedLens [alignedAlphabetSize]byte
		for i := range alignedLens {
			v, err := br.readBits(3)
			if err != nil {
				return err
			}
			alignedLens[i] = byte(v)
		}
		if err := buildDecoder(&bs.alignedDec, alignedLens[:], "aligned-offset tree"); err != nil {
			return err
		}
		if err := bs.readMainAndLengthTrees(br); err != nil {
			return err
		}

	case VerbatimBlockType:
		if err := bs.readMainAndLengthTrees(br); err != nil {
			return err
		}
	}

	bs.blockRemaining = size
	bs.oddPad = bt == UncompressedBlockType && size%2 == 1
	return nil
}

// readMainAndLengthTrees updates main_lens and length_lens via three
// independent pretree passes (spec.md §4.4 step 4): one for the literal
// half of the main alphabet, one for its match half, and one for the
// length alphabet. Each pass carries its own 20-symbol pretree header.
func (bs *blockState) readMainAndLengthTrees(br *bitReader) error {
	if err := bs.runPretreePass(br, bs.mainLens[:256]); err != nil {
		return err
	}
	if err := bs.runPretreePass(br, bs.mainLens[256:]); err != nil {
		return err
	}
	if err := buildDecoder(&bs.mainDec, bs.mainLens, "main tree"); err != nil {
		return err
	}

	if err := bs.runPretreePass(br, bs.lengthLens); err != nil {
		return err
	}
	if err := buildDecoder(&bs.lengthDec, bs.lengthLens, "length tree"); err != nil {
		return err
	}
	return nil
}

func (bs *blockState) runPretreePass(br *bitReader, lens []byte) error {
	if err := readPretreeLengths(br, &bs.pretreeDec); err != nil {
		return err
	}
	return applyPretreeDeltas(br, &bs.pretreeDec, lens)
}
