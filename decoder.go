package lzxd

// Decoder decompresses a stream of LZXD chunks. It is the LZXD analogue
// of the teacher's gzip/zlib Reader, but chunk-oriented rather than
// io.Reader-oriented: LZXD is always fed and consumed in discrete,
// independently-sized chunks by its container format, so DecodeNext
// takes one compressed chunk and returns its decompressed bytes rather
// than streaming through an io.Reader.
type Decoder struct {
	windowSize WindowSize
	window     *slidingWindow
	block      *blockState

	firstChunkRead bool
	e8Enabled      bool
	e8FileSize     uint32

	// outputOffset is the total number of bytes this Decoder has
	// produced across every DecodeNext call so far. It doubles as the
	// E8 translator's chunk_offset and as the OutputOffset reported on
	// DecodeError.
	outputOffset uint64

	// scratch backs copyUncompressedRun's raw byte reads; reused and
	// grown as needed so steady-state decoding allocates nothing beyond
	// the tables and buffers sized at construction.
	scratch []byte

	tracers []Tracer
}

// New constructs a Decoder for the given sliding-window size. windowSize
// must be known out of band (it is never encoded in the bitstream) and
// must match the size the corresponding encoder used.
func New(windowSize WindowSize, opts ...Option) *Decoder {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Decoder{
		windowSize: windowSize,
		window:     newSlidingWindow(windowSize),
		block:      newBlockState(windowSize),
		tracers:    o.tracers,
	}
}

// DecodeNext decompresses a single LZXD chunk and returns its
// decompressed bytes. The returned slice aliases the Decoder's internal
// output buffer and is only valid until the next call to DecodeNext.
//
// A block may span more than one chunk; the Decoder carries whatever
// block state is in progress from one call to the next. Once DecodeNext
// returns an error, the Decoder must not be used again.
func (d *Decoder) DecodeNext(chunk []byte) (_ []byte, err error) {
	// Errors raised by the bit reader, Huffman tables and block header
	// carry no offset of their own; stamp the running output count on them.
	defer func() {
		if decErr, ok := err.(*DecodeError); ok {
			decErr.OutputOffset = d.outputOffset
		}
	}()

	if len(chunk)%2 != 0 {
		return nil, &DecodeError{Kind: TruncatedInput, OutputOffset: d.outputOffset, Problem: "chunk length is not a multiple of two bytes"}
	}

	d.traceChunkStart(len(chunk))

	br := newBitReader(chunk)
	if err := d.readFirstChunkHeader(br); err != nil {
		return nil, err
	}

	d.window.beginChunk()

	for !br.isExhausted() {
		if d.block.awaitingHeader() {
			if err := d.block.readBlockHeader(br, d.window); err != nil {
				return nil, err
			}
			d.traceBlockHeader()
		}

		produced, err := d.decodeUnit(br)
		if err != nil {
			return nil, err
		}
		if produced > d.block.blockRemaining {
			return nil, &DecodeError{Kind: OutputOverrun, OutputOffset: d.outputOffset, Problem: "block produced more bytes than its declared size"}
		}
		d.block.blockRemaining -= produced
		d.outputOffset += uint64(produced)

		if d.block.blockRemaining == 0 && d.block.oddPad {
			if err := consumePadByte(br); err != nil {
				return nil, err
			}
			d.block.oddPad = false
		}
	}

	out := d.window.out
	chunkStart := d.outputOffset - uint64(len(out))
	translateE8(d.e8Enabled, d.e8FileSize, chunkStart, out)

	d.traceChunkEnd(len(out))
	return out, nil
}

// decodeUnit advances the decode by one token (for verbatim/aligned
// blocks) or one bounded run of raw bytes (for uncompressed blocks),
// returning the number of output bytes produced.
func (d *Decoder) decodeUnit(br *bitReader) (uint32, error) {
	if d.block.blockType == UncompressedBlockType {
		return d.copyUncompressedRun(br)
	}
	return d.decodeToken(br)
}

// copyUncompressedRun copies as many of the current block's remaining
// raw bytes as this chunk still has available, bounded by
// block.blockRemaining. This is what lets an uncompressed block span
// chunk boundaries: each call drains whatever is left in the chunk
// without assuming the whole block arrives at once.
func (d *Decoder) copyUncompressedRun(br *bitReader) (uint32, error) {
	available := uint32(len(br.data)) + uint32(br.nbits)/8
	n := d.block.blockRemaining
	if available < n {
		n = available
	}
	if n == 0 {
		return 0, &DecodeError{Kind: TruncatedInput, OutputOffset: d.outputOffset, Problem: "uncompressed block has no bytes available in this chunk"}
	}

	if uint32(cap(d.scratch)) < n {
		d.scratch = make([]byte, n)
	}
	buf := d.scratch[:n]
	if err := br.readAlignedBytes(buf); err != nil {
		return 0, err
	}
	d.window.putBytes(buf)
	return n, nil
}

func consumePadByte(br *bitReader) error {
	var b [1]byte
	return br.readAlignedBytes(b[:])
}

// readFirstChunkHeader reads the one-bit E8-translation flag and, if
// set, the 32-bit translation size, exactly once per Decoder lifetime
// (spec.md §4.8 step 1).
func (d *Decoder) readFirstChunkHeader(br *bitReader) error {
	if d.firstChunkRead {
		return nil
	}
	d.firstChunkRead = true

	e8, err := br.readBits(1)
	if err != nil {
		return err
	}
	if e8 == 0 {
		return nil
	}

	high, err := br.readU16Swapped()
	if err != nil {
		return err
	}
	low, err := br.readU16Swapped()
	if err != nil {
		return err
	}

	d.e8Enabled = true
	d.e8FileSize = high<<16 | low
	return nil
}

func (d *Decoder) traceChunkStart(chunkLen int) {
	d.emit(Event{Type: ChunkBeginEvent, OutputOffset: d.outputOffset, ChunkLen: chunkLen})
}

func (d *Decoder) traceBlockHeader() {
	d.emit(Event{
		Type:         BlockHeaderEvent,
		OutputOffset: d.outputOffset,
		Block:        &BlockEvent{Type: d.block.blockType, Size: d.block.blockRemaining},
	})
}

func (d *Decoder) traceChunkEnd(outLen int) {
	d.emit(Event{Type: ChunkEndEvent, OutputOffset: d.outputOffset, ChunkLen: outLen})
}

func (d *Decoder) emit(event Event) {
	for _, tr := range d.tracers {
		tr.OnEvent(event)
	}
}
