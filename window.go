package lzxd

import (
	buffer "github.com/chronos-tachyon/buffer/v3"
)

// slidingWindow is the LZ77 history buffer plus the repeated-offset LRU
// (R0/R1/R2) and the per-chunk output accumulator. It plays the role the
// teacher's fr.window and fr.output play together: window.go's
// buffer.Window supplies distance-addressed backreferences exactly the
// way the DEFLATE reader uses it, while out collects only the bytes
// produced by the current DecodeNext call so they can be handed back to
// the caller without copying out of a circular buffer.
type slidingWindow struct {
	buf buffer.Window
	r   [3]uint32
	out []byte
}

func newSlidingWindow(ws WindowSize) *slidingWindow {
	w := &slidingWindow{r: [3]uint32{1, 1, 1}}
	w.buf.Init(ws.NumBits())
	return w
}

// beginChunk resets the output accumulator at the start of a DecodeNext
// call, reusing its backing array across calls.
func (w *slidingWindow) beginChunk() {
	w.out = w.out[:0]
}

func (w *slidingWindow) putLiteral(ch byte) {
	_ = w.buf.WriteByte(ch)
	w.out = append(w.out, ch)
}

func (w *slidingWindow) putBytes(p []byte) {
	_, _ = w.buf.Write(p)
	w.out = append(w.out, p...)
}

// copyMatch emits length bytes found distance positions behind the
// current write cursor. Reading and writing interleave one byte at a
// time so that matches whose length exceeds their distance correctly see
// their own freshly emitted bytes, exactly as the teacher's LL/D token
// replay loop does. outputOffset is the number of bytes written to the
// window before this match; a distance reaching further back than that is
// rejected.
func (w *slidingWindow) copyMatch(distance, length uint32, outputOffset uint64) error {
	if uint64(distance) > outputOffset {
		return &DecodeError{Kind: OutputOverrun, OutputOffset: outputOffset, Problem: "match distance exceeds window contents"}
	}
	for i := uint32(0); i < length; i++ {
		ch, err := w.buf.LookupByte(uint(distance))
		if err != nil {
			return &DecodeError{Kind: OutputOverrun, OutputOffset: outputOffset, Problem: "match distance exceeds window contents"}
		}
		w.putLiteral(ch)
	}
	return nil
}

// updateLRU applies the repeated-offset update rule of spec.md §4.6: slot
// 0 leaves R0/R1/R2 untouched, slots 1 and 2 promote that offset to R0 by
// swapping, and any other offset is pushed in fresh with R1 and R2
// shifting down.
func (w *slidingWindow) updateLRU(slot int, realOffset uint32) {
	switch slot {
	case 0:
		// no change
	case 1:
		w.r[0], w.r[1] = w.r[1], w.r[0]
	case 2:
		w.r[0], w.r[2] = w.r[2], w.r[0]
	default:
		w.r[2] = w.r[1]
		w.r[1] = w.r[0]
		w.r[0] = realOffset
	}
}
