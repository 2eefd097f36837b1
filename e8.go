package lzxd

import (
	"bytes"
	"encoding/binary"
)

// e8TranslationLimit is the output offset at or beyond which a chunk is
// left untranslated (spec.md §4.9). Candidate call targets are not compared
// against it.
const e8TranslationLimit = 0x40000000

// translateE8 reverses the x86 CALL near-relative encoding LZX's encoder
// applies before compression, converting eligible absolute call targets
// back into relative ones in place. It is grounded verbatim on the
// reference decoder's postprocess step, including its exact treatment of
// the sign of the candidate absolute value.
func translateE8(enabled bool, fileSize uint32, chunkOffset uint64, data []byte) {
	if !enabled || chunkOffset >= e8TranslationLimit || len(data) <= 10 {
		return
	}

	processed := 0
	for processed < len(data) {
		rest := data[processed:]
		idx := bytes.IndexByte(rest, 0xE8)
		if idx < 0 {
			return
		}
		pos := processed + idx
		if len(data)-pos <= 10 {
			return
		}

		currentPointer := chunkOffset + uint64(pos)
		absVal := binary.LittleEndian.Uint32(data[pos+1 : pos+5])

		if uint64(absVal) < currentPointer && absVal < fileSize {
			var relVal int32
			if int32(absVal) > 0 {
				relVal = int32(absVal - uint32(currentPointer))
			} else {
				relVal = int32(absVal + fileSize)
			}
			binary.LittleEndian.PutUint32(data[pos+1:pos+5], uint32(relVal))
		}

		processed = pos + 5
	}
}
