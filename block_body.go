package lzxd

// decodeToken decodes and emits exactly one main-alphabet symbol — either
// a literal byte or a full LZ77 match — from a verbatim or aligned-offset
// block, returning the number of output bytes it produced. Grounded on
// the WIM-LZX decoder's readCompressedBlock and spec.md §4.5/§4.6/§4.7.
func (d *Decoder) decodeToken(br *bitReader) (uint32, error) {
	bs := d.block
	sym, err := readSymbol(br, &bs.mainDec)
	if err != nil {
		return 0, err
	}

	if sym < 256 {
		d.window.putLiteral(byte(sym))
		return 1, nil
	}

	m := uint32(sym) - 256
	slot := int(m / 8)
	lengthHeader := m % 8

	matchLen, err := d.decodeMatchLength(br, lengthHeader)
	if err != nil {
		return 0, err
	}

	if slot >= int(d.windowSize.PositionSlots()) {
		return 0, &DecodeError{Kind: InvalidPositionSlot, OutputOffset: d.outputOffset, Problem: "position slot exceeds configured window size"}
	}

	realOffset, err := d.decodeOffset(br, slot)
	if err != nil {
		return 0, err
	}

	if err := d.window.copyMatch(realOffset, matchLen, d.outputOffset); err != nil {
		return 0, err
	}
	return matchLen, nil
}

func (d *Decoder) decodeMatchLength(br *bitReader, lengthHeader uint32) (uint32, error) {
	if lengthHeader < 7 {
		return lengthHeader + 2, nil
	}
	l, err := readSymbol(br, &d.block.lengthDec)
	if err != nil {
		return 0, err
	}
	return uint32(l) + 9, nil
}

// decodeOffset resolves a position slot to a real match offset, updating
// the repeated-offset LRU per spec.md §4.6. R0/R1/R2 store real offsets
// directly; only slots >= 3 go through the base_position/footer_bits
// tables and the resulting formatted-to-real adjustment.
func (d *Decoder) decodeOffset(br *bitReader, slot int) (uint32, error) {
	if slot <= 2 {
		real := d.window.r[slot]
		d.window.updateLRU(slot, real)
		return real, nil
	}

	fb := footerBits[slot]
	base := basePosition[slot]

	var formatted uint32
	if d.block.blockType == AlignedOffsetBlockType {
		if fb >= 3 {
			verbatimBits, err := br.readBits(fb - 3)
			if err != nil {
				return 0, err
			}
			a, err := readSymbol(br, &d.block.alignedDec)
			if err != nil {
				return 0, err
			}
			formatted = base + (verbatimBits << 3) + uint32(a)
		} else {
			verbatimBits, err := br.readBits(fb)
			if err != nil {
				return 0, err
			}
			formatted = base + verbatimBits
		}
	} else {
		footer, err := br.readBits(fb)
		if err != nil {
			return 0, err
		}
		formatted = base + footer
	}

	realOffset := formatted - 2
	d.window.updateLRU(slot, realOffset)
	return realOffset, nil
}
