package lzxd

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// ErrorKind classifies the fatal decode errors of spec.md §7. Every kind is
// unrecoverable: once returned, the Decoder that produced it must not be
// reused.
type ErrorKind byte

const (
	// TruncatedInput indicates the bit reader was exhausted mid-symbol.
	TruncatedInput ErrorKind = iota + 1

	// InvalidBlockTypeError indicates the 3-bit block-type field held a
	// value other than 1, 2, or 3.
	InvalidBlockTypeError

	// MalformedHuffman indicates a path-length vector described an
	// over-subscribed or (for trees with 2+ symbols) under-subscribed
	// canonical Huffman tree.
	MalformedHuffman

	// InvalidPretreeOp indicates pretree opcode 19's secondary symbol was
	// not in 0..=16, or a run-length opcode would overrun its target
	// vector.
	InvalidPretreeOp

	// InvalidPositionSlot indicates a decoded position slot exceeded P
	// for the configured window size.
	InvalidPositionSlot

	// InvalidSymbol indicates the next input bits matched no code of the
	// Huffman tree being decoded (main, length, aligned-offset or pretree),
	// i.e. they would select a symbol with a path length of zero.
	InvalidSymbol

	// OutputOverrun indicates a block's remaining byte count would go
	// negative.
	OutputOverrun
)

var errorKindData = []enumhelper.EnumData{
	{},
	{GoName: "TruncatedInput", Name: "truncated input"},
	{GoName: "InvalidBlockTypeError", Name: "invalid block type"},
	{GoName: "MalformedHuffman", Name: "malformed huffman tree"},
	{GoName: "InvalidPretreeOp", Name: "invalid pretree opcode"},
	{GoName: "InvalidPositionSlot", Name: "invalid position slot"},
	{GoName: "InvalidSymbol", Name: "invalid symbol"},
	{GoName: "OutputOverrun", Name: "block output overrun"},
}

// GoString returns the Go string representation of this ErrorKind constant.
func (k ErrorKind) GoString() string {
	return enumhelper.DereferenceEnumData("ErrorKind", errorKindData, uint(k)).GoName
}

// String returns the string representation of this ErrorKind constant.
func (k ErrorKind) String() string {
	return enumhelper.DereferenceEnumData("ErrorKind", errorKindData, uint(k)).Name
}

var _ fmt.GoStringer = ErrorKind(0)
var _ fmt.Stringer = ErrorKind(0)
