package lzxd

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// BlockType indicates the coding mode of an LZXD-compressed block.
type BlockType byte

const (
	// InvalidBlockType is a dummy value indicating no block has been read
	// yet, or that the 3-bit block type field held a reserved value.
	InvalidBlockType BlockType = iota

	// VerbatimBlockType indicates a block whose large match offsets are
	// written as raw ("verbatim") bits.
	VerbatimBlockType

	// AlignedOffsetBlockType indicates a block that precedes its main and
	// length trees with an 8-symbol aligned-offset tree, used to shave 3
	// bits off of large match offsets.
	AlignedOffsetBlockType

	// UncompressedBlockType indicates a block whose body is copied
	// byte-for-byte from the input, following a 12-byte R0/R1/R2 reset.
	UncompressedBlockType
)

var blockTypeData = []enumhelper.EnumData{
	{GoName: "InvalidBlockType", Name: "invalid"},
	{GoName: "VerbatimBlockType", Name: "verbatim"},
	{GoName: "AlignedOffsetBlockType", Name: "aligned"},
	{GoName: "UncompressedBlockType", Name: "uncompressed"},
}

// IsValid returns true if b is one of the three block types that may
// legally appear on the wire.
func (b BlockType) IsValid() bool {
	return b >= VerbatimBlockType && b <= UncompressedBlockType
}

// GoString returns the Go string representation of this BlockType constant.
func (b BlockType) GoString() string {
	return enumhelper.DereferenceEnumData("BlockType", blockTypeData, uint(b)).GoName
}

// String returns the string representation of this BlockType constant.
func (b BlockType) String() string {
	return enumhelper.DereferenceEnumData("BlockType", blockTypeData, uint(b)).Name
}

// MarshalJSON returns the JSON representation of this BlockType constant.
func (b BlockType) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("BlockType", blockTypeData, uint(b))
}

var _ fmt.GoStringer = BlockType(0)
var _ fmt.Stringer = BlockType(0)
