package lzxd

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// EventType indicates the type of an Event.
type EventType byte

const (
	// ChunkBeginEvent indicates that DecodeNext was called with a new
	// compressed chunk.
	ChunkBeginEvent EventType = iota

	// BlockHeaderEvent indicates that a block header (and, for
	// verbatim/aligned blocks, its Huffman trees) was successfully
	// decoded.
	BlockHeaderEvent

	// ChunkEndEvent indicates that a chunk finished decoding and its
	// output bytes were returned to the caller.
	ChunkEndEvent
)

var eventTypeData = []enumhelper.EnumData{
	{GoName: "ChunkBeginEvent", Name: "chunk-begin"},
	{GoName: "BlockHeaderEvent", Name: "block-header"},
	{GoName: "ChunkEndEvent", Name: "chunk-end"},
}

// GoString returns the Go string representation of this EventType constant.
func (e EventType) GoString() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).GoName
}

// String returns the string representation of this EventType constant.
func (e EventType) String() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).Name
}

// MarshalJSON returns the JSON representation of this EventType constant.
func (e EventType) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("EventType", eventTypeData, uint(e))
}

var _ fmt.GoStringer = EventType(0)
var _ fmt.Stringer = EventType(0)
