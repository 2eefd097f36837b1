package lzxd

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// WindowSize selects the capacity of the LZ77 sliding window, and therefore
// the number of position slots in the main alphabet. It must be known out
// of band — it is never encoded in the LZXD bitstream itself.
type WindowSize byte

const (
	// KB32 is a 32 KiB (2^15 byte) sliding window.
	KB32 WindowSize = iota

	// KB64 is a 64 KiB (2^16 byte) sliding window.
	KB64

	// KB128 is a 128 KiB (2^17 byte) sliding window.
	KB128

	// KB256 is a 256 KiB (2^18 byte) sliding window.
	KB256

	// KB512 is a 512 KiB (2^19 byte) sliding window.
	KB512

	// KB1024 is a 1 MiB (2^20 byte) sliding window.
	KB1024

	// KB2048 is a 2 MiB (2^21 byte) sliding window.
	KB2048
)

type windowSizeInfo struct {
	numBits       uint
	positionSlots uint
}

// windowSizeTable gives, per spec.md §3, the number of position slots P for
// each of the seven enumerated window sizes.
var windowSizeTable = [...]windowSizeInfo{
	KB32:   {numBits: 15, positionSlots: 30},
	KB64:   {numBits: 16, positionSlots: 32},
	KB128:  {numBits: 17, positionSlots: 34},
	KB256:  {numBits: 18, positionSlots: 36},
	KB512:  {numBits: 19, positionSlots: 38},
	KB1024: {numBits: 20, positionSlots: 42},
	KB2048: {numBits: 21, positionSlots: 50},
}

var windowSizeData = []enumhelper.EnumData{
	{GoName: "KB32", Name: "32K"},
	{GoName: "KB64", Name: "64K"},
	{GoName: "KB128", Name: "128K"},
	{GoName: "KB256", Name: "256K"},
	{GoName: "KB512", Name: "512K"},
	{GoName: "KB1024", Name: "1M"},
	{GoName: "KB2048", Name: "2M"},
}

// IsValid returns true if ws is one of the seven enumerated WindowSize
// constants.
func (ws WindowSize) IsValid() bool {
	return ws >= KB32 && ws <= KB2048
}

// NumBits returns log2 of the window's byte capacity.
func (ws WindowSize) NumBits() uint {
	return windowSizeTable[ws].numBits
}

// Capacity returns the window's byte capacity.
func (ws WindowSize) Capacity() uint {
	return uint(1) << ws.NumBits()
}

// PositionSlots returns P, the number of position slots for this window
// size. The main alphabet has size 256 + 8*P.
func (ws WindowSize) PositionSlots() uint {
	return windowSizeTable[ws].positionSlots
}

// MainAlphabetSize returns the number of symbols in the main alphabet for
// this window size: 256 literals plus 8*P match symbols.
func (ws WindowSize) MainAlphabetSize() uint {
	return 256 + 8*ws.PositionSlots()
}

// GoString returns the Go string representation of this WindowSize constant.
func (ws WindowSize) GoString() string {
	return enumhelper.DereferenceEnumData("WindowSize", windowSizeData, uint(ws)).GoName
}

// String returns the string representation of this WindowSize constant.
func (ws WindowSize) String() string {
	return enumhelper.DereferenceEnumData("WindowSize", windowSizeData, uint(ws)).Name
}

// MarshalJSON returns the JSON representation of this WindowSize constant.
func (ws WindowSize) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("WindowSize", windowSizeData, uint(ws))
}

// Parse parses a string representation of a WindowSize constant.
func (ws *WindowSize) Parse(str string) error {
	value, err := enumhelper.ParseEnum("WindowSize", windowSizeData, str)
	*ws = WindowSize(value)
	return err
}

var _ fmt.GoStringer = WindowSize(0)
var _ fmt.Stringer = WindowSize(0)
