package lzxd

import (
	"fmt"
)

// DecodeError is returned when a chunk being decompressed contains data
// that violates the LZXD bitstream format, or when the caller feeds the
// decoder more than it can produce (spec.md §7). It is always fatal: the
// Decoder that returned it is left in an undefined state and must not be
// reused.
type DecodeError struct {
	Kind ErrorKind

	// OutputOffset is the number of decoded output bytes produced by this
	// Decoder instance (across all chunks) before the error was detected.
	OutputOffset uint64

	Problem string
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("lzxd: %s at output offset %d: %s", err.Kind, err.OutputOffset, err.Problem)
}

// Is reports whether target is a *DecodeError of the same Kind, so callers
// can use errors.Is(err, &lzxd.DecodeError{Kind: lzxd.MalformedHuffman}) to
// test for one particular failure class.
func (err *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	return ok && other.Kind == err.Kind
}

var _ error = (*DecodeError)(nil)
