package freqtree

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when a buffer ends before the
	// structure it declares is complete.
	ErrTruncatedInput = errors.New("freqtree: truncated input")

	// ErrCorruptEncoding is returned when a buffer is structurally
	// invalid: an unknown tree tag, or a bit payload that does not end on
	// a leaf.
	ErrCorruptEncoding = errors.New("freqtree: corrupt encoding")

	// ErrMalformedPadding is returned when the padding byte is not a
	// legal padding count for the payload that follows it.
	ErrMalformedPadding = errors.New("freqtree: malformed padding")

	// ErrUnsupportedUnit is returned when a unit cannot be mapped to or
	// from bytes by the Codec in use.
	ErrUnsupportedUnit = errors.New("freqtree: unsupported unit")

	// ErrTooLarge is returned when decoding would produce more units than
	// the caller allowed.
	ErrTooLarge = errors.New("freqtree: output too large")
)

// DecodeError reports where in a compressed buffer decoding failed.
//
// Kind is always one of the Err* sentinels in this package, so callers can
// test for it with errors.Is.
//
type DecodeError struct {
	Kind   error
	Offset int
	Detail string
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	if err.Detail == "" {
		return fmt.Sprintf("%v at offset %d", err.Kind, err.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", err.Kind, err.Offset, err.Detail)
}

// Unwrap returns the sentinel error describing the failure.
func (err *DecodeError) Unwrap() error {
	return err.Kind
}

var _ error = (*DecodeError)(nil)

func decodeErrorf(kind error, offset int, format string, args ...interface{}) error {
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}
