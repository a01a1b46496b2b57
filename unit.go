package freqtree

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Codec maps units of type U to and from bytes, so that the leaves of a
// Tree can be stored in a compressed buffer.
//
// AppendUnit appends the encoding of u to dst.  It returns an error wrapping
// ErrUnsupportedUnit if u has no encoding.
//
// DecodeUnit decodes one unit from the front of src and returns it along
// with the number of bytes consumed.  It returns an error wrapping
// ErrTruncatedInput if src is too short, or ErrUnsupportedUnit if src does
// not hold a valid unit.
//
// Encodings must be self-delimiting: DecodeUnit must not depend on what
// follows the unit in src.
//
type Codec[U any] interface {
	AppendUnit(dst []byte, u U) ([]byte, error)
	DecodeUnit(src []byte) (U, int, error)
}

// ByteCodec encodes each byte as itself.
type ByteCodec struct{}

// AppendUnit fulfills the Codec interface.
func (ByteCodec) AppendUnit(dst []byte, u byte) ([]byte, error) {
	return append(dst, u), nil
}

// DecodeUnit fulfills the Codec interface.
func (ByteCodec) DecodeUnit(src []byte) (byte, int, error) {
	if len(src) < 1 {
		return 0, 0, ErrTruncatedInput
	}
	return src[0], 1, nil
}

// RuneCodec encodes each rune as UTF-8.  Runes that are not valid Unicode
// scalar values are unsupported.
type RuneCodec struct{}

// AppendUnit fulfills the Codec interface.
func (RuneCodec) AppendUnit(dst []byte, u rune) ([]byte, error) {
	if !utf8.ValidRune(u) {
		return dst, fmt.Errorf("%w: invalid rune %#x", ErrUnsupportedUnit, u)
	}
	return utf8.AppendRune(dst, u), nil
}

// DecodeUnit fulfills the Codec interface.
func (RuneCodec) DecodeUnit(src []byte) (rune, int, error) {
	if !utf8.FullRune(src) {
		return 0, 0, ErrTruncatedInput
	}
	ch, size := utf8.DecodeRune(src)
	if ch == utf8.RuneError && size < 2 {
		return 0, 0, fmt.Errorf("%w: invalid UTF-8 sequence %#02x", ErrUnsupportedUnit, src[0])
	}
	return ch, size, nil
}

// StringCodec encodes each string as a uvarint byte length followed by the
// string's bytes.  This is useful for units that are words or grapheme
// clusters.
type StringCodec struct{}

// AppendUnit fulfills the Codec interface.
func (StringCodec) AppendUnit(dst []byte, u string) ([]byte, error) {
	dst = binary.AppendUvarint(dst, uint64(len(u)))
	return append(dst, u...), nil
}

// DecodeUnit fulfills the Codec interface.
func (StringCodec) DecodeUnit(src []byte) (string, int, error) {
	length, n := binary.Uvarint(src)
	if n == 0 {
		return "", 0, ErrTruncatedInput
	}
	if n < 0 {
		return "", 0, fmt.Errorf("%w: string length overflows 64 bits", ErrUnsupportedUnit)
	}
	if length > uint64(len(src)-n) {
		return "", 0, ErrTruncatedInput
	}
	end := n + int(length)
	return string(src[n:end]), end, nil
}

// Uint16Codec encodes each uint16 as 2 big-endian bytes.
type Uint16Codec struct{}

// AppendUnit fulfills the Codec interface.
func (Uint16Codec) AppendUnit(dst []byte, u uint16) ([]byte, error) {
	return binary.BigEndian.AppendUint16(dst, u), nil
}

// DecodeUnit fulfills the Codec interface.
func (Uint16Codec) DecodeUnit(src []byte) (uint16, int, error) {
	if len(src) < 2 {
		return 0, 0, ErrTruncatedInput
	}
	return binary.BigEndian.Uint16(src), 2, nil
}

// Uint32Codec encodes each uint32 as 4 big-endian bytes.
type Uint32Codec struct{}

// AppendUnit fulfills the Codec interface.
func (Uint32Codec) AppendUnit(dst []byte, u uint32) ([]byte, error) {
	return binary.BigEndian.AppendUint32(dst, u), nil
}

// DecodeUnit fulfills the Codec interface.
func (Uint32Codec) DecodeUnit(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, ErrTruncatedInput
	}
	return binary.BigEndian.Uint32(src), 4, nil
}

var (
	_ Codec[byte]   = ByteCodec{}
	_ Codec[rune]   = RuneCodec{}
	_ Codec[string] = StringCodec{}
	_ Codec[uint16] = Uint16Codec{}
	_ Codec[uint32] = Uint32Codec{}
)
