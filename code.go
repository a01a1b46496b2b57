package freqtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a path from the root of a Tree to one of its leaves, as a
// sequence of bits.  A 0 bit steps to the left child and a 1 bit steps to
// the right child.
//
// The zero value is the empty path.  Codes are immutable; StepLeft and
// StepRight return new values.
//
type Code struct {
	size uint

	// bits holds the path packed most significant bit first.  The unused
	// low bits of the last byte are always zero.
	bits []byte
}

// MakeCode is a convenience function that constructs a Code from a string
// of '0' and '1' characters.  It panics on any other character.
func MakeCode(str string) Code {
	var hc Code
	for i, ch := range str {
		assert.Assertf(ch == '0' || ch == '1', "invalid character %q at index %d in code %q", ch, i, str)
		hc = hc.step(ch == '1')
	}
	return hc
}

// Size returns the number of bits in the path.
func (hc Code) Size() uint {
	return hc.size
}

// Bit returns the i'th bit of the path, where bit 0 is the first step taken
// from the root.
func (hc Code) Bit(i uint) bool {
	assert.Assertf(i < hc.size, "bit index %d out of range for code of size %d", i, hc.size)
	return hc.bits[i/8]&(0x80>>(i%8)) != 0
}

// StepLeft returns the path extended by one step to the left.
func (hc Code) StepLeft() Code {
	return hc.step(false)
}

// StepRight returns the path extended by one step to the right.
func (hc Code) StepRight() Code {
	return hc.step(true)
}

func (hc Code) step(right bool) Code {
	out := Code{
		size: hc.size + 1,
		bits: make([]byte, bytesForBits(hc.size+1)),
	}
	copy(out.bits, hc.bits)
	if right {
		out.bits[hc.size/8] |= 0x80 >> (hc.size % 8)
	}
	return out
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this path.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := uint(0); i < prefix.size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal returns true iff both paths hold the same bits.
func (hc Code) Equal(other Code) bool {
	return hc.size == other.size && hc.HasPrefix(other)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.size))
	for i := uint(0); i < hc.size; i++ {
		if hc.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}
