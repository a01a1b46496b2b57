package freqtree

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitVec is a byte-aligned sequence of bits, stored most significant bit
// first, together with the number of padding bits at the end of its last
// byte.  Padding bits carry no meaning; Packer writes them as zero and
// Unpacker ignores them.
type BitVec struct {
	data    []byte
	padding uint8
}

// Len returns the number of significant bits.
func (v BitVec) Len() uint {
	return uint(len(v.data))*8 - uint(v.padding)
}

// Padding returns the number of padding bits in the last byte, 0 .. 7.
func (v BitVec) Padding() uint8 {
	return v.padding
}

// Bytes returns the packed bits, including padding.  The caller must not
// modify the returned slice.
func (v BitVec) Bytes() []byte {
	return v.data
}

// Bools returns the significant bits as a slice of bools.
func (v BitVec) Bools() []bool {
	out := make([]bool, 0, v.Len())
	u := NewUnpacker(v)
	for u.Remaining() != 0 {
		bit, err := u.ReadBit()
		assert.Assertf(err == nil, "ReadBit failed with %d bits remaining: %v", u.Remaining(), err)
		out = append(out, bit)
	}
	return out
}

// AppendBinary appends the serialized form of the BitVec to dst: one byte
// holding the padding count, followed by the packed bits.
func (v BitVec) AppendBinary(dst []byte) []byte {
	dst = append(dst, v.padding)
	return append(dst, v.data...)
}

// MarshalBinary returns the serialized form of the BitVec.
func (v BitVec) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 1+len(v.data))), nil
}

// UnmarshalBitVec parses the serialized form written by AppendBinary.  It
// consumes all of buf.
func UnmarshalBitVec(buf []byte) (BitVec, error) {
	if len(buf) < 1 {
		return BitVec{}, decodeErrorf(ErrTruncatedInput, 0, "missing padding byte")
	}
	padding := buf[0]
	if padding > 7 {
		return BitVec{}, decodeErrorf(ErrMalformedPadding, 0, "padding count %d > 7", padding)
	}
	data := buf[1:]
	if len(data) == 0 && padding != 0 {
		return BitVec{}, decodeErrorf(ErrMalformedPadding, 0, "padding count %d with empty payload", padding)
	}
	return BitVec{data: data, padding: padding}, nil
}

// BitVecFromBools packs a slice of bools into a BitVec.
func BitVecFromBools(bits []bool) BitVec {
	p := NewPacker()
	for _, bit := range bits {
		p.WriteBit(bit)
	}
	return p.Finish()
}

// Packer accumulates bits into a BitVec.
type Packer struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size uint
}

// NewPacker returns an empty Packer.
func NewPacker() *Packer {
	p := &Packer{}
	p.w = bitio.NewWriter(&p.buf)
	return p
}

// Len returns the number of bits written so far.
func (p *Packer) Len() uint {
	return p.size
}

// WriteBit appends a single bit.
func (p *Packer) WriteBit(bit bool) {
	err := p.w.WriteBool(bit)
	assert.Assertf(err == nil, "bitio.Writer.WriteBool failed: %v", err)
	p.size++
}

// WriteCode appends every bit of hc, in order.
func (p *Packer) WriteCode(hc Code) {
	full := hc.size / 8
	for i := uint(0); i < full; i++ {
		p.writeBits(uint64(hc.bits[i]), 8)
	}
	if rem := uint8(hc.size % 8); rem != 0 {
		p.writeBits(uint64(hc.bits[full]>>(8-rem)), rem)
	}
	p.size += hc.size
}

func (p *Packer) writeBits(r uint64, n uint8) {
	err := p.w.WriteBits(r, n)
	assert.Assertf(err == nil, "bitio.Writer.WriteBits failed: %v", err)
}

// Finish pads the written bits out to a byte boundary and returns them.
// The Packer must not be used afterward.
func (p *Packer) Finish() BitVec {
	skipped, err := p.w.Align()
	assert.Assertf(err == nil, "bitio.Writer.Align failed: %v", err)
	err = p.w.Close()
	assert.Assertf(err == nil, "bitio.Writer.Close failed: %v", err)
	assert.Assertf(skipped == paddingForBits(p.size), "padded %d bits after %d bits written", skipped, p.size)
	return BitVec{data: p.buf.Bytes(), padding: skipped}
}

// Unpacker reads the significant bits of a BitVec, in order.
type Unpacker struct {
	r         *bitio.Reader
	remaining uint
}

// NewUnpacker returns an Unpacker positioned at the first bit of v.
func NewUnpacker(v BitVec) *Unpacker {
	return &Unpacker{
		r:         bitio.NewReader(bytes.NewReader(v.data)),
		remaining: v.Len(),
	}
}

// Remaining returns the number of significant bits not yet read.
func (u *Unpacker) Remaining() uint {
	return u.remaining
}

// ReadBit returns the next bit.  It returns io.EOF once every significant
// bit has been read; padding bits are never returned.
func (u *Unpacker) ReadBit() (bool, error) {
	if u.remaining == 0 {
		return false, io.EOF
	}
	bit, err := u.r.ReadBool()
	if err != nil {
		return false, err
	}
	u.remaining--
	return bit, nil
}
