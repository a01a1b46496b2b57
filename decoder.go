package freqtree

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder reverses the work of an Encoder: it reads a compressed buffer
// and reconstructs the original sequence of units.
type Decoder[U comparable] struct {
	tree *Tree[U]
	bits BitVec

	// payloadOffset is the position of the first payload byte within the
	// buffer passed to Init, for error reporting.
	payloadOffset int
}

// Init initializes this Decoder from a compressed buffer, using codec to
// read the unit in each leaf of the serialized tree.  It parses the tree and
// the padding byte; the payload is not examined until Decode.
func (d *Decoder[U]) Init(buf []byte, codec Codec[U]) error {
	tree, read, err := UnmarshalTree(buf, codec)
	if err != nil {
		return err
	}

	bits, err := UnmarshalBitVec(buf[read:])
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Offset += read
		}
		return err
	}

	*d = Decoder[U]{
		tree:          tree,
		bits:          bits,
		payloadOffset: read + 1,
	}
	return nil
}

// Tree returns the deserialized code tree.  The caller must not modify it.
func (d Decoder[U]) Tree() *Tree[U] {
	return d.tree
}

// Bits returns the packed payload.
func (d Decoder[U]) Bits() BitVec {
	return d.bits
}

// maxInitialUnits bounds the output slice reserved before decoding starts,
// so that a large payload of long units does not reserve memory up front.
const maxInitialUnits = 1 << 16

// Decode walks the tree once per payload bit, emitting a unit at each leaf
// and starting again from the root.  It fails with ErrCorruptEncoding if the
// bits run out part way along a path.
func (d Decoder[U]) Decode() ([]U, error) {
	return d.decode(0)
}

// DecodeLimit is like Decode, but fails with ErrTooLarge as soon as more
// than limit units have been decoded.  A limit of 0 means no limit.
func (d Decoder[U]) DecodeLimit(limit uint) ([]U, error) {
	return d.decode(limit)
}

func (d Decoder[U]) decode(limit uint) ([]U, error) {
	if d.tree == nil || d.tree.root == nil {
		if n := d.bits.Len(); n != 0 {
			return nil, decodeErrorf(ErrCorruptEncoding, d.payloadOffset, "empty tree with %d payload bits", n)
		}
		return []U{}, nil
	}

	root := d.tree.root
	u := NewUnpacker(d.bits)

	out := make([]U, 0, reserveUnits(u.Remaining(), limit))

	emit := func(index uint, unit U) error {
		if limit != 0 && uint(len(out)) >= limit {
			return decodeErrorf(ErrTooLarge, d.offsetOf(index), "output exceeds %d units", limit)
		}
		out = append(out, unit)
		return nil
	}

	if root.leaf {
		for index := uint(0); u.Remaining() != 0; index++ {
			bit, err := u.ReadBit()
			if err != nil {
				return nil, d.bitError(index, err)
			}
			if bit {
				return nil, decodeErrorf(ErrCorruptEncoding, d.offsetOf(index), "bit %d is 1, but the tree has a single leaf", index)
			}
			if err := emit(index, root.unit); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	n := root
	for index := uint(0); u.Remaining() != 0; index++ {
		bit, err := u.ReadBit()
		if err != nil {
			return nil, d.bitError(index, err)
		}
		if bit {
			n = n.right
		} else {
			n = n.left
		}
		if n.leaf {
			if err := emit(index, n.unit); err != nil {
				return nil, err
			}
			n = root
		}
	}
	if n != root {
		return nil, decodeErrorf(ErrCorruptEncoding, d.offsetOf(d.bits.Len()), "payload ends part way along a path")
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder[U]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tBits().Len() = %d\n", d.bits.Len())
	fmt.Fprintf(&buf, "\tBits().Padding() = %d\n", d.bits.Padding())
	if d.tree != nil {
		d.tree.walk(func(n *node[U], hc Code) {
			fmt.Fprintf(&buf, "\tDecode(%s) = %#v\n", hc, n.unit)
		})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d Decoder[U]) DebugString() string {
	var buf bytes.Buffer
	_, _ = d.Dump(&buf)
	return buf.String()
}

// reserveUnits returns the capacity to reserve for decoding a payload of
// the given number of bits.  Each bit yields at most one unit.
func reserveUnits(bits uint, limit uint) uint {
	n := bits
	if n > maxInitialUnits {
		n = maxInitialUnits
	}
	if limit != 0 && n > limit {
		n = limit
	}
	return n
}

func (d Decoder[U]) offsetOf(bitIndex uint) int {
	return d.payloadOffset + int(bitIndex/8)
}

func (d Decoder[U]) bitError(index uint, err error) error {
	return &DecodeError{
		Kind:   ErrTruncatedInput,
		Offset: d.offsetOf(index),
		Detail: fmt.Sprintf("failed to read bit %d: %v", index, err),
	}
}

// Decompress reverses Compress, using codec to read the distinct units.
func Decompress[U comparable](buf []byte, codec Codec[U]) ([]U, error) {
	var d Decoder[U]
	if err := d.Init(buf, codec); err != nil {
		return nil, err
	}
	return d.Decode()
}

// DecompressLimit is like Decompress, but fails with ErrTooLarge if the
// buffer holds more than limit units.  A limit of 0 means no limit.
func DecompressLimit[U comparable](buf []byte, codec Codec[U], limit uint) ([]U, error) {
	var d Decoder[U]
	if err := d.Init(buf, codec); err != nil {
		return nil, err
	}
	return d.DecodeLimit(limit)
}
