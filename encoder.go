package freqtree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder compresses one sequence of units with a code tree built from
// that same sequence.
type Encoder[U comparable] struct {
	tree  *Tree[U]
	codes map[U]Code
	bits  BitVec
	units uint
}

// Init initializes this Encoder with the given units.  It counts the
// frequency of each distinct unit, builds a Tree from the counts, and packs
// the path of every unit, in input order, into bits.
//
// An empty input yields an empty tree and an empty payload.
//
func (e *Encoder[U]) Init(units []U) {
	tree := BuildTree(CountFrequencies(units))
	codes := tree.Paths()

	p := NewPacker()
	for index, u := range units {
		hc, found := codes[u]
		assert.Assertf(found, "unit %#v at index %d is missing from its own tree", u, index)
		p.WriteCode(hc)
	}

	*e = Encoder[U]{
		tree:  tree,
		codes: codes,
		bits:  p.Finish(),
		units: uint(len(units)),
	}
}

// Encode returns the Code for unit, or false if unit was not in the input.
func (e Encoder[U]) Encode(unit U) (Code, bool) {
	hc, found := e.codes[unit]
	return hc, found
}

// Tree returns the code tree.  The caller must not modify it.
func (e Encoder[U]) Tree() *Tree[U] {
	return e.tree
}

// Bits returns the packed paths of the input.
func (e Encoder[U]) Bits() BitVec {
	return e.bits
}

// Len returns the number of units in the input.
func (e Encoder[U]) Len() uint {
	return e.units
}

// AppendTo appends the compressed buffer to dst: the serialized tree, the
// padding byte, and the packed bits.
func (e Encoder[U]) AppendTo(dst []byte, codec Codec[U]) ([]byte, error) {
	if e.tree == nil {
		e.tree = &Tree[U]{}
	}
	dst, err := e.tree.AppendBinary(dst, codec)
	if err != nil {
		return dst, err
	}
	return e.bits.AppendBinary(dst), nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder[U]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", e.units)
	fmt.Fprintf(&buf, "\tBits().Len() = %d\n", e.bits.Len())
	fmt.Fprintf(&buf, "\tBits().Padding() = %d\n", e.bits.Padding())
	if e.tree != nil {
		e.tree.walk(func(n *node[U], hc Code) {
			fmt.Fprintf(&buf, "\tEncode(%#v) = %s\n", n.unit, hc)
		})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Compress compresses units into a self-contained buffer that Decompress
// can reverse, using codec to store the distinct units.
func Compress[U comparable](units []U, codec Codec[U]) ([]byte, error) {
	if codec == nil {
		return nil, fmt.Errorf("%w: nil Codec", ErrUnsupportedUnit)
	}

	var e Encoder[U]
	e.Init(units)

	// One tag byte per node, at least one byte per leaf unit, then the
	// padding byte and the payload.
	size := e.tree.NodeCount() + e.tree.LeafCount() + 1 + uint(len(e.bits.data))
	out, err := e.AppendTo(make([]byte, 0, size), codec)
	if err != nil {
		return nil, err
	}
	return out, nil
}
