package freqtree

import (
	"errors"
	"fmt"
)

// Serialized trees are written in pre-order with one tag byte per node.
// A leaf tag is followed by its unit, as written by the Codec; a branch tag
// is followed by its left subtree and then its right subtree.  An empty tree
// is the single byte tagEmpty.
const (
	tagLeaf   byte = 0x00
	tagBranch byte = 0x01
	tagEmpty  byte = 0x02
)

// AppendBinary appends the serialized form of the Tree to dst, using codec
// to write the unit in each leaf.  Weights are not written.
func (t *Tree[U]) AppendBinary(dst []byte, codec Codec[U]) ([]byte, error) {
	if codec == nil {
		return dst, fmt.Errorf("%w: nil Codec", ErrUnsupportedUnit)
	}
	if t.root == nil {
		return append(dst, tagEmpty), nil
	}
	return t.root.appendBinary(dst, codec)
}

func (n *node[U]) appendBinary(dst []byte, codec Codec[U]) ([]byte, error) {
	if n.leaf {
		dst = append(dst, tagLeaf)
		out, err := codec.AppendUnit(dst, n.unit)
		if err != nil {
			return dst, fmt.Errorf("failed to serialize unit %#v: %w", n.unit, err)
		}
		return out, nil
	}

	dst = append(dst, tagBranch)
	dst, err := n.left.appendBinary(dst, codec)
	if err != nil {
		return dst, err
	}
	return n.right.appendBinary(dst, codec)
}

// UnmarshalTree parses a Tree from the front of buf, using codec to read
// the unit in each leaf.  It returns the Tree and the number of bytes
// consumed.  The bytes after the tree are not examined.
//
// The returned Tree has the same paths as the Tree that was serialized, but
// all of its weights are 0.
//
func UnmarshalTree[U comparable](buf []byte, codec Codec[U]) (*Tree[U], int, error) {
	if codec == nil {
		return nil, 0, fmt.Errorf("%w: nil Codec", ErrUnsupportedUnit)
	}
	if len(buf) < 1 {
		return nil, 0, decodeErrorf(ErrTruncatedInput, 0, "missing tree")
	}
	if buf[0] == tagEmpty {
		return &Tree[U]{}, 1, nil
	}

	// The stack holds branches whose right child has not been read yet.
	// Using an explicit stack keeps hostile input from nesting branches
	// deeply enough to exhaust the goroutine stack.
	t := &Tree[U]{}
	var stack []*node[U]
	pos := 0
	for {
		if pos >= len(buf) {
			return nil, pos, decodeErrorf(ErrTruncatedInput, pos, "tree ends with %d unfinished branches", len(stack))
		}

		var n *node[U]
		switch tag := buf[pos]; tag {
		case tagLeaf:
			unit, size, err := codec.DecodeUnit(buf[pos+1:])
			if err != nil {
				return nil, pos, unitError(pos+1, err)
			}
			n = &node[U]{unit: unit, leaf: true}
			t.leaves++
			pos += 1 + size

		case tagBranch:
			n = &node[U]{}
			pos++

		default:
			return nil, pos, decodeErrorf(ErrCorruptEncoding, pos, "unknown tree tag %#02x", tag)
		}

		if len(stack) == 0 {
			t.root = n
		} else if top := stack[len(stack)-1]; top.left == nil {
			top.left = n
		} else {
			top.right = n
			stack = stack[:len(stack)-1]
		}

		if !n.leaf {
			stack = append(stack, n)
		}

		if len(stack) == 0 {
			return t, pos, nil
		}
	}
}

func unitError(offset int, err error) error {
	kind := ErrUnsupportedUnit
	if errors.Is(err, ErrTruncatedInput) {
		kind = ErrTruncatedInput
	}
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf("failed to decode unit: %v", err),
	}
}
