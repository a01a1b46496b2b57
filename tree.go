package freqtree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a binary code tree whose leaves hold units.  Each unit's Code is
// the path from the root to its leaf.
//
// The zero value is an empty tree, ready to use.  A Tree must not be shared
// between goroutines while it is being modified.
//
type Tree[U comparable] struct {
	root   *node[U]
	leaves uint
}

type node[U comparable] struct {
	left   *node[U]
	right  *node[U]
	unit   U
	weight int
	leaf   bool
}

// singleLeafCode is the path used for the root of a Tree that holds exactly
// one leaf.  The real path would be empty, which cannot be packed into bits.
var singleLeafCode = MakeCode("0")

// BuildTree constructs a Tree by inserting each entry, in order, with
// Insert.  Entries are normally the output of CountFrequencies, i.e. sorted
// by descending Count.
func BuildTree[U comparable](entries []FrequencyEntry[U]) *Tree[U] {
	t := &Tree[U]{}
	for _, entry := range entries {
		t.Insert(entry.Unit, entry.Count)
	}
	return t
}

// Insert adds a new leaf for unit with the given weight.  Starting from the
// root:
//
//   - An empty tree gets the new leaf as its root.
//
//   - A leaf is replaced by a branch, with the old leaf on the left and the
//     new leaf on the right.
//
//   - A branch passes the new leaf down to its left child if the left child
//     is strictly lighter than the right child, and to its right child
//     otherwise.  The branch's weight then grows by the new leaf's weight.
//
// Inserting a unit that is already present is a programming error; the
// tree would hold two leaves for it, and only the leftmost is reachable by
// Path.
//
func (t *Tree[U]) Insert(unit U, weight int) {
	assert.Assertf(weight > 0, "weight %d must be positive", weight)

	leaf := &node[U]{unit: unit, weight: weight, leaf: true}
	if t.root == nil {
		t.root = leaf
	} else {
		t.root = t.root.insert(leaf)
	}
	t.leaves++
}

func (n *node[U]) insert(leaf *node[U]) *node[U] {
	if n.leaf {
		return &node[U]{
			left:   n,
			right:  leaf,
			weight: n.weight + leaf.weight,
		}
	}

	if n.left.weight < n.right.weight {
		n.left = n.left.insert(leaf)
	} else {
		n.right = n.right.insert(leaf)
	}
	n.weight = n.left.weight + n.right.weight
	return n
}

// IsEmpty returns true iff the tree has no leaves.
func (t *Tree[U]) IsEmpty() bool {
	return t.root == nil
}

// LeafCount returns the number of leaves, i.e. distinct units.
func (t *Tree[U]) LeafCount() uint {
	return t.leaves
}

// BranchCount returns the number of branch nodes.
func (t *Tree[U]) BranchCount() uint {
	if t.leaves == 0 {
		return 0
	}
	return t.leaves - 1
}

// NodeCount returns the total number of nodes.
func (t *Tree[U]) NodeCount() uint {
	return t.LeafCount() + t.BranchCount()
}

// Weight returns the total weight of all leaves.  Trees obtained from
// UnmarshalTree do not carry weights and always report 0.
func (t *Tree[U]) Weight() int {
	if t.root == nil {
		return 0
	}
	return t.root.weight
}

// Path returns the Code for unit, or false if the tree has no leaf for it.
//
// A tree with a single leaf assigns it the one-bit path "0".
//
func (t *Tree[U]) Path(unit U) (Code, bool) {
	if t.root == nil {
		return Code{}, false
	}
	if t.root.leaf {
		if t.root.unit == unit {
			return singleLeafCode, true
		}
		return Code{}, false
	}
	return t.root.find(unit, Code{})
}

func (n *node[U]) find(unit U, hc Code) (Code, bool) {
	if n.leaf {
		return hc, n.unit == unit
	}
	if found, ok := n.left.find(unit, hc.StepLeft()); ok {
		return found, true
	}
	return n.right.find(unit, hc.StepRight())
}

// Paths returns the Code for every unit in the tree.  This is equivalent
// to calling Path for each unit, but needs only one traversal.
func (t *Tree[U]) Paths() map[U]Code {
	out := make(map[U]Code, t.leaves)
	t.walk(func(n *node[U], hc Code) {
		out[n.unit] = hc
	})
	return out
}

// walk calls fn for each leaf in left-to-right order.
func (t *Tree[U]) walk(fn func(*node[U], Code)) {
	switch {
	case t.root == nil:
		return
	case t.root.leaf:
		fn(t.root, singleLeafCode)
	default:
		t.root.walk(Code{}, fn)
	}
}

func (n *node[U]) walk(hc Code, fn func(*node[U], Code)) {
	if n.leaf {
		fn(n, hc)
		return
	}
	n.left.walk(hc.StepLeft(), fn)
	n.right.walk(hc.StepRight(), fn)
}

// Equal returns true iff both trees have the same shape and the same unit
// in each leaf.  Weights are ignored, so a Tree compares equal to the result
// of serializing and deserializing it.
func (t *Tree[U]) Equal(other *Tree[U]) bool {
	return equalNodes(t.root, other.root)
}

func equalNodes[U comparable](a, b *node[U]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.leaf != b.leaf {
		return false
	}
	if a.leaf {
		return a.unit == b.unit
	}
	return equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
}

// pathLengths returns the lengths of the shortest and longest paths.
func (t *Tree[U]) pathLengths() (minSize uint, maxSize uint) {
	first := true
	t.walk(func(_ *node[U], hc Code) {
		size := hc.Size()
		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	})
	return
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree[U]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLeafCount() = %d\n", t.LeafCount())
	fmt.Fprintf(&buf, "\tBranchCount() = %d\n", t.BranchCount())
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	t.walk(func(n *node[U], hc Code) {
		fmt.Fprintf(&buf, "\tPath(%#v) = %s\n", n.unit, hc)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree[U]) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the Tree.
func (t *Tree[U]) String() string {
	if t.root == nil {
		return "(empty frequency tree)"
	}
	minSize, maxSize := t.pathLengths()
	return fmt.Sprintf("(frequency tree with %d leaves, with path lengths of %d .. %d bits)", t.leaves, minSize, maxSize)
}

var _ fmt.Stringer = (*Tree[byte])(nil)
