// Package freqtree implements a lossless compressor that builds a prefix
// code tailored to one specific input.  The code tree is grown by inserting
// each distinct unit, most frequent first, into whichever subtree is
// currently lighter.  This is not the bottom-up Huffman merge, so the
// resulting code is not always optimal, but it is cheap to build and it is
// fully determined by the input.
//
// A compressed buffer has the layout:
//
//     [serialized tree][1 byte: padding bit count, 0 .. 7][packed bits]
//
// The tree is serialized in pre-order, one tag byte per node, with each
// leaf's unit written by a caller-supplied Codec.  The packed bits are
// written most significant bit first.
//
// A code built for one input is only valid for that input.
//
package freqtree
