// Package multipass compresses a byte buffer repeatedly with freqtree,
// for as long as each pass keeps making the buffer smaller.
//
// A multipass buffer has the layout:
//
//     [1 byte: level][payload]
//
// Level 0 means the payload is stored uncompressed.  Level N means the
// payload must be passed through freqtree.Decompress N times.
//
package multipass

import (
	"errors"
	"fmt"
	"math"

	"github.com/chronos-tachyon/freqtree"
)

// DefaultMaxLevel is the highest level that Compress can reach.
const DefaultMaxLevel = math.MaxUint8

// DefaultMaxSize is the largest output, in bytes, that Decompress will
// produce.
const DefaultMaxSize = 1 << 26

var (
	// ErrMissingLevel is returned by Decompress and Level for an empty
	// buffer.
	ErrMissingLevel = errors.New("multipass: missing compression level")

	// ErrTooLarge is returned when a pass of decompression would exceed
	// the maximum output size.  Each pass can grow its input eightfold, so
	// a few bytes with a high level byte can describe gigabytes.
	ErrTooLarge = freqtree.ErrTooLarge
)

// Compress compresses data up to maxLevel times, stopping early at the
// first pass that fails to shrink its input.  It returns the multipass
// buffer and the level reached.
func Compress(data []byte, maxLevel uint8) ([]byte, uint8, error) {
	current := data
	level := uint8(0)
	for level < maxLevel {
		next, err := freqtree.Compress(current, freqtree.ByteCodec{})
		if err != nil {
			return nil, 0, fmt.Errorf("multipass: level %d: %w", level+1, err)
		}
		if len(next) >= len(current) {
			break
		}
		current = next
		level++
	}

	out := make([]byte, 0, 1+len(current))
	out = append(out, level)
	out = append(out, current...)
	return out, level, nil
}

// Level returns the number of compression passes recorded in buf.
func Level(buf []byte) (uint8, error) {
	if len(buf) < 1 {
		return 0, ErrMissingLevel
	}
	return buf[0], nil
}

// Decompress reverses Compress, failing with ErrTooLarge if any pass would
// produce more than DefaultMaxSize bytes.
func Decompress(buf []byte) ([]byte, error) {
	return DecompressMax(buf, DefaultMaxSize)
}

// DecompressMax is like Decompress, but with a caller-chosen limit on the
// size of every pass's output, including the final one.  A maxSize of 0
// means no limit.
func DecompressMax(buf []byte, maxSize uint) ([]byte, error) {
	level, err := Level(buf)
	if err != nil {
		return nil, err
	}

	current := buf[1:]
	if level == 0 && maxSize != 0 && uint(len(current)) > maxSize {
		return nil, fmt.Errorf("multipass: stored data is %d bytes, limit %d: %w", len(current), maxSize, ErrTooLarge)
	}
	for pass := level; pass > 0; pass-- {
		current, err = freqtree.DecompressLimit(current, freqtree.ByteCodec{}, maxSize)
		if err != nil {
			return nil, fmt.Errorf("multipass: level %d: %w", pass, err)
		}
	}

	out := make([]byte, len(current))
	copy(out, current)
	return out, nil
}
