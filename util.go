package freqtree

// bytesForBits returns the least number of bytes needed to hold n bits.
func bytesForBits(n uint) uint {
	return (n + 7) / 8
}

// paddingForBits returns the number of filler bits needed to round n bits
// up to a byte boundary.
func paddingForBits(n uint) uint8 {
	return uint8((8 - n%8) % 8)
}
