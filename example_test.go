package freqtree_test

import (
	"fmt"

	"github.com/chronos-tachyon/freqtree"
)

func Example() {
	text := "abracadabra"

	compressed, err := freqtree.Compress([]byte(text), freqtree.ByteCodec{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", compressed)

	units, err := freqtree.Decompress(compressed, freqtree.ByteCodec{})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(units))

	// Output:
	// 01 00 61 01 01 00 62 00 64 01 00 72 00 63 01 4c ea 98
	// abracadabra
}

func ExampleTree_Path() {
	tree := freqtree.BuildTree(freqtree.CountFrequencies([]rune("mississippi")))
	for _, ch := range "imsp" {
		hc, _ := tree.Path(ch)
		fmt.Printf("%c %s\n", ch, hc)
	}

	// Output:
	// i "00"
	// m "01"
	// s "10"
	// p "11"
}
