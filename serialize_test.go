package freqtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTree_AppendBinary(t *testing.T) {
	actual, err := makeTestTree().AppendBinary(nil, ByteCodec{})
	if err != nil {
		t.Fatalf("AppendBinary failed: %v", err)
	}
	expect := []byte{
		0x01,
		0x00, 'a',
		0x01,
		0x01,
		0x00, 'b',
		0x00, 'd',
		0x01,
		0x00, 'r',
		0x00, 'c',
	}
	if !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}

	var empty Tree[byte]
	actual, err = empty.AppendBinary(nil, ByteCodec{})
	if err != nil {
		t.Fatalf("AppendBinary failed: %v", err)
	}
	if expect := []byte{0x02}; !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestTree_AppendBinary_UnsupportedUnit(t *testing.T) {
	var tree Tree[rune]
	tree.Insert('a', 2)
	tree.Insert(0x110000, 1)
	_, err := tree.AppendBinary(nil, RuneCodec{})
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrUnsupportedUnit, err)
	}

	_, err = tree.AppendBinary(nil, nil)
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("wrong error for nil Codec:\n\texpect: %v\n\tactual: %v", ErrUnsupportedUnit, err)
	}
}

func TestUnmarshalTree(t *testing.T) {
	for _, text := range testCorpora() {
		tree := BuildTree(CountFrequencies([]rune(text)))
		raw, err := tree.AppendBinary(nil, RuneCodec{})
		if err != nil {
			t.Fatalf("AppendBinary failed for %q: %v", text, err)
		}

		// Trailing bytes must not be consumed.
		raw = append(raw, 0xff, 0xff)

		actual, read, err := UnmarshalTree(raw, RuneCodec{})
		if err != nil {
			t.Fatalf("UnmarshalTree failed for %q: %v", text, err)
		}
		if read != len(raw)-2 {
			t.Errorf("wrong byte count for %q:\n\texpect: %d\n\tactual: %d", text, len(raw)-2, read)
		}
		if !tree.Equal(actual) {
			t.Errorf("wrong tree for %q:\n\texpect: %s\tactual: %s", text, tree.DebugString(), actual.DebugString())
		}
		if tree.LeafCount() != actual.LeafCount() {
			t.Errorf("wrong leaf count for %q:\n\texpect: %d\n\tactual: %d", text, tree.LeafCount(), actual.LeafCount())
		}

		expectPaths := tree.Paths()
		actualPaths := actual.Paths()
		for unit, hc := range expectPaths {
			if !hc.Equal(actualPaths[unit]) {
				t.Errorf("wrong path for %q in %q:\n\texpect: %s\n\tactual: %s", unit, text, hc, actualPaths[unit])
			}
		}
	}
}

func TestUnmarshalTree_Dump(t *testing.T) {
	raw, err := makeTestTree().AppendBinary(nil, ByteCodec{})
	if err != nil {
		t.Fatalf("AppendBinary failed: %v", err)
	}
	tree, _, err := UnmarshalTree(raw, ByteCodec{})
	if err != nil {
		t.Fatalf("UnmarshalTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLeafCount() = 5\n",
		"\tBranchCount() = 4\n",
		"\tWeight() = 0\n",
		"\tPath(0x61) = \"0\"\n",
		"\tPath(0x62) = \"100\"\n",
		"\tPath(0x64) = \"101\"\n",
		"\tPath(0x72) = \"110\"\n",
		"\tPath(0x63) = \"111\"\n",
		"}\n",
	}, "")
	actualDump := tree.DebugString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestUnmarshalTree_Errors(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect error
		offset int
	}

	testData := [...]testRow{
		{name: "empty", input: []byte{}, expect: ErrTruncatedInput, offset: 0},
		{name: "leaf-without-unit", input: []byte{0x00}, expect: ErrTruncatedInput, offset: 1},
		{name: "branch-without-children", input: []byte{0x01}, expect: ErrTruncatedInput, offset: 1},
		{name: "branch-without-right", input: []byte{0x01, 0x00, 'a'}, expect: ErrTruncatedInput, offset: 3},
		{name: "short-rune", input: []byte{0x01, 0x00, 'a', 0x00, 0xe4, 0xb8}, expect: ErrTruncatedInput, offset: 4},
		{name: "invalid-rune", input: []byte{0x01, 0x00, 'a', 0x00, 0xff}, expect: ErrUnsupportedUnit, offset: 4},
		{name: "unknown-tag", input: []byte{0x05}, expect: ErrCorruptEncoding, offset: 0},
		{name: "nested-empty-tag", input: []byte{0x01, 0x02}, expect: ErrCorruptEncoding, offset: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := UnmarshalTree(row.input, RuneCodec{})
			if !errors.Is(err, row.expect) {
				t.Fatalf("wrong error:\n\texpect: %v\n\tactual: %v", row.expect, err)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if de.Offset != row.offset {
				t.Errorf("wrong offset:\n\texpect: %d\n\tactual: %d", row.offset, de.Offset)
			}
		})
	}
}

func TestUnmarshalTree_DeepNesting(t *testing.T) {
	raw := bytes.Repeat([]byte{0x01}, 1<<20)
	_, _, err := UnmarshalTree(raw, ByteCodec{})
	if !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrTruncatedInput, err)
	}
}
