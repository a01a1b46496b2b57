package freqtree

import (
	"reflect"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect []FrequencyEntry[byte]
	}

	testData := [...]testRow{
		{
			name:   "empty",
			input:  "",
			expect: nil,
		},
		{
			name:   "single",
			input:  "aaaa",
			expect: []FrequencyEntry[byte]{{'a', 4}},
		},
		{
			name:  "abracadabra",
			input: "abracadabra",
			expect: []FrequencyEntry[byte]{
				{'a', 5},
				{'b', 2},
				{'r', 2},
				{'c', 1},
				{'d', 1},
			},
		},
		{
			name:  "ties-keep-first-seen-order",
			input: "zyxxyz",
			expect: []FrequencyEntry[byte]{
				{'z', 2},
				{'y', 2},
				{'x', 2},
			},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := CountFrequencies([]byte(row.input))
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}
