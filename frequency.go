package freqtree

import (
	"sort"
)

// FrequencyEntry pairs a unit with the number of times it occurs.
type FrequencyEntry[U comparable] struct {
	Unit  U
	Count int
}

// CountFrequencies returns one FrequencyEntry for each distinct unit in
// units, sorted by descending Count.  Units with equal counts appear in the
// order in which they were first seen.
//
// An empty input yields an empty (nil) result.
//
func CountFrequencies[U comparable](units []U) []FrequencyEntry[U] {
	if len(units) == 0 {
		return nil
	}

	index := make(map[U]int)
	var entries byCount[U]
	for _, u := range units {
		if i, found := index[u]; found {
			entries[i].Count++
			continue
		}
		index[u] = len(entries)
		entries = append(entries, FrequencyEntry[U]{Unit: u, Count: 1})
	}

	entries.Sort()
	return entries
}

// type byCount {{{

type byCount[U comparable] []FrequencyEntry[U]

func (list byCount[U]) Sort() {
	sort.Stable(list)
}

func (list byCount[U]) Len() int {
	return len(list)
}

func (list byCount[U]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCount[U]) Less(i, j int) bool {
	return list[i].Count > list[j].Count
}

var _ sort.Interface = byCount[byte](nil)

// }}}
