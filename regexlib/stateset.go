package regexlib

import (
	"fmt"
	"slices"
	"strings"

	"github.com/timtadh/data-structures/types"
)

// StateSet is a set of NFA state ids kept sorted and free of duplicates, so
// two sets are equal exactly when their slices are. It is the identity of a
// DFA state and implements types.Hashable for use as a hash table key.
type StateSet []State

// NewStateSet normalizes ids into a StateSet.
func NewStateSet(ids ...State) StateSet {
	s := slices.Clone(ids)
	slices.Sort(s)
	return StateSet(slices.Compact(s))
}

// Contains reports whether id is in s.
func (s StateSet) Contains(id State) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

func (s StateSet) Equals(other types.Equatable) bool {
	o, ok := other.(StateSet)
	return ok && slices.Equal(s, o)
}

func (s StateSet) Less(other types.Sortable) bool {
	o, ok := other.(StateSet)
	if !ok {
		return false
	}
	return slices.Compare(s, o) < 0
}

// Hash is FNV-1a over the ids.
func (s StateSet) Hash() int {
	h := uint32(2166136261)
	for _, id := range s {
		h ^= uint32(id)
		h *= 16777619
	}
	return int(h)
}

func (s StateSet) String() string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = fmt.Sprint(int(id))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
