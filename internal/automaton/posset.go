package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// PosSet is a canonical set of leaf positions: sorted, without duplicates.
type PosSet []int

// canonical sorts and dedupes s in place.
func canonical(s []int) PosSet {
	if len(s) == 0 {
		return PosSet{}
	}
	sort.Ints(s)
	out := s[:1]
	for _, p := range s[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return PosSet(out)
}

// union merges two canonical sets into a new one.
func union(a, b PosSet) PosSet {
	out := make(PosSet, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// Contains reports whether p is in s.
func (s PosSet) Contains(p int) bool {
	i := sort.SearchInts(s, p)
	return i < len(s) && s[i] == p
}

// Key is the comma-joined form of s. Equal sets have equal keys.
func (s PosSet) Key() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func (s PosSet) String() string { return "{" + s.Key() + "}" }
