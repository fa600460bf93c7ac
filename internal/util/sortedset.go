package util

import (
	"slices"
	"strings"
)

// A SortedSet represents a set of strings sorted in lexicographical order.
// Membership is case-sensitive.
// The zero value represents an empty set.
type SortedSet struct {
	elems []string // invariant: sorted, no dupes
}

// NewSortedSet returns a SortedSet that contains all of elems
// but no other elements.
func NewSortedSet(elems ...string) SortedSet {
	elems = slices.Clone(elems)
	slices.Sort(elems)
	return SortedSet{elems: slices.Compact(elems)}
}

// Add adds e to set. Adding an element that set already contains is a no-op.
func (set *SortedSet) Add(e string) {
	i, found := slices.BinarySearch(set.elems, e)
	if found {
		return
	}
	set.elems = slices.Insert(set.elems, i, e)
}

// Remove removes e from set. Removing an absent element is a no-op.
func (set *SortedSet) Remove(e string) {
	i, found := slices.BinarySearch(set.elems, e)
	if !found {
		return
	}
	set.elems = slices.Delete(set.elems, i, i+1)
}

// Contains reports whether e is an element of set.
func (set SortedSet) Contains(e string) bool {
	_, found := slices.BinarySearch(set.elems, e)
	return found
}

// Size returns the cardinality of set.
func (set SortedSet) Size() int {
	return len(set.elems)
}

// IsSingleton reports whether set contains e and nothing else.
func (set SortedSet) IsSingleton(e string) bool {
	return len(set.elems) == 1 && set.elems[0] == e
}

// ToSlice returns a slice of set's elements sorted in lexicographical order.
func (set SortedSet) ToSlice() []string {
	// Clients may mutate the result; see (*corsfilter.Config).Origins.
	return slices.Clone(set.elems)
}

// String joins the elements of set (sorted in lexicographical order)
// with a comma and returns the result. The empty set yields "".
func (set SortedSet) String() string {
	return strings.Join(set.elems, ",")
}
