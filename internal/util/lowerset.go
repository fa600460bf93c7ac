package util

// A LowerSet is a set of strings that stores only the byte-lowercase form of
// its elements; all of its operations are therefore case-insensitive.
// The zero value represents an empty set.
type LowerSet struct {
	set SortedSet
}

// NewLowerSet returns a LowerSet that contains the byte-lowercase form of
// each of elems but no other elements.
func NewLowerSet(elems ...string) LowerSet {
	var set LowerSet
	for _, e := range elems {
		set.Add(e)
	}
	return set
}

// Add adds the byte-lowercase form of e to set.
func (set *LowerSet) Add(e string) {
	set.set.Add(ByteLowercase(e))
}

// Remove removes the byte-lowercase form of e from set.
func (set *LowerSet) Remove(e string) {
	set.set.Remove(ByteLowercase(e))
}

// Contains reports whether the byte-lowercase form of e is an element of set.
func (set LowerSet) Contains(e string) bool {
	return set.set.Contains(ByteLowercase(e))
}

// Size returns the cardinality of set.
func (set LowerSet) Size() int {
	return set.set.Size()
}

// ToSlice returns a slice of set's elements sorted in lexicographical order.
func (set LowerSet) ToSlice() []string {
	return set.set.ToSlice()
}

// String joins the elements of set with a comma; see [SortedSet.String].
func (set LowerSet) String() string {
	return set.set.String()
}
