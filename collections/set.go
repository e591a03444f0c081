// Package collections provides generic in-memory collections.
//
// Its central type is OrderedSet, a deduplicated collection that preserves
// insertion order and supports indexed access, combining list and set
// characteristics. OrderedSets are not safe for concurrent use and are
// intended for moderate-sized collections where simplicity and correctness
// are preferred over ultimate removal performance.
package collections

import "fmt"

// OrderedSet is a set that maintains insertion order and allows indexed
// access to its elements.
//
// Adding an element always places it at the end if not already present;
// duplicates are ignored. Positional reads and removals are supported,
// positional insertion is not. Equality via Equal and hashing via HashSum
// follow set semantics and are order-insensitive.
//
// Exactly two implementations exist: the mutable set built by NewOrderedSet
// and the unmodifiable wrapper built by Unmodifiable, Of and CopyOf. The
// interface cannot be implemented outside this package.
//
// The zero value of E is an ordinary element for the mutable set, while the
// Of and CopyOf factories reject it, treating it as nil/absent.
type OrderedSet[E comparable] interface {
	// Size returns the number of elements in the set.
	Size() int
	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool
	// Contains reports whether e is in the set.
	Contains(e E) bool
	// ContainsAll reports whether every given value is in the set.
	ContainsAll(values ...E) bool
	// IndexOf returns the position of e, or -1 if e is not in the set.
	IndexOf(e E) int
	// Get returns the element at index.
	Get(index int) (E, error)
	// GetFirst returns the first element.
	GetFirst() (E, error)
	// GetLast returns the last element.
	GetLast() (E, error)
	// Add appends e at the end if not already present. It reports whether
	// the set changed.
	Add(e E) (bool, error)
	// AddAll appends each value not already present, in the given order.
	// It reports whether the set changed.
	AddAll(values ...E) (bool, error)
	// Remove removes e if present. It reports whether the set changed.
	Remove(e E) (bool, error)
	// RemoveAt removes and returns the element at index. Elements after it
	// shift down by one position.
	RemoveAt(index int) (E, error)
	// RemoveFirst removes and returns the first element.
	RemoveFirst() (E, error)
	// RemoveLast removes and returns the last element.
	RemoveLast() (E, error)
	// RetainAll removes every element not among the given values, keeping
	// the remaining elements in their original relative order. It reports
	// whether the set changed.
	RetainAll(values ...E) (bool, error)
	// RemoveAll removes every element among the given values, keeping the
	// remaining elements in their original relative order. It reports
	// whether the set changed.
	RemoveAll(values ...E) (bool, error)
	// Clear removes all elements.
	Clear() error
	// SubList returns a new independent set with the elements between
	// fromIndex, inclusive, and toIndex, exclusive. The result is not a
	// view: mutations on either set never affect the other, though element
	// values themselves are shared references.
	SubList(fromIndex, toIndex int) (OrderedSet[E], error)
	// Reversed returns a new independent set with the elements in reverse
	// order. Like SubList, the result is not a view.
	Reversed() OrderedSet[E]
	// Iterator returns a fail-fast iterator over the elements in insertion
	// order.
	Iterator() Iterator[E]
	// ToSlice returns the elements in insertion order. The returned slice
	// is a copy.
	ToSlice() []E
	// Equal reports whether both sets contain the same elements, in any
	// order. An unmodifiable set is only ever equal to another
	// unmodifiable set.
	Equal(other OrderedSet[E]) bool
	// HashSum combines the given hash of every element into an
	// order-independent sum. Two sets that are Equal produce the same sum
	// for the same hash function.
	HashSum(hash func(E) uint64) uint64
	// String returns the elements in insertion order.
	String() string

	sealedOrderedSet()
}

// Of returns an unmodifiable OrderedSet containing the given values in order
// of appearance. Duplicates are ignored, the first occurrence wins.
// Zero-valued elements are rejected with ErrNilElement.
func Of[E comparable](values ...E) (OrderedSet[E], error) {
	if err := rejectZero(values); err != nil {
		return nil, err
	}
	return Unmodifiable(NewOrderedSet(values...)), nil
}

// CopyOf returns an unmodifiable OrderedSet containing the elements of
// values in slice order. Duplicates are ignored, the first occurrence wins.
// Zero-valued elements are rejected with ErrNilElement. The result does not
// share storage with values.
func CopyOf[E comparable](values []E) (OrderedSet[E], error) {
	if err := rejectZero(values); err != nil {
		return nil, err
	}
	return Unmodifiable(NewOrderedSet(values...)), nil
}

func rejectZero[E comparable](values []E) error {
	var zero E
	for i, v := range values {
		if v == zero {
			return fmt.Errorf("%w at position %d", ErrNilElement, i)
		}
	}
	return nil
}
