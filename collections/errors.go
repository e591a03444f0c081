package collections

import "errors"

var (
	// ErrIndexOutOfRange is returned by positional operations when the index
	// does not denote an element of the set.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoSuchElement is returned by first/last accessors on an empty set
	// and by Next on an exhausted iterator.
	ErrNoSuchElement = errors.New("no such element")
	// ErrIteratorState is returned by Iterator.Remove when there is no
	// element to remove, that is before the first Next or twice in a row.
	ErrIteratorState = errors.New("invalid iterator state")
	// ErrConcurrentModification is returned by an iterator that observed a
	// structural change made through another handle to the same set.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrUnmodifiable is returned by every mutating operation on an
	// unmodifiable set and by Remove on its iterators.
	ErrUnmodifiable = errors.New("set is unmodifiable")
	// ErrNilElement is returned by Of and CopyOf when an element is the zero
	// value of its type, which these factories treat as nil/absent.
	ErrNilElement = errors.New("nil element")
)
