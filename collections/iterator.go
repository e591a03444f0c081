package collections

// Iterator walks a set in insertion order.
//
// Iterators are fail-fast: once the underlying set is structurally changed
// through anything other than this iterator's own Remove, every subsequent
// call returns ErrConcurrentModification. Removing through the iterator
// keeps it valid and pulls the traversal back so no element is skipped.
type Iterator[E comparable] interface {
	// HasNext reports whether the iteration has more elements.
	HasNext() (bool, error)
	// Next returns the next element, or ErrNoSuchElement when the
	// iteration is exhausted.
	Next() (E, error)
	// Remove removes from the set the element returned by the last Next.
	// It returns ErrIteratorState if Next has not been called yet or if
	// Remove was already called after the last Next.
	Remove() error
	// ForEachRemaining calls action on each of the remaining elements.
	ForEachRemaining(action func(E)) error
}

type setIterator[E comparable] struct {
	owner           *orderedSet[E]
	cursor          int
	lastIdx         int
	expectedVersion int
}

func (it *setIterator[E]) HasNext() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}
	return it.cursor < len(it.owner.elements), nil
}

func (it *setIterator[E]) Next() (E, error) {
	var zero E
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.cursor >= len(it.owner.elements) {
		return zero, ErrNoSuchElement
	}
	e := it.owner.elements[it.cursor]
	it.lastIdx = it.cursor
	it.cursor++
	return e, nil
}

func (it *setIterator[E]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.lastIdx < 0 {
		return ErrIteratorState
	}
	it.owner.removeAt(it.lastIdx)
	// The removed slot is refilled by the suffix shift, so the cursor moves
	// back onto it. The removal bumped the owner's version, resynchronize so
	// our own edit does not trip the fail-fast check.
	it.cursor = it.lastIdx
	it.lastIdx = -1
	it.expectedVersion = it.owner.version
	return nil
}

func (it *setIterator[E]) ForEachRemaining(action func(E)) error {
	for {
		ok, err := it.HasNext()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		e, err := it.Next()
		if err != nil {
			return err
		}
		action(e)
	}
}

func (it *setIterator[E]) check() error {
	if it.expectedVersion != it.owner.version {
		return ErrConcurrentModification
	}
	return nil
}
