package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type orderedSet[E comparable] struct {
	elements []E
	index    map[E]int
	version  int
}

// NewOrderedSet returns a mutable OrderedSet seeded with the given values in
// order of appearance. Duplicates are ignored, the first occurrence wins.
func NewOrderedSet[E comparable](values ...E) OrderedSet[E] {
	s := &orderedSet[E]{
		index: make(map[E]int, len(values)),
	}
	for _, v := range values {
		s.insert(v)
	}
	return s
}

func (s *orderedSet[E]) Size() int {
	return len(s.elements)
}

func (s *orderedSet[E]) IsEmpty() bool {
	return len(s.elements) == 0
}

func (s *orderedSet[E]) Contains(e E) bool {
	_, ok := s.index[e]
	return ok
}

func (s *orderedSet[E]) ContainsAll(values ...E) bool {
	for _, v := range values {
		if _, ok := s.index[v]; !ok {
			return false
		}
	}
	return true
}

func (s *orderedSet[E]) IndexOf(e E) int {
	if i, ok := s.index[e]; ok {
		return i
	}
	return -1
}

func (s *orderedSet[E]) Get(index int) (E, error) {
	if index < 0 || index >= len(s.elements) {
		var zero E
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(s.elements))
	}
	return s.elements[index], nil
}

func (s *orderedSet[E]) GetFirst() (E, error) {
	if len(s.elements) == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}
	return s.elements[0], nil
}

func (s *orderedSet[E]) GetLast() (E, error) {
	if len(s.elements) == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}
	return s.elements[len(s.elements)-1], nil
}

func (s *orderedSet[E]) Add(e E) (bool, error) {
	if !s.insert(e) {
		return false, nil
	}
	s.version++
	return true, nil
}

func (s *orderedSet[E]) AddAll(values ...E) (bool, error) {
	changed := false
	for _, v := range values {
		if s.insert(v) {
			changed = true
		}
	}
	if changed {
		s.version++
	}
	return changed, nil
}

func (s *orderedSet[E]) Remove(e E) (bool, error) {
	i, ok := s.index[e]
	if !ok {
		return false, nil
	}
	s.removeAt(i)
	return true, nil
}

func (s *orderedSet[E]) RemoveAt(index int) (E, error) {
	if index < 0 || index >= len(s.elements) {
		var zero E
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(s.elements))
	}
	return s.removeAt(index), nil
}

func (s *orderedSet[E]) RemoveFirst() (E, error) {
	if len(s.elements) == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}
	return s.removeAt(0), nil
}

func (s *orderedSet[E]) RemoveLast() (E, error) {
	if len(s.elements) == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}
	return s.removeAt(len(s.elements) - 1), nil
}

func (s *orderedSet[E]) RetainAll(values ...E) (bool, error) {
	keep := make(map[E]struct{}, len(values))
	for _, v := range values {
		keep[v] = struct{}{}
	}
	return s.rebuild(func(e E) bool {
		_, ok := keep[e]
		return ok
	}), nil
}

func (s *orderedSet[E]) RemoveAll(values ...E) (bool, error) {
	drop := make(map[E]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}
	return s.rebuild(func(e E) bool {
		_, ok := drop[e]
		return !ok
	}), nil
}

func (s *orderedSet[E]) Clear() error {
	s.elements = nil
	s.index = make(map[E]int)
	s.version++
	return nil
}

func (s *orderedSet[E]) SubList(fromIndex, toIndex int) (OrderedSet[E], error) {
	if fromIndex < 0 {
		return nil, fmt.Errorf("%w: fromIndex %d", ErrIndexOutOfRange, fromIndex)
	}
	if toIndex > len(s.elements) {
		return nil, fmt.Errorf("%w: toIndex %d, size %d", ErrIndexOutOfRange, toIndex, len(s.elements))
	}
	if fromIndex > toIndex {
		return nil, fmt.Errorf("%w: fromIndex %d greater than toIndex %d", ErrIndexOutOfRange, fromIndex, toIndex)
	}
	return NewOrderedSet(s.elements[fromIndex:toIndex]...), nil
}

func (s *orderedSet[E]) Reversed() OrderedSet[E] {
	out := &orderedSet[E]{
		index: make(map[E]int, len(s.elements)),
	}
	for i := len(s.elements) - 1; i >= 0; i-- {
		out.insert(s.elements[i])
	}
	return out
}

func (s *orderedSet[E]) Iterator() Iterator[E] {
	return &setIterator[E]{
		owner:           s,
		lastIdx:         -1,
		expectedVersion: s.version,
	}
}

func (s *orderedSet[E]) ToSlice() []E {
	return slices.Clone(s.elements)
}

func (s *orderedSet[E]) Equal(other OrderedSet[E]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*orderedSet[E]); ok && o == s {
		return true
	}
	if s.Size() != other.Size() {
		return false
	}
	return s.ContainsAll(other.ToSlice()...)
}

func (s *orderedSet[E]) HashSum(hash func(E) uint64) uint64 {
	var sum uint64
	for _, e := range s.elements {
		sum += hash(e)
	}
	return sum
}

func (s *orderedSet[E]) String() string {
	return fmt.Sprint(s.elements)
}

func (s *orderedSet[E]) sealedOrderedSet() {}

// insert appends e if absent and reports whether it did. It does not touch
// the version counter, callers decide when a structural change is visible.
func (s *orderedSet[E]) insert(e E) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.elements)
	s.elements = append(s.elements, e)
	return true
}

// removeAt removes and returns the element at index, which callers have
// already checked to be in range. Every element after it shifts down one
// position and gets its index remapped.
func (s *orderedSet[E]) removeAt(index int) E {
	e := s.elements[index]
	s.elements = append(s.elements[:index], s.elements[index+1:]...)
	delete(s.index, e)
	for i := index; i < len(s.elements); i++ {
		s.index[s.elements[i]] = i
	}
	s.version++
	return e
}

// rebuild replaces the backing storage with the elements satisfying keep,
// preserving their relative order. It reports whether anything was dropped.
func (s *orderedSet[E]) rebuild(keep func(E) bool) bool {
	if len(s.elements) == 0 {
		return false
	}
	elements := make([]E, 0, len(s.elements))
	index := make(map[E]int, len(s.elements))
	for _, e := range s.elements {
		if keep(e) {
			index[e] = len(elements)
			elements = append(elements, e)
		}
	}
	if len(elements) == len(s.elements) {
		return false
	}
	s.elements = elements
	s.index = index
	s.version++
	return true
}
