package collections

// unmodifiableOrderedSet forwards reads to its delegate and rejects every
// mutation with ErrUnmodifiable. The delegate stays private to the wrapper,
// so holders of the wrapper alone can never change the elements.
type unmodifiableOrderedSet[E comparable] struct {
	delegate OrderedSet[E]
}

// Unmodifiable returns an unmodifiable OrderedSet backed by s. It is a view:
// changes made to s through other handles remain visible. Wrapping an
// already unmodifiable set returns it as is.
func Unmodifiable[E comparable](s OrderedSet[E]) OrderedSet[E] {
	if u, ok := s.(*unmodifiableOrderedSet[E]); ok {
		return u
	}
	return &unmodifiableOrderedSet[E]{delegate: s}
}

func (u *unmodifiableOrderedSet[E]) Size() int {
	return u.delegate.Size()
}

func (u *unmodifiableOrderedSet[E]) IsEmpty() bool {
	return u.delegate.IsEmpty()
}

func (u *unmodifiableOrderedSet[E]) Contains(e E) bool {
	return u.delegate.Contains(e)
}

func (u *unmodifiableOrderedSet[E]) ContainsAll(values ...E) bool {
	return u.delegate.ContainsAll(values...)
}

func (u *unmodifiableOrderedSet[E]) IndexOf(e E) int {
	return u.delegate.IndexOf(e)
}

func (u *unmodifiableOrderedSet[E]) Get(index int) (E, error) {
	return u.delegate.Get(index)
}

func (u *unmodifiableOrderedSet[E]) GetFirst() (E, error) {
	return u.delegate.GetFirst()
}

func (u *unmodifiableOrderedSet[E]) GetLast() (E, error) {
	return u.delegate.GetLast()
}

func (u *unmodifiableOrderedSet[E]) Add(e E) (bool, error) {
	return false, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) AddAll(values ...E) (bool, error) {
	return false, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) Remove(e E) (bool, error) {
	return false, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) RemoveAt(index int) (E, error) {
	var zero E
	return zero, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) RemoveFirst() (E, error) {
	var zero E
	return zero, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) RemoveLast() (E, error) {
	var zero E
	return zero, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) RetainAll(values ...E) (bool, error) {
	return false, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) RemoveAll(values ...E) (bool, error) {
	return false, ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) Clear() error {
	return ErrUnmodifiable
}

func (u *unmodifiableOrderedSet[E]) SubList(fromIndex, toIndex int) (OrderedSet[E], error) {
	sub, err := u.delegate.SubList(fromIndex, toIndex)
	if err != nil {
		return nil, err
	}
	return Unmodifiable(sub), nil
}

func (u *unmodifiableOrderedSet[E]) Reversed() OrderedSet[E] {
	return Unmodifiable(u.delegate.Reversed())
}

func (u *unmodifiableOrderedSet[E]) Iterator() Iterator[E] {
	return &unmodifiableIterator[E]{delegate: u.delegate.Iterator()}
}

func (u *unmodifiableOrderedSet[E]) ToSlice() []E {
	return u.delegate.ToSlice()
}

// Equal deliberately accepts only other unmodifiable sets, while a mutable
// set compares equal to any variant holding the same elements.
func (u *unmodifiableOrderedSet[E]) Equal(other OrderedSet[E]) bool {
	o, ok := other.(*unmodifiableOrderedSet[E])
	if !ok {
		return false
	}
	return u.delegate.Equal(o.delegate)
}

func (u *unmodifiableOrderedSet[E]) HashSum(hash func(E) uint64) uint64 {
	return u.delegate.HashSum(hash)
}

func (u *unmodifiableOrderedSet[E]) String() string {
	return u.delegate.String()
}

func (u *unmodifiableOrderedSet[E]) sealedOrderedSet() {}

type unmodifiableIterator[E comparable] struct {
	delegate Iterator[E]
}

func (it *unmodifiableIterator[E]) HasNext() (bool, error) {
	return it.delegate.HasNext()
}

func (it *unmodifiableIterator[E]) Next() (E, error) {
	return it.delegate.Next()
}

func (it *unmodifiableIterator[E]) Remove() error {
	return ErrUnmodifiable
}

func (it *unmodifiableIterator[E]) ForEachRemaining(action func(E)) error {
	return it.delegate.ForEachRemaining(action)
}
