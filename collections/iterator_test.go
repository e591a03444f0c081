package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorTraversal(t *testing.T) {
	s := NewOrderedSet("a", "b", "c")
	it := s.Iterator()
	var seen []string
	for {
		ok, err := it.HasNext()
		require.Nil(t, err)
		if !ok {
			break
		}
		e, err := it.Next()
		require.Nil(t, err)
		seen = append(seen, e)
	}
	require.Equal(t, []string{"a", "b", "c"}, seen)
	_, err := it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestIteratorRemove(t *testing.T) {
	s := NewOrderedSet("a", "b", "c")
	it := s.Iterator()
	e, err := it.Next()
	require.Nil(t, err)
	require.Equal(t, "a", e)
	e, err = it.Next()
	require.Nil(t, err)
	require.Equal(t, "b", e)
	require.Nil(t, it.Remove())
	e, err = it.Next()
	require.Nil(t, err)
	require.Equal(t, "c", e)
	ok, err := it.HasNext()
	require.Nil(t, err)
	require.Equal(t, false, ok)
	require.Equal(t, []string{"a", "c"}, s.ToSlice())
}

func TestIteratorRemoveStateErrors(t *testing.T) {
	s := NewOrderedSet("a", "b")
	it := s.Iterator()
	require.ErrorIs(t, it.Remove(), ErrIteratorState)
	_, err := it.Next()
	require.Nil(t, err)
	require.Nil(t, it.Remove())
	require.ErrorIs(t, it.Remove(), ErrIteratorState)
	require.Equal(t, []string{"b"}, s.ToSlice())
}

func TestIteratorFailFast(t *testing.T) {
	s := NewOrderedSet("a", "b")
	it := s.Iterator()
	_, err := s.Add("c")
	require.Nil(t, err)
	_, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
	_, err = it.HasNext()
	require.ErrorIs(t, err, ErrConcurrentModification)
	require.ErrorIs(t, it.Remove(), ErrConcurrentModification)
	require.ErrorIs(t, it.ForEachRemaining(func(string) {}), ErrConcurrentModification)
}

func TestIteratorSurvivesNoOpBulkCalls(t *testing.T) {
	s := NewOrderedSet("a", "b")
	it := s.Iterator()
	_, err := s.AddAll("a", "b")
	require.Nil(t, err)
	_, err = s.RetainAll("a", "b")
	require.Nil(t, err)
	_, err = s.RemoveAll("x")
	require.Nil(t, err)
	changed, err := s.Remove("x")
	require.Nil(t, err)
	require.Equal(t, false, changed)
	e, err := it.Next()
	require.Nil(t, err)
	require.Equal(t, "a", e)
}

func TestIteratorForEachRemaining(t *testing.T) {
	s := NewOrderedSet("a", "b", "c")
	it := s.Iterator()
	_, err := it.Next()
	require.Nil(t, err)
	var rest []string
	require.Nil(t, it.ForEachRemaining(func(e string) {
		rest = append(rest, e)
	}))
	require.Equal(t, []string{"b", "c"}, rest)
	ok, err := it.HasNext()
	require.Nil(t, err)
	require.Equal(t, false, ok)
	require.Nil(t, it.Remove())
	require.Equal(t, []string{"a", "b"}, s.ToSlice())
}
