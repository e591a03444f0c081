package collections

// Collector describes a four-step reduction of elements into an OrderedSet:
// Supply a fresh accumulator, Accumulate elements into it, optionally
// Combine accumulators built independently (for example one per goroutine),
// and Finish the final accumulator into the result. Sequential callers can
// skip Combine or use CollectSlice.
type Collector[E comparable] struct {
	supply     func() OrderedSet[E]
	accumulate func(partial OrderedSet[E], e E)
	combine    func(left, right OrderedSet[E]) OrderedSet[E]
	finish     func(partial OrderedSet[E]) OrderedSet[E]
}

// Supply returns a new empty accumulator.
func (c *Collector[E]) Supply() OrderedSet[E] {
	return c.supply()
}

// Accumulate folds e into partial. Duplicates are ignored.
func (c *Collector[E]) Accumulate(partial OrderedSet[E], e E) {
	c.accumulate(partial, e)
}

// Combine merges right into left and returns left. Elements of right already
// present in left are skipped, the rest keep their relative order.
func (c *Collector[E]) Combine(left, right OrderedSet[E]) OrderedSet[E] {
	return c.combine(left, right)
}

// Finish converts the final accumulator into the collected result.
func (c *Collector[E]) Finish(partial OrderedSet[E]) OrderedSet[E] {
	return c.finish(partial)
}

// ToOrderedSet returns a Collector that gathers elements into a mutable
// OrderedSet in encounter order.
func ToOrderedSet[E comparable]() *Collector[E] {
	return &Collector[E]{
		supply: func() OrderedSet[E] {
			return NewOrderedSet[E]()
		},
		accumulate: func(partial OrderedSet[E], e E) {
			_, _ = partial.Add(e)
		},
		combine: func(left, right OrderedSet[E]) OrderedSet[E] {
			_, _ = left.AddAll(right.ToSlice()...)
			return left
		},
		finish: func(partial OrderedSet[E]) OrderedSet[E] {
			return partial
		},
	}
}

// ToUnmodifiableOrderedSet returns a Collector that gathers elements like
// ToOrderedSet and wraps the result so it cannot be modified.
func ToUnmodifiableOrderedSet[E comparable]() *Collector[E] {
	c := ToOrderedSet[E]()
	c.finish = func(partial OrderedSet[E]) OrderedSet[E] {
		return Unmodifiable(partial)
	}
	return c
}

// CollectSlice folds values through c sequentially: one accumulator, every
// value accumulated in slice order, then finished.
func CollectSlice[E comparable](c *Collector[E], values []E) OrderedSet[E] {
	acc := c.Supply()
	for _, v := range values {
		c.Accumulate(acc, v)
	}
	return c.Finish(acc)
}
