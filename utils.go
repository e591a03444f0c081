// Package utils provides small general-purpose helpers, alongside the
// collections and ratelimit packages of this module.
package utils

// Noop does nothing. It serves as a shared placeholder wherever a callback
// is required but no behavior is wanted.
func Noop() {}

// ComputeIfAbsent returns the value from getter if non-nil. Otherwise it
// obtains a new value from supplier, stores it through setter, and returns
// it.
func ComputeIfAbsent[T any](getter func() *T, setter func(*T), supplier func() *T) *T {
	if current := getter(); current != nil {
		return current
	}
	next := supplier()
	setter(next)
	return next
}
