package sortedmap

// Releaser disposes values removed from the map by key.
//
// Release is called exactly once for a value removed with RemoveKey.
// It is never called by RemoveAll.
type Releaser[V any] interface {
	Release(value V)
}

// ReleaseFunc adapts an ordinary function to the Releaser interface.
type ReleaseFunc[V any] func(value V)

// Release calls f(value).
func (f ReleaseFunc[V]) Release(value V) {
	f(value)
}
