package sortedmap

import (
	"sync"

	"github.com/cryptonstudio/crypton-sorted-map/types/avl"
)

type options[V any] struct {
	releaser Releaser[V]
	pool     *sync.Pool
}

// Option configures a Map created by New.
type Option[V any] func(*options[V])

// WithReleaser makes RemoveKey hand removed values to r instead of returning them.
func WithReleaser[V any](r Releaser[V]) Option[V] {
	return func(o *options[V]) {
		o.releaser = r
	}
}

// WithRelease is WithReleaser for a plain function.
func WithRelease[V any](f func(value V)) Option[V] {
	return func(o *options[V]) {
		if f == nil {
			o.releaser = nil
			return
		}
		o.releaser = ReleaseFunc[V](f)
	}
}

// WithNodePool makes the map allocate and release tree nodes using given pool.
// The pool must produce *avl.Node values of the map key/value types, see NewNodePool.
func WithNodePool[V any](pool *sync.Pool) Option[V] {
	return func(o *options[V]) {
		o.pool = pool
	}
}

// NewNodePool creates a pool of tree nodes which can be shared by maps of the same types.
func NewNodePool[K, V any]() *sync.Pool {
	return &sync.Pool{New: func() any {
		return new(avl.Node[K, V])
	}}
}
