package sortedmap

import (
	"gopkg.in/typ.v4"

	"github.com/cryptonstudio/crypton-sorted-map/types/avl"
)

// Map is a sorted key-value map.
// NOTE: Not thread-safe.
type Map[K, V any] struct {
	tree     avl.Tree[K, V]
	releaser Releaser[V]

	// Cursor used by SearchKey, UpperBound, First and Next
	current *avl.Node[K, V]

	// Bumped whenever entries are removed so iterators know their node may be gone
	gen uint64
}

////////////////////////////////////////////////////////////////

// New creates an empty Map ordered by compare, which is expected to return
// 0 if a == b, negative if a < b, and positive if a > b.
// New panics if compare is nil.
func New[K, V any](compare func(a, b K) int, opts ...Option[V]) *Map[K, V] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	var o options[V]
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map[K, V]{
		releaser: o.releaser,
	}
	if o.pool != nil {
		m.tree = avl.NewTreePooled[K, V](compare, o.pool)
	} else {
		m.tree = avl.NewTree[K, V](compare)
	}
	return m
}

// NewOrdered creates an empty Map for any ordered key type (ints, uints, floats, strings).
func NewOrdered[K typ.Ordered, V any](opts ...Option[V]) *Map[K, V] {
	return New[K, V](typ.Compare[K], opts...)
}

////////////////////////////////////////////////////////////////

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return m.tree.Size()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.Size() == 0
}

// Contains reports whether the map has an entry with given key.
// The cursor is not moved.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Insert adds a new entry and reports whether it was added.
// If the key is already present the map is left untouched,
// the stored value is not replaced.
func (m *Map[K, V]) Insert(key K, value V) bool {
	_, err := m.tree.Add(key, value)
	return err == nil
}

// RemoveKey removes the entry with given key.
//
// Without a Releaser the removed value is returned. With a Releaser the value
// is passed to it and the zero value is returned instead.
// The second result is false when the key was not found.
// A successful removal resets the cursor.
func (m *Map[K, V]) RemoveKey(key K) (value V, ok bool) {
	node := m.tree.Find(key)
	if node == nil {
		return
	}
	value, ok = node.Value(), true
	if m.releaser != nil {
		m.releaser.Release(value)
		var zero V
		value = zero
	}
	m.tree.Delete(node)
	m.current = nil
	m.gen++
	return
}

// RemoveAll removes every entry from the map and resets the cursor.
// NOTE: Releaser is not called for the removed values, only RemoveKey calls it.
func (m *Map[K, V]) RemoveAll() {
	m.tree.Clear()
	m.current = nil
	m.gen++
}

////////////////////////////////////////////////////////////////
// Cursor
////////////////////////////////////////////////////////////////

// SearchKey returns the value stored with given key and moves the cursor to it.
// If the key is not found the cursor is not moved.
func (m *Map[K, V]) SearchKey(key K) (value V, ok bool) {
	node := m.tree.Find(key)
	if node == nil {
		return
	}
	m.current = node
	return node.Value(), true
}

// UpperBound returns the value of the entry with the smallest key greater than
// or equal to given key and moves the cursor to it.
// When every key is less than given one the cursor is reset and ok is false.
func (m *Map[K, V]) UpperBound(key K) (value V, ok bool) {
	m.current = m.tree.Ceil(key)
	return m.currentValue()
}

// First moves the cursor to the entry with the smallest key and returns its value.
func (m *Map[K, V]) First() (value V, ok bool) {
	m.current = m.tree.MostLeft()
	return m.currentValue()
}

// Next moves the cursor to the following entry in key order and returns its value.
// Once the last entry is passed Next keeps returning false until the cursor
// is placed again by SearchKey, UpperBound or First.
func (m *Map[K, V]) Next() (value V, ok bool) {
	if m.current == nil {
		return
	}
	m.current = m.current.Next()
	return m.currentValue()
}

// Current returns the entry under the cursor.
func (m *Map[K, V]) Current() (key K, value V, ok bool) {
	if m.current == nil {
		return
	}
	return m.current.Key(), m.current.Value(), true
}

func (m *Map[K, V]) currentValue() (value V, ok bool) {
	if m.current == nil {
		return
	}
	return m.current.Value(), true
}

////////////////////////////////////////////////////////////////

// Min returns the entry with the smallest key without moving the cursor.
func (m *Map[K, V]) Min() (key K, value V, ok bool) {
	return entry(m.tree.MostLeft())
}

// Max returns the entry with the biggest key without moving the cursor.
func (m *Map[K, V]) Max() (key K, value V, ok bool) {
	return entry(m.tree.MostRight())
}

// String returns a picture of the underlying tree, useful for debugging.
func (m *Map[K, V]) String() string {
	return m.tree.String()
}

func entry[K, V any](node *avl.Node[K, V]) (key K, value V, ok bool) {
	if node == nil {
		return
	}
	return node.Key(), node.Value(), true
}
