package sortedmap

import (
	"iter"

	"github.com/cryptonstudio/crypton-sorted-map/types/avl"
)

type iteratorState uint8

const (
	iteratorStart iteratorState = iota
	iteratorSeek
	iteratorAt
	iteratorDone
)

// Iterator walks a Map in key order independently from the map cursor
// and from other iterators.
//
// An iterator is not valid until Next is called. Entries removed from the map
// during iteration are skipped, entries are never visited twice.
type Iterator[K, V any] struct {
	m     *Map[K, V]
	node  *avl.Node[K, V]
	key   K
	value V
	gen   uint64
	state iteratorState
}

// Iter creates an iterator positioned before the first entry of the map.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// Seek positions the iterator so the following Next call moves it to the entry
// with the smallest key greater than or equal to given key.
func (it *Iterator[K, V]) Seek(key K) {
	it.node = nil
	it.key = key
	it.state = iteratorSeek
}

// Next moves the iterator to the following entry and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	var node *avl.Node[K, V]
	switch it.state {
	case iteratorStart:
		node = it.m.tree.MostLeft()
	case iteratorSeek:
		node = it.m.tree.Ceil(it.key)
	case iteratorAt:
		if it.gen != it.m.gen {
			// Node may be released or hold another entry now, look up by key
			node = it.m.tree.Higher(it.key)
		} else {
			node = it.node.Next()
		}
	case iteratorDone:
		return false
	}
	if node == nil {
		var zero V
		it.node, it.value = nil, zero
		it.state = iteratorDone
		return false
	}
	it.node = node
	it.key, it.value = node.Key(), node.Value()
	it.gen = it.m.gen
	it.state = iteratorAt
	return true
}

// Valid reports whether the iterator is positioned at an entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.state == iteratorAt
}

// Key returns key of the current entry.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns value of the current entry as it was when the iterator moved to it.
func (it *Iterator[K, V]) Value() V {
	return it.value
}

////////////////////////////////////////////////////////////////

// All returns an iterator over the map entries from smallest to largest key.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the map entries from largest to smallest key.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node := m.tree.MostRight()
		for node != nil {
			key, gen := node.Key(), m.gen
			if !yield(key, node.Value()) {
				return
			}
			if gen != m.gen {
				node = m.tree.Lower(key)
			} else {
				node = node.Prev()
			}
		}
	}
}

// Keys returns an iterator over the map keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the map values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
