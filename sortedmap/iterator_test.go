package sortedmap_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptonstudio/crypton-sorted-map/sortedmap"
)

func newSequentialMap(t *testing.T, count int) *sortedmap.Map[int, int] {
	t.Helper()
	m := sortedmap.NewOrdered[int, int]()
	for i := 1; i <= count; i++ {
		require.True(t, m.Insert(i, i*100))
	}
	return m
}

func TestIterator(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		m := sortedmap.NewOrdered[int, int]()
		it := m.Iter()
		require.False(t, it.Valid())
		for it.Next() {
			t.Fatal("no cycle for empty map")
		}
		require.False(t, it.Next())
	})

	t.Run("step iteration", func(t *testing.T) {
		m := newSequentialMap(t, 3)
		it := m.Iter()
		require.True(t, it.Next())
		require.Equal(t, 1, it.Key())
		require.Equal(t, 100, it.Value())
		require.True(t, it.Next())
		require.Equal(t, 2, it.Key())
		require.True(t, it.Next())
		require.Equal(t, 3, it.Key())
		require.True(t, it.Valid())
		require.False(t, it.Next())
		require.False(t, it.Valid())
		require.False(t, it.Next())
	})

	t.Run("independent iterations", func(t *testing.T) {
		m := newSequentialMap(t, 5)
		first, second := m.Iter(), m.Iter()
		require.True(t, first.Next())
		require.True(t, first.Next())
		require.True(t, second.Next())
		_, ok := m.First()
		require.True(t, ok)
		require.Equal(t, 2, first.Key())
		require.Equal(t, 1, second.Key())
		require.True(t, first.Next())
		require.Equal(t, 3, first.Key())
		// Map cursor is not affected by iterators
		key, _, ok := m.Current()
		require.True(t, ok)
		require.Equal(t, 1, key)
	})

	t.Run("consume iteration", func(t *testing.T) {
		m := newSequentialMap(t, 10)
		it := m.Iter()
		visited := []int{}
		for it.Next() {
			visited = append(visited, it.Key())
			_, ok := m.RemoveKey(it.Key())
			require.True(t, ok)
		}
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, visited)
		require.True(t, m.IsEmpty())
	})

	t.Run("odd consume iteration", func(t *testing.T) {
		m := newSequentialMap(t, 10)
		it := m.Iter()
		visited := []int{}
		for it.Next() {
			visited = append(visited, it.Key())
			if it.Key()%2 == 1 {
				_, ok := m.RemoveKey(it.Key())
				require.True(t, ok)
			}
		}
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, visited)
		require.Equal(t, []int{2, 4, 6, 8, 10}, slices.Collect(m.Keys()))
		require.NoError(t, sortedmap.CheckInvariants(m))
	})

	t.Run("removed ahead are skipped", func(t *testing.T) {
		m := newSequentialMap(t, 10)
		it := m.Iter()
		require.True(t, it.Next())
		_, ok := m.RemoveKey(2)
		require.True(t, ok)
		_, ok = m.RemoveKey(3)
		require.True(t, ok)
		require.True(t, it.Next())
		require.Equal(t, 4, it.Key())
	})

	t.Run("inserted ahead are visited", func(t *testing.T) {
		m := sortedmap.NewOrdered[int, int]()
		m.Insert(10, 10)
		m.Insert(30, 30)
		it := m.Iter()
		require.True(t, it.Next())
		m.Insert(20, 20)
		require.True(t, it.Next())
		require.Equal(t, 20, it.Key())
	})

	t.Run("remove all", func(t *testing.T) {
		m := newSequentialMap(t, 4)
		it := m.Iter()
		require.True(t, it.Next())
		m.RemoveAll()
		require.False(t, it.Next())
	})

	t.Run("seek", func(t *testing.T) {
		m := sortedmap.NewOrdered[int, int]()
		for i := 0; i < 50; i += 5 {
			m.Insert(i, i)
		}
		it := m.Iter()
		it.Seek(12)
		require.True(t, it.Next())
		require.Equal(t, 15, it.Key())
		require.True(t, it.Next())
		require.Equal(t, 20, it.Key())

		it.Seek(20)
		require.True(t, it.Next())
		require.Equal(t, 20, it.Key())

		it.Seek(46)
		require.False(t, it.Next())

		it.Seek(0)
		require.True(t, it.Next())
		require.Equal(t, 0, it.Key())
	})
}

func TestSequences(t *testing.T) {
	m := newSequentialMap(t, 6)

	keys := []int{}
	values := []int{}
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, keys)
	require.Equal(t, []int{100, 200, 300, 400, 500, 600}, values)
	require.Equal(t, values, slices.Collect(m.Values()))

	backward := []int{}
	for k := range m.Backward() {
		backward = append(backward, k)
	}
	require.Equal(t, []int{6, 5, 4, 3, 2, 1}, backward)

	// Early stop
	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)

	// Removing entries while walking backward
	visited := []int{}
	for k := range m.Backward() {
		visited = append(visited, k)
		_, ok := m.RemoveKey(k)
		require.True(t, ok)
	}
	require.Equal(t, []int{6, 5, 4, 3, 2, 1}, visited)
	require.True(t, m.IsEmpty())
}
