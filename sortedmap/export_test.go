package sortedmap

// CheckInvariants verifies ordering, balance, heights, parents and size of the map tree.
func CheckInvariants[K, V any](m *Map[K, V]) error {
	return m.tree.Check()
}
