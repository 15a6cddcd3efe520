// Package sortedmap implements an ordered key-value map on top of an AVL tree.
//
// Entries are kept sorted by a caller supplied comparator. Insertion, lookup,
// removal and bound queries take O(log n), walking forward from one entry
// to the next takes O(1) amortized.
//
// Every Map has a single cursor shared by SearchKey, UpperBound, First and Next,
// matching the classic C style sorted map API. Use Iter or All when more than one
// traversal must be in progress at the same time.
//
// NOTE: Not thread-safe.
package sortedmap
