package util

import "cmp"

// Argmin returns the index in [start, end) whose key is smallest. Keys are
// compared with a strict less-than, so the first minimal index wins ties. It
// returns -1 for an empty range.
func Argmin[K cmp.Ordered](start, end int, key func(int) K) int {
	if start >= end {
		return -1
	}

	best := start
	bestKey := key(start)
	for i := start + 1; i < end; i++ {
		if k := key(i); k < bestKey {
			best, bestKey = i, k
		}
	}
	return best
}

// ArgminOf returns the index of the item with the smallest key, or -1 if items
// is empty.
func ArgminOf[T any, K cmp.Ordered](items []T, key func(T) K) int {
	return Argmin(0, len(items), func(i int) K {
		return key(items[i])
	})
}
