package refs

// Comparator defines a total order over elements. It returns a value
// less than zero when a sorts before b, zero when the two are
// equivalent, and a value greater than zero when a sorts after b.
//
// The sorted operations (Sort, AddSorted, AddOrReplaceSorted,
// IndexOfSorted) all take the comparator as a parameter rather than
// storing one, so a single array can be re-sorted under different
// orders.
type Comparator[T any] func(a, b T) int

// findInsertIndex binary-chops for the position at which obj should be
// inserted to keep elems sorted under cmp. Ties land after the run of
// equivalent elements, so repeated sorted insertion of equal items
// preserves their insertion order.
func findInsertIndex[T any](cmp Comparator[T], elems []T, obj T) int {
	lo, hi := 0, len(elems)
	for lo < hi {
		mid := (lo + hi) / 2
		if mid == lo {
			if cmp(obj, elems[mid]) >= 0 {
				lo++
			}
			break
		}
		if cmp(obj, elems[mid]) >= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
