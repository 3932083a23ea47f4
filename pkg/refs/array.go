package refs

import (
	"slices"
	"sync"
)

// Array is a resizable sequence of strong references to Counted
// objects. Adding an object takes one reference; removing, overwriting
// or clearing drops it again via [Release]. A nil handle is a valid
// occupant of any slot.
//
// The zero value is an empty array ready for use. Copy semantics go
// through Clone, CopyFrom and SwapWith; an Array value must not be
// copied by assignment once in use.
type Array[T Element] struct {
	data storage[T]
	used int
	lock sync.Locker
}

// NewArray returns a new empty array.
func NewArray[T Element]() *Array[T] {
	return &Array[T]{}
}

// NewArrayWithLock returns a new empty array carrying the given lock.
// The array never locks internally; the lock is a policy object that
// callers retrieve through GetLock to serialize their own access:
//
//	list := refs.NewArrayWithLock[*Node](&sync.Mutex{})
//
//	list.GetLock().Lock()
//	list.Add(node)
//	list.GetLock().Unlock()
func NewArrayWithLock[T Element](lock sync.Locker) *Array[T] {
	return &Array[T]{lock: lock}
}

// GetLock returns the lock policy the array was created with, or a
// NoLock when none was supplied.
func (a *Array[T]) GetLock() sync.Locker {
	if a.lock == nil {
		return NoLock{}
	}
	return a.lock
}

// Size returns the current number of elements.
func (a *Array[T]) Size() int {
	return a.used
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.used == 0
}

// Get returns the element at index, or the nil handle when index is out
// of range. The stored handle itself may of course be nil too.
func (a *Array[T]) Get(index int) T {
	if index < 0 || index >= a.used {
		var zero T
		return zero
	}
	return a.data.slots[index]
}

// First returns the first element, or the nil handle when empty.
func (a *Array[T]) First() T {
	return a.Get(0)
}

// Last returns the last element, or the nil handle when empty.
func (a *Array[T]) Last() T {
	return a.Get(a.used - 1)
}

// Raw returns the live slot view covering [0, Size). It is valid only
// until the next mutating call: a grow, removal or shrink may relocate
// the underlying storage. The view does not own references; callers
// must not retain elements from it beyond the array's lifetime.
func (a *Array[T]) Raw() []T {
	if a.used == 0 {
		return nil
	}
	return a.data.slots[:a.used:a.used]
}

// IndexOf returns the index of the first slot holding obj, comparing by
// identity, or -1 if it is not present.
func (a *Array[T]) IndexOf(obj T) int {
	for i := 0; i < a.used; i++ {
		if a.data.slots[i] == obj {
			return i
		}
	}
	return -1
}

// Contains reports whether obj occupies any slot, comparing by
// identity.
func (a *Array[T]) Contains(obj T) bool {
	return a.IndexOf(obj) >= 0
}

// Add appends obj at the end of the array, growing storage if needed,
// and takes a reference to it. It returns obj for call chaining.
func (a *Array[T]) Add(obj T) T {
	a.data.ensureAllocated(a.used + 1)
	a.data.slots[a.used] = obj
	a.used++
	var zero T
	if obj != zero {
		obj.IncReference()
	}
	return obj
}

// Insert places obj at the given index, shifting all later elements up
// by one, and takes a reference to it. A negative index or an index
// beyond the end appends instead. Returns obj.
func (a *Array[T]) Insert(index int, obj T) T {
	if index < 0 || index >= a.used {
		return a.Add(obj)
	}
	a.data.ensureAllocated(a.used + 1)
	copy(a.data.slots[index+1:a.used+1], a.data.slots[index:a.used])
	a.data.slots[index] = obj
	a.used++
	var zero T
	if obj != zero {
		obj.IncReference()
	}
	return obj
}

// AddIfNotAlreadyThere appends obj unless the array already contains it
// (by identity). It reports whether an insertion happened.
func (a *Array[T]) AddIfNotAlreadyThere(obj T) bool {
	if a.Contains(obj) {
		return false
	}
	a.Add(obj)
	return true
}

// Set replaces the element at index with obj. A negative index is a
// no-op; an index at or beyond the end appends. The new reference is
// taken before the previous occupant is released, so setting a slot to
// the object it already holds never transiently drops that object's
// count to zero.
func (a *Array[T]) Set(index int, obj T) {
	if index < 0 {
		return
	}
	var zero T
	if obj != zero {
		obj.IncReference()
	}
	if index < a.used {
		if old := a.data.slots[index]; old != zero {
			Release(old)
		}
		a.data.slots[index] = obj
		return
	}
	a.data.ensureAllocated(a.used + 1)
	a.data.slots[a.used] = obj
	a.used++
}

// AddArray appends count elements of other starting at start, taking a
// reference to each. A negative start is clamped to zero; a negative
// count, or one reaching past the end of other, copies through the
// end. Appending from the array itself is safe.
func (a *Array[T]) AddArray(other *Array[T], start, count int) {
	if start < 0 {
		start = 0
	}
	if count < 0 || start+count > other.used {
		count = other.used - start
	}
	if count <= 0 {
		return
	}
	a.data.ensureAllocated(a.used + count)
	for i := 0; i < count; i++ {
		a.Add(other.data.slots[start+i])
	}
}

// AddSorted inserts obj at its ordered position, assuming the array is
// already sorted under cmp, and returns the index it landed at. The
// result is undefined when the array is not sorted. Equivalent elements
// keep their insertion order (new ones land after existing ones).
func (a *Array[T]) AddSorted(cmp Comparator[T], obj T) int {
	index := findInsertIndex(cmp, a.data.slots[:a.used], obj)
	a.Insert(index, obj)
	return index
}

// AddOrReplaceSorted inserts obj at its ordered position, or, when an
// equivalent element (comparator result zero) already sits there,
// replaces that element instead: the old one is released and obj's
// count is incremented, as with Set.
func (a *Array[T]) AddOrReplaceSorted(cmp Comparator[T], obj T) {
	index := findInsertIndex(cmp, a.data.slots[:a.used], obj)
	if index > 0 && cmp(obj, a.data.slots[index-1]) == 0 {
		a.Set(index-1, obj)
		return
	}
	a.Insert(index, obj)
}

// IndexOfSorted binary-searches for an element equivalent to obj under
// cmp, assuming the array is sorted, and returns its index or -1. The
// result is undefined when the array is not sorted.
func (a *Array[T]) IndexOfSorted(cmp Comparator[T], obj T) int {
	lo, hi := 0, a.used
	for lo < hi {
		if cmp(obj, a.data.slots[lo]) == 0 {
			return lo
		}
		mid := (lo + hi) / 2
		if mid == lo {
			// Single-slot interval already probed; a tie here would
			// otherwise never advance the midpoint.
			break
		}
		if cmp(obj, a.data.slots[mid]) >= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return -1
}

// Remove releases the element at index and shifts later elements down
// to close the gap. An out-of-range index is a no-op. Storage may
// shrink once the element count drops below half of the allocated
// capacity.
func (a *Array[T]) Remove(index int) {
	if index < 0 || index >= a.used {
		return
	}
	var zero T
	if old := a.data.slots[index]; old != zero {
		Release(old)
	}
	a.closeGap(index)
}

// RemoveAndReturn removes the element at index like Remove, but instead
// of releasing the array's reference it transfers it to the caller,
// who becomes responsible for dropping it via [Release]. An
// out-of-range index is a no-op returning the nil handle.
func (a *Array[T]) RemoveAndReturn(index int) T {
	var removed T
	if index < 0 || index >= a.used {
		return removed
	}
	removed = a.data.slots[index]
	a.closeGap(index)
	return removed
}

// closeGap drops slot index from the sequence, compacts and applies the
// shrink hysteresis. The slot's reference must already be settled.
func (a *Array[T]) closeGap(index int) {
	a.used--
	copy(a.data.slots[index:a.used], a.data.slots[index+1:a.used+1])
	var zero T
	a.data.slots[a.used] = zero
	if a.used*2 < a.data.capacity() {
		a.MinimiseStorageOverheads()
	}
}

// RemoveObject removes the first occurrence of obj, comparing by
// identity. It is a no-op when obj is not present.
func (a *Array[T]) RemoveObject(obj T) {
	a.Remove(a.IndexOf(obj))
}

// RemoveRange releases count elements starting at start and compacts
// the survivors. The range is clamped to the valid bounds. Each slot is
// nulled before its reference is released, so a disposal that re-enters
// this array never observes a handle to a dying object.
func (a *Array[T]) RemoveRange(start, count int) {
	first := clampIndex(start, a.used)
	end := clampIndex(start+count, a.used)
	if end <= first {
		return
	}
	var zero T
	for i := first; i < end; i++ {
		if obj := a.data.slots[i]; obj != zero {
			a.data.slots[i] = zero
			Release(obj)
		}
	}
	kept := a.used - end
	copy(a.data.slots[first:first+kept], a.data.slots[end:a.used])
	for i := first + kept; i < a.used; i++ {
		a.data.slots[i] = zero
	}
	a.used = first + kept
	if a.used*2 < a.data.capacity() {
		a.MinimiseStorageOverheads()
	}
}

// RemoveLast removes up to count elements from the tail, releasing each
// one. A count beyond the current size clears the array.
func (a *Array[T]) RemoveLast(count int) {
	if count > a.used {
		count = a.used
	}
	for ; count > 0; count-- {
		a.Remove(a.used - 1)
	}
}

// Swap exchanges the elements at the two indices. A net no-op for
// reference counts; nothing happens unless both indices are in range.
func (a *Array[T]) Swap(index1, index2 int) {
	if index1 < 0 || index1 >= a.used || index2 < 0 || index2 >= a.used {
		return
	}
	a.data.slots[index1], a.data.slots[index2] = a.data.slots[index2], a.data.slots[index1]
}

// Move relocates the element at from to the position to, shifting the
// intervening elements to fill the gap. Reference counts are untouched:
// it is still one reference in one slot. An out-of-range from is a
// no-op; an out-of-range to means the end of the array.
//
// Moving on {0, 1, 2, 3, 4, 5}, Move(2, 4) yields {0, 1, 3, 4, 2, 5}.
func (a *Array[T]) Move(from, to int) {
	if from == to || from < 0 || from >= a.used {
		return
	}
	if to < 0 || to >= a.used {
		to = a.used - 1
	}
	value := a.data.slots[from]
	if to > from {
		copy(a.data.slots[from:to], a.data.slots[from+1:to+1])
	} else {
		copy(a.data.slots[to+1:from+1], a.data.slots[to:from])
	}
	a.data.slots[to] = value
}

// Sort orders the elements under cmp. With retainOrderOfEquivalentItems
// set, elements the comparator considers equivalent keep their current
// relative order, at some extra cost; otherwise a faster algorithm may
// rearrange them.
func (a *Array[T]) Sort(cmp Comparator[T], retainOrderOfEquivalentItems bool) {
	elems := a.data.slots[:a.used]
	if retainOrderOfEquivalentItems {
		slices.SortStableFunc(elems, cmp)
	} else {
		slices.SortFunc(elems, cmp)
	}
}

// Clone returns an independent deep copy of the handle list: every
// non-nil handle is counted once more for the copy. The clone does not
// share the receiver's lock policy.
func (a *Array[T]) Clone() *Array[T] {
	other := &Array[T]{used: a.used}
	if a.used > 0 {
		other.data.reallocate(a.used)
		copy(other.data.slots, a.data.slots[:a.used])
	}
	var zero T
	for i := other.used - 1; i >= 0; i-- {
		if obj := other.data.slots[i]; obj != zero {
			obj.IncReference()
		}
	}
	return other
}

// CopyFrom replaces the array's contents with a copy of other's. The
// copy is built first and then swapped in, so the receiver is untouched
// until the new state is fully constructed and copying an array onto
// itself is safe. Everything previously held is released.
func (a *Array[T]) CopyFrom(other *Array[T]) {
	tmp := other.Clone()
	a.SwapWith(tmp)
	tmp.Clear()
}

// SwapWith exchanges the entire contents of the two arrays in O(1),
// vastly cheaper than copying when two arrays just need to trade
// places. Lock policies stay with their arrays.
func (a *Array[T]) SwapWith(other *Array[T]) {
	a.data.swapWith(&other.data)
	a.used, other.used = other.used, a.used
}

// Equal reports whether both arrays hold identical handles at every
// index. This is identity comparison per slot, not a deep comparison of
// the referenced objects.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a.used != other.used {
		return false
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.data.slots[i] != other.data.slots[i] {
			return false
		}
	}
	return true
}

// Clear releases every held reference and frees the storage back to
// zero capacity.
func (a *Array[T]) Clear() {
	a.releaseAll()
	a.data.shrinkToNoMoreThan(0)
}

// ClearQuick releases every held reference but keeps the current
// allocation for reuse.
func (a *Array[T]) ClearQuick() {
	a.releaseAll()
}

// EnsureStorageAllocated grows the internal storage to hold at least
// capacity elements, so that a known number of upcoming additions will
// not reallocate repeatedly. Neither the element count nor any
// reference changes.
func (a *Array[T]) EnsureStorageAllocated(capacity int) {
	a.data.ensureAllocated(capacity)
}

// MinimiseStorageOverheads gives back the spare storage that grows as
// elements are removed, reducing the allocation to the current element
// count. Neither the element count nor any reference changes.
func (a *Array[T]) MinimiseStorageOverheads() {
	a.data.shrinkToNoMoreThan(a.used)
}

// releaseAll drops every held reference back-to-front. Slots are nulled
// before release so re-entrant lookups never see a dying handle.
func (a *Array[T]) releaseAll() {
	var zero T
	for a.used > 0 {
		a.used--
		if obj := a.data.slots[a.used]; obj != zero {
			a.data.slots[a.used] = zero
			Release(obj)
		}
	}
}

// clampIndex limits v to [0, max].
func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
