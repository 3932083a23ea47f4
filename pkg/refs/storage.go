package refs

const (
	// storageBaseline is the smallest non-empty allocation, in slots.
	storageBaseline = 8

	// storageSlack is how many spare slots a shrink request tolerates
	// before reallocating. Without it, removals that hover around a
	// capacity boundary would reallocate on every call.
	storageSlack = 8
)

// storage is a growable block of element slots. It has no reference
// count awareness: contents are relocated as raw values, and the Array
// layered on top owns all lifetime bookkeeping. Capacity changes only
// through explicit ensureAllocated and shrinkToNoMoreThan calls, never
// implicitly per element.
//
// The zero value is an empty block with no allocation.
type storage[T any] struct {
	slots []T
}

// capacity returns the number of slots currently allocated.
func (s *storage[T]) capacity() int {
	return len(s.slots)
}

// ensureAllocated guarantees capacity for at least min slots. Growth
// doubles from a small baseline until the requirement is met, so a run
// of single-slot requests reallocates O(log n) times.
func (s *storage[T]) ensureAllocated(min int) {
	if min <= len(s.slots) {
		return
	}
	capacity := len(s.slots)
	if capacity < storageBaseline {
		capacity = storageBaseline
	}
	for capacity < min {
		capacity *= 2
	}
	s.reallocate(capacity)
}

// shrinkToNoMoreThan reduces the allocation to exactly max slots when
// the current capacity exceeds it by more than a fixed slack. A max of
// zero releases the block entirely.
func (s *storage[T]) shrinkToNoMoreThan(max int) {
	if max <= 0 {
		s.slots = nil
		return
	}
	if len(s.slots) > max+storageSlack {
		s.reallocate(max)
	}
}

// swapWith exchanges the two blocks' allocations in O(1).
func (s *storage[T]) swapWith(other *storage[T]) {
	s.slots, other.slots = other.slots, s.slots
}

func (s *storage[T]) reallocate(capacity int) {
	block := make([]T, capacity)
	copy(block, s.slots)
	s.slots = block
}
