// Package refs provides a resizable sequence container that owns strong
// references to externally reference-counted objects.
//
// The central type is Array, which holds handles to objects satisfying
// the Counted contract and keeps their reference counts correct as
// elements are added, replaced, moved and removed. The container holds
// exactly one counted reference per occupied non-nil slot: inserting a
// handle increments its count by one, and removing, overwriting or
// clearing decrements by one per slot.
//
// # The Counted Contract
//
// Any pointer type can be stored as long as it implements Counted. The
// easiest way is to embed CountedBase:
//
//	type Node struct {
//	    refs.CountedBase
//	    Name string
//	}
//
//	list := refs.NewArray[*Node]()
//	list.Add(&Node{Name: "a"})
//
// Disposal is split in two steps: the container calls
// DecReferenceWithoutDeleting and, only if that reports the count
// reached zero, Dispose. The container therefore finishes its own slot
// and count bookkeeping before disposal can run code that re-enters it.
//
// # Permissive Indexing
//
// Index-based operations never report errors. An out-of-range index is
// absorbed as a no-op or clamped to the nearest valid bound, per
// operation; the exact behavior is documented on each method. The only
// fatal condition is allocation failure, which surfaces as a runtime
// out-of-memory panic.
//
// # Concurrency
//
// No operation is internally synchronized. An Array may carry a
// sync.Locker (see NewArrayWithLock and GetLock) so that callers can
// bracket groups of calls, but the container itself never locks.
package refs
