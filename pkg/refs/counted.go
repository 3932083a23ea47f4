package refs

import "sync/atomic"

// Counted is the capability contract an element type must satisfy to be
// held by an Array. The container never assumes a specific counting
// mechanism, only these three operations.
type Counted interface {
	// IncReference increases the reference count by one.
	IncReference()

	// DecReferenceWithoutDeleting decreases the reference count by one
	// and reports whether it reached zero. It must not free the object
	// itself; the caller decides when Dispose runs.
	DecReferenceWithoutDeleting() bool

	// Dispose frees the object. It is called at most once, by whichever
	// holder observed the count reach zero.
	Dispose()
}

// Element constrains the types an Array can hold: a Counted
// implementation that compares by identity. In practice this is a
// concrete pointer type, so == is pointer equality and the zero value
// is the nil handle.
type Element interface {
	Counted
	comparable
}

// Release drops one reference to obj, disposing it when the count
// reaches zero. Every removal path in Array funnels through this
// two-step policy, and callers that take over a reference (see
// [Array.RemoveAndReturn]) release it the same way.
func Release[T Counted](obj T) {
	if obj.DecReferenceWithoutDeleting() {
		obj.Dispose()
	}
}

// CountedBase is an embeddable reference count satisfying the Counted
// contract. The count starts at zero; whoever stores the object first
// takes the first reference.
//
// The count itself is atomic, so unrelated containers on different
// goroutines can share an object, but that does not make any single
// Array safe for concurrent mutation.
type CountedBase struct {
	count atomic.Int32
}

// IncReference increases the reference count by one.
func (b *CountedBase) IncReference() {
	b.count.Add(1)
}

// DecReferenceWithoutDeleting decreases the reference count by one and
// reports whether it reached zero.
func (b *CountedBase) DecReferenceWithoutDeleting() bool {
	return b.count.Add(-1) == 0
}

// References returns the current reference count.
func (b *CountedBase) References() int {
	return int(b.count.Load())
}

// Dispose does nothing. Types embedding CountedBase override it when
// they have resources to free.
func (b *CountedBase) Dispose() {}

// NoLock is the default lock policy: a sync.Locker whose Lock and
// Unlock do nothing. It stands in wherever a real lock was not
// supplied, keeping caller-side scoped locking uniform.
type NoLock struct{}

// Lock does nothing.
func (NoLock) Lock() {}

// Unlock does nothing.
func (NoLock) Unlock() {}
