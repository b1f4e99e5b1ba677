package hamt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Allocator is the host collaborator a Hash consults before growing any
// Branch's children array. It mirrors the allocate/deallocate contract of
// a C allocator (spec section 6) rather than anything in the standard
// library -- Go's runtime owns the actual bytes, but the Allocator gets a
// say in whether a grow is permitted to happen at all, and allocation
// failure must be observable and recoverable rather than a panic.
//
// Allocate is asked to reserve capacity children-slots (never bytes --
// the "Node units, not bytes" wording from spec section 6). It returns a
// non-nil error if the reservation cannot be honored; the caller treats
// that exactly like a null return from a C allocator. Deallocate releases
// a capacity previously granted by Allocate.
type Allocator interface {
	Allocate(capacity int) error
	Deallocate(capacity int)
}

// noopAllocator never refuses a grow. It is the default Allocator for a
// Hash constructed without WithAllocator.
type noopAllocator struct{}

func (noopAllocator) Allocate(int) error { return nil }
func (noopAllocator) Deallocate(int)     {}

// DefaultAllocator returns the Allocator used when none is supplied: it
// defers entirely to the Go runtime and never fails.
func DefaultAllocator() Allocator { return noopAllocator{} }

// BoundedAllocator refuses to grant more than Max children-slots across
// every Branch in a Hash at once. It is a realistic stand-in for a fixed
// memory arena: once the budget is exhausted, insert returns
// ErrAllocationFailed instead of growing the trie further.
type BoundedAllocator struct {
	Max       int
	allocated int
}

// NewBoundedAllocator returns an Allocator that fails once more than max
// children-slots are outstanding at once.
func NewBoundedAllocator(max int) *BoundedAllocator {
	return &BoundedAllocator{Max: max}
}

func (a *BoundedAllocator) Allocate(capacity int) error {
	if a.allocated+capacity > a.Max {
		return errors.Wrapf(ErrAllocationFailed,
			"bounded allocator: %d outstanding + %d requested exceeds max %d",
			a.allocated, capacity, a.Max)
	}
	a.allocated += capacity
	return nil
}

func (a *BoundedAllocator) Deallocate(capacity int) {
	a.allocated -= capacity
	if a.allocated < 0 {
		a.allocated = 0
	}
}

// FailingAllocator wraps another Allocator and fails the FailAfter'th
// call to Allocate (1-indexed). It exists to
// exercise the allocation-failure unwind path deterministically in tests;
// see spec section 7.1.
type FailingAllocator struct {
	Underlying Allocator
	FailAfter  int
	calls      int
}

// NewFailingAllocator wraps underlying (DefaultAllocator() if nil) so that
// the failAfter'th call to Allocate (1-indexed) fails and every call after
// it succeeds again, mirroring a transient allocation failure.
func NewFailingAllocator(underlying Allocator, failAfter int) *FailingAllocator {
	if underlying == nil {
		underlying = DefaultAllocator()
	}
	return &FailingAllocator{Underlying: underlying, FailAfter: failAfter}
}

func (a *FailingAllocator) Allocate(capacity int) error {
	a.calls++
	if a.calls == a.FailAfter {
		return errors.Wrap(ErrAllocationFailed,
			fmt.Sprintf("failing allocator: simulated failure on call %d", a.calls))
	}
	return a.Underlying.Allocate(capacity)
}

func (a *FailingAllocator) Deallocate(capacity int) {
	a.Underlying.Deallocate(capacity)
}
