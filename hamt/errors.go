package hamt

import (
	"log"

	"github.com/pkg/errors"
)

// ErrAllocationFailed is returned (wrapped) when the Allocator injected
// into a Hash refuses to grow a Branch's children array. The trie is left
// exactly as it was before the call; no partial mutation survives.
var ErrAllocationFailed = errors.New("hamt: allocator refused to allocate")

// ErrUnresolvableCollision is returned when two distinct keys produce the
// same seeded hash at every reseed step, so no depth of splitting can ever
// separate them. The trie is left exactly as it was before the call.
var ErrUnresolvableCollision = errors.New("hamt: unresolvable hash collision")

// panicPrecondition reports a programmer error -- a precondition
// violation such as a variant mismatch or an out-of-range logical index.
// Spec section 7.3 treats these as undefined behavior that implementations
// SHOULD assert on in debug builds; we always assert, following the
// teacher's own log.Panicf("SHOULD NOT BE REACHED...") in hamt32/hamt.go.
func panicPrecondition(format string, args ...interface{}) {
	log.Panicf("hamt: precondition violated: "+format, args...)
}
