/*
Package hamt implements the core of a Hash Array Mapped Trie, following
Phil Bagwell's "Ideal Hash Trees".

A Hash[K, V] maps keys to values with amortized near-constant lookup and
insertion while keeping memory usage compact for sparse trees. Unlike the
classic functional/persistent HAMT, a Hash instance owns its nodes outright
-- there is no structural sharing between instances, mutation happens in
place, and cloning performs a genuine deep copy.

Every key is hashed with a user-supplied function into a 32-bit value. The
trie consumes that hash five bits at a time (a "slice"), descending one
Branch per slice, until it reaches an empty slot, a matching Entry, or a
colliding Entry that must be split into a deeper Branch. Once all 30
usable bits of a 32-bit hash are consumed, the hash is reseeded with an
xorshift step and recomputed, so a trie can in principle grow past six
levels without the branching factor collapsing to a linear list.

Nodes are allocated through a user-supplied Allocator, whose contract
mirrors a C allocator's allocate/deallocate pair rather than anything in
the standard library -- allocation failure is an observable, recoverable
event, not a panic.
*/
package hamt
