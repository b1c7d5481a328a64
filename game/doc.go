// Package game implements the canonical-form table at the heart of this
// engine: every short partizan game value is represented as an ID into
// an append-only, content-addressed Table, built by the textbook
// canonicalization algorithm (eliminate dominated options, bypass
// reversible options, to a fixpoint) from original_source's Rust
// reconstruction of Conway's construction. Two games are equal as values
// if and only if they intern to the same ID.
//
// Table follows core/types.go's split-lock design: one sync.RWMutex
// (muEntries) guards the append-only entry slice and the interning
// index, and a second (muCache) guards memoized comparison and sum
// results, so read-heavy comparison traffic from a parallel enumerator
// never blocks on entry-table growth.
package game
