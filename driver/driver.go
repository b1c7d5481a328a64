package driver

import (
	"github.com/katalvlaran/cgt/game"
	"github.com/katalvlaran/cgt/postable"
)

// Mover generates a position's left and right moves: the positions each
// player could move to. Implementations should return moves in a stable
// order (callers may rely on it for reproducible canonicalization).
type Mover[T comparable] interface {
	LeftMoves(pos T) []T
	RightMoves(pos T) []T
}

// Decomposer is an optional capability: a position type whose concrete
// Mover implementation also implements Decomposer can split a position
// into independent components, each canonicalized separately and summed
// — far cheaper than generating moves over the whole position directly.
// Decompose returns ok=false when pos has no useful decomposition (the
// driver falls back to LeftMoves/RightMoves); ok=true with a zero-length
// parts means pos is already the empty/identity position.
type Decomposer[T comparable] interface {
	Decompose(pos T) (parts []T, ok bool)
}

// Reducer is an optional capability: a position type whose concrete
// Mover implementation also implements Reducer can shortcut itself to an
// equivalent, already-simpler position before move generation — for
// rulesets (not Domineering) where a cheap structural reduction is known
// in advance.
type Reducer[T comparable] interface {
	Reduce(pos T) (reduced T, ok bool)
}

// Cache memoizes position -> canonical-form ID, keyed by the concrete
// position type T. Construct one per ruleset with NewCache.
type Cache[T comparable] = postable.Table[T, game.ID]

// NewCache builds an empty Cache[T], forwarding hash and opts to
// postable.New.
func NewCache[T comparable](hash func(T) uint64, opts ...postable.Option) *Cache[T] {
	return postable.New[T, game.ID](hash, opts...)
}

// CanonicalForm returns the canonical-form ID of pos in tbl, memoizing
// through cache. It is safe to call concurrently for different
// positions sharing one cache and one table.
func CanonicalForm[T comparable](tbl *game.Table, mover Mover[T], cache *Cache[T], pos T) game.ID {
	return cache.GetOrInsert(pos, func() game.ID {
		return computeCanonicalForm(tbl, mover, cache, pos)
	})
}

func computeCanonicalForm[T comparable](tbl *game.Table, mover Mover[T], cache *Cache[T], pos T) game.ID {
	if reducer, ok := mover.(Reducer[T]); ok {
		if reduced, applies := reducer.Reduce(pos); applies {
			return CanonicalForm(tbl, mover, cache, reduced)
		}
	}
	if decomposer, ok := mover.(Decomposer[T]); ok {
		if parts, applies := decomposer.Decompose(pos); applies {
			if len(parts) == 0 {
				return tbl.Zero()
			}
			ids := make([]game.ID, len(parts))
			for i, part := range parts {
				ids[i] = CanonicalForm(tbl, mover, cache, part)
			}
			return tbl.Sum(ids...)
		}
	}
	leftPositions := mover.LeftMoves(pos)
	rightPositions := mover.RightMoves(pos)
	left := make([]game.ID, len(leftPositions))
	for i, p := range leftPositions {
		left[i] = CanonicalForm(tbl, mover, cache, p)
	}
	right := make([]game.ID, len(rightPositions))
	for i, p := range rightPositions {
		right[i] = CanonicalForm(tbl, mover, cache, p)
	}
	return tbl.ConstructFromOptions(left, right)
}
