package game

import "github.com/katalvlaran/cgt/dyadic"

// Leq reports whether a <= b as game values: there is no right option
// of b that is <= a, and no left option of a such that b <= that option.
// Recursion terminates because option IDs are always allocated before
// the entries that reference them.
func (t *Table) Leq(a, b ID) bool {
	if a == b {
		return true
	}
	key := [2]ID{a, b}
	t.muCache.RLock()
	if v, ok := t.leqCache[key]; ok {
		t.muCache.RUnlock()
		return v
	}
	t.muCache.RUnlock()

	ea, eb := t.entryAt(a), t.entryAt(b)
	result := true
	for _, br := range eb.right {
		if t.Leq(br, a) {
			result = false
			break
		}
	}
	if result {
		for _, al := range ea.left {
			if t.Leq(b, al) {
				result = false
				break
			}
		}
	}

	t.muCache.Lock()
	t.leqCache[key] = result
	t.muCache.Unlock()
	return result
}

// leqGameVsPending reports whether x <= a not-yet-interned game
// described by (pendingLeft, pendingRight), used while bypassing
// reversible options before the pending game has an ID of its own: no
// right option of the pending game is <= x, and no left option of x has
// the pending game <= it.
func (t *Table) leqGameVsPending(x ID, pendingLeft, pendingRight []ID) bool {
	for _, pr := range pendingRight {
		if t.Leq(pr, x) {
			return false
		}
	}
	ex := t.entryAt(x)
	for _, xl := range ex.left {
		if t.leqPendingVsGame(pendingLeft, pendingRight, xl) {
			return false
		}
	}
	return true
}

// leqPendingVsGame reports whether the pending game (pendingLeft,
// pendingRight) <= y: no right option of y is <= the pending game, and
// no left option of the pending game has y <= it.
func (t *Table) leqPendingVsGame(pendingLeft, pendingRight []ID, y ID) bool {
	ey := t.entryAt(y)
	for _, yr := range ey.right {
		if t.leqGameVsPending(yr, pendingLeft, pendingRight) {
			return false
		}
	}
	for _, pl := range pendingLeft {
		if t.Leq(y, pl) {
			return false
		}
	}
	return true
}

// Compare returns (-1, true) if a<b, (0, true) if a==b, (1, true) if
// a>b, or (0, false) if a and b are confused (neither a<=b nor b<=a) —
// e.g. the nimber *1 and the zero game.
func (t *Table) Compare(a, b ID) (int, bool) {
	if a == b {
		return 0, true
	}
	ab := t.Leq(a, b)
	ba := t.Leq(b, a)
	switch {
	case ab && ba:
		return 0, true
	case ab:
		return -1, true
	case ba:
		return 1, true
	default:
		return 0, false
	}
}

// sumPairKey canonicalizes an unordered pair for the commutative sum
// cache.
func sumPairKey(a, b ID) [2]ID {
	if a <= b {
		return [2]ID{a, b}
	}
	return [2]ID{b, a}
}

// Sum returns the disjunctive sum of one or more games: the game where a
// move is a move in exactly one addend, all others held fixed.
func (t *Table) Sum(ids ...ID) ID {
	if len(ids) == 0 {
		return t.Zero()
	}
	result := ids[0]
	for _, id := range ids[1:] {
		result = t.sumTwo(result, id)
	}
	return result
}

func (t *Table) sumTwo(a, b ID) ID {
	if a == t.Zero() {
		return b
	}
	if b == t.Zero() {
		return a
	}
	key := sumPairKey(a, b)
	t.muCache.RLock()
	if v, ok := t.sumCache[key]; ok {
		t.muCache.RUnlock()
		return v
	}
	t.muCache.RUnlock()

	ea, eb := t.entryAt(a), t.entryAt(b)
	var left, right []ID
	for _, al := range ea.left {
		left = append(left, t.sumTwo(al, b))
	}
	for _, bl := range eb.left {
		left = append(left, t.sumTwo(a, bl))
	}
	for _, ar := range ea.right {
		right = append(right, t.sumTwo(ar, b))
	}
	for _, br := range eb.right {
		right = append(right, t.sumTwo(a, br))
	}
	result := t.ConstructFromOptions(left, right)

	t.muCache.Lock()
	t.sumCache[key] = result
	t.muCache.Unlock()
	return result
}

// Negate returns -id: the game with every option, recursively,
// negated and left/right swapped. Negation of a canonical form is
// already canonical, so Negate interns directly rather than re-running
// the simplification pipeline.
func (t *Table) Negate(id ID) ID {
	if id == t.Zero() {
		return t.Zero()
	}
	t.muCache.RLock()
	if v, ok := t.negCache[id]; ok {
		t.muCache.RUnlock()
		return v
	}
	t.muCache.RUnlock()

	e := t.entryAt(id)
	left := make([]ID, len(e.right))
	for i, r := range e.right {
		left[i] = t.Negate(r)
	}
	right := make([]ID, len(e.left))
	for i, l := range e.left {
		right[i] = t.Negate(l)
	}
	var number *dyadic.Rational
	if e.number != nil {
		v := dyadic.Neg(*e.number)
		number = &v
	}
	var nimberOrder *int
	if e.nimberOrder != nil {
		order := *e.nimberOrder
		nimberOrder = &order // *n is its own negative
	}
	// Non-number entries leave display blank: Display recomputes it from
	// the (already negated) left/right options, so it can still catch
	// shorthand forms like down = {*|0} rather than wrapping the
	// original text in "-(...)".
	var display string
	if number != nil {
		display = number.String()
	}
	result := t.internRaw(left, right, number, nimberOrder, display)

	t.muCache.Lock()
	t.negCache[id] = result
	t.muCache.Unlock()
	return result
}
