package game

import "github.com/katalvlaran/cgt/dyadic"

// ConstructInteger returns the canonical form of the integer n: the
// recursive {n-1 | } / { | n+1} construction.
func (t *Table) ConstructInteger(n int64) ID {
	if n == 0 {
		return t.Zero()
	}
	if n > 0 {
		prev := t.ConstructInteger(n - 1)
		v := dyadic.NewInteger(n)
		return t.internRaw([]ID{prev}, nil, &v, nil, v.String())
	}
	prev := t.ConstructInteger(n + 1)
	v := dyadic.NewInteger(n)
	return t.internRaw(nil, []ID{prev}, &v, nil, v.String())
}

// ConstructDyadic returns the canonical form of a dyadic rational value:
// for an integer, ConstructInteger; otherwise the recursive
// {(m-1)/2^k | (m+1)/2^k} construction on the reduced odd numerator m
// and exponent k, which terminates because each step's
// numerator is even and so normalizes to a smaller exponent.
func (t *Table) ConstructDyadic(r dyadic.Rational) ID {
	if r.IsInteger() {
		return t.ConstructInteger(r.Numerator())
	}
	k := r.DenominatorExponent()
	m := r.Numerator()
	left := t.ConstructDyadic(dyadic.New(m-1, k))
	right := t.ConstructDyadic(dyadic.New(m+1, k))
	return t.internRaw([]ID{left}, []ID{right}, &r, nil, r.String())
}

// ConstructNimber returns the canonical form of *n, the nimber whose
// left and right options are *0, ..., *(n-1).
func (t *Table) ConstructNimber(n uint) ID {
	if n == 0 {
		return t.Zero()
	}
	opts := make([]ID, n)
	for i := uint(0); i < n; i++ {
		opts[i] = t.ConstructNimber(i)
	}
	order := int(n)
	return t.internRaw(opts, opts, nil, &order, nimberDisplay(n))
}

func nimberDisplay(n uint) string {
	if n == 0 {
		return "0"
	}
	digits := make([]byte, 0, 12)
	digits = append(digits, '*')
	if n == 1 {
		return string(digits)
	}
	return string(appendUint(digits, uint64(n)))
}

func appendUint(buf []byte, n uint64) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return append(buf, tmp[i:]...)
}

// ConstructNumberUpStar returns the canonical form of
// value + upMultiple.↑ + *starOrder, the shorthand family that shows up
// constantly in Domineering endgame analysis. It is built
// by composing ConstructDyadic, the fixed atom ↑ = {0|*}, and
// ConstructNimber through Sum/Negate rather than a bespoke "uptimal"
// canonical-form formula: Sum and the general simplification pipeline
// are already relied on to be correct, so composing through them, rather
// than re-deriving the up-multiples canonical shape independently, is
// the one way to build this value with no new place to get it wrong.
func (t *Table) ConstructNumberUpStar(value dyadic.Rational, upMultiple int64, starOrder uint) ID {
	up := t.internRaw([]ID{t.Zero()}, []ID{t.ConstructNimber(1)}, nil, nil, "")
	result := t.ConstructDyadic(value)
	if upMultiple > 0 {
		for i := int64(0); i < upMultiple; i++ {
			result = t.Sum(result, up)
		}
	} else if upMultiple < 0 {
		down := t.Negate(up)
		for i := int64(0); i < -upMultiple; i++ {
			result = t.Sum(result, down)
		}
	}
	if starOrder > 0 {
		result = t.Sum(result, t.ConstructNimber(starOrder))
	}
	return result
}

// ConstructFromOptions builds the canonical form of {left | right} from
// an arbitrary (not necessarily simplified) pair of option-ID lists,
// running the two-phase fixpoint algorithm: eliminate dominated options,
// then bypass reversible options (which can surface new candidates for
// domination), repeating until neither phase changes anything.
func (t *Table) ConstructFromOptions(left, right []ID) ID {
	left = sortDedup(left)
	right = sortDedup(right)
	for iter := 0; iter < 64; iter++ {
		newLeft := t.eliminateDominatedLeft(left)
		newRight := t.eliminateDominatedRight(right)
		bypassedLeft, _ := t.bypassReversibleLeft(newLeft, newRight)
		bypassedRight, _ := t.bypassReversibleRight(newLeft, newRight)
		bypassedLeft, bypassedRight = sortDedup(bypassedLeft), sortDedup(bypassedRight)
		stable := sameIDSet(bypassedLeft, left) && sameIDSet(bypassedRight, right)
		left, right = bypassedLeft, bypassedRight
		if stable {
			break
		}
	}
	if value, ok := t.isNumberForm(left, right); ok {
		return t.ConstructDyadic(value)
	}
	if n, ok := t.isNimberForm(left, right); ok {
		return t.ConstructNimber(n)
	}
	return t.internRaw(left, right, nil, nil, "")
}

// isNimberForm reports whether the fully-simplified (left, right) is
// exactly the standard nimber construction {*0,...,*(n-1) | *0,...,*(n-1)}
// for n = len(left), in which case this position doesn't just happen to
// be equal to *n, it is *n's own definition — and returns n. Checked
// after isNumberForm so that a position reaching this point by a path
// other than ConstructNimber itself (e.g. as a Domineering L-tromino's
// canonical form) still gets tagged with the short "*n" display and
// nimberOrder, the same as if ConstructNimber(n) had been called
// directly.
func (t *Table) isNimberForm(left, right []ID) (uint, bool) {
	if len(left) == 0 || len(left) != len(right) {
		return 0, false
	}
	for i := range left {
		if left[i] != right[i] {
			return 0, false
		}
	}
	for i, id := range left {
		if id != t.ConstructNimber(uint(i)) {
			return 0, false
		}
	}
	return uint(len(left)), true
}

// isNumberForm reports whether the fully-simplified (left, right) is
// number-shaped — every surviving option is itself a number, and the
// single left bound (if any) is strictly below the single right bound
// (if any) — and returns the value it denotes by the number simplicity
// rule. After dominated-option elimination, a genuinely numeric side
// always collapses to at most one survivor, since numbers are totally
// ordered; more than one surviving option on a side means this is not
// number-shaped.
func (t *Table) isNumberForm(left, right []ID) (dyadic.Rational, bool) {
	if len(left) > 1 || len(right) > 1 {
		return dyadic.Rational{}, false
	}
	var lo, hi *dyadic.Rational
	if len(left) == 1 {
		v, ok := t.IsNumber(left[0])
		if !ok {
			return dyadic.Rational{}, false
		}
		lo = &v
	}
	if len(right) == 1 {
		v, ok := t.IsNumber(right[0])
		if !ok {
			return dyadic.Rational{}, false
		}
		hi = &v
	}
	switch {
	case lo == nil && hi == nil:
		return dyadic.Zero, true
	case lo != nil && hi != nil:
		if dyadic.Compare(*lo, *hi) >= 0 {
			return dyadic.Rational{}, false
		}
		return dyadic.SimplestBetween(*lo, *hi), true
	case hi != nil:
		return simplestBelow(*hi), true
	default:
		return simplestAbove(*lo), true
	}
}

// simplestBelow returns the simplest number strictly less than y, for a
// number-shaped game with only a right bound ({|y}). Mirrors
// dyadic.SimplestBetween's straddle-zero case: any y > 0 already has 0
// below it, which is simpler than counting down from y.
func simplestBelow(y dyadic.Rational) dyadic.Rational {
	if dyadic.Compare(y, dyadic.Zero) > 0 {
		return dyadic.Zero
	}
	if y.IsInteger() {
		return dyadic.NewInteger(y.Numerator() - 1)
	}
	return dyadic.NewInteger(y.Floor())
}

// simplestAbove returns the simplest number strictly greater than x, for
// a number-shaped game with only a left bound ({x|}). Symmetric
// straddle-zero case to simplestBelow.
func simplestAbove(x dyadic.Rational) dyadic.Rational {
	if dyadic.Compare(x, dyadic.Zero) < 0 {
		return dyadic.Zero
	}
	if x.IsInteger() {
		return dyadic.NewInteger(x.Numerator() + 1)
	}
	return dyadic.NewInteger(x.Floor() + 1)
}

func sameIDSet(a, b []ID) bool {
	a, b = sortDedup(a), sortDedup(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// eliminateDominatedLeft keeps only the maximal elements of left: l is
// dropped if some other l2 in the set has l <= l2 (l2 is at least as
// good for Left, so l is redundant).
func (t *Table) eliminateDominatedLeft(left []ID) []ID {
	var out []ID
	for i, l := range left {
		dominated := false
		for j, l2 := range left {
			if i == j {
				continue
			}
			if t.Leq(l, l2) && (l != l2) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, l)
		}
	}
	return out
}

// eliminateDominatedRight keeps only the minimal elements of right.
func (t *Table) eliminateDominatedRight(right []ID) []ID {
	var out []ID
	for i, r := range right {
		dominated := false
		for j, r2 := range right {
			if i == j {
				continue
			}
			if t.Leq(r2, r) && (r != r2) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, r)
		}
	}
	return out
}

// bypassReversibleLeft replaces each reversible left option l (one with
// a right option lr satisfying lr <= pendingG) with lr's own left
// options, against the tentative game described by (pendingLeft,
// pendingRight).
func (t *Table) bypassReversibleLeft(pendingLeft, pendingRight []ID) ([]ID, bool) {
	var out []ID
	changed := false
	for _, l := range pendingLeft {
		e := t.entryAt(l)
		bypassed := false
		for _, lr := range e.right {
			if t.leqGameVsPending(lr, pendingLeft, pendingRight) {
				lre := t.entryAt(lr)
				out = append(out, lre.left...)
				bypassed = true
				changed = true
				break
			}
		}
		if !bypassed {
			out = append(out, l)
		}
	}
	return out, changed
}

// bypassReversibleRight replaces each reversible right option r (one
// with a left option rl satisfying pendingG <= rl) with rl's own right
// options.
func (t *Table) bypassReversibleRight(pendingLeft, pendingRight []ID) ([]ID, bool) {
	var out []ID
	changed := false
	for _, r := range pendingRight {
		e := t.entryAt(r)
		bypassed := false
		for _, rl := range e.left {
			if t.leqPendingVsGame(pendingLeft, pendingRight, rl) {
				rle := t.entryAt(rl)
				out = append(out, rle.right...)
				bypassed = true
				changed = true
				break
			}
		}
		if !bypassed {
			out = append(out, r)
		}
	}
	return out, changed
}
