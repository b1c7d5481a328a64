package thermograph

import "github.com/katalvlaran/cgt/dyadic"

// segment is the affine piece x(t) = x0 + slope*(t-t0), valid for t in
// [t0, next segment's t0), or [t0, +∞) for the last segment in a list.
type segment struct {
	t0    dyadic.Rational
	x0    dyadic.Rational
	slope int8 // -1, 0, or +1
}

// Scaffold is one wall of a thermograph: a piecewise-linear function of
// t over the domain t >= -1. Its zero value is not meaningful; construct
// one with Number, Tilt, Max, or Min.
type Scaffold struct {
	segs []segment
}

// Number returns the degenerate scaffold of a number-valued game: the
// vertical line x = value for every t >= -1.
func Number(value dyadic.Rational) Scaffold {
	return Scaffold{segs: []segment{{t0: dyadic.NewInteger(-1), x0: value, slope: 0}}}
}

func negOne() dyadic.Rational { return dyadic.NewInteger(-1) }

// evalAt returns the value and active slope of a (non-empty, sorted)
// segment list at t, extending the last segment's slope to +∞.
func evalAt(segs []segment, t dyadic.Rational) (dyadic.Rational, int8) {
	idx := 0
	for i, s := range segs {
		if dyadic.Compare(s.t0, t) <= 0 {
			idx = i
		} else {
			break
		}
	}
	s := segs[idx]
	dt := dyadic.Sub(t, s.t0)
	return dyadic.Add(s.x0, dyadic.MulInt(dt, int64(s.slope))), s.slope
}

// Eval returns the wall's value at t (t should be >= -1).
func (s Scaffold) Eval(t dyadic.Rational) dyadic.Rational {
	x, _ := evalAt(s.segs, t)
	return x
}

// Mast returns the scaffold's eventual constant value — its value at and
// beyond the final breakpoint. For a scaffold returned from Clamp or
// Build this is the temperature's value.
func (s Scaffold) Mast() dyadic.Rational {
	return s.segs[len(s.segs)-1].x0
}

// LastBreak returns the t of the final breakpoint (where the final,
// slope-0 segment begins for a clamped scaffold).
func (s Scaffold) LastBreak() dyadic.Rational {
	return s.segs[len(s.segs)-1].t0
}

// Tilt returns the scaffold of t -> s(t) + sign*t, for sign in {-1, +1}.
// Tilt(-1) turns a Right wall into the "R(t)-t" term of a parent's raw
// Left wall; Tilt(+1) turns a Left wall into the "L(t)+t" term of a
// parent's raw Right wall.
func Tilt(s Scaffold, sign int8) Scaffold {
	out := make([]segment, len(s.segs))
	for i, seg := range s.segs {
		out[i] = segment{
			t0:    seg.t0,
			x0:    dyadic.Add(seg.x0, dyadic.MulInt(seg.t0, int64(sign))),
			slope: seg.slope + sign,
		}
	}
	return Scaffold{segs: out}
}

// knotsOf collects every segment start t0 present in a or b.
func knotsOf(a, b []segment) []dyadic.Rational {
	seen := make(map[string]bool)
	var out []dyadic.Rational
	add := func(segs []segment) {
		for _, s := range segs {
			key := s.t0.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, s.t0)
			}
		}
	}
	add(a)
	add(b)
	// insertion sort; knot lists are short (bounded by game complexity)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && dyadic.Less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// divExactBySmall divides x by n, where n is one of -2, -1, 1, 2 — the
// only divisors crossing-point arithmetic ever needs, since two distinct
// slopes in {-1,0,1} always differ by exactly ±1 or ±2.
func divExactBySmall(x dyadic.Rational, n int64) dyadic.Rational {
	switch n {
	case 1:
		return x
	case -1:
		return dyadic.Neg(x)
	case 2:
		return dyadic.DivPow2(x, 1)
	case -2:
		return dyadic.Neg(dyadic.DivPow2(x, 1))
	default:
		panic("thermograph: divExactBySmall: divisor out of range")
	}
}

// mergeBinary merges two scaffolds into one whose value at every t is
// whichever of a(t), b(t) `pick` selects, inserting an exact breakpoint
// at every point the two segments cross.
func mergeBinary(a, b []segment, pick func(av, bv dyadic.Rational) bool) []segment {
	knots := knotsOf(a, b)
	// Detect a crossing inside each interval (including the final,
	// semi-infinite one) and splice in its breakpoint.
	for i := 0; i < len(knots); i++ {
		av, aslope := evalAt(a, knots[i])
		bv, bslope := evalAt(b, knots[i])
		if aslope == bslope {
			continue
		}
		var upper *dyadic.Rational
		if i+1 < len(knots) {
			upper = &knots[i+1]
		}
		// Solve av + aslope*dt == bv + bslope*dt.
		dt := divExactBySmall(dyadic.Sub(bv, av), int64(aslope-bslope))
		if dyadic.Compare(dt, dyadic.Zero) <= 0 {
			continue
		}
		cross := dyadic.Add(knots[i], dt)
		if upper != nil && dyadic.Compare(cross, *upper) >= 0 {
			continue
		}
		knots = append(knots, dyadic.Zero) // grow by one
		copy(knots[i+2:], knots[i+1:])
		knots[i+1] = cross
	}
	out := make([]segment, 0, len(knots))
	for _, t := range knots {
		av, aslope := evalAt(a, t)
		bv, bslope := evalAt(b, t)
		if pick(av, bv) {
			out = append(out, segment{t0: t, x0: av, slope: aslope})
		} else {
			out = append(out, segment{t0: t, x0: bv, slope: bslope})
		}
	}
	return compress(out)
}

// compress drops a breakpoint that doesn't change the active slope or
// value relative to the running segment — cosmetic, not required for
// correctness.
func compress(segs []segment) []segment {
	if len(segs) == 0 {
		return segs
	}
	out := segs[:1]
	for _, s := range segs[1:] {
		last := out[len(out)-1]
		if last.slope == s.slope && dyadic.Equal(last.x0, dyadic.Add(s.x0, dyadic.MulInt(dyadic.Sub(last.t0, s.t0), int64(s.slope)))) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func maxBinary(a, b Scaffold) Scaffold {
	return Scaffold{segs: mergeBinary(a.segs, b.segs, func(av, bv dyadic.Rational) bool { return dyadic.Compare(av, bv) >= 0 })}
}

func minBinary(a, b Scaffold) Scaffold {
	return Scaffold{segs: mergeBinary(a.segs, b.segs, func(av, bv dyadic.Rational) bool { return dyadic.Compare(av, bv) <= 0 })}
}

// Max returns the pointwise maximum of one or more scaffolds. Called
// with the Tilt(-1) of each left option's Right wall, this is the raw
// (pre-clamp) Left wall of the thermograph recurrence.
func Max(scaffolds ...Scaffold) Scaffold {
	if len(scaffolds) == 0 {
		panic("thermograph: Max of no scaffolds — a non-number game always has options on both sides")
	}
	out := scaffolds[0]
	for _, s := range scaffolds[1:] {
		out = maxBinary(out, s)
	}
	return out
}

// Min returns the pointwise minimum of one or more scaffolds, the
// Right-wall analogue of Max.
func Min(scaffolds ...Scaffold) Scaffold {
	if len(scaffolds) == 0 {
		panic("thermograph: Min of no scaffolds — a non-number game always has options on both sides")
	}
	out := scaffolds[0]
	for _, s := range scaffolds[1:] {
		out = minBinary(out, s)
	}
	return out
}
