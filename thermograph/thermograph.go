package thermograph

import "github.com/katalvlaran/cgt/dyadic"

// Thermograph pairs a game's Left and Right scaffolds. Both are always
// clamped: each ends in a slope-0 segment starting at the temperature,
// with the mast value as its x0.
type Thermograph struct {
	Left, Right Scaffold
}

// NewNumber returns the thermograph of a number-valued game: both walls
// are the same vertical line, and the temperature is -1 — the
// temperature of a number is always -1.
func NewNumber(value dyadic.Rational) Thermograph {
	s := Number(value)
	return Thermograph{Left: s, Right: s}
}

// meetingPoint returns the smallest t >= -1 at which left(t) <= right(t),
// and the shared value there. left and right are raw (unclamped)
// scaffolds: left is expected to start above right and decrease toward
// it, but the search is symmetric and doesn't assume that shape beyond
// the loop terminating once it's found.
func meetingPoint(left, right []segment) (t, mast dyadic.Rational) {
	knots := knotsOf(left, right)
	for i := 0; i < len(knots); i++ {
		lv, lslope := evalAt(left, knots[i])
		rv, rslope := evalAt(right, knots[i])
		d := dyadic.Sub(lv, rv)
		if dyadic.Compare(d, dyadic.Zero) <= 0 {
			return knots[i], rv
		}
		if lslope == rslope {
			continue
		}
		var upper *dyadic.Rational
		if i+1 < len(knots) {
			upper = &knots[i+1]
		}
		// Solve lv + lslope*dt == rv + rslope*dt for dt > 0.
		dt := divExactBySmall(dyadic.Sub(rv, lv), int64(lslope-rslope))
		if dyadic.Compare(dt, dyadic.Zero) <= 0 {
			continue
		}
		cross := dyadic.Add(knots[i], dt)
		if upper != nil && dyadic.Compare(cross, *upper) > 0 {
			continue
		}
		return cross, dyadic.Add(lv, dyadic.MulInt(dt, int64(lslope)))
	}
	// Both scaffolds end in a slope-0 mast (by construction, every input
	// here is itself a Tilt of an already-clamped child), so the last
	// knot's values are final; if they never crossed earlier they must
	// be equal there, or the game's own masts disagree, which would be
	// a malformed canonical form.
	last := knots[len(knots)-1]
	lv, _ := evalAt(left, last)
	return last, lv
}

// clampTo truncates segs to end at t with a final flat segment at value.
func clampTo(segs []segment, t, value dyadic.Rational) []segment {
	out := make([]segment, 0, len(segs)+1)
	for _, s := range segs {
		if dyadic.Compare(s.t0, t) >= 0 {
			break
		}
		out = append(out, s)
	}
	out = append(out, segment{t0: t, x0: value, slope: 0})
	return out
}

// Clamp finds the temperature where raw left and right scaffolds meet and
// returns both walls truncated there, with a shared flat mast beyond.
func Clamp(rawLeft, rawRight Scaffold) (left, right Scaffold, temperature, mast dyadic.Rational) {
	t, m := meetingPoint(rawLeft.segs, rawRight.segs)
	return Scaffold{segs: clampTo(rawLeft.segs, t, m)}, Scaffold{segs: clampTo(rawRight.segs, t, m)}, t, m
}

// Build constructs the thermograph of a game from the already-computed
// thermographs of its left and right options:
//
//	L_G(t) = max over g^L of R_{g^L}(t) - t, clamped
//	R_G(t) = min over g^R of L_{g^R}(t) + t, clamped
//
// Both leftOptions and rightOptions must be non-empty: a short game with
// an empty option side on the non-number path cannot occur in a
// canonical form (it would itself be a number, handled by NewNumber).
func Build(leftOptions, rightOptions []Thermograph) Thermograph {
	leftTerms := make([]Scaffold, len(leftOptions))
	for i, lo := range leftOptions {
		leftTerms[i] = Tilt(lo.Right, -1)
	}
	rightTerms := make([]Scaffold, len(rightOptions))
	for i, ro := range rightOptions {
		rightTerms[i] = Tilt(ro.Left, +1)
	}
	rawLeft := Max(leftTerms...)
	rawRight := Min(rightTerms...)
	left, right, _, _ := Clamp(rawLeft, rawRight)
	return Thermograph{Left: left, Right: right}
}

// Temperature returns the game's temperature: the t at which its two
// walls meet.
func (th Thermograph) Temperature() dyadic.Rational { return th.Left.LastBreak() }

// Mast returns the game's mast value: the shared wall value at and
// beyond the temperature.
func (th Thermograph) Mast() dyadic.Rational { return th.Left.Mast() }
