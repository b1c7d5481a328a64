// Package thermograph builds and queries the thermograph of a short
// partizan game: the pair of piecewise-linear scaffolds (Left wall, Right
// wall) whose meeting point is the game's temperature, reconstructed from
// the classical recursive definition and from a relaxation-merge idiom
// generalized from numeric edge-weight relaxation to piecewise-linear
// scaffold merging.
//
// A scaffold is internally a sorted list of affine segments, each with
// slope -1, 0, or +1 — the only slopes a thermograph wall can ever take,
// since every wall is built from flat (slope 0) number scaffolds by
// repeated "shift by ∓t" and "take the best option" operations, each of
// which moves the slope by exactly ±1 or leaves it unchanged. That
// invariant is what keeps every breakpoint an exact dyadic.Rational:
// segment intersections solve a linear equation whose divisor is always
// in {-2,-1,1,2}.
package thermograph
