// Package dyadic implements exact arithmetic over dyadic rational numbers
// — fractions n/2^k with a non-negative integer k — plus an Extended
// type adding the ±∞ sentinels thermograph intercepts require.
//
// A Rational is always stored in lowest terms: either the denominator
// exponent is zero, or the numerator is odd. (0,0) is the sole
// representation of zero. This mirrors the normalize-by-gcd discipline
// of original_source/src/dyadic_rational_number.rs, generalized from
// i32 to int64 and specialized from "any gcd" to "factor out powers of
// two", since a dyadic denominator is always a power of two by
// definition.
package dyadic
