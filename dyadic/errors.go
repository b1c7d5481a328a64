package dyadic

import "errors"

// ErrInvalidRational indicates malformed rational text, a zero
// denominator, or (for ParseRational) a denominator that is not a power
// of two.
var ErrInvalidRational = errors.New("dyadic: invalid rational")

// ErrArithmeticUndefined indicates an operation on Extended values with
// no well-defined result, such as (+∞) + (-∞).
var ErrArithmeticUndefined = errors.New("dyadic: arithmetic undefined")
