package enumerate

import "errors"

// ErrInvalidDimensions indicates width*height exceeds the 64-cell grid
// capacity or either dimension is zero.
var ErrInvalidDimensions = errors.New("enumerate: width*height must be in 1..64")

// ErrInvalidRange indicates LastID is not strictly greater than StartID,
// or LastID exceeds 2^(width*height).
var ErrInvalidRange = errors.New("enumerate: last_id must be > start_id and <= 2^(width*height)")

// ErrNoOutputPath indicates Config.OutputPath is empty.
var ErrNoOutputPath = errors.New("enumerate: output_path must not be empty")
