package grid

import "errors"

// ErrInvalidGrid indicates a grid text failed to parse: non-rectangular
// rows, an unrecognized character, or more than 64 cells.
var ErrInvalidGrid = errors.New("grid: invalid grid")

// ErrTooLarge indicates width*height exceeds the 64-cell capacity.
var ErrTooLarge = errors.New("grid: width*height exceeds 64 cells")
