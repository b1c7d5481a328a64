package game

import "errors"

// ErrInvalidID is returned when an ID does not belong to the Table it
// was passed to.
var ErrInvalidID = errors.New("game: invalid id")

// ErrInvalidDisplay indicates text that does not parse as a game value
// under the grammar Display produces.
var ErrInvalidDisplay = errors.New("game: invalid display text")
