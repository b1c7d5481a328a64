package postable

import "errors"

// ErrConflictingValue is the value Insert panics with when a key is
// already present with a different value than the one being inserted. Position tables
// are append-only and idempotent: re-inserting the same (key, value)
// pair is a no-op, but inserting a second, different value under a key
// already published indicates a canonicalization bug upstream.
var ErrConflictingValue = errors.New("postable: conflicting value for existing key")
