// Package driver implements the ruleset-agnostic half of canonical-form
// construction: given a concrete position type that knows how to
// generate its own left/right moves (and, optionally, how to decompose
// into independent components or shortcut itself to a simpler
// equivalent position), driver recursively builds and interns its
// canonical form in a game.Table.
//
// This mirrors how core/api.go separates the generic Graph engine from
// algorithm-specific traversal logic in algorithms/ — here the split is
// between the generic recursion (this package) and a ruleset package
// such as domineering, which supplies only Mover and, where it applies,
// Decomposer. The optional-capability pattern (a type assertion against
// an interface the caller's concrete type may or may not satisfy) is the
// same one the standard library uses for io.ReaderFrom/io.WriterTo.
package driver
