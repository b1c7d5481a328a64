// Package domineering implements the Domineering ruleset on top of the
// grid package: Left places vertical dominoes, Right places horizontal
// ones, and a position's value is the sum of its connected empty
// regions. Ruleset implements driver.Mover and driver.Decomposer over
// Position so driver.CanonicalForm can compute its canonical game value.
package domineering
