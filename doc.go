// Package cgt (cgt) is an in-memory engine for computing canonical forms,
// temperatures, and thermographs of short partizan combinatorial games,
// with Domineering as its worked-out ruleset.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	dyadic/       — exact dyadic rational and extended (±∞) arithmetic
//	game/         — canonical-form table: construction, sums, comparison
//	thermograph/  — thermograph scaffolds, temperature, mast value
//	postable/     — generic sharded position/transposition table
//	driver/       — generic canonicalization driver over Mover/Decomposer
//	grid/         — bit-packed rectangular grid, symmetries
//	domineering/  — Domineering rules: moves, decomposition, scoring
//	enumerate/    — parallel board enumerator with progress telemetry
//
// Quick ASCII example, the empty 2x2 Domineering board:
//
//	..
//	..
//
// whose canonical form under this engine is the switch {1|-1}: Left's
// vertical move leaves a 1x2 strip that only Left can still fill (worth
// 1), and Right's horizontal move leaves a 2x1 strip that only Right can
// fill (worth -1).
//
//	go get github.com/katalvlaran/cgt
package cgt
