// Package grid provides a fixed-capacity, bit-packed rectangular grid of
// up to 64 boolean cells.
//
// A Grid is a small value type — width, height and the cell bits all fit
// in three machine words — so it copies for free and needs no locking.
// It supports the “.#|…” text notation (“.” empty, “#” filled, “|” row
// separator), the four rigid-motion symmetries of a rectangle (90°
// rotation, vertical flip, horizontal flip), and move-top-left
// canonical-orientation trimming (stripping wholly-filled border rows
// and columns).
//
// Grid knows nothing about game theory; Domineering's move generation
// and decomposition logic lives in the sibling domineering package.
package grid
