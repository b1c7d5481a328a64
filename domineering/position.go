package domineering

import (
	"sort"

	"github.com/katalvlaran/cgt/grid"
)

// Position is a Domineering board: a grid.Grid where an occupied cell is
// a placed domino half and an empty cell is free. Position is
// comparable, so it can key a driver.Cache directly.
type Position struct {
	g grid.Grid
}

// New returns an empty width×height Domineering board.
func New(width, height uint8) (Position, error) {
	g, err := grid.Empty(width, height)
	if err != nil {
		return Position{}, err
	}
	return Position{g: g}, nil
}

// Parse reads a board in grid.Parse's "." / "#" / "|" notation.
func Parse(input string) (Position, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Position{}, err
	}
	return Position{g: g}, nil
}

// FromGrid wraps an already-built grid.Grid as a Position.
func FromGrid(g grid.Grid) Position { return Position{g: g} }

// Grid returns the board's underlying grid.
func (p Position) Grid() grid.Grid { return p.g }

// Display renders the board in "." / "#" / "|" notation.
func (p Position) Display() string { return p.g.Display() }

// String implements fmt.Stringer.
func (p Position) String() string { return p.g.Display() }

// Normalize returns p with wholly-filled border rows/columns stripped
// and the remainder moved to the top-left corner (grid.MoveTopLeft).
// LeftMoves, RightMoves, and Decompose already normalize every position
// they produce; callers constructing a Position directly (Parse, New)
// should normalize before using it as a driver.Cache key so that boards
// differing only by filled border do not get distinct canonical-form
// computations.
func (p Position) Normalize() Position { return Position{g: p.g.MoveTopLeft()} }

// Ruleset implements driver.Mover[Position] and driver.Decomposer[Position]
// for Domineering: Left places dominoes vertically (occupying (x,y) and
// (x,y+1)), Right places them horizontally (occupying (x,y) and
// (x+1,y)). Ruleset is stateless; the zero value is ready to use.
type Ruleset struct{}

// LeftMoves returns every position reachable by placing one vertical
// domino, normalized and deduplicated.
func (Ruleset) LeftMoves(pos Position) []Position { return movesFor(pos, 0, 1) }

// RightMoves returns every position reachable by placing one horizontal
// domino, normalized and deduplicated.
func (Ruleset) RightMoves(pos Position) []Position { return movesFor(pos, 1, 0) }

func movesFor(pos Position, dx, dy int) []Position {
	width, height := int(pos.g.Width()), int(pos.g.Height())
	if width == 0 || height == 0 {
		return nil
	}
	var moves []Position
	for y := 0; y <= height-1-dy; y++ {
		for x := 0; x <= width-1-dx; x++ {
			nx, ny := x+dx, y+dy
			if pos.g.Get(uint8(x), uint8(y)) || pos.g.Get(uint8(nx), uint8(ny)) {
				continue
			}
			next := pos.g
			next.Set(uint8(x), uint8(y), true)
			next.Set(uint8(nx), uint8(ny), true)
			moves = append(moves, Position{g: next.MoveTopLeft()})
		}
	}
	return dedupSorted(moves)
}

func dedupSorted(moves []Position) []Position {
	if len(moves) == 0 {
		return moves
	}
	sort.Slice(moves, func(i, j int) bool { return lessPosition(moves[i], moves[j]) })
	out := moves[:1]
	for _, m := range moves[1:] {
		if m != out[len(out)-1] {
			out = append(out, m)
		}
	}
	return out
}

func lessPosition(a, b Position) bool {
	if a.g.Width() != b.g.Width() {
		return a.g.Width() < b.g.Width()
	}
	if a.g.Height() != b.g.Height() {
		return a.g.Height() < b.g.Height()
	}
	return a.g.Bits() < b.g.Bits()
}

// Decompose splits pos into its connected empty regions, each a
// separate Position normalized via MoveTopLeft, following the
// disjunctive-sum decomposition rule: a board with no
// dominoes spanning two regions has a canonical form equal to the sum
// of the regions' canonical forms. A fully-occupied board decomposes to
// zero parts (the zero game). A board that is already a single
// connected region reports ok=false — it isn't a useful decomposition
// (its one "part" is the board itself), and returning it as ok=true
// would recurse into Decompose on an identical shape forever; the
// driver falls back to LeftMoves/RightMoves for these instead.
func (Ruleset) Decompose(pos Position) (parts []Position, ok bool) {
	width, height := pos.g.Width(), pos.g.Height()
	visited := make([]bool, int(width)*int(height))
	idx := func(x, y uint8) int { return int(width)*int(y) + int(x) }
	for y := uint8(0); y < height; y++ {
		for x := uint8(0); x < width; x++ {
			if pos.g.Get(x, y) || visited[idx(x, y)] {
				continue
			}
			component := bfsComponent(pos.g, visited, idx, x, y, width, height)
			parts = append(parts, Position{g: component.MoveTopLeft()})
		}
	}
	if len(parts) == 1 {
		return nil, false
	}
	return parts, true
}

// bfsComponent floods outward from (startX, startY) over pos's empty
// cells, returning a board where that component's cells are empty and
// everything else — the rest of pos, whether occupied or belonging to
// another component — is marked occupied so the two regions can be
// canonicalized independently.
func bfsComponent(src grid.Grid, visited []bool, idx func(x, y uint8) int, startX, startY, width, height uint8) grid.Grid {
	out, _ := grid.Filled(width, height)
	type cell struct{ x, y uint8 }
	queue := []cell{{startX, startY}}
	visited[idx(startX, startY)] = true
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		out.Set(cur.x, cur.y, false)
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := int(cur.x)+d[0], int(cur.y)+d[1]
			if !src.InBounds(nx, ny) {
				continue
			}
			ux, uy := uint8(nx), uint8(ny)
			if src.Get(ux, uy) || visited[idx(ux, uy)] {
				continue
			}
			visited[idx(ux, uy)] = true
			queue = append(queue, cell{ux, uy})
		}
	}
	return out
}
