package grid

import "strings"

// maxCells is the capacity of the uint64 bitset backing every Grid.
const maxCells = 64

// Grid is an immutable-by-convention, bit-packed rectangular grid of up
// to 64 boolean cells. Bit i of the backing word is the occupancy of
// cell (i mod Width, i / Width).
//
// The zero Grid is the 0x0 empty grid (width=0, height=0, bits=0); it is
// the canonical result of MoveTopLeft on a fully-filled grid.
type Grid struct {
	width, height uint8
	bits          uint64
}

// checkDimensions reports ErrTooLarge if width*height would overflow the
// 64-bit backing store.
func checkDimensions(width, height uint8) error {
	if int(width)*int(height) > maxCells {
		return ErrTooLarge
	}
	return nil
}

// Empty returns a width×height grid with every cell unoccupied.
// Complexity: O(1).
func Empty(width, height uint8) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	return Grid{width: width, height: height}, nil
}

// Filled returns a width×height grid with every cell occupied.
// Complexity: O(1).
func Filled(width, height uint8) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	g := Grid{width: width, height: height, bits: ^uint64(0)}
	return g, nil
}

// FromNumber builds a width×height grid whose cell bits are taken from
// id: bit i (i = y*width+x) is 1 iff cell (x,y) is occupied. Bits of id
// beyond width*height are ignored.
// Complexity: O(1).
func FromNumber(width, height uint8, id uint64) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	n := uint(width) * uint(height)
	var mask uint64
	if n >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << n) - 1
	}
	return Grid{width: width, height: height, bits: id & mask}, nil
}

// Parse reads the "." / "#" / "|" grid notation: rows are separated by
// "|" and must all share the same length; the total cell count must not
// exceed 64.
// Complexity: O(W×H).
func Parse(input string) (Grid, error) {
	if input == "" {
		return Grid{}, ErrInvalidGrid
	}
	rows := strings.Split(input, "|")
	width := len(rows[0])
	height := len(rows)
	if width == 0 || width*height > maxCells {
		return Grid{}, ErrInvalidGrid
	}
	g, err := Empty(uint8(width), uint8(height))
	if err != nil {
		return Grid{}, err
	}
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, ErrInvalidGrid
		}
		for x, ch := range row {
			switch ch {
			case '.':
				g.Set(uint8(x), uint8(y), false)
			case '#':
				g.Set(uint8(x), uint8(y), true)
			default:
				return Grid{}, ErrInvalidGrid
			}
		}
	}
	return g, nil
}

// Width reports the number of columns.
func (g Grid) Width() uint8 { return g.width }

// Height reports the number of rows.
func (g Grid) Height() uint8 { return g.height }

// Bits reports the raw backing word, bit i = cell (i mod width, i / width).
func (g Grid) Bits() uint64 { return g.bits }

// cellIndex maps (x,y) to its bit position.
func (g Grid) cellIndex(x, y uint8) uint {
	return uint(g.width)*uint(y) + uint(x)
}

// Get reports whether cell (x,y) is occupied. x and y must be in bounds.
// Complexity: O(1).
func (g Grid) Get(x, y uint8) bool {
	n := g.cellIndex(x, y)
	return (g.bits>>n)&1 == 1
}

// Set marks cell (x,y) occupied (value=true) or empty (value=false).
// Complexity: O(1).
func (g *Grid) Set(x, y uint8, value bool) {
	n := g.cellIndex(x, y)
	if value {
		g.bits |= uint64(1) << n
	} else {
		g.bits &^= uint64(1) << n
	}
}

// InBounds reports whether (x,y) lies within the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < int(g.width) && y >= 0 && y < int(g.height)
}

// Display renders the grid in "." / "#" / "|" notation.
// Complexity: O(W×H).
func (g Grid) Display() string {
	var b strings.Builder
	b.Grow(int(g.width)*int(g.height) + int(g.height))
	for y := uint8(0); y < g.height; y++ {
		if y != 0 {
			b.WriteByte('|')
		}
		for x := uint8(0); x < g.width; x++ {
			if g.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (g Grid) String() string { return g.Display() }

// Rotate90CW returns the grid rotated ninety degrees clockwise; the
// result has Width()==g.Height() and Height()==g.Width().
// Complexity: O(W×H).
func (g Grid) Rotate90CW() Grid {
	result, _ := Empty(g.height, g.width)
	for y := uint8(0); y < g.height; y++ {
		for x := uint8(0); x < g.width; x++ {
			result.Set(result.width-y-1, x, g.Get(x, y))
		}
	}
	return result
}

// VerticalFlip mirrors the grid left-to-right.
// Complexity: O(W×H).
func (g Grid) VerticalFlip() Grid {
	result, _ := Empty(g.width, g.height)
	for y := uint8(0); y < g.height; y++ {
		for x := uint8(0); x < g.width; x++ {
			result.Set(result.width-x-1, y, g.Get(x, y))
		}
	}
	return result
}

// HorizontalFlip mirrors the grid top-to-bottom.
// Complexity: O(W×H).
func (g Grid) HorizontalFlip() Grid {
	result, _ := Empty(g.width, g.height)
	for y := uint8(0); y < g.height; y++ {
		for x := uint8(0); x < g.width; x++ {
			result.Set(x, result.height-y-1, g.Get(x, y))
		}
	}
	return result
}

// Symmetries returns all eight symmetries of the rectangle (the dihedral
// group D4: four rotations times an optional reflection), in the order
// {id, rot90, rot180, rot270, flipV, flipV+rot90, flipV+rot180, flipV+rot270}.
// Used by property tests; not otherwise part of the
// canonicalisation algorithm.
// Complexity: O(W×H).
func (g Grid) Symmetries() [8]Grid {
	r0 := g
	r1 := r0.Rotate90CW()
	r2 := r1.Rotate90CW()
	r3 := r2.Rotate90CW()
	f0 := g.VerticalFlip()
	f1 := f0.Rotate90CW()
	f2 := f1.Rotate90CW()
	f3 := f2.Rotate90CW()
	return [8]Grid{r0, r1, r2, r3, f0, f1, f2, f3}
}

// MoveTopLeft strips wholly-filled border rows and columns, returning
// the smaller grid in canonical orientation. A grid that is entirely
// filled collapses to the 0x0 empty grid.
// Complexity: O(W×H).
func (g Grid) MoveTopLeft() Grid {
	topRows := 0
	for y := uint8(0); y < g.height; y++ {
		if !g.rowFilled(y) {
			break
		}
		topRows++
	}
	if topRows == int(g.height) {
		return Grid{}
	}

	bottomRows := 0
	for y := uint8(0); y < g.height; y++ {
		if !g.rowFilled(g.height - y - 1) {
			break
		}
		bottomRows++
	}

	leftCols := 0
	for x := uint8(0); x < g.width; x++ {
		if !g.colFilled(x) {
			break
		}
		leftCols++
	}
	if leftCols == int(g.width) {
		return Grid{}
	}

	rightCols := 0
	for x := uint8(0); x < g.width; x++ {
		if !g.colFilled(g.width - x - 1) {
			break
		}
		rightCols++
	}

	newWidth := int(g.width) - leftCols - rightCols
	newHeight := int(g.height) - topRows - bottomRows
	result, _ := Empty(uint8(newWidth), uint8(newHeight))
	for y := topRows; y < int(g.height)-bottomRows; y++ {
		for x := leftCols; x < int(g.width)-rightCols; x++ {
			result.Set(uint8(x-leftCols), uint8(y-topRows), g.Get(uint8(x), uint8(y)))
		}
	}
	return result
}

func (g Grid) rowFilled(y uint8) bool {
	for x := uint8(0); x < g.width; x++ {
		if !g.Get(x, y) {
			return false
		}
	}
	return true
}

func (g Grid) colFilled(x uint8) bool {
	for y := uint8(0); y < g.height; y++ {
		if !g.Get(x, y) {
			return false
		}
	}
	return true
}
