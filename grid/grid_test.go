package grid_test

import (
	"testing"

	"github.com/katalvlaran/cgt/grid"
)

func TestParseDisplayRoundtrip(t *testing.T) {
	inputs := []string{
		"...|#.#|##.|###",
		"..#|.#.|##.",
		"#",
		".",
	}
	for _, in := range inputs {
		g, err := grid.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := g.Display(); got != in {
			t.Errorf("Display() = %q, want %q", got, in)
		}
	}
}

func TestParseRejectsNonRectangular(t *testing.T) {
	if _, err := grid.Parse("..|."); err == nil {
		t.Fatal("expected error for non-rectangular input")
	}
}

func TestParseRejectsBadChar(t *testing.T) {
	if _, err := grid.Parse("..x"); err == nil {
		t.Fatal("expected error for invalid character")
	}
}

func TestFromNumber(t *testing.T) {
	g, err := grid.FromNumber(3, 2, 0b101110)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.Display(), ".##|#.#"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestTooLarge(t *testing.T) {
	if _, err := grid.Empty(10, 10); err != grid.ErrTooLarge {
		t.Fatalf("Empty(10,10) err = %v, want ErrTooLarge", err)
	}
}

func TestSetWorks(t *testing.T) {
	g, _ := grid.Parse(".#.|##.")
	g.Set(2, 1, true)
	g.Set(0, 0, true)
	g.Set(1, 0, false)
	if got, want := g.Display(), "#..|###"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestRotation(t *testing.T) {
	g, _ := grid.Parse("##..|....|#..#")
	g = g.Rotate90CW()
	if got, want := g.Display(), "#.#|..#|...|#.."; got != want {
		t.Errorf("after one rotation = %q, want %q", got, want)
	}
	g = g.Rotate90CW()
	if got, want := g.Display(), "#..#|....|..##"; got != want {
		t.Errorf("after two rotations = %q, want %q", got, want)
	}
}

func TestFlips(t *testing.T) {
	g, _ := grid.Parse("##..|....|#..#")
	if got, want := g.VerticalFlip().Display(), "..##|....|#..#"; got != want {
		t.Errorf("VerticalFlip() = %q, want %q", got, want)
	}
	if got, want := g.HorizontalFlip().Display(), "#..#|....|##.."; got != want {
		t.Errorf("HorizontalFlip() = %q, want %q", got, want)
	}
}

func TestMoveTopLeft(t *testing.T) {
	g, _ := grid.Parse("###|.#.|##.")
	if got, want := g.MoveTopLeft().Display(), ".#.|##."; got != want {
		t.Errorf("MoveTopLeft() = %q, want %q", got, want)
	}
}

func TestMoveTopLeftFullyFilledCollapsesToZeroSize(t *testing.T) {
	g, _ := grid.Filled(3, 2)
	got := g.MoveTopLeft()
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("MoveTopLeft() of filled grid = %dx%d, want 0x0", got.Width(), got.Height())
	}
}

func TestMoveTopLeftIdempotent(t *testing.T) {
	g, _ := grid.Parse("###|.#.|##.")
	once := g.MoveTopLeft()
	twice := once.MoveTopLeft()
	if once.Display() != twice.Display() {
		t.Errorf("MoveTopLeft not idempotent: %q then %q", once.Display(), twice.Display())
	}
}

func TestSymmetriesPreserveCellCount(t *testing.T) {
	g, _ := grid.Parse("..#|.#.|##.")
	want := countFilled(g)
	for i, sym := range g.Symmetries() {
		if got := countFilled(sym); got != want {
			t.Errorf("symmetry %d: filled count = %d, want %d", i, got, want)
		}
	}
}

func countFilled(g grid.Grid) int {
	n := 0
	for y := uint8(0); y < g.Height(); y++ {
		for x := uint8(0); x < g.Width(); x++ {
			if g.Get(x, y) {
				n++
			}
		}
	}
	return n
}
