package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgt/dyadic"
	"github.com/katalvlaran/cgt/game"
)

func TestConstructIntegerDisplayRoundtrip(t *testing.T) {
	tbl := game.NewTable()
	for _, n := range []int64{0, 1, -1, 5, -5} {
		id := tbl.ConstructInteger(n)
		got, err := tbl.Parse(tbl.Display(id))
		require.NoError(t, err)
		require.Equal(t, id, got, "Parse(Display(%d))", n)
	}
}

func TestConstructDyadicIsNumber(t *testing.T) {
	tbl := game.NewTable()
	half, _ := dyadic.FromFraction(1, 2)
	id := tbl.ConstructDyadic(half)
	v, ok := tbl.IsNumber(id)
	require.True(t, ok)
	require.True(t, dyadic.Equal(v, half))
}

func TestSumOfIntegers(t *testing.T) {
	tbl := game.NewTable()
	a := tbl.ConstructInteger(3)
	b := tbl.ConstructInteger(4)
	sum := tbl.Sum(a, b)
	v, ok := tbl.IsNumber(sum)
	require.True(t, ok)
	require.Equal(t, int64(7), v.Numerator())
}

func TestNegateInvolution(t *testing.T) {
	tbl := game.NewTable()
	a := tbl.ConstructInteger(3)
	require.Equal(t, a, tbl.Negate(tbl.Negate(a)))
}

func TestGameMinusItselfIsZero(t *testing.T) {
	tbl := game.NewTable()
	star := tbl.ConstructNimber(2)
	sum := tbl.Sum(star, tbl.Negate(star))
	require.Equal(t, tbl.Zero(), sum)
}

func TestConstructFromOptionsSwitchTemperature(t *testing.T) {
	tbl := game.NewTable()
	one := tbl.ConstructInteger(1)
	negOne := tbl.ConstructInteger(-1)
	sw := tbl.ConstructFromOptions([]game.ID{one}, []game.ID{negOne})
	temp := tbl.Temperature(sw)
	require.Equal(t, dyadic.NewInteger(1), temp)
	mast := tbl.Thermograph(sw).Mast()
	require.True(t, dyadic.Equal(mast, dyadic.Zero))
}

func TestConstructFromOptionsCollapsesToNumber(t *testing.T) {
	// {0 | 5}: since 0 < 5, the number simplicity rule says this is the
	// number 1, not a genuinely new compound game.
	tbl := game.NewTable()
	zero := tbl.Zero()
	five := tbl.ConstructInteger(5)
	id := tbl.ConstructFromOptions([]game.ID{zero}, []game.ID{five})
	require.Equal(t, tbl.ConstructInteger(1), id)
}

func TestConstructFromOptionsOneSidedBoundStraddlesZero(t *testing.T) {
	// {-2|}: the simplest number greater than -2 is 0, not -1 — the same
	// straddle-zero rule the two-bound case already applies.
	tbl := game.NewTable()
	negTwo := tbl.ConstructInteger(-2)
	id := tbl.ConstructFromOptions([]game.ID{negTwo}, nil)
	require.Equal(t, tbl.Zero(), id)

	// {|2}: symmetrically, the simplest number less than 2 is 0.
	two := tbl.ConstructInteger(2)
	id = tbl.ConstructFromOptions(nil, []game.ID{two})
	require.Equal(t, tbl.Zero(), id)
}

func TestLeqAndCompare(t *testing.T) {
	tbl := game.NewTable()
	one := tbl.ConstructInteger(1)
	two := tbl.ConstructInteger(2)
	require.True(t, tbl.Leq(one, two))
	require.False(t, tbl.Leq(two, one))
	cmp, comparable := tbl.Compare(one, two)
	require.True(t, comparable)
	require.Equal(t, -1, cmp)
}

func TestCompareConfusedValues(t *testing.T) {
	tbl := game.NewTable()
	star := tbl.ConstructNimber(1)
	zero := tbl.Zero()
	_, comparable := tbl.Compare(star, zero)
	require.False(t, comparable, "*1 and 0 should be confused (neither <=)")
}

func TestParseBracedForm(t *testing.T) {
	tbl := game.NewTable()
	id, err := tbl.Parse("{1|-1}")
	require.NoError(t, err)
	temp := tbl.Temperature(id)
	require.Equal(t, dyadic.NewInteger(1), temp)
}

func TestParseNimber(t *testing.T) {
	tbl := game.NewTable()
	id, err := tbl.Parse("*3")
	require.NoError(t, err)
	require.Equal(t, tbl.ConstructNimber(3), id)
}

func TestConstructNumberUpStarTemperature(t *testing.T) {
	tbl := game.NewTable()
	up := tbl.ConstructNumberUpStar(dyadic.Zero, 1, 0)
	// up = {0|*}, known temperature 0, mast 0 (an infinitesimal).
	require.Equal(t, dyadic.Zero, tbl.Temperature(up))
}

func TestConstructNumberUpStarDisplay(t *testing.T) {
	tbl := game.NewTable()
	cases := []struct {
		name       string
		value      dyadic.Rational
		upMultiple int64
		starOrder  uint
		want       string
	}{
		{"up", dyadic.Zero, 1, 0, "↑"},
		{"down", dyadic.Zero, -1, 0, "↓"},
		{"number plus star", dyadic.NewInteger(1), 0, 1, "1*"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id := tbl.ConstructNumberUpStar(c.value, c.upMultiple, c.starOrder)
			require.Equal(t, c.want, tbl.Display(id))
		})
	}
}
