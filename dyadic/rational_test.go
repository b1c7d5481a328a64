package dyadic_test

import (
	"testing"

	"github.com/katalvlaran/cgt/dyadic"
)

func TestNewAutoReduces(t *testing.T) {
	got := dyadic.New(4, 2) // 4/4 = 1
	if !got.IsInteger() || got.Numerator() != 1 {
		t.Fatalf("New(4,2) = %s, want 1", got)
	}
}

func TestFromFractionRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := dyadic.FromFraction(1, 3); err != dyadic.ErrInvalidRational {
		t.Fatalf("FromFraction(1,3) err = %v, want ErrInvalidRational", err)
	}
}

func TestFromFractionRejectsZeroDenominator(t *testing.T) {
	if _, err := dyadic.FromFraction(1, 0); err != dyadic.ErrInvalidRational {
		t.Fatalf("FromFraction(1,0) err = %v, want ErrInvalidRational", err)
	}
}

func TestAddSubNegRoundtrip(t *testing.T) {
	a, _ := dyadic.FromFraction(1, 2)
	b, _ := dyadic.FromFraction(1, 4)
	sum := dyadic.Add(a, b)
	if got, want := sum.String(), "3/4"; got != want {
		t.Errorf("1/2+1/4 = %s, want %s", got, want)
	}
	back := dyadic.Sub(sum, b)
	if !dyadic.Equal(back, a) {
		t.Errorf("(a+b)-b = %s, want %s", back, a)
	}
	if got := dyadic.Neg(dyadic.Neg(a)); !dyadic.Equal(got, a) {
		t.Errorf("-(-a) = %s, want %s", got, a)
	}
}

func TestCompare(t *testing.T) {
	half, _ := dyadic.FromFraction(1, 2)
	third := dyadic.NewInteger(1) // placeholder to exercise Compare below
	if dyadic.Compare(half, third) >= 0 {
		t.Errorf("1/2 should be < 1")
	}
	if dyadic.Compare(half, half) != 0 {
		t.Errorf("half should equal itself")
	}
}

func TestFloor(t *testing.T) {
	cases := []struct {
		num  int64
		exp  uint8
		want int64
	}{
		{3, 1, 1},  // 3/2 -> 1
		{-3, 1, -2}, // -3/2 -> -2
		{4, 0, 4},
	}
	for _, c := range cases {
		r := dyadic.New(c.num, c.exp)
		if got := r.Floor(); got != c.want {
			t.Errorf("Floor(%s) = %d, want %d", r, got, c.want)
		}
	}
}

func TestMean(t *testing.T) {
	a := dyadic.NewInteger(1)
	b := dyadic.NewInteger(3)
	if got, want := dyadic.Mean(a, b).String(), "2"; got != want {
		t.Errorf("Mean(1,3) = %s, want %s", got, want)
	}
}

func TestSimplestBetweenPicksIntegerWhenPresent(t *testing.T) {
	a, _ := dyadic.FromFraction(1, 2)
	b := dyadic.NewInteger(3)
	got := dyadic.SimplestBetween(a, b)
	if got, want := got.String(), "1"; got != want {
		t.Errorf("SimplestBetween(1/2, 3) = %s, want %s", got, want)
	}
}

func TestSimplestBetweenStraddlingZero(t *testing.T) {
	a, _ := dyadic.FromFraction(-1, 2)
	b, _ := dyadic.FromFraction(1, 2)
	got := dyadic.SimplestBetween(a, b)
	if got.Numerator() != 0 {
		t.Errorf("SimplestBetween(-1/2, 1/2) = %s, want 0", got)
	}
}

func TestSimplestBetweenNoIntegerPicksSmallestDenominator(t *testing.T) {
	a, _ := dyadic.FromFraction(1, 4)
	b, _ := dyadic.FromFraction(3, 4)
	got := dyadic.SimplestBetween(a, b)
	if got, want := got.String(), "1/2"; got != want {
		t.Errorf("SimplestBetween(1/4, 3/4) = %s, want %s", got, want)
	}
}

func TestParseRationalRoundtrip(t *testing.T) {
	inputs := []string{"0", "-1", "3/4", "-5/8", "42"}
	for _, in := range inputs {
		r, err := dyadic.ParseRational(in)
		if err != nil {
			t.Fatalf("ParseRational(%q): %v", in, err)
		}
		if got := r.String(); got != in {
			t.Errorf("ParseRational(%q).String() = %q, want %q", in, got, in)
		}
	}
}

func TestParseRationalRejectsMalformed(t *testing.T) {
	for _, in := range []string{"abc", "1/0", "1/3", "1.5", ""} {
		if _, err := dyadic.ParseRational(in); err == nil {
			t.Errorf("ParseRational(%q) expected error", in)
		}
	}
}

func TestExtendedArithmeticUndefinedOnMixedInfinities(t *testing.T) {
	_, err := dyadic.AddExtended(dyadic.PosInfinity, dyadic.NegInfinity)
	if err != dyadic.ErrArithmeticUndefined {
		t.Fatalf("AddExtended(+inf,-inf) err = %v, want ErrArithmeticUndefined", err)
	}
}

func TestExtendedFinitePlusInfinity(t *testing.T) {
	sum, err := dyadic.AddExtended(dyadic.FiniteInt(5), dyadic.PosInfinity)
	if err != nil {
		t.Fatal(err)
	}
	if dyadic.CompareExtended(sum, dyadic.PosInfinity) != 0 {
		t.Errorf("finite + (+inf) = %s, want +inf", sum)
	}
}

func TestExtendedDisplay(t *testing.T) {
	if got, want := dyadic.NegInfinity.String(), "-∞"; got != want {
		t.Errorf("NegInfinity.String() = %q, want %q", got, want)
	}
	if got, want := dyadic.PosInfinity.String(), "∞"; got != want {
		t.Errorf("PosInfinity.String() = %q, want %q", got, want)
	}
}
