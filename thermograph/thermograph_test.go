package thermograph_test

import (
	"testing"

	"github.com/katalvlaran/cgt/dyadic"
	"github.com/katalvlaran/cgt/thermograph"
)

func TestNumberThermographIsFlatAtMinusOne(t *testing.T) {
	th := thermograph.NewNumber(dyadic.NewInteger(3))
	if got, want := th.Temperature(), dyadic.NewInteger(-1); !dyadic.Equal(got, want) {
		t.Errorf("Temperature() = %s, want %s", got, want)
	}
	if got, want := th.Mast(), dyadic.NewInteger(3); !dyadic.Equal(got, want) {
		t.Errorf("Mast() = %s, want %s", got, want)
	}
}

func TestBuildSwitchOnePlusMinusOne(t *testing.T) {
	// {1 | -1}: Domineering's 2x2 canonical form. Temperature 1, mast 0.
	th := thermograph.Build(
		[]thermograph.Thermograph{thermograph.NewNumber(dyadic.NewInteger(1))},
		[]thermograph.Thermograph{thermograph.NewNumber(dyadic.NewInteger(-1))},
	)
	if got, want := th.Temperature(), dyadic.NewInteger(1); !dyadic.Equal(got, want) {
		t.Errorf("Temperature() = %s, want %s", got, want)
	}
	if got, want := th.Mast(), dyadic.Zero; !dyadic.Equal(got, want) {
		t.Errorf("Mast() = %s, want %s", got, want)
	}
}

func TestBuildSwitchTwoPlusMinusTwo(t *testing.T) {
	th := thermograph.Build(
		[]thermograph.Thermograph{thermograph.NewNumber(dyadic.NewInteger(2))},
		[]thermograph.Thermograph{thermograph.NewNumber(dyadic.NewInteger(-2))},
	)
	if got, want := th.Temperature(), dyadic.NewInteger(2); !dyadic.Equal(got, want) {
		t.Errorf("Temperature() = %s, want %s", got, want)
	}
	if got, want := th.Mast(), dyadic.Zero; !dyadic.Equal(got, want) {
		t.Errorf("Mast() = %s, want %s", got, want)
	}
}

func TestBuildMultipleOptionsPicksExtremeWall(t *testing.T) {
	// {0, 2 | 4}: Left's dominant option is 2 (max(-t, 2-t) = 2-t for all
	// t >= -1, the 0 option never matters), so this behaves like {2|4} —
	// which, since 2 < 4, is itself the number 3 by the simplicity rule,
	// so the walls already meet at t = -1.
	th := thermograph.Build(
		[]thermograph.Thermograph{
			thermograph.NewNumber(dyadic.Zero),
			thermograph.NewNumber(dyadic.NewInteger(2)),
		},
		[]thermograph.Thermograph{thermograph.NewNumber(dyadic.NewInteger(4))},
	)
	if got, want := th.Temperature(), dyadic.NewInteger(-1); !dyadic.Equal(got, want) {
		t.Errorf("Temperature() = %s, want %s", got, want)
	}
	if got, want := th.Mast(), dyadic.NewInteger(3); !dyadic.Equal(got, want) {
		t.Errorf("Mast() = %s, want %s", got, want)
	}
}
