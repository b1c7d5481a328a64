package game

import (
	"github.com/katalvlaran/cgt/dyadic"
	"github.com/katalvlaran/cgt/thermograph"
)

// Thermograph returns id's thermograph, building it recursively from its
// options' thermographs and memoizing the result.
func (t *Table) Thermograph(id ID) thermograph.Thermograph {
	t.muCache.RLock()
	if th, ok := t.thermoCache[id]; ok {
		t.muCache.RUnlock()
		return th
	}
	t.muCache.RUnlock()

	e := t.entryAt(id)
	var th thermograph.Thermograph
	if e.number != nil {
		th = thermograph.NewNumber(*e.number)
	} else {
		leftThermos := make([]thermograph.Thermograph, len(e.left))
		for i, l := range e.left {
			leftThermos[i] = t.Thermograph(l)
		}
		rightThermos := make([]thermograph.Thermograph, len(e.right))
		for i, r := range e.right {
			rightThermos[i] = t.Thermograph(r)
		}
		th = thermograph.Build(leftThermos, rightThermos)
	}

	t.muCache.Lock()
	t.thermoCache[id] = th
	t.muCache.Unlock()
	return th
}

// Temperature returns id's temperature: -1 for numbers (the zero game
// included), 0 for nimbers, and the meeting point of the two
// thermograph walls in general.
func (t *Table) Temperature(id ID) dyadic.Rational {
	return t.Thermograph(id).Temperature()
}
