package game

import (
	"sort"
	"sync"

	"github.com/katalvlaran/cgt/dyadic"
	"github.com/katalvlaran/cgt/thermograph"
)

// ID identifies a canonical game value within a Table. IDs are never
// reused and never invalidated: once published, an ID's entry never
// changes (append-only interning).
type ID int

// Moves lists a position's canonicalized left and right options, for
// callers that want to inspect a game's structure.
type Moves struct {
	Left  []ID
	Right []ID
}

type entry struct {
	left, right []ID
	number      *dyadic.Rational // non-nil iff this canonical form is a pure number
	nimberOrder *int             // non-nil iff this canonical form is a pure nimber *n, n > 0
	display     string
}

// Table is the append-only canonical-form store. The zero Table is not
// ready for use; construct one with NewTable.
type Table struct {
	muEntries sync.RWMutex
	entries   []entry
	index     map[string]ID // canonical option-key -> ID, for interning

	muCache   sync.RWMutex
	leqCache  map[[2]ID]bool
	sumCache  map[[2]ID]ID
	negCache  map[ID]ID
	thermoCache map[ID]thermograph.Thermograph
}

// NewTable constructs an empty Table, pre-seeded with the zero game at
// ID 0.
func NewTable() *Table {
	t := &Table{
		index:    make(map[string]ID),
		leqCache:    make(map[[2]ID]bool),
		sumCache:    make(map[[2]ID]ID),
		negCache:    make(map[ID]ID),
		thermoCache: make(map[ID]thermograph.Thermograph),
	}
	zero := dyadic.Zero
	t.entries = append(t.entries, entry{number: &zero, display: "0"})
	t.index[optionKey(nil, nil)] = 0
	return t
}

// Zero returns the zero game's ID, the identity element of Sum.
func (t *Table) Zero() ID { return 0 }

func (t *Table) entryAt(id ID) entry {
	t.muEntries.RLock()
	defer t.muEntries.RUnlock()
	return t.entries[id]
}

// Len returns the number of distinct canonical forms interned so far.
func (t *Table) Len() int {
	t.muEntries.RLock()
	defer t.muEntries.RUnlock()
	return len(t.entries)
}

// Left returns id's canonicalized left options.
func (t *Table) Left(id ID) []ID { return append([]ID(nil), t.entryAt(id).left...) }

// Right returns id's canonicalized right options.
func (t *Table) Right(id ID) []ID { return append([]ID(nil), t.entryAt(id).right...) }

// MovesOf returns id's left and right options together.
func (t *Table) MovesOf(id ID) Moves {
	e := t.entryAt(id)
	return Moves{Left: append([]ID(nil), e.left...), Right: append([]ID(nil), e.right...)}
}

// IsNumber reports whether id's canonical form is a pure number, and
// returns its value if so.
func (t *Table) IsNumber(id ID) (dyadic.Rational, bool) {
	e := t.entryAt(id)
	if e.number == nil {
		return dyadic.Rational{}, false
	}
	return *e.number, true
}

// sortDedup returns a sorted copy of ids with duplicates removed.
func sortDedup(ids []ID) []ID {
	if len(ids) == 0 {
		return nil
	}
	cp := append([]ID(nil), ids...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, id := range cp[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// optionKey builds the interning key for a (left, right) option pair.
// Callers must pass already sort-deduped slices.
func optionKey(left, right []ID) string {
	buf := make([]byte, 0, 8*(len(left)+len(right))+2)
	for _, id := range left {
		buf = appendID(buf, id)
	}
	buf = append(buf, '|')
	for _, id := range right {
		buf = appendID(buf, id)
	}
	return string(buf)
}

func appendID(buf []byte, id ID) []byte {
	buf = append(buf, ',')
	if id < 0 {
		buf = append(buf, '-')
		id = -id
	}
	if id == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for id > 0 {
		i--
		tmp[i] = byte('0' + id%10)
		id /= 10
	}
	return append(buf, tmp[i:]...)
}

// internRaw publishes (left, right) as a new entry, or returns the
// existing ID if this exact option set is already interned. left and
// right must already be the final, fully-simplified canonical option
// lists: internRaw performs no dominated-option or reversible-option
// processing of its own.
func (t *Table) internRaw(left, right []ID, number *dyadic.Rational, nimberOrder *int, display string) ID {
	left = sortDedup(left)
	right = sortDedup(right)
	key := optionKey(left, right)

	t.muEntries.Lock()
	defer t.muEntries.Unlock()
	if id, ok := t.index[key]; ok {
		return id
	}
	id := ID(len(t.entries))
	t.entries = append(t.entries, entry{left: left, right: right, number: number, nimberOrder: nimberOrder, display: display})
	t.index[key] = id
	return id
}
