package game

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/cgt/dyadic"
)

// Display renders id's canonical form as "{L,L|R,R}" text, with L and R
// numbers/nimbers rendered in their short form. Number-up-star
// composites (a number confused with a handful of stars) get their own
// shorthand too: "↑"/"↓" for the atoms {0|*} and {*|0}, and "n*k" for a
// nonzero number n summed with the nimber *k ("n*" when k == 1). The
// result is cached on first computation.
func (t *Table) Display(id ID) string {
	e := t.entryAt(id)
	if e.display != "" {
		return e.display
	}
	if s, ok := t.numberUpStarDisplay(id, e); ok {
		t.muEntries.Lock()
		t.entries[id].display = s
		t.muEntries.Unlock()
		return s
	}
	left := make([]string, len(e.left))
	for i, l := range e.left {
		left[i] = t.Display(l)
	}
	right := make([]string, len(e.right))
	for i, r := range e.right {
		right[i] = t.Display(r)
	}
	s := "{" + strings.Join(left, ",") + "|" + strings.Join(right, ",") + "}"
	t.muEntries.Lock()
	t.entries[id].display = s
	t.muEntries.Unlock()
	return s
}

// numberUpStarDisplay recognizes the shapes ConstructNumberUpStar
// produces that plain number/nimber detection misses, and renders them
// in their conventional shorthand rather than nested braces.
func (t *Table) numberUpStarDisplay(id ID, e entry) (string, bool) {
	if len(e.left) == 1 && len(e.right) == 1 {
		switch {
		case e.left[0] == t.Zero() && e.right[0] == t.ConstructNimber(1):
			return "↑", true // up: {0|*}
		case e.left[0] == t.ConstructNimber(1) && e.right[0] == t.Zero():
			return "↓", true // down: {*|0}
		}
	}
	if k := uint(len(e.left)); k > 0 && k == uint(len(e.right)) {
		for _, l := range e.left {
			n, ok := t.IsNumber(l)
			if !ok {
				continue
			}
			if n.IsInteger() && n.Numerator() == 0 {
				break // plain *k, already has its own short display
			}
			if id == t.Sum(t.ConstructDyadic(n), t.ConstructNimber(k)) {
				suffix := "*"
				if k > 1 {
					suffix += strconv.FormatUint(uint64(k), 10)
				}
				return t.Display(t.ConstructDyadic(n)) + suffix, true
			}
			break
		}
	}
	return "", false
}

// Parse parses text in the grammar Display produces — an integer or
// dyadic fraction, a nimber "*n", or a braced "{L,L|R,R}" form, possibly
// nested — and returns the resulting canonical-form ID. The number-up-star
// shorthand ("↑", "↓", "n*k") Display also emits has no parser; write
// those values as their braced expansion instead.
func (t *Table) Parse(text string) (ID, error) {
	p := &parser{s: text, t: t}
	id, err := p.parseValue()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return 0, ErrInvalidDisplay
	}
	return id, nil
}

type parser struct {
	s   string
	pos int
	t   *Table
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) parseValue() (ID, error) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0, ErrInvalidDisplay
	}
	switch p.s[p.pos] {
	case '{':
		return p.parseBraced()
	case '*':
		return p.parseNimber()
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNimber() (ID, error) {
	p.pos++ // consume '*'
	start := p.pos
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return p.t.ConstructNimber(1), nil
	}
	n, err := strconv.ParseUint(p.s[start:p.pos], 10, 32)
	if err != nil {
		return 0, ErrInvalidDisplay
	}
	return p.t.ConstructNimber(uint(n)), nil
}

func (p *parser) parseNumber() (ID, error) {
	start := p.pos
	if p.pos < len(p.s) && p.s[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.s) && p.s[p.pos] == '/' {
		p.pos++
		for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			p.pos++
		}
	}
	if p.pos == start {
		return 0, ErrInvalidDisplay
	}
	r, err := dyadic.ParseRational(p.s[start:p.pos])
	if err != nil {
		return 0, ErrInvalidDisplay
	}
	return p.t.ConstructDyadic(r), nil
}

func (p *parser) parseBraced() (ID, error) {
	p.pos++ // consume '{'
	left, err := p.parseList()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != '|' {
		return 0, ErrInvalidDisplay
	}
	p.pos++
	right, err := p.parseList()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != '}' {
		return 0, ErrInvalidDisplay
	}
	p.pos++
	return p.t.ConstructFromOptions(left, right), nil
}

func (p *parser) parseList() ([]ID, error) {
	p.skipSpace()
	var out []ID
	if p.pos < len(p.s) && (p.s[p.pos] == '|' || p.s[p.pos] == '}') {
		return out, nil
	}
	for {
		id, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, id)
		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	return out, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
