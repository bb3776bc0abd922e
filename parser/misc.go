package parser

import (
	"github.com/ava12/httplint/grammar"
)

// ruleStack holds named rules being evaluated with their start positions, innermost last.
type ruleStack struct {
	rules []*grammar.Rule
	pos   []int
}

func (s *ruleStack) Len() int {
	return len(s.rules)
}

func (s *ruleStack) Push(r *grammar.Rule, pos int) {
	s.rules = append(s.rules, r)
	s.pos = append(s.pos, pos)
}

func (s *ruleStack) Drop() {
	if len(s.rules) != 0 {
		s.rules = s.rules[:len(s.rules)-1]
		s.pos = s.pos[:len(s.pos)-1]
	}
}

// Top returns the innermost rule and its start position, nil if the stack is empty.
func (s *ruleStack) Top() (*grammar.Rule, int) {
	if len(s.rules) == 0 {
		return nil, -1
	}
	i := len(s.rules) - 1
	return s.rules[i], s.pos[i]
}

// Cited returns the innermost rule with a citation or nil.
func (s *ruleStack) Cited() *grammar.Rule {
	for i := len(s.rules) - 1; i >= 0; i-- {
		if !s.rules[i].Citation().IsZero() {
			return s.rules[i]
		}
	}
	return nil
}

func isTerminal(r *grammar.Rule) bool {
	switch r.Kind() {
	case grammar.EmptyRule, grammar.LiteralRule, grammar.RangeRule:
		return true
	}
	return false
}

const endIndexThreshold = 8

// derivList keeps derivations with distinct ends in insertion order.
type derivList struct {
	ds   []*deriv
	ends map[int]bool
}

func (l *derivList) has(end int) bool {
	if l.ends != nil {
		return l.ends[end]
	}

	for _, d := range l.ds {
		if d.end == end {
			return true
		}
	}
	return false
}

// add appends d unless a derivation with the same end is already present.
func (l *derivList) add(d *deriv) bool {
	if l.has(d.end) {
		return false
	}

	l.ds = append(l.ds, d)
	if l.ends != nil {
		l.ends[d.end] = true
	} else if len(l.ds) > endIndexThreshold {
		l.ends = make(map[int]bool, len(l.ds)*2)
		for _, ld := range l.ds {
			l.ends[ld.end] = true
		}
	}
	return true
}

func equalFoldASCII(input []byte, text string) bool {
	if len(input) != len(text) {
		return false
	}

	for i, b := range input {
		c := text[i]
		if b == c {
			continue
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if b != c {
			return false
		}
	}
	return true
}
