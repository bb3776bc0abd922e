package grammar

import (
	"github.com/ava12/httplint/citation"
)

type declaration struct {
	name string
	rule *Rule
}

// Module is a named collection of rules sharing a default citation,
// e.g. all rules defined by one RFC.
type Module struct {
	name  string
	cite  citation.Citation
	decls []declaration
	index map[string]*Rule
}

func NewModule(name string, cite citation.Citation) *Module {
	return &Module{
		name:  name,
		cite:  cite,
		index: make(map[string]*Rule),
	}
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Citation() citation.Citation {
	return m.cite
}

func (m *Module) declare(name string, r *Rule, pivot bool) *Rule {
	if m.index[name] != nil {
		panic(duplicateNameError(m.name, name))
	}

	// a rule that already has metadata of its own gets a separate node
	if r.declared || r.frozen || (r.name != "" && r.name != name) {
		r = Ref(r)
	}

	r.declared = true
	m.index[name] = r
	m.decls = append(m.decls, declaration{name, r})
	if pivot {
		return r.Pivot()
	}
	return r.Auto()
}

// Pivot declares a pivot rule.
func (m *Module) Pivot(name string, r *Rule) *Rule {
	return m.declare(name, r, true)
}

// Auto declares an auxiliary rule.
func (m *Module) Auto(name string, r *Rule) *Rule {
	return m.declare(name, r, false)
}

// Rule returns declared rule or nil.
func (m *Module) Rule(name string) *Rule {
	return m.index[name]
}

// Names returns declared names in declaration order.
func (m *Module) Names() []string {
	res := make([]string, len(m.decls))
	for i, d := range m.decls {
		res[i] = d.name
	}
	return res
}

// Finish assigns declared names to unnamed declared rules and the module citation
// to uncited ones, then checks and freezes all declared rules.
// It must be called once, after all rules are declared and bound; it panics on malformed grammar.
func (m *Module) Finish() *Module {
	rules := make([]*Rule, len(m.decls))
	for i, d := range m.decls {
		r := d.rule
		if !r.frozen {
			if r.name == "" {
				r.name = d.name
			}
			if r.cite.IsZero() {
				r.cite = m.cite
			}
		}
		rules[i] = r
	}

	MustCheck(rules...)
	return m
}
