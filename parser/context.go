package parser

import (
	"fmt"
	"strings"

	"github.com/ava12/httplint/grammar"
	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/source"
	"github.com/ava12/httplint/tree"
)

// deriv is a candidate match of a rule: the matched span and item derivations.
// Values, notices, and nodes are built only for the derivation that wins.
type deriv struct {
	rule       *grammar.Rule
	start, end int
	items      *chain
}

// chain is a list of item derivations, the last item first.
// Derivations sharing a prefix share its chain.
type chain struct {
	item *deriv
	prev *chain
}

func (c *chain) slice() []*deriv {
	n := 0
	for l := c; l != nil; l = l.prev {
		n++
	}
	res := make([]*deriv, n)
	for l := c; l != nil; l = l.prev {
		n--
		res[n] = l.item
	}
	return res
}

type memoKey struct {
	id, pos int
}

// ParseContext holds the state of a single parse.
type ParseContext struct {
	parser   *Parser
	src      *source.Source
	input    []byte
	memo     map[memoKey][]*deriv
	rules    ruleStack
	farPos   int
	farDepth int
	farRule  *grammar.Rule
	expected []string
	notes    notice.Notices
	nodes    []*tree.Node
}

func newParseContext(p *Parser, src *source.Source) *ParseContext {
	return &ParseContext{
		parser: p,
		src:    src,
		input:  src.Content(),
		memo:   make(map[memoKey][]*deriv),
		farPos: -1,
	}
}

func (pc *ParseContext) parse() (*Result, error) {
	maxEnd := -1
	for _, d := range pc.apply(pc.parser.root, 0) {
		if d.end == len(pc.input) {
			return pc.result(d), nil
		}

		if d.end > maxEnd {
			maxEnd = d.end
		}
	}

	return nil, pc.syntaxError(maxEnd)
}

func (pc *ParseContext) result(d *deriv) *Result {
	root := pc.parser.root
	value := pc.build(d)
	var node *tree.Node
	if root.IsPivot() {
		node = pc.nodes[0]
	} else {
		node = tree.New(root.String(), root.Citation(), 0, d.end, value, pc.nodes)
	}
	return &Result{Value: value, Notices: pc.notes, Tree: tree.Link(node)}
}

func (pc *ParseContext) syntaxError(maxEnd int) error {
	pos := pc.farPos
	rule := pc.parser.root
	if pc.farRule != nil {
		rule = pc.farRule
	}
	expected := strings.Join(pc.expected, " or ")
	if pc.farRule == nil || maxEnd >= pos {
		pos = maxEnd
		expected = "end of input"
	}
	if pos < 0 {
		pos = 0
		expected = rule.String()
	}

	found := "end of input"
	if pos < len(pc.input) {
		found = fmt.Sprintf("character %q", string(pc.input[pos:pos+1]))
	}
	return syntaxError(pc.src.Pos(pos), found, expected, rule.Name())
}

// fail records a failed match of r. The furthest failure is reported on hard failure,
// among failures at the same position the ones with the shortest rule stack win.
// A terminal that fails inside a named rule is expected by itself,
// any other failure expects the innermost named rule.
func (pc *ParseContext) fail(pos int, r *grammar.Rule) {
	depth := pc.rules.Len()
	if pc.farRule != nil && (pos < pc.farPos || (pos == pc.farPos && depth > pc.farDepth)) {
		return
	}

	top, start := pc.rules.Top()
	if top == nil {
		top, start = pc.parser.root, 0
	}
	if pc.farRule == nil || pos > pc.farPos || depth < pc.farDepth {
		pc.farPos = pos
		pc.farDepth = depth
		pc.farRule = top
		pc.expected = pc.expected[:0]
	}

	what := top.String()
	if pos > start && isTerminal(r) {
		what = r.String()
	}
	for _, e := range pc.expected {
		if e == what {
			return
		}
	}
	pc.expected = append(pc.expected, what)
}

func (pc *ParseContext) apply(r *grammar.Rule, pos int) []*deriv {
	named := (r.Name() != "")
	memoized := (named || !isTerminal(r))
	key := memoKey{r.ID(), pos}
	if memoized {
		if ds, found := pc.memo[key]; found {
			return ds
		}
	}

	if named {
		pc.rules.Push(r, pos)
	}
	ds := pc.eval(r, pos)
	if named {
		pc.rules.Drop()
	}

	if memoized {
		pc.memo[key] = ds
	}
	return ds
}

func (pc *ParseContext) eval(r *grammar.Rule, pos int) []*deriv {
	switch r.Kind() {
	case grammar.EmptyRule:
		return []*deriv{{rule: r, start: pos, end: pos}}

	case grammar.LiteralRule:
		text, caseless := r.Literal()
		end := pos + len(text)
		if end <= len(pc.input) {
			input := pc.input[pos:end]
			if (caseless && equalFoldASCII(input, text)) || (!caseless && string(input) == text) {
				return []*deriv{{rule: r, start: pos, end: end}}
			}
		}
		pc.fail(pos, r)
		return nil

	case grammar.RangeRule:
		lo, hi := r.Range()
		if pos < len(pc.input) && pc.input[pos] >= lo && pc.input[pos] <= hi {
			return []*deriv{{rule: r, start: pos, end: pos + 1}}
		}
		pc.fail(pos, r)
		return nil

	case grammar.SeqRule:
		return pc.sequence(r, pos)

	case grammar.AltRule:
		var res derivList
		for _, item := range r.Items() {
			for _, d := range pc.apply(item, pos) {
				if !res.has(d.end) {
					res.add(lift(r, pos, d))
				}
			}
		}
		return res.ds

	case grammar.RepeatRule:
		return pc.repeat(r, pos)

	case grammar.MaybeRule:
		var res derivList
		for _, d := range pc.apply(r.Items()[0], pos) {
			res.add(lift(r, pos, d))
		}
		if !res.has(pos) {
			res.add(&deriv{rule: r, start: pos, end: pos})
		}
		return res.ds

	case grammar.ForwardRule:
		ds := pc.apply(r.Target(), pos)
		res := make([]*deriv, len(ds))
		for i, d := range ds {
			res[i] = lift(r, pos, d)
		}
		return res
	}

	return pc.transform(r, pos)
}

// lift returns a derivation of r that consists of item alone.
// Unnamed auxiliary rules reuse the item derivation.
func lift(r *grammar.Rule, pos int, item *deriv) *deriv {
	if r.Name() == "" && !r.IsPivot() {
		return item
	}
	return &deriv{rule: r, start: pos, end: item.end, items: &chain{item: item}}
}

// transform handles rules with a single item that change values of item matches.
// Exclusions compare the matched text, other transforms are applied by build.
func (pc *ParseContext) transform(r *grammar.Rule, pos int) []*deriv {
	ds := pc.apply(r.Items()[0], pos)
	res := make([]*deriv, 0, len(ds))
	for _, d := range ds {
		if r.Kind() == grammar.ExcludeRule && r.Excludes(string(pc.input[pos:d.end])) {
			pc.fail(pos, r)
			continue
		}

		res = append(res, &deriv{rule: r, start: pos, end: d.end, items: &chain{item: d}})
	}
	return res
}

func (pc *ParseContext) sequence(r *grammar.Rule, pos int) []*deriv {
	parts := []*deriv{{rule: r, start: pos, end: pos}}
	for _, item := range r.Items() {
		var next derivList
		for _, p := range parts {
			for _, d := range pc.apply(item, p.end) {
				if !next.has(d.end) {
					next.add(&deriv{rule: r, start: pos, end: d.end, items: &chain{d, p.items}})
				}
			}
		}

		if len(next.ds) == 0 {
			return nil
		}
		parts = next.ds
	}
	return parts
}

// repeat returns matches of a repetition.
// Item matches are explored depth-first, longest repetition first. A state
// (position, count) is explored once: every end reachable from an explored
// state has already been found, and found first, by the earlier visit.
func (pc *ParseContext) repeat(r *grammar.Rule, pos int) []*deriv {
	min, max := r.Bounds()
	item := r.Items()[0]
	var res derivList
	visited := make(map[[2]int]bool)

	var walk func(end, count int, path *chain)
	walk = func(end, count int, path *chain) {
		state := [2]int{end, count}
		if max == grammar.Unbounded && count > min {
			state[1] = min
		}
		if visited[state] {
			return
		}
		visited[state] = true

		if max == grammar.Unbounded || count < max {
			for _, d := range pc.apply(item, end) {
				if d.end == end && count >= min {
					continue
				}

				walk(d.end, count+1, &chain{d, path})
			}
		}

		if count >= min && !res.has(end) {
			res.add(&deriv{rule: r, start: pos, end: end, items: path})
		}
	}

	walk(pos, 0, nil)
	return res.ds
}

// build produces the value of a derivation, runs its actions,
// and appends its notices and pivot nodes to the parse result, in input order.
func (pc *ParseContext) build(d *deriv) any {
	r := d.rule
	named := (r.Name() != "")
	if named {
		pc.rules.Push(r, d.start)
	}
	mark := len(pc.nodes)
	value := pc.value(d)
	if named {
		pc.rules.Drop()
	}

	if r.IsPivot() {
		var children []*tree.Node
		if len(pc.nodes) > mark {
			children = append(children, pc.nodes[mark:]...)
		}
		pc.nodes = append(pc.nodes[:mark], tree.New(r.String(), r.Citation(), d.start, d.end, value, children))
	}
	return value
}

func (pc *ParseContext) value(d *deriv) any {
	r := d.rule
	switch r.Kind() {
	case grammar.EmptyRule:
		return nil

	case grammar.LiteralRule, grammar.RangeRule:
		return string(pc.input[d.start:d.end])

	case grammar.SeqRule:
		return pc.sequenceValue(r, d.items.slice())

	case grammar.RepeatRule:
		items := d.items.slice()
		values := make([]any, len(items))
		for i, item := range items {
			values[i] = pc.build(item)
		}
		if r.Joined() {
			return grammar.TextOf(values)
		}
		return values

	case grammar.MaybeRule:
		if d.items == nil {
			return r.Default()
		}
	}

	value := pc.build(d.items.item)
	switch r.Kind() {
	case grammar.MapRule:
		value = r.Convert(value)

	case grammar.ActionRule:
		c := pc.collector(r, d.start, d.end)
		value = r.Action()(value, c)
		pc.notes = append(pc.notes, c.Notices...)

	case grammar.SkipRule:
		value = nil

	case grammar.TextRule:
		value = string(pc.input[d.start:d.end])
	}
	return value
}

// sequenceValue drops values of items wrapped with Skip.
func (pc *ParseContext) sequenceValue(r *grammar.Rule, items []*deriv) any {
	var values []any
	for i, item := range items {
		value := pc.build(item)
		if r.Items()[i].Kind() != grammar.SkipRule {
			values = append(values, value)
		}
	}

	switch {
	case r.Joined():
		return grammar.TextOf(values)
	case len(values) == 0:
		return nil
	case len(values) == 1:
		return values[0]
	}
	return values
}

func (pc *ParseContext) collector(r *grammar.Rule, start, end int) *notice.Collector {
	c := &notice.Collector{Rule: r.Name(), Cite: r.Citation(), Start: start, End: end}
	if c.Rule == "" {
		if top, _ := pc.rules.Top(); top != nil {
			c.Rule = top.Name()
		}
	}
	if c.Cite.IsZero() {
		if cited := pc.rules.Cited(); cited != nil {
			c.Cite = cited.Citation()
		}
	}
	return c
}
