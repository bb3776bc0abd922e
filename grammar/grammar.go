/*
Package grammar defines rules: immutable, combinator-composed matchers with
metadata attached.

Rules are built once, at package initialization of the grammar that uses
them, and are read-only afterwards. Construction happens in two phases:
rules are composed with the functions of this package (self-references go
through Forward placeholders), then Check (or Module.Finish) verifies the
graph and freezes every reachable rule. Parsing is implemented by the parser
package.

Rule values:
  - Literal, Exact, Octet, Range produce the matched text as string;
  - Seq produces nil, the only kept value, or []any of kept values, items wrapped with Skip are not kept;
  - Concat, String, String1, StringTimes join values as text;
  - Many, Many1, Times produce []any;
  - Maybe produces the item value or the default;
  - Map, Subst, Act transform values;
  - Text produces raw matched bytes as string.
*/
package grammar

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ava12/httplint/citation"
	"github.com/ava12/httplint/notice"
)

type Kind int

const (
	EmptyRule Kind = iota
	LiteralRule
	RangeRule
	SeqRule
	AltRule
	RepeatRule
	MaybeRule
	MapRule
	ActionRule
	SkipRule
	TextRule
	ExcludeRule
	ForwardRule
)

var kindNames = [...]string{
	"empty", "literal", "range", "sequence", "alternation", "repetition", "optional",
	"transform", "action", "skip", "text", "exclusion", "forward",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Unbounded is used as maximum count for unbounded repetitions.
const Unbounded = -1

// Action is a semantic action applied to the value of a successful match.
// It may raise notices, it never makes the match fail.
type Action = func(value any, c notice.Complainer) any

var lastID int64

// Rule is a grammar rule. Rules must be created with the functions of this package.
type Rule struct {
	kind   Kind
	id     int
	name   string
	cite   citation.Citation
	pivot  bool
	frozen bool
	// set by Check
	nullable bool
	// set by Module
	declared bool

	text     string
	caseless bool
	lo, hi   byte
	items    []*Rule
	join     bool
	min, max int
	def      any
	conv     func(any) any
	action   Action
	words    []string
	target   *Rule
}

func newRule(kind Kind, items ...*Rule) *Rule {
	for _, item := range items {
		if item == nil {
			panic(nilItemError(kind))
		}
	}
	return &Rule{kind: kind, id: int(atomic.AddInt64(&lastID, 1)), items: items}
}

// ID returns a process-wide unique positive rule id.
func (r *Rule) ID() int {
	return r.id
}

func (r *Rule) Kind() Kind {
	return r.kind
}

// Name returns the rule name or empty string.
func (r *Rule) Name() string {
	return r.name
}

// Citation returns the rule citation, zero value if none.
func (r *Rule) Citation() citation.Citation {
	return r.cite
}

// IsPivot reports whether matches of the rule are surfaced as result tree nodes.
func (r *Rule) IsPivot() bool {
	return r.pivot
}

// IsFrozen reports whether the rule passed Check.
func (r *Rule) IsFrozen() bool {
	return r.frozen
}

// IsNullable reports whether a frozen rule can match empty string.
func (r *Rule) IsNullable() bool {
	return r.nullable
}

// Items returns sub-rules. The returned slice must not be modified.
func (r *Rule) Items() []*Rule {
	return r.items
}

// Literal returns the text matched by a literal rule and its case sensitivity.
func (r *Rule) Literal() (text string, caseless bool) {
	return r.text, r.caseless
}

// Range returns the byte range of a range rule.
func (r *Rule) Range() (lo, hi byte) {
	return r.lo, r.hi
}

// Joined reports whether a sequence or repetition produces joined text.
func (r *Rule) Joined() bool {
	return r.join
}

// Bounds returns repetition counts, max is Unbounded for unbounded repetitions.
func (r *Rule) Bounds() (min, max int) {
	return r.min, r.max
}

// Default returns the value produced by an optional rule when the item does not match.
func (r *Rule) Default() any {
	return r.def
}

// Convert applies the conversion function of a transform rule.
func (r *Rule) Convert(value any) any {
	return r.conv(value)
}

// Action returns the semantic action of an action rule.
func (r *Rule) Action() Action {
	return r.action
}

// Excludes reports whether matched text is one of the words excluded by an exclusion rule.
func (r *Rule) Excludes(text string) bool {
	for _, w := range r.words {
		if strings.EqualFold(w, text) {
			return true
		}
	}
	return false
}

// Target returns the rule a forward placeholder is bound to or nil.
func (r *Rule) Target() *Rule {
	return r.target
}

func (r *Rule) checkMutable() {
	if r.frozen {
		panic(frozenError(r))
	}
}

// Named sets the rule name and returns the rule.
func (r *Rule) Named(name string) *Rule {
	r.checkMutable()
	r.name = name
	return r
}

// Cite sets the rule citation and returns the rule.
func (r *Rule) Cite(c citation.Citation) *Rule {
	r.checkMutable()
	r.cite = c
	return r
}

// Pivot marks the rule as a pivot rule and returns the rule.
func (r *Rule) Pivot() *Rule {
	r.checkMutable()
	r.pivot = true
	return r
}

// Auto marks the rule as an auxiliary rule and returns the rule.
func (r *Rule) Auto() *Rule {
	r.checkMutable()
	r.pivot = false
	return r
}

// String returns the rule name or a short description of an unnamed rule.
func (r *Rule) String() string {
	if r.name != "" {
		return r.name
	}

	switch r.kind {
	case LiteralRule:
		return fmt.Sprintf("%q", r.text)
	case RangeRule:
		if r.lo == r.hi && r.lo > ' ' && r.lo < 0x7F {
			return strconv.Quote(string(rune(r.lo)))
		}
		if r.lo == r.hi {
			return fmt.Sprintf("%%x%02X", r.lo)
		}
		return fmt.Sprintf("%%x%02X-%02X", r.lo, r.hi)
	case ForwardRule:
		if r.target != nil {
			return r.target.String()
		}
	}
	return fmt.Sprintf("%s#%d", r.kind, r.id)
}

// TextOf converts a rule value to text: strings as is, nil as empty string,
// lists are joined, other values are formatted with fmt.
func TextOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case []any:
		var sb strings.Builder
		for _, item := range v {
			sb.WriteString(TextOf(item))
		}
		return sb.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
