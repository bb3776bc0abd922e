/*
Package notice defines conformance notices: non-fatal, coded complaints
raised while an input is being successfully matched.

A notice never changes whether a rule matches. Grammar actions raise notices
through Complainer; the parser keeps notices of the winning derivation only
and returns them in the order they were raised.
*/
package notice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ava12/httplint/citation"
)

// Notice codes raised by the core grammars:
const (
	// required whitespace is not exactly one space; context: num
	WhitespaceNotSingular = 1014
	// whitespace found where it is expected to be absent
	BadWhitespace = 1015
	// obsolete line folding in a header field value
	ObsoleteFold = 1016
	// quoted-pair escapes a character that does not need escaping; context: char
	UnconventionalEscape = 1017
	// empty element in a comma-separated list was dropped
	EmptyListElement = 1151
)

type Severity int

const (
	Debug Severity = iota
	Comment
	Error
)

var severityNames = [...]string{"debug", "comment", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity converts severity name to Severity.
func ParseSeverity(name string) (Severity, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), true
		}
	}
	return Debug, false
}

// Info describes a notice code.
type Info struct {
	Code     int
	Title    string
	Severity Severity
}

var infos = map[int]Info{
	WhitespaceNotSingular: {WhitespaceNotSingular, "Whitespace should be a single space", Comment},
	BadWhitespace:         {BadWhitespace, "Unexpected whitespace", Comment},
	ObsoleteFold:          {ObsoleteFold, "Obsolete line folding", Error},
	UnconventionalEscape:  {UnconventionalEscape, "Strange escaping", Comment},
	EmptyListElement:      {EmptyListElement, "Empty element in a comma-separated list", Comment},
}

// Describe returns information for a registered code.
func Describe(code int) (Info, bool) {
	info, found := infos[code]
	return info, found
}

// Codes returns all registered codes in ascending order.
func Codes() []int {
	res := make([]int, 0, len(infos))
	for code := range infos {
		res = append(res, code)
	}
	sort.Ints(res)
	return res
}

// Notice is a single complaint about the input.
type Notice struct {
	// Code is a stable notice code.
	Code int

	// Context contains named values describing the complaint, may be nil.
	Context map[string]any

	// Rule is the name of the rule that raised the notice.
	Rule string

	// Cite is the citation of the rule that raised the notice.
	Cite citation.Citation

	// Start and End delimit the matched span that caused the notice.
	Start, End int
}

// Title returns the registered title of the notice code or empty string.
func (n Notice) Title() string {
	return infos[n.Code].Title
}

// Severity returns the registered severity of the notice code, unknown codes are errors.
func (n Notice) Severity() Severity {
	info, found := infos[n.Code]
	if !found {
		return Error
	}
	return info.Severity
}

func (n Notice) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s", n.Code, n.Title())
	if len(n.Context) > 0 {
		keys := make([]string, 0, len(n.Context))
		for k := range n.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%v", k, n.Context[k])
		}
	}
	if !n.Cite.IsZero() {
		sb.WriteString(" (" + n.Cite.String() + ")")
	}
	return sb.String()
}

// Notices is an ordered list of notices.
type Notices []Notice

// Codes returns notice codes in order.
func (ns Notices) Codes() []int {
	res := make([]int, len(ns))
	for i, n := range ns {
		res[i] = n.Code
	}
	return res
}

// Has reports whether list contains a notice with given code.
func (ns Notices) Has(code int) bool {
	for _, n := range ns {
		if n.Code == code {
			return true
		}
	}
	return false
}

// Count returns the number of notices with given code.
func (ns Notices) Count(code int) int {
	cnt := 0
	for _, n := range ns {
		if n.Code == code {
			cnt++
		}
	}
	return cnt
}

// Without returns notices whose codes are not listed in codes.
func (ns Notices) Without(codes ...int) Notices {
	if len(codes) == 0 {
		return ns
	}

	res := make(Notices, 0, len(ns))
	for _, n := range ns {
		skip := false
		for _, c := range codes {
			if n.Code == c {
				skip = true
				break
			}
		}
		if !skip {
			res = append(res, n)
		}
	}
	return res
}

// Complainer is passed to grammar actions to raise notices.
type Complainer interface {
	// Complain registers a notice; ctx contains key-value pairs, keys must be strings.
	Complain(code int, ctx ...any)
}

// Collector is a Complainer that stores complaints for a single rule match.
type Collector struct {
	Rule       string
	Cite       citation.Citation
	Start, End int
	Notices    Notices
}

func (c *Collector) Complain(code int, ctx ...any) {
	n := Notice{Code: code, Rule: c.Rule, Cite: c.Cite, Start: c.Start, End: c.End}
	if len(ctx) > 0 {
		n.Context = make(map[string]any, len(ctx)/2)
		for i := 0; i+1 < len(ctx); i += 2 {
			key, valid := ctx[i].(string)
			if !valid {
				key = fmt.Sprint(ctx[i])
			}
			n.Context[key] = ctx[i+1]
		}
	}
	c.Notices = append(c.Notices, n)
}
