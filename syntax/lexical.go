package syntax

import (
	"strings"

	"github.com/ava12/httplint/citation"
	g "github.com/ava12/httplint/grammar"
	"github.com/ava12/httplint/notice"
)

func rfc7230(section ...int) citation.Citation {
	return citation.RFC(7230, section...)
}

// TokenExcluding matches a token that is not equal (case-insensitively) to any of words.
func TokenExcluding(words ...string) *g.Rule {
	return g.Excluding(g.String1(TChar), words...)
}

// QuotedPair matches an escaped character, the value is the character itself.
// Characters not listed in sensible raise notice.UnconventionalEscape.
func QuotedPair(sensible string) *g.Rule {
	check := func(v any, c notice.Complainer) any {
		s := v.(string)
		if !strings.Contains(sensible, s) {
			c.Complain(notice.UnconventionalEscape, "char", s)
		}
		return s
	}
	r := g.Seq(g.Skip(g.Octet('\\')), g.Alt(HTAB, SP, VCHAR, ObsText))
	return g.Act(r, check).Named("quoted-pair").Cite(rfc7230(3, 2, 6))
}

// Comment matches a parenthesized comment that may contain nested comments.
// The value is the comment text, with or without outer parentheses.
func Comment(includeParens bool) *g.Rule {
	inner := g.Forward("comment")
	inner.Bind(g.Concat(
		g.Octet('('),
		g.String(g.Alt(CText, QuotedPair(`()\`), inner)),
		g.Octet(')'),
	))
	inner.Cite(rfc7230(3, 2, 6))
	if includeParens {
		return inner
	}

	return g.Map(inner, func(v any) any {
		s := v.(string)
		return s[1 : len(s)-1]
	}).Named("comment").Cite(rfc7230(3, 2, 6))
}

type emptySlot struct{}

func collectElements(v any, c notice.Complainer) any {
	slots := flatten(v)
	res := make([]any, 0, len(slots))
	for _, s := range slots {
		if _, empty := s.(emptySlot); !empty {
			res = append(res, s)
		}
	}
	if len(res) != len(slots) {
		c.Complain(notice.EmptyListElement)
	}
	return res
}

// flatten converts list rule values to a flat slot list: nested slices come from
// list rule structure, element values are never slices of slots.
func flatten(v any) []any {
	parts, _ := v.([]any)
	var res []any
	for _, p := range parts {
		switch x := p.(type) {
		case slots:
			res = append(res, x...)
		default:
			res = append(res, x)
		}
	}
	return res
}

// slots is a value of list tails, distinct from []any values of elements.
type slots []any

func listTail(element *g.Rule) *g.Rule {
	slot := g.Seq(g.Skip(g.Seq(OWS, g.Octet(','))), g.Maybe(g.Seq(g.Skip(OWS), element), emptySlot{}))
	return g.Map(g.Many(slot), toSlots)
}

func toSlots(v any) any {
	return slots(v.([]any))
}

// CommaList matches zero or more comma-separated elements, the value is []any of element values.
// Empty list elements are dropped with notice.EmptyListElement.
func CommaList(element *g.Rule) *g.Rule {
	head := g.Alt(
		g.Map(g.Octet(','), func(any) any { return slots{emptySlot{}} }),
		element,
	)
	list := g.Maybe(g.Seq(head, listTail(element)), nil)
	return g.Act(list, collectElements).Named("#rule").Cite(rfc7230(7))
}

// CommaList1 matches one or more comma-separated elements, at least one element must be non-empty.
func CommaList1(element *g.Rule) *g.Rule {
	leading := g.Map(g.Many(g.Subst(g.Seq(g.Octet(','), OWS), emptySlot{})), toSlots)
	list := g.Seq(leading, element, listTail(element))
	return g.Act(list, collectElements).Named("1#rule").Cite(rfc7230(7))
}
