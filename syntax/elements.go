package syntax

import (
	"sort"
	"strings"

	g "github.com/ava12/httplint/grammar"
	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/parser"
)

// Element describes a message element that can be checked on its own.
type Element struct {
	// Name is the rule name, e.g. "request-line" or "Transfer-Encoding".
	Name string

	// Rule is the top-level rule of the element.
	Rule *g.Rule

	// Parse returns the typed value of the element.
	Parse func(input []byte) (any, notice.Notices, error)

	parser *parser.Parser
}

var (
	elements     []*Element
	elementIndex map[string]*Element
)

func wrap[T any](parse func([]byte) (T, notice.Notices, error)) func([]byte) (any, notice.Notices, error) {
	return func(input []byte) (any, notice.Notices, error) {
		v, notes, e := parse(input)
		if e != nil {
			return nil, nil, e
		}
		return v, notes, nil
	}
}

func initElements() {
	defs := []struct {
		rule  *g.Rule
		parse func([]byte) (any, notice.Notices, error)
	}{
		{RequestLine, wrap(ParseRequestLine)},
		{StatusLine, wrap(ParseStatusLine)},
		{HeaderField, wrap(ParseHeaderField)},
		{TransferEncoding, wrap(ParseTransferEncoding)},
		{TE, wrap(ParseTE)},
		{Trailer, wrap(ParseTrailer)},
		{Connection, wrap(ParseConnection)},
		{Upgrade, wrap(ParseUpgrade)},
		{Via, wrap(ParseVia)},
		{Host, wrap(ParseHost)},
		{ContentLength, wrap(ParseContentLength)},
		{ChunkSize, wrap(ParseChunkSize)},
		{ChunkExt, wrap(ParseChunkExt)},
		{TrailerPart, wrap(ParseTrailerPart)},
	}

	elementIndex = make(map[string]*Element, len(defs))
	for _, d := range defs {
		el := &Element{Name: d.rule.Name(), Rule: d.rule, Parse: d.parse, parser: parser.MustNew(d.rule)}
		elements = append(elements, el)
		elementIndex[strings.ToLower(el.Name)] = el
	}
}

func elementParser(name string) *parser.Parser {
	return elementIndex[strings.ToLower(name)].parser
}

// LookupElement returns element by name (compared case-insensitively) or nil.
func LookupElement(name string) *Element {
	return elementIndex[strings.ToLower(name)]
}

// Elements returns all elements in declaration order.
func Elements() []*Element {
	return append([]*Element(nil), elements...)
}

// ElementNames returns sorted element names.
func ElementNames() []string {
	res := make([]string, len(elements))
	for i, el := range elements {
		res[i] = el.Name
	}
	sort.Strings(res)
	return res
}
