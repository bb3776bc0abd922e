// Package parser implements the engine that matches rules against input.
//
// The engine performs ordered backtracking with memoization: every rule
// applied at a position yields an ordered list of candidate matches, at most
// one per end offset. Candidates are ordered the way a backtracking parser
// would try them: alternatives in declaration order, repetitions longest
// first. When two derivations end at the same offset only the first one is
// kept, since anything that follows depends on the end offset alone.
// The top-level match is the first candidate that consumes the whole input.
//
// Candidates record derivations only: conversions, semantic actions, notices,
// and result tree nodes are produced once, for the winning derivation.
//
// Memo tables and notices are owned by a single ParseContext, so a Parser
// may be used by any number of goroutines simultaneously.
package parser

import (
	"github.com/ava12/httplint/grammar"
	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/source"
	"github.com/ava12/httplint/tree"
)

// Result contains outcome of a successful parse.
type Result struct {
	// Value is the value produced by the top-level rule.
	Value any

	// Notices contains notices raised by the winning derivation, in input order.
	Notices notice.Notices

	// Tree contains pivot nodes of the winning derivation.
	// The root node represents the top-level rule even if it is not a pivot rule.
	Tree *tree.Node
}

// Parser matches input against a frozen top-level rule.
type Parser struct {
	root *grammar.Rule
}

// New creates a parser for root, checking the rule graph if it is not frozen yet.
func New(root *grammar.Rule) (*Parser, error) {
	if root == nil {
		return nil, nilRuleError()
	}
	if !root.IsFrozen() {
		if e := grammar.Check(root); e != nil {
			return nil, e
		}
	}
	return &Parser{root}, nil
}

// MustNew is New that panics on error.
func MustNew(root *grammar.Rule) *Parser {
	p, e := New(root)
	if e != nil {
		panic(e)
	}
	return p
}

// Rule returns the top-level rule.
func (p *Parser) Rule() *grammar.Rule {
	return p.root
}

// Parse matches the whole content of src.
// Hard syntax errors are returned as *httplint.Error with SyntaxError code.
func (p *Parser) Parse(src *source.Source) (*Result, error) {
	pc := newParseContext(p, src)
	return pc.parse()
}

// ParseBytes parses content, name is used in error messages.
func (p *Parser) ParseBytes(name string, content []byte) (*Result, error) {
	return p.Parse(source.New(name, content))
}

// ParseString parses content, name is used in error messages.
func (p *Parser) ParseString(name, content string) (*Result, error) {
	return p.Parse(source.FromString(name, content))
}

// Parse creates a parser for root and parses src.
func Parse(root *grammar.Rule, src *source.Source) (*Result, error) {
	p, e := New(root)
	if e != nil {
		return nil, e
	}
	return p.Parse(src)
}
