package parser

import (
	"github.com/ava12/httplint"
	"github.com/ava12/httplint/source"
)

// Error codes returned by parser:
const (
	// no derivation consumes the whole input
	SyntaxError = httplint.SyntaxErrors + iota
	// nil top-level rule
	NilRuleError
)

func syntaxError(pos source.Pos, found, expected, rule string) *httplint.Error {
	e := httplint.FormatErrorPos(pos, SyntaxError, "unexpected %s, expecting %s", found, expected)
	e.Rule = rule
	return e
}

func nilRuleError() *httplint.Error {
	return httplint.FormatError(NilRuleError, "nil top-level rule")
}
