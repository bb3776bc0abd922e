package syntax

import (
	"github.com/ava12/httplint"
)

// Error codes returned by typed entry points:
const (
	// numeric value does not fit into int64
	OverflowError = httplint.SyntaxErrors + 50 + iota
)

func overflowError(name, text string) *httplint.Error {
	return httplint.FormatError(OverflowError, "%s value %s is too large", name, text)
}
