/*
Package httplint is an HTTP/1.1 protocol conformance checker.

It parses raw HTTP message elements (request and status lines, header fields,
header values) against grammars derived from IETF specifications, returning
typed values together with notices about constructs that are legal but
discouraged or obsolete.

Consists of subpackages:
  - citation: references to specification documents and sections;
  - grammar: rule combinators, rule metadata, recursive placeholders, and construction-time checks;
  - notice: notice codes and the per-parse notice accumulator;
  - parser: memoized backtracking engine producing one derivation per rule;
  - source: input buffer with line and column lookup;
  - structure: typed HTTP values produced by grammars;
  - syntax: concrete RFC 5234, RFC 3986, and RFC 7230 grammars with typed entry points;
  - known: registry of protocol vocabulary with citations and titles;
  - tree: tree of pivot nodes built for a successful parse.

Typical usage is:

	entry, notices, e := syntax.ParseHeaderField([]byte("Transfer-Encoding: chunked"))

Hard syntax errors are returned as *Error values, notices never affect acceptance.
*/
package httplint

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar
	SyntaxErrors  = 201 // used by parser
	ConfigErrors  = 301 // used by command line tools
)

// Error is the error type used by httplint subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int

	// Pos contains byte offset in source or -1 if unknown.
	Pos int

	// Rule contains the name of the rule that could not be satisfied or empty string.
	Rule string
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
	// Offset returns byte offset.
	Offset() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{Code: code, Message: msg, SourceName: name, Line: line, Col: col, Pos: -1}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	e := NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
	e.Pos = pos.Offset()
	return e
}
