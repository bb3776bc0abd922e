/*
Package syntax contains HTTP/1.1 grammars: RFC 5234 core rules,
the subset of RFC 3986 used by HTTP, and RFC 7230 message framing rules.

Rules are exported as package variables and may be combined with grammar
functions into new rules. Rule graphs are checked and frozen during package
initialization, a malformed grammar panics at startup.

Typed entry points parse a single message element:

	line, notices, e := syntax.ParseRequestLine([]byte("GET / HTTP/1.1\r\n"))

Every entry point returns notices raised while parsing, hard syntax errors
are returned as *httplint.Error.
*/
package syntax

import (
	"math"
	"strconv"

	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/parser"
	"github.com/ava12/httplint/structure"
)

func init() {
	core.Finish()
	uri.Finish()
	framing.Finish()
	initElements()
}

func parseValue[T any](p *parser.Parser, name string, input []byte) (T, notice.Notices, error) {
	var zero T
	res, e := p.ParseBytes(name, input)
	if e != nil {
		return zero, nil, e
	}
	return res.Value.(T), res.Notices, nil
}

// ParseRequestLine parses a request line including line terminator.
func ParseRequestLine(input []byte) (structure.RequestLine, notice.Notices, error) {
	return parseValue[structure.RequestLine](elementParser("request-line"), "request-line", input)
}

// ParseStatusLine parses a status line including line terminator.
func ParseStatusLine(input []byte) (structure.StatusLine, notice.Notices, error) {
	return parseValue[structure.StatusLine](elementParser("status-line"), "status-line", input)
}

// ParseHeaderField parses a header field without line terminator, possibly folded.
func ParseHeaderField(input []byte) (structure.HeaderEntry, notice.Notices, error) {
	return parseValue[structure.HeaderEntry](elementParser("header-field"), "header-field", input)
}

// ParseTransferEncoding parses Transfer-Encoding header value.
func ParseTransferEncoding(input []byte) ([]structure.Parametrized[structure.TransferCoding], notice.Notices, error) {
	return parseValue[[]structure.Parametrized[structure.TransferCoding]](elementParser("Transfer-Encoding"), "Transfer-Encoding", input)
}

// ParseTE parses TE header value.
func ParseTE(input []byte) ([]structure.TCoding, notice.Notices, error) {
	return parseValue[[]structure.TCoding](elementParser("TE"), "TE", input)
}

// ParseTrailer parses Trailer header value.
func ParseTrailer(input []byte) ([]structure.FieldName, notice.Notices, error) {
	return parseValue[[]structure.FieldName](elementParser("Trailer"), "Trailer", input)
}

// ParseConnection parses Connection header value.
func ParseConnection(input []byte) ([]structure.ConnectionOption, notice.Notices, error) {
	return parseValue[[]structure.ConnectionOption](elementParser("Connection"), "Connection", input)
}

// ParseUpgrade parses Upgrade header value.
func ParseUpgrade(input []byte) ([]structure.Versioned[structure.UpgradeToken], notice.Notices, error) {
	return parseValue[[]structure.Versioned[structure.UpgradeToken]](elementParser("Upgrade"), "Upgrade", input)
}

// ParseVia parses Via header value.
func ParseVia(input []byte) ([]structure.ViaHop, notice.Notices, error) {
	return parseValue[[]structure.ViaHop](elementParser("Via"), "Via", input)
}

// ParseHost parses Host header value.
func ParseHost(input []byte) (structure.Host, notice.Notices, error) {
	return parseValue[structure.Host](elementParser("Host"), "Host", input)
}

// ParseContentLength parses Content-Length header value.
// Values that do not fit into int64 are reported as OverflowError.
func ParseContentLength(input []byte) (int64, notice.Notices, error) {
	text, notes, e := parseValue[string](elementParser("Content-Length"), "Content-Length", input)
	if e != nil {
		return 0, nil, e
	}

	n, e := strconv.ParseInt(text, 10, 64)
	if e != nil {
		return 0, nil, overflowError("Content-Length", text)
	}
	return n, notes, nil
}

// ParseChunkSize parses a hexadecimal chunk size.
// Values that do not fit into int64 are reported as OverflowError.
func ParseChunkSize(input []byte) (int64, notice.Notices, error) {
	text, notes, e := parseValue[string](elementParser("chunk-size"), "chunk-size", input)
	if e != nil {
		return 0, nil, e
	}

	n, e := strconv.ParseUint(text, 16, 64)
	if e != nil || n > math.MaxInt64 {
		return 0, nil, overflowError("chunk-size", text)
	}
	return int64(n), notes, nil
}

// ParseChunkExt parses chunk extensions, e.g. ";name=value;flag".
func ParseChunkExt(input []byte) (structure.ChunkExt, notice.Notices, error) {
	return parseValue[structure.ChunkExt](elementParser("chunk-ext"), "chunk-ext", input)
}

// ParseTrailerPart parses trailer fields of a chunked body, each one followed by line terminator.
func ParseTrailerPart(input []byte) ([]structure.HeaderEntry, notice.Notices, error) {
	return parseValue[[]structure.HeaderEntry](elementParser("trailer-part"), "trailer-part", input)
}
