package syntax

import (
	"github.com/ava12/httplint/citation"
	g "github.com/ava12/httplint/grammar"
)

var core = g.NewModule("core", citation.RFC(5234, 8, 1))

// Core rules of RFC 5234 Appendix B.1.
var (
	ALPHA  = core.Auto("ALPHA", g.Alt(g.Range('A', 'Z'), g.Range('a', 'z')))
	DIGIT  = core.Auto("DIGIT", g.Range('0', '9'))
	HEXDIG = core.Auto("HEXDIG", g.Alt(DIGIT, g.Range('A', 'F'), g.Range('a', 'f')))
	SP     = core.Auto("SP", g.Octet(' '))
	HTAB   = core.Auto("HTAB", g.Octet('\t'))
	DQUOTE = core.Auto("DQUOTE", g.Octet('"'))
	VCHAR  = core.Auto("VCHAR", g.Range(0x21, 0x7E))
	CR     = core.Auto("CR", g.Octet('\r'))
	LF     = core.Auto("LF", g.Octet('\n'))
	CRLF   = core.Auto("CRLF", g.Exact("\r\n"))
)

// LaxCRLF matches CRLF or a bare LF, the line terminators accepted by
// message parsers (RFC 7230 § 3.5).
var LaxCRLF = g.Alt(CRLF, LF)
