package syntax

import (
	"github.com/ava12/httplint/citation"
	g "github.com/ava12/httplint/grammar"
)

var uri = g.NewModule("uri", citation.RFC(3986))

func lits(chars string) []*g.Rule {
	res := make([]*g.Rule, len(chars))
	for i := 0; i < len(chars); i++ {
		res[i] = g.Octet(chars[i])
	}
	return res
}

func anyOf(chars string, rules ...*g.Rule) *g.Rule {
	return g.Alt(append(rules, lits(chars)...)...)
}

func rfc3986(section ...int) citation.Citation {
	return citation.RFC(3986, section...)
}

// The subset of RFC 3986 used by HTTP/1.1 grammar.
var (
	Unreserved = uri.Auto("unreserved", anyOf("-._~", ALPHA, DIGIT).Cite(rfc3986(2, 3)))
	SubDelims  = uri.Auto("sub-delims", anyOf("!$&'()*+,;=").Cite(rfc3986(2, 2)))
	PctEncoded = uri.Auto("pct-encoded", g.Concat(g.Octet('%'), HEXDIG, HEXDIG).Cite(rfc3986(2, 1)))
	PChar      = uri.Auto("pchar", g.Alt(Unreserved, PctEncoded, SubDelims, g.Octet(':'), g.Octet('@')).Cite(rfc3986(3, 3)))

	Scheme = uri.Auto("scheme", g.Concat(ALPHA, g.String(anyOf("+-.", ALPHA, DIGIT))).Cite(rfc3986(3, 1)))

	Userinfo = uri.Auto("userinfo", g.String(g.Alt(Unreserved, PctEncoded, SubDelims, g.Octet(':'))).Cite(rfc3986(3, 2, 1)))

	DecOctet = uri.Auto("dec-octet", g.Alt(
		g.Concat(g.Exact("25"), g.Range('0', '5')),
		g.Concat(g.Octet('2'), g.Range('0', '4'), DIGIT),
		g.Concat(g.Octet('1'), DIGIT, DIGIT),
		g.Concat(g.Range('1', '9'), DIGIT),
		DIGIT,
	).Cite(rfc3986(3, 2, 2)))
	IPv4Address = uri.Auto("IPv4address", g.Concat(
		DecOctet, g.Octet('.'), DecOctet, g.Octet('.'), DecOctet, g.Octet('.'), DecOctet,
	).Cite(rfc3986(3, 2, 2)))

	H16  = uri.Auto("h16", g.StringTimes(HEXDIG, 1, 4).Cite(rfc3986(3, 2, 2)))
	LS32 = uri.Auto("ls32", g.Alt(g.Concat(H16, g.Octet(':'), H16), IPv4Address).Cite(rfc3986(3, 2, 2)))

	IPv6Address = uri.Auto("IPv6address", ipv6Address().Cite(rfc3986(3, 2, 2)))
	IPvFuture   = uri.Auto("IPvFuture", g.Concat(
		g.Literal("v"), g.String1(HEXDIG), g.Octet('.'), g.String1(g.Alt(Unreserved, SubDelims, g.Octet(':'))),
	).Cite(rfc3986(3, 2, 2)))
	IPLiteral = uri.Auto("IP-literal", g.Concat(
		g.Octet('['), g.Alt(IPv6Address, IPvFuture), g.Octet(']'),
	).Cite(rfc3986(3, 2, 2)))

	RegName = uri.Auto("reg-name", g.String(g.Alt(Unreserved, PctEncoded, SubDelims)).Cite(rfc3986(3, 2, 2)))
	URIHost = uri.Auto("host", g.Alt(IPLiteral, IPv4Address, RegName).Cite(rfc3986(3, 2, 2)))
	Port    = uri.Auto("port", g.String(DIGIT).Cite(rfc3986(3, 2, 3)))

	Authority = uri.Auto("authority", g.Concat(
		g.MaybeString(g.Concat(Userinfo, g.Octet('@'))),
		URIHost,
		g.MaybeString(g.Concat(g.Octet(':'), Port)),
	).Cite(rfc3986(3, 2)))

	Segment     = uri.Auto("segment", g.String(PChar).Cite(rfc3986(3, 3)))
	SegmentNZ   = uri.Auto("segment-nz", g.String1(PChar).Cite(rfc3986(3, 3)))
	SegmentNZNC = uri.Auto("segment-nz-nc", g.String1(g.Alt(Unreserved, PctEncoded, SubDelims, g.Octet('@'))).Cite(rfc3986(3, 3)))

	PathAbempty  = uri.Auto("path-abempty", g.String(g.Concat(g.Octet('/'), Segment)).Cite(rfc3986(3, 3)))
	PathAbsolute = uri.Auto("path-absolute", g.Concat(
		g.Octet('/'), g.MaybeString(g.Concat(SegmentNZ, g.String(g.Concat(g.Octet('/'), Segment)))),
	).Cite(rfc3986(3, 3)))
	PathNoScheme = uri.Auto("path-noscheme", g.Concat(SegmentNZNC, g.String(g.Concat(g.Octet('/'), Segment))).Cite(rfc3986(3, 3)))
	PathRootless = uri.Auto("path-rootless", g.Concat(SegmentNZ, g.String(g.Concat(g.Octet('/'), Segment))).Cite(rfc3986(3, 3)))
	PathEmpty    = uri.Auto("path-empty", g.Subst(g.Empty(), "").Cite(rfc3986(3, 3)))

	Query = uri.Auto("query", g.String(g.Alt(PChar, g.Octet('/'), g.Octet('?'))).Cite(rfc3986(3, 4)))

	HierPart = uri.Auto("hier-part", g.Alt(
		g.Concat(g.Exact("//"), Authority, PathAbempty),
		PathAbsolute,
		PathRootless,
		PathEmpty,
	).Cite(rfc3986(3)))
	AbsoluteURI = uri.Auto("absolute-URI", g.Concat(
		Scheme, g.Octet(':'), HierPart, g.MaybeString(g.Concat(g.Octet('?'), Query)),
	).Cite(rfc3986(4, 3)))
	RelativePart = uri.Auto("relative-part", g.Alt(
		g.Concat(g.Exact("//"), Authority, PathAbempty),
		PathAbsolute,
		PathNoScheme,
		PathEmpty,
	).Cite(rfc3986(4, 2)))
)

// ipv6Address follows the nine alternatives of IPv6address ABNF.
func ipv6Address() *g.Rule {
	colon := g.Octet(':')
	dcolon := g.Exact("::")
	h16c := g.Concat(H16, colon)
	times := func(n int) *g.Rule {
		return g.StringTimes(h16c, n, n)
	}
	// [ *n( h16 ":" ) h16 ]
	prefix := func(n int) *g.Rule {
		return g.MaybeString(g.Concat(g.StringTimes(h16c, 0, n), H16))
	}

	return g.Alt(
		g.Concat(times(6), LS32),
		g.Concat(dcolon, times(5), LS32),
		g.Concat(g.MaybeString(H16), dcolon, times(4), LS32),
		g.Concat(prefix(1), dcolon, times(3), LS32),
		g.Concat(prefix(2), dcolon, times(2), LS32),
		g.Concat(prefix(3), dcolon, h16c, LS32),
		g.Concat(prefix(4), dcolon, LS32),
		g.Concat(prefix(5), dcolon, H16),
		g.Concat(prefix(6), dcolon),
	)
}
