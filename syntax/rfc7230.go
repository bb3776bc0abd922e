package syntax

import (
	"strconv"

	g "github.com/ava12/httplint/grammar"
	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/structure"
)

var framing = g.NewModule("rfc7230", rfc7230())

// Lexical rules.
var (
	ObsText = framing.Auto("obs-text", g.Range(0x80, 0xFF).Cite(rfc7230(3, 2, 6)))
	TChar   = framing.Auto("tchar", anyOf("!#$%&'*+-.^_`|~", DIGIT, ALPHA).Cite(rfc7230(3, 2, 6)))
	Token   = framing.Auto("token", g.String1(TChar).Cite(rfc7230(3, 2, 6)))

	QDText = framing.Auto("qdtext", g.Alt(
		HTAB, SP, g.Octet(0x21), g.Range(0x23, 0x5B), g.Range(0x5D, 0x7E), ObsText,
	).Cite(rfc7230(3, 2, 6)))
	QuotedString = framing.Auto("quoted-string", g.Concat(
		g.Skip(DQUOTE), g.String(g.Alt(QDText, QuotedPair(`"\`))), g.Skip(DQUOTE),
	).Cite(rfc7230(3, 2, 6)))

	CText = framing.Auto("ctext", g.Alt(
		HTAB, SP, g.Range(0x21, 0x27), g.Range(0x2A, 0x5B), g.Range(0x5D, 0x7E), ObsText,
	).Cite(rfc7230(3, 2, 6)))
)

// Whitespace rules.
var (
	OWS = framing.Auto("OWS", g.String(g.Alt(SP, HTAB)).Cite(rfc7230(3, 2, 3)))
	RWS = framing.Auto("RWS", g.Act(g.String1(g.Alt(SP, HTAB)), checkJustOneSpace).Cite(rfc7230(3, 2, 3)))
	BWS = framing.Auto("BWS", g.Act(OWS, checkNoWhitespace).Cite(rfc7230(3, 2, 3)))
)

func checkJustOneSpace(v any, c notice.Complainer) any {
	s := v.(string)
	if s != " " {
		c.Complain(notice.WhitespaceNotSingular, "num", len(s))
	}
	return s
}

func checkNoWhitespace(v any, c notice.Complainer) any {
	s := v.(string)
	if s != "" {
		c.Complain(notice.BadWhitespace)
	}
	return s
}

// Message framing rules.
var (
	Method = framing.Pivot("method", g.Map(Token, func(v any) any {
		return structure.Method(v.(string))
	}).Cite(rfc7230(3, 1, 1)))

	AbsolutePath  = framing.Pivot("absolute-path", g.String1(g.Concat(g.Octet('/'), Segment)).Cite(rfc7230(2, 7)))
	PartialURI    = framing.Pivot("partial-URI", g.Concat(RelativePart, g.MaybeString(g.Concat(g.Octet('?'), Query))).Cite(rfc7230(2, 7)))
	OriginForm    = framing.Pivot("origin-form", g.Concat(AbsolutePath, g.MaybeString(g.Concat(g.Octet('?'), Query))).Cite(rfc7230(5, 3, 1)))
	AbsoluteForm  = framing.Pivot("absolute-form", g.Ref(AbsoluteURI).Cite(rfc7230(5, 3, 2)))
	AuthorityForm = framing.Pivot("authority-form", g.Ref(Authority).Cite(rfc7230(5, 3, 3)))
	AsteriskForm  = framing.Auto("asterisk-form", g.Exact("*").Cite(rfc7230(5, 3, 4)))

	// "*" is also a valid authority (a reg-name of one sub-delim),
	// asterisk-form is tried first to keep its meaning.
	RequestTarget = framing.Pivot("request-target", g.Alt(
		targetForm(OriginForm, structure.OriginForm),
		targetForm(AbsoluteForm, structure.AbsoluteForm),
		targetForm(AsteriskForm, structure.AsteriskForm),
		targetForm(AuthorityForm, structure.AuthorityForm),
	).Cite(rfc7230(5, 3)))

	HTTPName    = framing.Auto("HTTP-name", g.Exact("HTTP").Cite(rfc7230(2, 6)))
	HTTPVersion = framing.Pivot("HTTP-version", g.Map(
		g.Seq(g.Skip(HTTPName), g.Skip(g.Octet('/')), DIGIT, g.Skip(g.Octet('.')), DIGIT),
		func(v any) any {
			vs := v.([]any)
			return structure.HTTPVersion{Major: digit(vs[0]), Minor: digit(vs[1])}
		},
	).Cite(rfc7230(2, 6)))

	StatusCode = framing.Pivot("status-code", g.Map(g.StringTimes(DIGIT, 3, 3), func(v any) any {
		code, _ := strconv.Atoi(v.(string))
		return structure.StatusCode(code)
	}).Cite(rfc7230(3, 1, 2)))
	ReasonPhrase = framing.Pivot("reason-phrase", g.String(g.Alt(HTAB, SP, VCHAR, ObsText)).Cite(rfc7230(3, 1, 2)))

	RequestLine = framing.Pivot("request-line", g.Map(
		g.Seq(Method, g.Skip(SP), RequestTarget, g.Skip(SP), HTTPVersion, g.Skip(LaxCRLF)),
		func(v any) any {
			vs := v.([]any)
			return structure.RequestLine{
				Method:  vs[0].(structure.Method),
				Target:  vs[1].(structure.RequestTarget),
				Version: vs[2].(structure.HTTPVersion),
			}
		},
	).Cite(rfc7230(3, 1, 1)))

	StatusLine = framing.Pivot("status-line", g.Map(
		g.Seq(HTTPVersion, g.Skip(SP), StatusCode, g.Skip(SP), ReasonPhrase, g.Skip(LaxCRLF)),
		func(v any) any {
			vs := v.([]any)
			return structure.StatusLine{
				Version: vs[0].(structure.HTTPVersion),
				Code:    vs[1].(structure.StatusCode),
				Reason:  vs[2].(string),
			}
		},
	).Cite(rfc7230(3, 1, 2)))
)

func targetForm(r *g.Rule, form structure.TargetForm) *g.Rule {
	return g.Map(r, func(v any) any {
		return structure.RequestTarget{Form: form, Text: v.(string)}
	})
}

func digit(v any) int {
	return int(v.(string)[0] - '0')
}

// Header field rules.
var (
	FieldName = framing.Pivot("field-name", g.Map(Token, func(v any) any {
		return structure.FieldName(v.(string))
	}).Cite(rfc7230(3, 2)))
	FieldVChar = framing.Auto("field-vchar", g.Alt(VCHAR, ObsText).Cite(rfc7230(3, 2)))

	ObsFold = framing.Auto("obs-fold", g.Act(
		g.Seq(LaxCRLF, g.String1(g.Alt(SP, HTAB))),
		func(_ any, c notice.Complainer) any {
			c.Complain(notice.ObsoleteFold)
			return " "
		},
	).Cite(rfc7230(3, 2, 4)))

	// field-content and field-value are rewritten to be unambiguous (RFC Errata ID 4189):
	// field-content never starts or ends with whitespace,
	// and field-value is a sequence of contents separated by folds.
	FieldContent = framing.Auto("field-content", g.Concat(
		FieldVChar,
		g.MaybeString(g.Concat(g.String(g.Alt(SP, HTAB, FieldVChar)), FieldVChar)),
	).Cite(rfc7230(3, 2)))
	FieldValue = framing.Auto("field-value", g.Concat(
		g.MaybeString(FieldContent),
		g.String(g.Concat(ObsFold, g.MaybeString(FieldContent))),
	).Cite(rfc7230(3, 2)))

	HeaderField = framing.Pivot("header-field", g.Map(
		g.Seq(FieldName, g.Skip(g.Seq(g.Octet(':'), OWS)), FieldValue, g.Skip(OWS)),
		func(v any) any {
			vs := v.([]any)
			return structure.HeaderEntry{Name: vs[0].(structure.FieldName), Value: vs[1].(string)}
		},
	).Cite(rfc7230(3, 2)))
)

var builtInCodings = []string{"chunked", "compress", "deflate", "gzip"}

// TransferParameter matches a transfer-parameter, the value is structure.Param.
// If noQ is set the parameter name may not be "q", which is reserved for t-ranking.
func TransferParameter(noQ bool) *g.Rule {
	name := Token
	if noQ {
		name = TokenExcluding("q")
	}
	r := g.Seq(name, g.Skip(g.Seq(BWS, g.Octet('='), BWS)), g.Alt(Token, QuotedString))
	return g.Map(r, func(v any) any {
		vs := v.([]any)
		return structure.Param{Name: vs[0].(string), Value: vs[1].(string)}
	}).Named("transfer-parameter").Cite(rfc7230(4)).Pivot()
}

// TransferExtension matches a transfer coding that is not one of excluded names,
// the value is structure.Parametrized[structure.TransferCoding].
func TransferExtension(exclude []string, noQ bool) *g.Rule {
	param := g.Seq(g.Skip(g.Seq(OWS, g.Octet(';'), OWS)), TransferParameter(noQ))
	r := g.Seq(TokenExcluding(exclude...), g.Many(param))
	return g.Map(r, func(v any) any {
		vs := v.([]any)
		res := structure.Parametrized[structure.TransferCoding]{Item: structure.TransferCoding(vs[0].(string))}
		for _, p := range vs[1].([]any) {
			res.Params = append(res.Params, p.(structure.Param))
		}
		return res
	}).Named("transfer-extension").Cite(rfc7230(4)).Pivot()
}

// TransferCoding matches a built-in transfer coding or an extension,
// the value is structure.Parametrized[structure.TransferCoding].
func TransferCoding(noTrailers, noQ bool) *g.Rule {
	exclude := builtInCodings
	if noTrailers {
		exclude = append(exclude[:len(exclude):len(exclude)], "trailers")
	}

	items := []*g.Rule{TransferExtension(exclude, noQ)}
	for _, name := range builtInCodings {
		items = append(items, g.Map(g.Literal(name), func(v any) any {
			return structure.Parametrized[structure.TransferCoding]{Item: structure.TransferCoding(v.(string))}
		}))
	}
	return g.Alt(items...).Named("transfer-coding").Cite(rfc7230(4)).Pivot()
}

func parametrizedCodings(v any) any {
	items := v.([]any)
	res := make([]structure.Parametrized[structure.TransferCoding], len(items))
	for i, item := range items {
		res[i] = item.(structure.Parametrized[structure.TransferCoding])
	}
	return res
}

// Header value rules.
var (
	TransferEncoding = framing.Pivot("Transfer-Encoding", g.Map(CommaList1(TransferCoding(false, false)), parametrizedCodings).Cite(rfc7230(3, 3, 1)))

	Rank = framing.Pivot("rank", g.Map(g.Alt(
		g.Concat(g.Octet('0'), g.MaybeString(g.Concat(g.Octet('.'), g.StringTimes(DIGIT, 0, 3)))),
		g.Concat(g.Octet('1'), g.MaybeString(g.Concat(g.Octet('.'), g.StringTimes(g.Octet('0'), 0, 3)))),
	), func(v any) any {
		q, _ := strconv.ParseFloat(v.(string), 64)
		return q
	}).Cite(rfc7230(4, 3)))
	TRanking = framing.Pivot("t-ranking", g.Seq(g.Skip(g.Seq(OWS, g.Octet(';'), OWS, g.Literal("q="))), Rank).Cite(rfc7230(4, 3)))
	TCodings = framing.Pivot("t-codings", g.Alt(
		g.Subst(g.Literal("trailers"), structure.TCoding{Trailers: true}),
		g.Map(g.Seq(TransferCoding(true, true), g.Maybe(TRanking, nil)), func(v any) any {
			vs := v.([]any)
			res := structure.TCoding{Coding: vs[0].(structure.Parametrized[structure.TransferCoding])}
			if q, ranked := vs[1].(float64); ranked {
				res.Q = &q
			}
			return res
		}),
	).Cite(rfc7230(4, 3)))
	TE = framing.Pivot("TE", g.Map(CommaList(TCodings), func(v any) any {
		items := v.([]any)
		res := make([]structure.TCoding, len(items))
		for i, item := range items {
			res[i] = item.(structure.TCoding)
		}
		return res
	}).Cite(rfc7230(4, 3)))

	Trailer = framing.Pivot("Trailer", g.Map(CommaList1(FieldName), func(v any) any {
		items := v.([]any)
		res := make([]structure.FieldName, len(items))
		for i, item := range items {
			res[i] = item.(structure.FieldName)
		}
		return res
	}).Cite(rfc7230(4, 4)))

	ChunkSize    = framing.Pivot("chunk-size", g.String1(HEXDIG).Cite(rfc7230(4, 1)))
	ChunkExtName = framing.Auto("chunk-ext-name", g.Ref(Token).Cite(rfc7230(4, 1, 1)))
	ChunkExtVal  = framing.Auto("chunk-ext-val", g.Alt(Token, QuotedString).Cite(rfc7230(4, 1, 1)))
	ChunkExt     = framing.Pivot("chunk-ext", g.Map(
		g.Many(g.Seq(g.Skip(g.Octet(';')), ChunkExtName, g.Maybe(g.Seq(g.Skip(g.Octet('=')), ChunkExtVal), nil))),
		func(v any) any {
			items := v.([]any)
			res := make(structure.ChunkExt, len(items))
			for i, item := range items {
				pair := item.([]any)
				res[i].Name = pair[0].(string)
				if value, found := pair[1].(string); found {
					res[i].Value = value
				} else {
					res[i].Bare = true
				}
			}
			return res
		},
	).Cite(rfc7230(4, 1, 1)))

	TrailerPart = framing.Pivot("trailer-part", g.Map(g.Many(g.Seq(HeaderField, g.Skip(LaxCRLF))), func(v any) any {
		items := v.([]any)
		res := make([]structure.HeaderEntry, len(items))
		for i, item := range items {
			res[i] = item.(structure.HeaderEntry)
		}
		return res
	}).Cite(rfc7230(4, 1, 2)))

	Host = framing.Pivot("Host", g.Map(g.Seq(URIHost, g.Maybe(g.Seq(g.Skip(g.Octet(':')), Port), "")), func(v any) any {
		vs := v.([]any)
		return structure.Host{Name: vs[0].(string), Port: vs[1].(string)}
	}).Cite(rfc7230(5, 4)))

	ConnectionOption = framing.Pivot("connection-option", g.Map(Token, func(v any) any {
		return structure.ConnectionOption(v.(string))
	}).Cite(rfc7230(6, 1)))
	Connection = framing.Pivot("Connection", g.Map(CommaList1(ConnectionOption), func(v any) any {
		items := v.([]any)
		res := make([]structure.ConnectionOption, len(items))
		for i, item := range items {
			res[i] = item.(structure.ConnectionOption)
		}
		return res
	}).Cite(rfc7230(6, 1)))

	ProtocolName    = framing.Pivot("protocol-name", g.Ref(Token).Cite(rfc7230(6, 7)))
	ProtocolVersion = framing.Pivot("protocol-version", g.Ref(Token).Cite(rfc7230(6, 7)))
	Protocol        = framing.Pivot("protocol", g.Map(
		g.Seq(ProtocolName, g.Maybe(g.Seq(g.Skip(g.Octet('/')), ProtocolVersion), "")),
		func(v any) any {
			vs := v.([]any)
			return structure.Versioned[structure.UpgradeToken]{Item: structure.UpgradeToken(vs[0].(string)), Version: vs[1].(string)}
		},
	).Cite(rfc7230(6, 7)))
	Upgrade = framing.Pivot("Upgrade", g.Map(CommaList1(Protocol), func(v any) any {
		items := v.([]any)
		res := make([]structure.Versioned[structure.UpgradeToken], len(items))
		for i, item := range items {
			res[i] = item.(structure.Versioned[structure.UpgradeToken])
		}
		return res
	}).Cite(rfc7230(6, 7)))

	ReceivedProtocol = framing.Pivot("received-protocol", g.Map(
		g.Seq(g.Maybe(g.Seq(ProtocolName, g.Skip(g.Octet('/'))), "HTTP"), ProtocolVersion),
		func(v any) any {
			vs := v.([]any)
			return structure.Versioned[structure.UpgradeToken]{Item: structure.UpgradeToken(vs[0].(string)), Version: vs[1].(string)}
		},
	).Cite(rfc7230(5, 7, 1)))
	Pseudonym  = framing.Pivot("pseudonym", g.Ref(Token).Cite(rfc7230(5, 7, 1)))
	ReceivedBy = framing.Pivot("received-by", g.Alt(
		g.Concat(URIHost, g.MaybeString(g.Concat(g.Octet(':'), Port))),
		Pseudonym,
	).Cite(rfc7230(5, 7, 1)))
	Via = framing.Pivot("Via", g.Map(CommaList1(viaHop()), func(v any) any {
		items := v.([]any)
		res := make([]structure.ViaHop, len(items))
		for i, item := range items {
			res[i] = item.(structure.ViaHop)
		}
		return res
	}).Cite(rfc7230(5, 7, 1)))

	ContentLength = framing.Pivot("Content-Length", g.String1(DIGIT).Cite(rfc7230(3, 3, 2)))
)

func viaHop() *g.Rule {
	r := g.Seq(ReceivedProtocol, g.Skip(RWS), ReceivedBy, g.Maybe(g.Seq(g.Skip(RWS), Comment(false)), nil))
	return g.Map(r, func(v any) any {
		vs := v.([]any)
		res := structure.ViaHop{
			Protocol:   vs[0].(structure.Versioned[structure.UpgradeToken]),
			ReceivedBy: vs[1].(string),
		}
		res.Comment, res.HasComment = vs[2].(string)
		return res
	})
}
