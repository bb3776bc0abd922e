// Package structure defines typed values produced by HTTP grammars.
//
// Every type has a canonical text form returned by its String method.
// For values produced by a grammar, parsing the canonical form yields an equal value;
// the text of comments and quoted strings is re-escaped as needed.
package structure

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns a case-folded form of s suitable for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// CaseInsensitive is a string compared case-insensitively, e.g. the "trailers" keyword of TE.
type CaseInsensitive string

func (s CaseInsensitive) String() string {
	return string(s)
}

func (s CaseInsensitive) Fold() string {
	return Fold(string(s))
}

func (s CaseInsensitive) Equal(other CaseInsensitive) bool {
	return s.Fold() == other.Fold()
}

// Method is a case-sensitive request method.
type Method string

func (m Method) String() string {
	return string(m)
}

// StatusCode is a three-digit response status code.
type StatusCode int

func (c StatusCode) String() string {
	return fmt.Sprintf("%03d", int(c))
}

// Class returns the first digit of the code, e.g. 4 for 404.
func (c StatusCode) Class() int {
	return int(c) / 100
}

// HTTPVersion is a protocol version of HTTP-version rule.
type HTTPVersion struct {
	Major, Minor int
}

func (v HTTPVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// FieldName is a case-insensitive header field name.
type FieldName string

func (n FieldName) String() string {
	return string(n)
}

func (n FieldName) Fold() string {
	return Fold(string(n))
}

func (n FieldName) Equal(other FieldName) bool {
	return n.Fold() == other.Fold()
}

// TransferCoding is a case-insensitive transfer coding name.
type TransferCoding string

func (c TransferCoding) String() string {
	return string(c)
}

func (c TransferCoding) Fold() string {
	return Fold(string(c))
}

func (c TransferCoding) Equal(other TransferCoding) bool {
	return c.Fold() == other.Fold()
}

// ConnectionOption is a case-insensitive option of Connection header.
type ConnectionOption string

func (o ConnectionOption) String() string {
	return string(o)
}

func (o ConnectionOption) Fold() string {
	return Fold(string(o))
}

func (o ConnectionOption) Equal(other ConnectionOption) bool {
	return o.Fold() == other.Fold()
}

// UpgradeToken is a case-insensitive protocol name of Upgrade and Via headers.
type UpgradeToken string

func (t UpgradeToken) String() string {
	return string(t)
}

func (t UpgradeToken) Fold() string {
	return Fold(string(t))
}

func (t UpgradeToken) Equal(other UpgradeToken) bool {
	return t.Fold() == other.Fold()
}

// HeaderEntry is a single header field.
type HeaderEntry struct {
	Name  FieldName
	Value string
}

func (e HeaderEntry) String() string {
	return e.Name.String() + ": " + e.Value
}

// Param is a name-value pair of a parametrized value.
// Bare parameters (chunk extensions without a value) have an empty Value.
type Param struct {
	Name  string
	Value string
	Bare  bool
}

func (p Param) String() string {
	if p.Bare {
		return p.Name
	}
	return p.Name + "=" + QuoteIfNeeded(p.Value)
}

func formatParams(sb *strings.Builder, params []Param) {
	for _, p := range params {
		sb.WriteByte(';')
		sb.WriteString(p.String())
	}
}

// Parametrized is a value followed by an ordered list of parameters.
type Parametrized[T fmt.Stringer] struct {
	Item   T
	Params []Param
}

func (p Parametrized[T]) String() string {
	var sb strings.Builder
	sb.WriteString(p.Item.String())
	formatParams(&sb, p.Params)
	return sb.String()
}

// Param returns the value of the first parameter with given name (compared case-insensitively).
func (p Parametrized[T]) Param(name string) (string, bool) {
	for _, param := range p.Params {
		if strings.EqualFold(param.Name, name) {
			return param.Value, true
		}
	}
	return "", false
}

// Versioned is a value with an optional version, e.g. a protocol of Upgrade header.
type Versioned[T fmt.Stringer] struct {
	Item    T
	Version string
}

func (v Versioned[T]) String() string {
	if v.Version == "" {
		return v.Item.String()
	}
	return v.Item.String() + "/" + v.Version
}

// TargetForm is the form of a request target.
type TargetForm int

const (
	OriginForm TargetForm = iota
	AbsoluteForm
	AuthorityForm
	AsteriskForm
)

var targetFormNames = [...]string{"origin-form", "absolute-form", "authority-form", "asterisk-form"}

func (f TargetForm) String() string {
	if f < 0 || int(f) >= len(targetFormNames) {
		return "form(" + strconv.Itoa(int(f)) + ")"
	}
	return targetFormNames[f]
}

// RequestTarget is the request target of a request line.
type RequestTarget struct {
	Form TargetForm
	Text string
}

func (t RequestTarget) String() string {
	return t.Text
}

// RequestLine is the first line of a request, without line terminator.
type RequestLine struct {
	Method  Method
	Target  RequestTarget
	Version HTTPVersion
}

func (l RequestLine) String() string {
	return l.Method.String() + " " + l.Target.String() + " " + l.Version.String()
}

// StatusLine is the first line of a response, without line terminator.
type StatusLine struct {
	Version HTTPVersion
	Code    StatusCode
	Reason  string
}

func (l StatusLine) String() string {
	return l.Version.String() + " " + l.Code.String() + " " + l.Reason
}

// TCoding is an element of TE header: either "trailers" keyword
// or a transfer coding with an optional rank.
type TCoding struct {
	Trailers bool
	Coding   Parametrized[TransferCoding]
	Q        *float64
}

func (c TCoding) String() string {
	if c.Trailers {
		return "trailers"
	}

	res := c.Coding.String()
	if c.Q != nil {
		res += ";q=" + strconv.FormatFloat(*c.Q, 'f', -1, 64)
	}
	return res
}

// ViaHop is an element of Via header.
type ViaHop struct {
	Protocol   Versioned[UpgradeToken]
	ReceivedBy string
	Comment    string
	HasComment bool
}

func (h ViaHop) String() string {
	res := h.Protocol.String() + " " + h.ReceivedBy
	if h.HasComment {
		res += " " + QuoteComment(h.Comment)
	}
	return res
}

// ChunkExt is a list of chunk extensions.
type ChunkExt []Param

func (e ChunkExt) String() string {
	var sb strings.Builder
	formatParams(&sb, e)
	return sb.String()
}

// Host is the value of Host header.
type Host struct {
	Name string
	Port string
}

func (h Host) String() string {
	if h.Port == "" {
		return h.Name
	}
	return h.Name + ":" + h.Port
}
