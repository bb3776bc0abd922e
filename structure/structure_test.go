package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalForms(t *testing.T) {
	q := 0.5
	samples := []struct {
		value    interface{ String() string }
		expected string
	}{
		{Method("GET"), "GET"},
		{StatusCode(200), "200"},
		{StatusCode(99), "099"},
		{HTTPVersion{1, 1}, "HTTP/1.1"},
		{HeaderEntry{"Content-Length", "42"}, "Content-Length: 42"},
		{Param{Name: "q", Value: "bad"}, "q=bad"},
		{Param{Name: "name", Value: `a "b"`}, `name="a \"b\""`},
		{Param{Name: "empty"}, `empty=""`},
		{Param{Name: "bare", Bare: true}, "bare"},
		{Parametrized[TransferCoding]{Item: "gzip"}, "gzip"},
		{Parametrized[TransferCoding]{"foo", []Param{{Name: "a", Value: "1"}, {Name: "b", Value: "x y"}}}, `foo;a=1;b="x y"`},
		{Versioned[UpgradeToken]{Item: "h2c"}, "h2c"},
		{Versioned[UpgradeToken]{"HTTP", "2.0"}, "HTTP/2.0"},
		{RequestLine{"GET", RequestTarget{OriginForm, "/"}, HTTPVersion{1, 1}}, "GET / HTTP/1.1"},
		{StatusLine{HTTPVersion{1, 0}, 404, "Not Found"}, "HTTP/1.0 404 Not Found"},
		{TCoding{Trailers: true}, "trailers"},
		{TCoding{Coding: Parametrized[TransferCoding]{Item: "deflate"}, Q: &q}, "deflate;q=0.5"},
		{ViaHop{Protocol: Versioned[UpgradeToken]{"HTTP", "1.1"}, ReceivedBy: "proxy"}, "HTTP/1.1 proxy"},
		{ViaHop{Versioned[UpgradeToken]{"HTTP", "1.0"}, "fred", "Apache/1.1", true}, "HTTP/1.0 fred (Apache/1.1)"},
		{ViaHop{Versioned[UpgradeToken]{"HTTP", "1.1"}, "p", `a\b) (c)`, true}, `HTTP/1.1 p (a\\b\) (c))`},
		{ChunkExt{{Name: "a", Bare: true}, {Name: "b", Value: "c"}}, ";a;b=c"},
		{Host{Name: "example.com"}, "example.com"},
		{Host{"example.com", "8080"}, "example.com:8080"},
		{AuthorityForm, "authority-form"},
		{TargetForm(9), "form(9)"},
	}

	for i, s := range samples {
		assert.Equal(t, s.expected, s.value.String(), "sample #%d", i)
	}
}

func TestQuoteComment(t *testing.T) {
	samples := []struct{ text, expected string }{
		{"", "()"},
		{"Apache/1.1", "(Apache/1.1)"},
		{"a(b)c", "(a(b)c)"},
		{"a)b", `(a\)b)`},
		{"(a", `(\(a)`},
		{")(", `(\)\()`},
		{"(()", `(\(())`},
		{`a\b`, `(a\\b)`},
	}
	for _, s := range samples {
		assert.Equal(t, s.expected, QuoteComment(s.text), "text %q", s.text)
	}
}

func TestCaseInsensitive(t *testing.T) {
	assert.True(t, FieldName("Content-Length").Equal("content-length"))
	assert.True(t, TransferCoding("CHUNKED").Equal("chunked"))
	assert.True(t, ConnectionOption("Keep-Alive").Equal("keep-alive"))
	assert.True(t, UpgradeToken("WebSocket").Equal("websocket"))
	assert.True(t, CaseInsensitive("Trailers").Equal("trailers"))
	assert.False(t, FieldName("Content-Type").Equal("Content-Length"))
	assert.Equal(t, "host", FieldName("HOST").Fold())
}

func TestParam(t *testing.T) {
	p := Parametrized[TransferCoding]{"foo", []Param{{Name: "Q", Value: "bad"}}}
	v, found := p.Param("q")
	assert.True(t, found)
	assert.Equal(t, "bad", v)
	_, found = p.Param("x")
	assert.False(t, found)
}

func TestTokens(t *testing.T) {
	assert.True(t, IsToken("x-custom_1.0~"))
	assert.False(t, IsToken(""))
	assert.False(t, IsToken("a b"))
	assert.False(t, IsToken("a,b"))
	assert.Equal(t, `"a\\b"`, Quote(`a\b`))
	assert.Equal(t, "abc", QuoteIfNeeded("abc"))
	assert.Equal(t, StatusCode(404).Class(), 4)
}
