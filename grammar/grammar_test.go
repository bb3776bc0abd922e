package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/httplint/citation"
	"github.com/ava12/httplint/internal/test"
)

func TestRuleDescriptions(t *testing.T) {
	samples := []struct {
		rule     *Rule
		expected string
	}{
		{Literal("GET"), `"GET"`},
		{Octet(' '), "%x20"},
		{Octet(':'), `":"`},
		{Octet('\n'), "%x0A"},
		{Range('0', '9'), "%x30-39"},
		{Literal("x").Named("ex"), "ex"},
		{Ref(Literal("y").Named("why")), "why"},
	}

	for i, s := range samples {
		assert.Equal(t, s.expected, s.rule.String(), "sample #%d", i)
	}
}

func TestTextOf(t *testing.T) {
	assert.Equal(t, "", TextOf(nil))
	assert.Equal(t, "abc", TextOf("abc"))
	assert.Equal(t, "abc", TextOf([]any{"a", []any{"b", nil}, "c"}))
	assert.Equal(t, "42", TextOf(42))
}

func TestBadBounds(t *testing.T) {
	test.ExpectPanicCode(t, BoundsError, func() { Times(Octet('a'), 2, 1) })
	test.ExpectPanicCode(t, BoundsError, func() { Times(Octet('a'), -1, Unbounded) })
	test.ExpectPanicCode(t, NilItemError, func() { Seq(Octet('a'), nil) })
	test.ExpectPanicCode(t, NilItemError, func() { Map(Octet('a'), nil) })
}

func TestUnboundForward(t *testing.T) {
	f := Forward("later")
	e := Check(Seq(Octet('('), f))
	he := test.ExpectErrorCode(t, UnboundError, e)
	assert.Contains(t, he.Message, "later")
}

func TestBindTwice(t *testing.T) {
	f := Forward("twice")
	f.Bind(Octet('a'))
	test.ExpectPanicCode(t, ReboundError, func() { f.Bind(Octet('b')) })
	test.ExpectPanicCode(t, NotForwardError, func() { Octet('a').Bind(Octet('b')) })
}

func TestLeftRecursion(t *testing.T) {
	f := Forward("expr")
	f.Bind(Alt(Seq(f, Octet('+'), Octet('1')), Octet('1')))
	he := test.ExpectErrorCode(t, RecursionError, Check(f))
	assert.Contains(t, he.Message, "expr")
	assert.False(t, f.IsFrozen())
}

func TestHiddenLeftRecursion(t *testing.T) {
	f := Forward("hidden")
	f.Bind(Seq(Many(Octet(' ')), Maybe(Octet('-'), nil), f, Octet('x')))
	test.ExpectErrorCode(t, RecursionError, Check(f))
}

func TestRecursionThroughConsumption(t *testing.T) {
	f := Forward("comment")
	f.Bind(Seq(Octet('('), Many(Alt(Range('a', 'z'), f)), Octet(')')))
	require.NoError(t, Check(f))
	assert.True(t, f.IsFrozen())
	assert.False(t, f.IsNullable())
}

func TestNullable(t *testing.T) {
	samples := []struct {
		rule     *Rule
		nullable bool
	}{
		{Empty(), true},
		{Literal(""), true},
		{Literal("a"), false},
		{Many(Octet('a')), true},
		{Many1(Octet('a')), false},
		{Many1(Many(Octet('a'))), true},
		{Seq(Maybe(Octet('a'), nil), Many(Octet('b'))), true},
		{Seq(Maybe(Octet('a'), nil), Octet('b')), false},
		{Alt(Octet('a'), Empty()), true},
		{Text(Skip(Empty())), true},
	}

	for i, s := range samples {
		require.NoError(t, Check(s.rule), "sample #%d", i)
		assert.Equal(t, s.nullable, s.rule.IsNullable(), "sample #%d", i)
	}
}

func TestFrozenRules(t *testing.T) {
	r := Seq(Octet('a'), Octet('b'))
	MustCheck(r)
	assert.True(t, r.IsFrozen())
	assert.True(t, r.Items()[0].IsFrozen())
	test.ExpectPanicCode(t, FrozenError, func() { r.Named("ab") })
	test.ExpectPanicCode(t, FrozenError, func() { r.Pivot() })
	test.ExpectPanicCode(t, FrozenError, func() { r.Cite(citation.RFC(7230)) })
}

func TestModule(t *testing.T) {
	cite := citation.RFC(7230, 3, 2)
	m := NewModule("test", cite)
	tchar := m.Auto("tchar", Alt(Range('a', 'z'), Octet('-')))
	token := m.Pivot("token", String1(tchar))
	other := m.Pivot("other-token", token)
	own := m.Auto("own", Octet('x').Cite(citation.RFC(3986)))
	list := String1(token).Named("#rule")
	renamed := m.Pivot("list", list)
	m.Finish()

	assert.Equal(t, []string{"tchar", "token", "other-token", "own", "list"}, m.Names())
	assert.Equal(t, "#rule", list.Name())
	assert.Equal(t, "list", renamed.Name())
	assert.Same(t, list, renamed.Target())
	assert.Equal(t, "tchar", tchar.Name())
	assert.False(t, tchar.IsPivot())
	assert.Equal(t, "token", token.Name())
	assert.True(t, token.IsPivot())
	assert.True(t, token.Citation().Equal(cite))
	assert.Same(t, token, m.Rule("token"))

	assert.NotSame(t, token, other)
	assert.Equal(t, ForwardRule, other.Kind())
	assert.Same(t, token, other.Target())
	assert.Equal(t, "other-token", other.Name())

	assert.Equal(t, "RFC 3986", own.Citation().String())
	assert.True(t, own.IsFrozen())

	test.ExpectPanicCode(t, DuplicateNameError, func() { m.Auto("tchar", Octet('y')) })
}

func TestModuleFrozenRule(t *testing.T) {
	r := Octet('a')
	MustCheck(r)
	m := NewModule("frozen", citation.RFC(5234))
	a := m.Auto("a", r)
	m.Finish()

	assert.NotSame(t, r, a)
	assert.Equal(t, "a", a.Name())
	assert.Equal(t, "", r.Name())
}
