package httplint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pos struct {
	name              string
	line, col, offset int
}

func (p pos) SourceName() string { return p.name }
func (p pos) Line() int          { return p.line }
func (p pos) Col() int           { return p.col }
func (p pos) Offset() int        { return p.offset }

func TestNewError(t *testing.T) {
	e := NewError(SyntaxErrors, "oops", "", 0, 0)
	assert.Equal(t, "oops", e.Error())
	assert.Equal(t, -1, e.Pos)

	e = NewError(SyntaxErrors, "oops", "", 2, 3)
	assert.Equal(t, "oops at line 2 col 3", e.Error())

	e = NewError(SyntaxErrors, "oops", "Via", 1, 5)
	assert.Equal(t, "oops in Via at line 1 col 5", e.Error())
	assert.Equal(t, "Via", e.SourceName)
}

func TestFormatError(t *testing.T) {
	e := FormatError(GrammarErrors, "rule %q: %d", "token", 42)
	assert.Equal(t, GrammarErrors, e.Code)
	assert.Equal(t, `rule "token": 42`, e.Message)

	e = FormatError(GrammarErrors, "100%")
	assert.Equal(t, "100%", e.Message)
}

func TestFormatErrorPos(t *testing.T) {
	e := FormatErrorPos(pos{"TE", 1, 4, 3}, SyntaxErrors, "unexpected %s", "end of input")
	assert.Equal(t, "unexpected end of input in TE at line 1 col 4", e.Message)
	assert.Equal(t, 3, e.Pos)
	assert.Equal(t, 1, e.Line)
	assert.Equal(t, 4, e.Col)
}

func TestErrorsAs(t *testing.T) {
	var e error = fmt.Errorf("check: %w", FormatError(ConfigErrors, "bad"))
	var he *Error
	assert.True(t, errors.As(e, &he))
	assert.Equal(t, ConfigErrors, he.Code)
}
