// Package test contains assertion helpers shared by package tests.
package test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/httplint"
	"github.com/ava12/httplint/notice"
)

// ErrorCode returns the code of e if it is (or wraps) *httplint.Error, 0 otherwise.
func ErrorCode(e error) int {
	var he *httplint.Error
	if errors.As(e, &he) {
		return he.Code
	}
	return 0
}

// ExpectErrorCode fails the test unless e is *httplint.Error with expected code.
func ExpectErrorCode(t *testing.T, expected int, e error) *httplint.Error {
	t.Helper()
	require.Error(t, e)
	var he *httplint.Error
	require.ErrorAs(t, e, &he)
	require.Equal(t, expected, he.Code, "error: %s", he.Message)
	return he
}

// ExpectPanicCode fails the test unless f panics with *httplint.Error having expected code.
func ExpectPanicCode(t *testing.T, expected int, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expecting panic with code %d", expected)
		e, valid := r.(error)
		require.True(t, valid, "expecting error, got %v", r)
		require.Equal(t, expected, ErrorCode(e), "panic: %v", r)
	}()
	f()
}

// ExpectCodes checks notice codes in order of appearance.
func ExpectCodes(t *testing.T, notes notice.Notices, expected ...int) {
	t.Helper()
	if len(expected) == 0 {
		assert.Empty(t, notes.Codes(), "unexpected notices: %v", notes)
		return
	}
	assert.Equal(t, expected, notes.Codes(), "notices: %v", notes)
}
