package structure

import (
	"strings"
)

// IsTChar reports whether b may appear in a token.
func IsTChar(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", b) >= 0
}

// IsToken reports whether s is a non-empty token.
func IsToken(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !IsTChar(s[i]) {
			return false
		}
	}
	return true
}

// Quote returns s as a quoted string, escaping only double quotes and backslashes.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// QuoteIfNeeded returns s if it is a token, quoted s otherwise.
func QuoteIfNeeded(s string) string {
	if IsToken(s) {
		return s
	}
	return Quote(s)
}

// QuoteComment returns s as a parenthesized comment. Backslashes and parentheses
// without a pair are escaped, balanced parentheses are kept as nested comments.
func QuoteComment(s string) string {
	unpaired := make(map[int]bool)
	var open []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				unpaired[i] = true
			} else {
				open = open[:len(open)-1]
			}
		}
	}
	for _, i := range open {
		unpaired[i] = true
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('(')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || unpaired[i] {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
