// Package source defines the input buffer consumed by parser.
//
// Content is never modified after construction, so a Source may be shared
// by concurrently running parses.
package source

import (
	"bytes"
	"sort"
)

// Source holds a named immutable byte span, typically one HTTP message element.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates a Source. content is not copied and must not be modified afterwards.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

// FromString creates a Source from a string.
func FromString(name, content string) *Source {
	return New(name, []byte(content))
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to 1-based line and column numbers.
// Columns count octets, not runes: HTTP elements are octet sequences.
// Offsets out of range are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	return lineIndex + 1, pos - s.lineStarts[lineIndex] + 1
}

// Offset converts 1-based line and column numbers to byte offset.
func (s *Source) Offset(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// Pos returns position information for byte offset.
func (s *Source) Pos(offset int) Pos {
	line, col := s.LineCol(offset)
	if offset < 0 {
		offset = 0
	} else if offset > len(s.content) {
		offset = len(s.content)
	}
	return Pos{s, offset, line, col}
}

// Pos is a position inside Source, it implements httplint.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Offset() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
