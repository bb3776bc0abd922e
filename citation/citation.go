// Package citation defines references to specification documents.
package citation

import (
	"fmt"
	"strconv"
	"strings"
)

// Citation points to a document and, optionally, to a section inside it.
// The zero value cites nothing.
type Citation struct {
	// Title is a human readable document title, may be empty.
	Title string

	// URL of the document.
	URL string

	// Doc is a short document id, e.g. "RFC 7230".
	Doc string

	// Section contains section path, e.g. {3, 2, 6} for section 3.2.6.
	Section []int
}

// RFC creates a citation of an IETF RFC, optionally pointing to a section.
func RFC(num int, section ...int) Citation {
	c := Citation{
		Doc: "RFC " + strconv.Itoa(num),
		URL: fmt.Sprintf("https://www.rfc-editor.org/rfc/rfc%d", num),
	}
	if len(section) > 0 {
		c.Section = append([]int(nil), section...)
		c.URL += "#section-" + c.SectionPath()
	}
	return c
}

// IsZero reports whether c cites nothing.
func (c Citation) IsZero() bool {
	return c.Doc == "" && c.URL == ""
}

// SectionPath returns dot-separated section path or empty string.
func (c Citation) SectionPath() string {
	parts := make([]string, len(c.Section))
	for i, s := range c.Section {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ".")
}

// WithSection returns a copy of c pointing to another section of the same document.
func (c Citation) WithSection(section ...int) Citation {
	if strings.HasPrefix(c.Doc, "RFC ") {
		num, e := strconv.Atoi(c.Doc[4:])
		if e == nil {
			res := RFC(num, section...)
			res.Title = c.Title
			return res
		}
	}

	res := c
	res.Section = append([]int(nil), section...)
	return res
}

// String formats citation as "RFC 7230 § 3.2.6".
func (c Citation) String() string {
	if c.IsZero() {
		return ""
	}
	if len(c.Section) == 0 {
		return c.Doc
	}
	return c.Doc + " § " + c.SectionPath()
}

// Equal compares citations by document, section, and URL.
func (c Citation) Equal(other Citation) bool {
	if c.Doc != other.Doc || c.URL != other.URL || len(c.Section) != len(other.Section) {
		return false
	}
	for i, s := range c.Section {
		if other.Section[i] != s {
			return false
		}
	}
	return true
}
