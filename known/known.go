// Package known is a registry of protocol vocabulary: methods, status codes,
// header names, transfer codings, and upgrade tokens, with their titles and citations.
//
// The registry is never consulted when parsing, it only supplies metadata for reports.
package known

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ava12/httplint/citation"
	"github.com/ava12/httplint/structure"
)

// Kind is a vocabulary class.
type Kind string

const (
	Method         Kind = "method"
	StatusCode     Kind = "status_code"
	Header         Kind = "header"
	TransferCoding Kind = "transfer_coding"
	UpgradeToken   Kind = "upgrade_token"
)

// Entry describes a known value.
type Entry struct {
	Kind      Kind
	Name      string
	Title     string
	Citations []citation.Citation
}

// Citation returns the first citation of the entry or zero value.
func (e Entry) Citation() citation.Citation {
	if len(e.Citations) == 0 {
		return citation.Citation{}
	}
	return e.Citations[0]
}

type citeData struct {
	RFC     int    `yaml:"rfc"`
	Section string `yaml:"section"`
}

type entryData struct {
	Name  string     `yaml:"name"`
	Title string     `yaml:"title"`
	Cite  []citeData `yaml:"cite"`
}

//go:embed registry.yaml
var registryData []byte

type registry struct {
	entries map[Kind][]Entry
	index   map[Kind]map[string]int
}

var reg = mustLoad(registryData)

func mustLoad(data []byte) *registry {
	r, e := load(data)
	if e != nil {
		panic(e)
	}
	return r
}

func load(data []byte) (*registry, error) {
	var raw map[Kind][]entryData
	if e := yaml.Unmarshal(data, &raw); e != nil {
		return nil, fmt.Errorf("known: cannot decode registry: %w", e)
	}

	r := &registry{
		entries: make(map[Kind][]Entry, len(raw)),
		index:   make(map[Kind]map[string]int, len(raw)),
	}
	for kind, items := range raw {
		r.index[kind] = make(map[string]int, len(items))
		for _, item := range items {
			entry := Entry{Kind: kind, Name: item.Name, Title: item.Title}
			for _, cd := range item.Cite {
				c, e := parseCite(cd)
				if e != nil {
					return nil, fmt.Errorf("known: %s %s: %w", kind, item.Name, e)
				}
				entry.Citations = append(entry.Citations, c)
			}

			key := keyOf(kind, item.Name)
			if _, dup := r.index[kind][key]; dup {
				return nil, fmt.Errorf("known: duplicate %s %s", kind, item.Name)
			}
			r.index[kind][key] = len(r.entries[kind])
			r.entries[kind] = append(r.entries[kind], entry)
		}
	}
	return r, nil
}

func parseCite(cd citeData) (citation.Citation, error) {
	if cd.RFC <= 0 {
		return citation.Citation{}, fmt.Errorf("incorrect RFC number %d", cd.RFC)
	}
	if cd.Section == "" {
		return citation.RFC(cd.RFC), nil
	}

	parts := strings.Split(cd.Section, ".")
	section := make([]int, len(parts))
	for i, p := range parts {
		n, e := strconv.Atoi(p)
		if e != nil {
			return citation.Citation{}, fmt.Errorf("incorrect section %q", cd.Section)
		}
		section[i] = n
	}
	return citation.RFC(cd.RFC, section...), nil
}

// methods are case-sensitive, other names are not
func keyOf(kind Kind, name string) string {
	if kind == Method || kind == StatusCode {
		return name
	}
	return structure.Fold(name)
}

// KindOf returns vocabulary kind and lookup name of a structure value.
func KindOf(value any) (Kind, string, bool) {
	switch v := value.(type) {
	case structure.Method:
		return Method, string(v), true
	case structure.StatusCode:
		return StatusCode, v.String(), true
	case structure.FieldName:
		return Header, string(v), true
	case structure.TransferCoding:
		return TransferCoding, string(v), true
	case structure.UpgradeToken:
		return UpgradeToken, string(v), true
	}
	return "", "", false
}

// Get returns entry by kind and name.
func Get(kind Kind, name string) (Entry, bool) {
	i, found := reg.index[kind][keyOf(kind, name)]
	if !found {
		return Entry{}, false
	}
	return reg.entries[kind][i], true
}

// Lookup returns entry for a structure value: Method, StatusCode, FieldName, TransferCoding, or UpgradeToken.
func Lookup(value any) (Entry, bool) {
	kind, name, valid := KindOf(value)
	if !valid {
		return Entry{}, false
	}
	return Get(kind, name)
}

// IsKnown reports whether value is registered.
func IsKnown(value any) bool {
	_, found := Lookup(value)
	return found
}

// Citation returns the first citation of a registered value.
func Citation(value any) (citation.Citation, bool) {
	e, found := Lookup(value)
	if !found || len(e.Citations) == 0 {
		return citation.Citation{}, false
	}
	return e.Citations[0], true
}

// Entries returns registered entries of given kind sorted by name.
func Entries(kind Kind) []Entry {
	res := append([]Entry(nil), reg.entries[kind]...)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// Kinds returns registered kinds in sorted order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(reg.entries))
	for k := range reg.entries {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}
