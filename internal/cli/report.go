package cli

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/ava12/httplint"
	"github.com/ava12/httplint/internal/config"
	"github.com/ava12/httplint/known"
	"github.com/ava12/httplint/notice"
	"github.com/ava12/httplint/structure"
	"github.com/ava12/httplint/syntax"
)

// newReportID returns a time-ordered report id.
func newReportID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// checkInput parses a single input and builds its report.
func checkInput(el *syntax.Element, in input, cfg config.Config, id string) Report {
	r := Report{ID: id, Source: in.Name, Element: el.Name}
	value, notes, err := el.Parse(in.Content)
	if err != nil {
		r.Error = errorEntry(err)
		return r
	}

	r.Valid = true
	r.Value = valueStrings(value)
	for _, n := range cfg.Filter(notes) {
		r.Notices = append(r.Notices, noticeEntry(n))
	}
	r.Terms = termEntries(value)
	return r
}

func errorEntry(err error) *ErrorEntry {
	var he *httplint.Error
	if !errors.As(err, &he) {
		return &ErrorEntry{Message: err.Error(), Pos: -1}
	}
	return &ErrorEntry{
		Code:    he.Code,
		Message: he.Message,
		Line:    he.Line,
		Col:     he.Col,
		Pos:     he.Pos,
		Rule:    he.Rule,
	}
}

func noticeEntry(n notice.Notice) NoticeEntry {
	return NoticeEntry{
		Code:     n.Code,
		Severity: n.Severity().String(),
		Title:    n.Title(),
		Context:  n.Context,
		Rule:     n.Rule,
		Cite:     n.Cite.String(),
		URL:      n.Cite.URL,
		Start:    n.Start,
		End:      n.End,
	}
}

// valueStrings renders a parsed value, list values produce a string per item.
func valueStrings(value any) []string {
	if s, valid := value.(fmt.Stringer); valid {
		return []string{s.String()}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return []string{fmt.Sprint(value)}
	}

	res := make([]string, rv.Len())
	for i := range res {
		res[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return res
}

// vocabulary extracts values that may be found in the registry.
func vocabulary(value any) []any {
	var res []any
	switch v := value.(type) {
	case structure.RequestLine:
		res = append(res, v.Method)
	case structure.StatusLine:
		res = append(res, v.Code)
	case structure.HeaderEntry:
		res = append(res, v.Name)
	case []structure.HeaderEntry:
		for _, e := range v {
			res = append(res, e.Name)
		}
	case []structure.FieldName:
		for _, n := range v {
			res = append(res, n)
		}
	case []structure.Parametrized[structure.TransferCoding]:
		for _, c := range v {
			res = append(res, c.Item)
		}
	case []structure.TCoding:
		for _, c := range v {
			if !c.Trailers {
				res = append(res, c.Coding.Item)
			}
		}
	case []structure.Versioned[structure.UpgradeToken]:
		for _, p := range v {
			res = append(res, p.Item)
		}
	case []structure.ViaHop:
		for _, h := range v {
			res = append(res, h.Protocol.Item)
		}
	}
	return res
}

func termEntries(value any) []TermEntry {
	var res []TermEntry
	seen := make(map[string]bool)
	for _, term := range vocabulary(value) {
		kind, name, valid := known.KindOf(term)
		if !valid {
			continue
		}

		t := TermEntry{Kind: string(kind), Name: name}
		if e, found := known.Lookup(term); found {
			t.Name = e.Name
			t.Registered = true
			t.Title = e.Title
			t.Cite = e.Citation().String()
			t.URL = e.Citation().URL
		}

		key := t.Kind + " " + structure.Fold(t.Name)
		if !seen[key] {
			seen[key] = true
			res = append(res, t)
		}
	}
	return res
}
