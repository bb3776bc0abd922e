package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // all elements are valid
	ExitFailure      = 1 // some elements are invalid
	ExitCommandError = 2 // bad arguments, unreadable input or config
)

// ExitError is an error with a process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, ExitFailure for errors other than ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Report is the result of checking a single element.
type Report struct {
	ID      string        `json:"id" yaml:"id"`
	Source  string        `json:"source" yaml:"source"`
	Element string        `json:"element" yaml:"element"`
	Valid   bool          `json:"valid" yaml:"valid"`
	Value   []string      `json:"value,omitempty" yaml:"value,omitempty"`
	Error   *ErrorEntry   `json:"error,omitempty" yaml:"error,omitempty"`
	Notices []NoticeEntry `json:"notices,omitempty" yaml:"notices,omitempty"`
	Terms   []TermEntry   `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// ErrorEntry describes a hard syntax error.
type ErrorEntry struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Col     int    `json:"col,omitempty" yaml:"col,omitempty"`
	Pos     int    `json:"pos" yaml:"pos"`
	Rule    string `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// NoticeEntry describes a reported notice.
type NoticeEntry struct {
	Code     int            `json:"code" yaml:"code"`
	Severity string         `json:"severity" yaml:"severity"`
	Title    string         `json:"title" yaml:"title"`
	Context  map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
	Rule     string         `json:"rule,omitempty" yaml:"rule,omitempty"`
	Cite     string         `json:"cite,omitempty" yaml:"cite,omitempty"`
	URL      string         `json:"url,omitempty" yaml:"url,omitempty"`
	Start    int            `json:"start" yaml:"start"`
	End      int            `json:"end" yaml:"end"`
}

// TermEntry describes protocol vocabulary found in a parsed value.
type TermEntry struct {
	Kind       string `json:"kind" yaml:"kind"`
	Name       string `json:"name" yaml:"name"`
	Registered bool   `json:"registered" yaml:"registered"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Cite       string `json:"cite,omitempty" yaml:"cite,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Summary counts check results.
type Summary struct {
	Checked int `json:"checked" yaml:"checked"`
	Invalid int `json:"invalid" yaml:"invalid"`
	Notices int `json:"notices" yaml:"notices"`
}

// CheckResult is the complete output of check command.
type CheckResult struct {
	Reports []Report `json:"reports" yaml:"reports"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

func summarize(reports []Report) Summary {
	s := Summary{Checked: len(reports)}
	for _, r := range reports {
		if !r.Valid {
			s.Invalid++
		}
		s.Notices += len(r.Notices)
	}
	return s
}

// writeResult renders result in given format.
func writeResult(w io.Writer, format string, res CheckResult) error {
	if format == "text" {
		return writeText(w, res)
	}
	return writeData(w, format, res)
}

// writeData renders data as JSON or YAML document.
func writeData(w io.Writer, format string, data any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(data)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeText(w io.Writer, res CheckResult) error {
	var sb strings.Builder
	for _, r := range res.Reports {
		status := "valid"
		if !r.Valid {
			status = "invalid"
		}
		fmt.Fprintf(&sb, "%s: %s: %s\n", r.Source, r.Element, status)

		for _, v := range r.Value {
			fmt.Fprintf(&sb, "  value: %s\n", v)
		}
		if r.Error != nil {
			fmt.Fprintf(&sb, "  error %d: %s\n", r.Error.Code, r.Error.Message)
		}
		for _, n := range r.Notices {
			sb.WriteString("  " + formatNotice(n) + "\n")
		}
		for _, t := range r.Terms {
			sb.WriteString("  " + formatTerm(t) + "\n")
		}
	}

	s := res.Summary
	fmt.Fprintf(&sb, "checked %d, invalid %d, notices %d\n", s.Checked, s.Invalid, s.Notices)
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatNotice(n NoticeEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "notice %d %s: %s", n.Code, n.Severity, n.Title)
	keys := make([]string, 0, len(n.Context))
	for k := range n.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, n.Context[k])
	}
	if n.Cite != "" {
		fmt.Fprintf(&sb, " (%s)", n.Cite)
	}
	fmt.Fprintf(&sb, " at %d..%d", n.Start, n.End)
	if n.Rule != "" {
		fmt.Fprintf(&sb, " in %s", n.Rule)
	}
	return sb.String()
}

func formatTerm(t TermEntry) string {
	res := fmt.Sprintf("term %s %s", t.Kind, t.Name)
	if !t.Registered {
		return res + ": unregistered"
	}
	if t.Title != "" {
		res += ": " + t.Title
	}
	if t.Cite != "" {
		res += " (" + t.Cite + ")"
	}
	return res
}
