// Package config loads httplint command line settings from TOML files.
//
// A file may contain any subset of keys, undefined keys keep defaults:
//
//	format = "json"           # text, json, or yaml
//	element = "request-line"  # element checked by default
//	suppress = [1014, 1151]   # notice codes never reported
//	severity = "comment"      # lowest reported notice severity
//	color = false             # colored log output
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ava12/httplint/notice"
)

// Formats lists supported report formats.
var Formats = []string{"text", "json", "yaml"}

// Config holds settings shared by checking commands.
type Config struct {
	Format   string
	Element  string
	Suppress []int
	Severity notice.Severity
	Color    bool
}

type fileConfig struct {
	Format   string `toml:"format"`
	Element  string `toml:"element"`
	Suppress []int  `toml:"suppress"`
	Severity string `toml:"severity"`
	Color    bool   `toml:"color"`
}

// Default returns settings used when no file is given.
func Default() Config {
	return Config{
		Format:   "text",
		Element:  "header-field",
		Severity: notice.Debug,
		Color:    true,
	}
}

// Load overlays settings from TOML file on defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	e := cfg.Merge(path)
	return cfg, e
}

// Merge overlays keys defined in TOML file on cfg.
// cfg is left unchanged if the file is invalid.
func (cfg *Config) Merge(path string) error {
	var raw fileConfig
	meta, e := toml.DecodeFile(path, &raw)
	if e != nil {
		return readError(path, e)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return unknownKeyError(path, keys)
	}

	res := *cfg
	if meta.IsDefined("format") {
		format := strings.ToLower(strings.TrimSpace(raw.Format))
		if !ValidFormat(format) {
			return valueError(path, "format", raw.Format, strings.Join(Formats, ", "))
		}
		res.Format = format
	}

	if meta.IsDefined("element") {
		element := strings.TrimSpace(raw.Element)
		if element == "" {
			return valueError(path, "element", raw.Element, "element name")
		}
		res.Element = element
	}

	if meta.IsDefined("suppress") {
		for _, code := range raw.Suppress {
			if _, found := notice.Describe(code); !found {
				return valueError(path, "suppress", code, "notice code")
			}
		}
		res.Suppress = normalizeCodes(raw.Suppress)
	}

	if meta.IsDefined("severity") {
		sev, valid := notice.ParseSeverity(raw.Severity)
		if !valid {
			return valueError(path, "severity", raw.Severity, "debug, comment, or error")
		}
		res.Severity = sev
	}

	if meta.IsDefined("color") {
		res.Color = raw.Color
	}

	*cfg = res
	return nil
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Filter drops suppressed notices and notices below configured severity.
func (cfg Config) Filter(notes notice.Notices) notice.Notices {
	notes = notes.Without(cfg.Suppress...)
	if cfg.Severity == notice.Debug {
		return notes
	}

	res := make(notice.Notices, 0, len(notes))
	for _, n := range notes {
		if n.Severity() >= cfg.Severity {
			res = append(res, n)
		}
	}
	return res
}

func normalizeCodes(codes []int) []int {
	if len(codes) == 0 {
		return []int{}
	}
	seen := make(map[int]bool, len(codes))
	res := make([]int, 0, len(codes))
	for _, code := range codes {
		if !seen[code] {
			seen[code] = true
			res = append(res, code)
		}
	}
	return res
}
