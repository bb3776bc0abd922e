// Package logging configures zerolog loggers used by command line tools.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "HTTPLINT_LOG_LEVEL"
	EnvLogTimestamp = "HTTPLINT_LOG_TIMESTAMP"
	EnvLogNoColor   = "HTTPLINT_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Settings control console output of a logger.
type Settings struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure sets the global logger once, later calls do nothing.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		log.Logger = New(os.Stderr, Resolve(profile))
	})
}

// Resolve returns profile defaults overridden by environment variables.
func Resolve(profile Profile) Settings {
	s := defaultSettings(profile)
	applyEnvOverrides(&s)
	return s
}

// New creates a console logger writing to w.
func New(w io.Writer, s Settings) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    s.NoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(output).Level(s.Level).With()
	if s.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func defaultSettings(profile Profile) Settings {
	switch profile {
	case ProfileTest:
		return Settings{Level: zerolog.DebugLevel, NoColor: true}
	default:
		return Settings{Level: zerolog.WarnLevel, Timestamp: true}
	}
}

func applyEnvOverrides(s *Settings) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		s.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		s.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		s.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
