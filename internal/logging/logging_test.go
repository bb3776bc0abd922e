package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	samples := []struct {
		raw   string
		level zerolog.Level
		ok    bool
	}{
		{"", zerolog.InfoLevel, false},
		{" Debug ", zerolog.DebugLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}

	for _, s := range samples {
		level, ok := parseLevel(s.raw)
		assert.Equal(t, s.ok, ok, s.raw)
		assert.Equal(t, s.level, level, s.raw)
	}
}

func TestResolveEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogTimestamp, "bogus")

	s := Resolve(ProfileRuntime)
	assert.Equal(t, zerolog.ErrorLevel, s.Level)
	assert.True(t, s.NoColor)
	assert.True(t, s.Timestamp)
}

func TestResolveTestProfile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogNoColor, "")
	t.Setenv(EnvLogTimestamp, "")

	s := Resolve(ProfileTest)
	assert.Equal(t, Settings{Level: zerolog.DebugLevel, NoColor: true}, s)
}

func TestNewFiltersLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, Settings{Level: zerolog.WarnLevel, NoColor: true})

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Str("file", "a.txt").Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "file=a.txt")
}
