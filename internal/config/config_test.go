package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/httplint/internal/test"
	"github.com/ava12/httplint/notice"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "httplint.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, e := Load(writeConfig(t, ""))
	require.NoError(t, e)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
format = "JSON"
element = " Via "
suppress = [1014, 1151, 1014]
severity = "comment"
color = false
`)
	cfg, e := Load(path)
	require.NoError(t, e)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "Via", cfg.Element)
	assert.Equal(t, []int{1014, 1151}, cfg.Suppress)
	assert.Equal(t, notice.Comment, cfg.Severity)
	assert.False(t, cfg.Color)
}

func TestLoadPartial(t *testing.T) {
	cfg, e := Load(writeConfig(t, `color = false`))
	require.NoError(t, e)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "header-field", cfg.Element)
	assert.False(t, cfg.Color)
}

func TestLoadErrors(t *testing.T) {
	samples := []struct {
		content string
		code    int
	}{
		{`format = "xml"`, ValueError},
		{`element = ""`, ValueError},
		{`suppress = [42]`, ValueError},
		{`severity = "fatal"`, ValueError},
		{`colour = true`, UnknownKeyError},
		{`format = `, ReadError},
	}

	for _, s := range samples {
		_, e := Load(writeConfig(t, s.content))
		he := test.ExpectErrorCode(t, s.code, e)
		assert.NotEmpty(t, he.SourceName, s.content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, e := Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.ExpectErrorCode(t, ReadError, e)
}

func TestMergeKeepsConfigOnError(t *testing.T) {
	cfg := Default()
	cfg.Format = "yaml"
	e := cfg.Merge(writeConfig(t, "element = \"Host\"\nseverity = \"bogus\""))
	test.ExpectErrorCode(t, ValueError, e)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "header-field", cfg.Element)
}

func TestFilter(t *testing.T) {
	notes := notice.Notices{
		{Code: notice.WhitespaceNotSingular},
		{Code: notice.ObsoleteFold},
		{Code: notice.EmptyListElement},
	}

	cfg := Default()
	test.ExpectCodes(t, cfg.Filter(notes), notice.WhitespaceNotSingular, notice.ObsoleteFold, notice.EmptyListElement)

	cfg.Suppress = []int{notice.EmptyListElement}
	test.ExpectCodes(t, cfg.Filter(notes), notice.WhitespaceNotSingular, notice.ObsoleteFold)

	cfg.Severity = notice.Error
	test.ExpectCodes(t, cfg.Filter(notes), notice.ObsoleteFold)
}
