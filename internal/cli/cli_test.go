package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ava12/httplint"
	"github.com/ava12/httplint/internal/config"
	"github.com/ava12/httplint/internal/logging"
	"github.com/ava12/httplint/notice"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	ids := 0
	opts := &RootOptions{
		NewID: func() string {
			ids++
			return fmt.Sprintf("report-%d", ids)
		},
		Profile: logging.ProfileTest,
	}

	cmd := newRootCommand(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func assertGolden(t *testing.T, name, output string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}

func decodeResult(t *testing.T, output string) CheckResult {
	t.Helper()
	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(output), &res), output)
	return res
}

func TestCheckRequestLineText(t *testing.T) {
	out, err := runCommand(t, "", "check", "-e", "request-line",
		filepath.Join("testdata", "request.txt"),
		filepath.Join("testdata", "bad-request.txt"),
	)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assertGolden(t, "check_request_text", out)
}

func TestCheckViaJSON(t *testing.T) {
	out, err := runCommand(t, "", "check", "--element", "via", "--format", "json", filepath.Join("testdata", "via.txt"))
	require.NoError(t, err)
	assertGolden(t, "check_via_json", out)
}

func TestCheckLines(t *testing.T) {
	out, err := runCommand(t, "", "check", "-e", "Transfer-Encoding", "--lines", filepath.Join("testdata", "te-lines.txt"))
	require.NoError(t, err)
	assertGolden(t, "check_lines_text", out)
}

func TestCheckStdinYAML(t *testing.T) {
	out, err := runCommand(t, "Host: example.com\r\n", "check", "--format", "yaml")
	require.NoError(t, err)

	var res CheckResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res), out)
	require.Len(t, res.Reports, 1)
	r := res.Reports[0]
	assert.Equal(t, "report-1", r.ID)
	assert.Equal(t, stdinName, r.Source)
	assert.Equal(t, "header-field", r.Element)
	assert.True(t, r.Valid)
	assert.Equal(t, []string{"Host: example.com"}, r.Value)
	require.Len(t, r.Terms, 1)
	assert.Equal(t, "header", r.Terms[0].Kind)
	assert.Equal(t, "RFC 7230 § 5.4", r.Terms[0].Cite)
	assert.Equal(t, Summary{Checked: 1}, res.Summary)
}

func TestCheckConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "httplint.toml")
	content := "format = \"json\"\nelement = \"Transfer-Encoding\"\nsuppress = [1151]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := runCommand(t, "gzip, , chunked", "check", "--config", path)
	require.NoError(t, err)
	res := decodeResult(t, out)
	require.Len(t, res.Reports, 1)
	assert.Equal(t, []string{"gzip", "chunked"}, res.Reports[0].Value)
	assert.Empty(t, res.Reports[0].Notices)

	out, err = runCommand(t, "gzip, , chunked", "check", "--config", path, "--format", "text", "-e", "TE")
	require.NoError(t, err)
	assert.Contains(t, out, "-: TE: valid\n")
	assert.NotContains(t, out, "notice 1151")
}

func TestCheckNotices(t *testing.T) {
	out, err := runCommand(t, "gzip, , chunked", "check", "-e", "Transfer-Encoding", "--format", "json")
	require.NoError(t, err)
	res := decodeResult(t, out)
	require.Len(t, res.Reports, 1)
	require.Len(t, res.Reports[0].Notices, 1)
	n := res.Reports[0].Notices[0]
	assert.Equal(t, notice.EmptyListElement, n.Code)
	assert.Equal(t, "comment", n.Severity)
	assert.Equal(t, 1, res.Summary.Notices)
}

func TestCheckCompressed(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte("chunked\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gzPath := filepath.Join(dir, "te.gz")
	require.NoError(t, os.WriteFile(gzPath, gz.Bytes(), 0o600))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstPath := filepath.Join(dir, "te.zst")
	require.NoError(t, os.WriteFile(zstPath, enc.EncodeAll([]byte("gzip\n"), nil), 0o600))
	require.NoError(t, enc.Close())

	out, err := runCommand(t, "", "check", "-e", "Transfer-Encoding", "--format", "json", gzPath, zstPath)
	require.NoError(t, err)
	res := decodeResult(t, out)
	require.Len(t, res.Reports, 2)
	assert.Equal(t, []string{"chunked"}, res.Reports[0].Value)
	assert.Equal(t, []string{"gzip"}, res.Reports[1].Value)
	assert.Equal(t, "report-2", res.Reports[1].ID)
}

func TestReadSourceLimit(t *testing.T) {
	saved := maxInputSize
	maxInputSize = 64
	defer func() { maxInputSize = saved }()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(bytes.Repeat([]byte("gzip, "), 1000))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, gz.Len(), 1000)

	_, err = readSource(stdinName, bytes.NewReader(gz.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content exceeds 64 bytes")

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zst := enc.EncodeAll(bytes.Repeat([]byte("gzip, "), 1000), nil)
	require.NoError(t, enc.Close())
	_, err = readSource(stdinName, bytes.NewReader(zst))
	assert.Error(t, err)

	_, err = readSource(stdinName, strings.NewReader(strings.Repeat("a", 65)))
	assert.Error(t, err)
	content, err := readSource(stdinName, strings.NewReader(strings.Repeat("a", 64)))
	require.NoError(t, err)
	assert.Len(t, content, 64)

	path := filepath.Join(t.TempDir(), "big.gz")
	require.NoError(t, os.WriteFile(path, gz.Bytes(), 0o600))
	_, err = runCommand(t, "", "check", "-e", "TE", path)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommandErrors(t *testing.T) {
	_, err := runCommand(t, "", "check", "-e", "Cookie")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `unknown element "Cookie"`)

	_, err = runCommand(t, "", "check", filepath.Join("testdata", "missing.txt"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCommand(t, "", "check", "--format", "xml")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCommand(t, "", "check", "--config", filepath.Join("testdata", "missing.toml"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	var he *httplint.Error
	require.ErrorAs(t, exitErr, &he)
	assert.Equal(t, config.ReadError, he.Code)
}

func TestNotices(t *testing.T) {
	out, err := runCommand(t, "", "notices", "--format", "text")
	require.NoError(t, err)
	assertGolden(t, "notices_text", out)

	out, err = runCommand(t, "", "notices", "--format", "json")
	require.NoError(t, err)
	var infos []NoticeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, len(notice.Codes()))
}

func TestElements(t *testing.T) {
	out, err := runCommand(t, "", "elements", "--format", "json")
	require.NoError(t, err)
	var infos []ElementInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.NotEmpty(t, infos)
	assert.Equal(t, "request-line", infos[0].Name)
	assert.Equal(t, "RFC 7230 § 3.1.1", infos[0].Cite)

	out, err = runCommand(t, "", "elements")
	require.NoError(t, err)
	assert.Contains(t, out, "Transfer-Encoding")
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "httplint dev\n", out)
}

func TestPrepare(t *testing.T) {
	assert.Equal(t, "GET / HTTP/1.1\r\n", string(prepare("request-line", []byte("GET / HTTP/1.1"))))
	assert.Equal(t, "GET / HTTP/1.1\n", string(prepare("request-line", []byte("GET / HTTP/1.1\n"))))
	assert.Equal(t, "", string(prepare("trailer-part", nil)))
	assert.Equal(t, "gzip", string(prepare("TE", []byte("gzip\r\n"))))
	assert.Equal(t, "gzip\r", string(prepare("TE", []byte("gzip\r"))))
}
