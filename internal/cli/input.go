package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// stdinName is the argument and the source name of standard input.
const stdinName = "-"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// maxInputSize limits the size of a source after decompression.
var maxInputSize int64 = 16 << 20

// input is a single element to check.
type input struct {
	Name    string
	Content []byte
}

// readSource reads file or standard input, decompressing gzip and zstd streams.
func readSource(name string, stdin io.Reader) ([]byte, error) {
	var r io.Reader
	if name == stdinName {
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", name, err)
		}
		defer zr.Close()
		return readLimited(name, zr)

	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderMaxMemory(uint64(maxInputSize)))
		if err != nil {
			return nil, fmt.Errorf("zstd %s: %w", name, err)
		}
		defer zr.Close()
		return readLimited(name, zr)

	default:
		return readLimited(name, br)
	}
}

func readLimited(name string, r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > maxInputSize {
		return nil, fmt.Errorf("%s: content exceeds %d bytes", name, maxInputSize)
	}
	return content, nil
}

// lineElements are elements that include their own line terminators.
var lineElements = map[string]bool{
	"request-line": true,
	"status-line":  true,
	"trailer-part": true,
}

// prepare adjusts trailing line terminator of content to the element convention:
// line elements get one if missing, other elements lose one.
func prepare(element string, content []byte) []byte {
	if lineElements[strings.ToLower(element)] {
		if len(content) == 0 || content[len(content)-1] == '\n' {
			return content
		}
		return append(append([]byte(nil), content...), '\r', '\n')
	}

	if bytes.HasSuffix(content, []byte{'\n'}) {
		content = bytes.TrimSuffix(content[:len(content)-1], []byte{'\r'})
	}
	return content
}

// split turns file content into inputs; with eachLine set every non-empty line is a separate input.
func split(name, element string, content []byte, eachLine bool) []input {
	if !eachLine {
		return []input{{name, prepare(element, content)}}
	}

	var res []input
	for i, line := range bytes.Split(content, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		res = append(res, input{fmt.Sprintf("%s:%d", name, i+1), prepare(element, line)})
	}
	return res
}
