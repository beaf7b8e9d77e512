package flatc

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const version_prefix = "flatc version "

// Version as reported by `flatc --version`.
type Version struct {
	version string
}

// Everything after "flatc version " on the first line, e.g. "1.12.0".
func (v *Version) Version() string { return v.version }

func (v *Version) String() string { return v.version }

const max_excerpt_len = 200

// excerpt keeps error messages readable when a tool dumps a lot of output.
func excerpt(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > max_excerpt_len {
		s = s[:max_excerpt_len] + "..."
	}
	return s
}

func parseVersion(stdout []byte) (*Version, error) {
	if !utf8.Valid(stdout) {
		return nil, fmt.Errorf("%w: output is not valid UTF-8", ERR_TOOL_UNAVAILABLE)
	}

	scanner := bufio.NewScanner(bytes.NewReader(stdout))
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: output is empty", ERR_TOOL_UNAVAILABLE)
	}
	line := strings.TrimSuffix(scanner.Text(), "\r")

	if !strings.HasPrefix(line, version_prefix) {
		return nil, fmt.Errorf("%w: output does not start with prefix %q: %q",
			ERR_TOOL_UNAVAILABLE, version_prefix, excerpt(stdout))
	}

	version := line[len(version_prefix):]
	if len(version) == 0 {
		return nil, fmt.Errorf("%w: version is empty", ERR_TOOL_UNAVAILABLE)
	}
	if version[0] < '0' || version[0] > '9' {
		return nil, fmt.Errorf("%w: version does not start with digit: %q",
			ERR_TOOL_UNAVAILABLE, version)
	}

	return &Version{version}, nil
}
