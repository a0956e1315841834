// File: parse.go
// Role: format auto-detection and dispatch.
package format

import (
	"bufio"
	"io"
	"strings"

	"github.com/haneytron/nautigo/graph"
)

// Parse reads a graph from r, auto-detecting which of the three formats
// spec.md §6 describes — edge list, row matrix, DIMACS — it is looking at
// from the input's first non-empty line: a line starting with 'c' or 'p'
// is DIMACS; otherwise the first line is a vertex-count header, and the
// second non-empty line decides between row matrix and edge list (a row of
// exactly n '0'/'1' characters is a matrix; anything else is an edge).
func Parse(r io.Reader) (*graph.Graph, error) {
	lines, err := readNonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrUnrecognizedFormat
	}

	first := strings.TrimSpace(lines[0])
	switch {
	case strings.HasPrefix(first, "c") || strings.HasPrefix(first, "p"):
		return parseDimacs(lines)
	}

	n, ok := parseHeaderInt(first)
	if !ok {
		return nil, ErrMalformedHeader
	}

	if len(lines) >= 2 && isBinaryRow(strings.TrimSpace(lines[1]), n) {
		return parseRowMatrix(n, lines[1:])
	}

	return parseEdgeList(n, lines[1:])
}

// readNonEmptyLines returns every line of r with leading/trailing
// whitespace trimmed, skipping blank lines entirely.
func readNonEmptyLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// isBinaryRow reports whether s is exactly n characters, each '0' or '1' —
// the row-matrix format's per-row shape.
func isBinaryRow(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}

	return true
}

func parseHeaderInt(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}

	return n, true
}
