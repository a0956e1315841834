// File: errors.go
// Role: sentinel errors for all three parsers.
package format

import "errors"

// Sentinel errors returned by Parse and its per-format helpers. Never
// wrap these at the definition site; callers that need context wrap with
// %w.
var (
	// ErrUnrecognizedFormat indicates the input's first non-empty line
	// matches none of the three supported formats.
	ErrUnrecognizedFormat = errors.New("format: unrecognized graph input format")

	// ErrMalformedHeader indicates a header line (vertex count, or an edge
	// list's "u v" line) could not be parsed as the integers it must be.
	ErrMalformedHeader = errors.New("format: malformed header or edge line")

	// ErrSelfLoop indicates an input encoded an edge from a vertex to
	// itself, which this system never permits.
	ErrSelfLoop = errors.New("format: self-loop is not allowed")

	// ErrRowTooShort indicates a row-matrix input had fewer rows, or a
	// shorter row, than its declared vertex count requires.
	ErrRowTooShort = errors.New("format: matrix row shorter than vertex count")

	// ErrBadDimacs indicates a malformed DIMACS line: a missing or
	// malformed "p edge n e" header, an "e" line before the header, or an
	// unrecognized leading character.
	ErrBadDimacs = errors.New("format: malformed DIMACS line")
)
