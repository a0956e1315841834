// Package format parses the three textual graph encodings spec.md §6
// describes — edge list, row matrix, DIMACS — behind a single Parse entry
// point that auto-detects the format from the input: no flag or extension
// tells Parse which format it is looking at.
package format
