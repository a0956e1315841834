// File: flags.go
// Role: short-code flag values to search/partition enums, and the
// caller-supplied initial-partition file format for -p/--partition.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/haneytron/nautigo/partition"
	"github.com/haneytron/nautigo/search"
)

// errUnrecognizedFlagValue indicates -i/--invarmethod or -c/--tcmethod
// received a code outside its declared short-code set.
var errUnrecognizedFlagValue = fmt.Errorf("unrecognized flag value")

// invariantMethodFromCode maps spec.md §6's -i/--invarmethod codes
// (n|s|r|c) onto search.InvariantMethod.
func invariantMethodFromCode(code string) (search.InvariantMethod, error) {
	switch code {
	case "n":
		return search.InvariantNone, nil
	case "s":
		return search.InvariantShape, nil
	case "r":
		return search.InvariantRefinement, nil
	case "c":
		return search.InvariantNumCells, nil
	default:
		return 0, fmt.Errorf("invarmethod %q: %w", code, errUnrecognizedFlagValue)
	}
}

// targetCellMethodFromCode maps spec.md §6's -c/--tcmethod codes
// (f|s|j) onto partition.TargetCellMethod.
func targetCellMethodFromCode(code string) (partition.TargetCellMethod, error) {
	switch code {
	case "f":
		return partition.First, nil
	case "s":
		return partition.FirstSmallest, nil
	case "j":
		return partition.Joins, nil
	default:
		return 0, fmt.Errorf("tcmethod %q: %w", code, errUnrecognizedFlagValue)
	}
}

// readPartitionFile parses -p/--partition's argument: one cell per
// non-empty line, each a whitespace-separated list of vertex indices,
// the shape partition.NewFromCells expects.
func readPartitionFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cells [][]int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cell := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("partition file %s: %w", path, err)
			}
			cell[i] = v
		}
		cells = append(cells, cell)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return cells, nil
}
