// File: batch.go
// Role: -b/--batch — concurrently canonicalize every pair listed in a
// two-column manifest file, one goroutine per pair (SPEC_FULL.md §4.7,
// §5: safe without synchronization since each pair owns an independent
// graph.Graph and search.Engine).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/haneytron/nautigo/canon"
)

type batchPair struct {
	path1, path2 string
}

type batchResult struct {
	pair       batchPair
	isomorphic bool
}

func readManifest(path string) ([]batchPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []batchPair
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("manifest %s: expected two columns, got %q", path, line)
		}
		pairs = append(pairs, batchPair{path1: fields[0], path2: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// runBatch canonicalizes every manifest pair concurrently and prints one
// "Isomorphic: Yes|No" line per pair, in manifest order.
func runBatch(flags cliFlags) error {
	opt, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	pairs, err := readManifest(flags.batch)
	if err != nil {
		return err
	}

	results := make([]batchResult, len(pairs))

	var g errgroup.Group
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			g1, err := readGraphFile(pair.path1)
			if err != nil {
				return err
			}
			g2, err := readGraphFile(pair.path2)
			if err != nil {
				return err
			}
			if opt.Random {
				g1 = randomRelabel(g1)
				g2 = randomRelabel(g2)
			}

			ok, err := canon.IsIsomorphic(g1, g2, opt)
			if err != nil {
				return err
			}
			results[i] = batchResult{pair: pair, isomorphic: ok}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if r.isomorphic {
			fmt.Printf("%s %s: Isomorphic: Yes\n", r.pair.path1, r.pair.path2)
		} else {
			fmt.Printf("%s %s: Isomorphic: No\n", r.pair.path1, r.pair.path2)
		}
	}

	return nil
}
