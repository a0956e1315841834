// File: root.go
// Role: the single root command implementing spec.md §6's CLI surface:
// positional graph1/graph2, -h/-s/-t/-i/-c/-u/-p/-r, plus --batch and
// --config (SPEC_FULL.md §4.7).
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/haneytron/nautigo/canon"
	"github.com/haneytron/nautigo/format"
	"github.com/haneytron/nautigo/graph"
	"github.com/haneytron/nautigo/internal/config"
)

// cliFlags holds every flag's raw value exactly as parsed; main mapping
// onto canon.Options happens once in resolveOptions so --config defaults
// and explicit flags merge through one code path.
type cliFlags struct {
	stats        bool
	time         bool
	invarMethod  string
	tcMethod     string
	useImplicit  bool
	partition    string
	random       bool
	batch        string
	configPath   string
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	root := &cobra.Command{
		Use:           "nautigo graph1 graph2",
		Short:         "Canonicalize and isomorphism-test graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.batch != "" {
				return runBatch(flags)
			}
			if len(args) != 2 {
				return fmt.Errorf("expected exactly two positional arguments: graph1 graph2")
			}

			return runPair(args[0], args[1], flags)
		},
	}

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		cmd.Println(cmd.UsageString())
		os.Exit(1)
	})

	root.Flags().BoolVarP(&flags.stats, "stats", "s", false, "print search statistics on completion")
	root.Flags().BoolVarP(&flags.time, "time", "t", false, "print elapsed time on completion")
	root.Flags().StringVarP(&flags.invarMethod, "invarmethod", "i", "", "invariant method: n|s|r|c")
	root.Flags().StringVarP(&flags.tcMethod, "tcmethod", "c", "", "target-cell method: f|s|j")
	root.Flags().BoolVarP(&flags.useImplicit, "use_implicit", "u", false, "enable implicit-automorphism sibling pruning")
	root.Flags().StringVarP(&flags.partition, "partition", "p", "", "file giving the caller-supplied initial partition, one cell per line")
	root.Flags().BoolVarP(&flags.random, "random", "r", false, "canonicalize a uniform random relabeling of the input")
	root.Flags().StringVarP(&flags.batch, "batch", "b", "", "two-column manifest of graph-file pairs to canonicalize concurrently")
	root.Flags().StringVar(&flags.configPath, "config", "", "TOML file of default option values")

	return root
}

// resolveOptions merges --config defaults with explicitly-passed flags
// (flags always win) into a canon.Options value.
func resolveOptions(flags cliFlags) (canon.Options, error) {
	opt := canon.DefaultOptions()

	if flags.configPath != "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return canon.Options{}, err
		}
		if cfg.InvariantMethod != "" && flags.invarMethod == "" {
			flags.invarMethod = cfg.InvariantMethod
		}
		if cfg.TargetCellMethod != "" && flags.tcMethod == "" {
			flags.tcMethod = cfg.TargetCellMethod
		}
		opt.UseImplicit = opt.UseImplicit || cfg.UseImplicit
		opt.ExploreFirstPath = opt.ExploreFirstPath || cfg.ExploreFirstPath
		opt.PrintStats = opt.PrintStats || cfg.PrintStats
		opt.PrintTime = opt.PrintTime || cfg.PrintTime
	}

	if flags.invarMethod != "" {
		m, err := invariantMethodFromCode(flags.invarMethod)
		if err != nil {
			return canon.Options{}, err
		}
		opt.InvariantMethod = m
	}
	if flags.tcMethod != "" {
		m, err := targetCellMethodFromCode(flags.tcMethod)
		if err != nil {
			return canon.Options{}, err
		}
		opt.TargetCellMethod = m
		opt.StrongTargetCellMethod = m
	}
	if flags.useImplicit {
		opt.UseImplicit = true
	}
	if flags.stats {
		opt.PrintStats = true
	}
	if flags.time {
		opt.PrintTime = true
	}
	if flags.random {
		opt.Random = true
	}
	if flags.partition != "" {
		cells, err := readPartitionFile(flags.partition)
		if err != nil {
			return canon.Options{}, err
		}
		opt.UseUnitPartition = false
		opt.InputPartition = cells
	}

	return opt, nil
}

func readGraphFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return format.Parse(f)
}

// randomRelabel applies a uniform random permutation to g, the --random
// flag's self-consistency mode (spec.md §6): canonicalizing a random
// relabeling of a graph must reach the same canonical form.
func randomRelabel(g *graph.Graph) *graph.Graph {
	perm := rand.Perm(g.N())

	return g.Relabel(perm)
}

func runPair(path1, path2 string, flags cliFlags) error {
	opt, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	g1, err := readGraphFile(path1)
	if err != nil {
		return err
	}
	g2, err := readGraphFile(path2)
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

	if ok {
		fmt.Println("Isomorphic: Yes")
	} else {
		fmt.Println("Isomorphic: No")
	}

	return nil
}
