// Package config loads default CLI option values from a TOML file, letting
// a site pin a house style (invariant method, target-cell method, ...)
// without repeating flags on every invocation. It knows nothing about
// canon.Options or search.Options — cmd/nautigo maps the string fields
// below onto those enums, keeping this package free of a dependency on the
// domain packages.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfigParse indicates a config file exists but could not be parsed as
// TOML, or as the expected shape.
var ErrConfigParse = errors.New("config: malformed configuration file")

// Config mirrors the subset of canon.Options a site commonly wants to pin.
// String fields use the same short codes as the CLI flags they default
// (e.g. InvariantMethod: "n"|"s"|"r"|"c"), so cmd/nautigo can apply flag
// parsing and config defaults through the same mapping.
type Config struct {
	InvariantMethod   string `toml:"invariant_method"`
	TargetCellMethod  string `toml:"target_cell_method"`
	UseImplicit       bool   `toml:"use_implicit"`
	ExploreFirstPath  bool   `toml:"explore_first_path"`
	PrintStats        bool   `toml:"print_stats"`
	PrintTime         bool   `toml:"print_time"`
}

// Load reads and parses the TOML file at path. A missing file is not an
// error — callers get a zero Config and are expected to log that defaults
// are in effect.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}
