// Package xlog is a thin wrapper around charmbracelet/log giving the CLI
// and the canon facade a single place to configure level and timestamp
// formatting. It is never imported by the domain packages (graph, perm,
// partition, search) — the search engine is side-effect-free and reports
// through search.Statistics instead.
package xlog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level, with short
// "HH:MM:SS.hh" timestamps (hundredths of a second).
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Default returns the package-wide logger used when no explicit logger was
// configured: stderr at Info level.
func Default() *log.Logger {
	return New(os.Stderr, log.InfoLevel)
}
