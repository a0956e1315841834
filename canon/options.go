// File: options.go
// Role: canon.Options — search.Options plus the reporting and
// random-relabeling toggles that only make sense at this outer layer.
package canon

import (
	"errors"

	"github.com/haneytron/nautigo/search"
)

// ErrOptionConflict indicates Random was requested together with a
// caller-supplied initial partition: a random relabeling invalidates the
// vertex indices that partition's cells refer to, so the combination is
// rejected rather than silently producing a meaningless result.
var ErrOptionConflict = errors.New("canon: --random is not supported together with a caller-supplied partition")

// Options configures a Canonicalize or IsIsomorphic call.
type Options struct {
	search.Options

	// Random marks that the caller already applied a uniform random
	// relabeling to the input graph before calling Canonicalize (used for
	// self-consistency testing, see cmd/nautigo's -r/--random). It exists
	// so Validate can reject the unsupported Random+caller-partition
	// combination; it has no effect on the search itself.
	Random bool

	// PrintStats and PrintTime ask Canonicalize to log
	// Statistics.String() / Statistics.FormatDuration() after a run. The
	// search engine itself never prints; these flags only drive
	// Canonicalize's own logging so a single Options value can configure
	// both the search and the report.
	PrintStats bool
	PrintTime  bool
}

// DefaultOptions returns search.DefaultOptions with reporting and random
// relabeling both off.
func DefaultOptions() Options {
	return Options{Options: search.DefaultOptions()}
}

// Validate rejects option combinations that cannot produce a meaningful
// result. Canonicalize and IsIsomorphic call it before running a search.
func (o Options) Validate() error {
	if o.Random && !o.UseUnitPartition {
		return ErrOptionConflict
	}

	return nil
}
