// File: statistics.go
// Role: run counters and the pretty-printed elapsed-time rendering used by
// -t/--time, both reproduced from the reference Statistics type.
package search

import (
	"fmt"
	"strings"
	"time"
)

// Statistics accumulates counters over a single Engine run. It has no
// behavior of its own beyond String and FormatDuration: the engine mutates
// it directly as the search proceeds.
type Statistics struct {
	RefinementsMade    int
	LeavesVisited      int
	BestLeafUpdates    int
	NumBadLeaves       int
	MaxLevel           int
	NumPrunedByAuto    int
	NumPrunedByInvar   int
	AutomorphismsFound int
	TimesBacktracked   int
	TotalTargetCells   int

	StartTime     time.Time
	ExecutionTime time.Duration
}

// String renders the one-line summary the reference Statistics::print
// produces, used by -s/--stats.
func (s Statistics) String() string {
	return fmt.Sprintf(
		"Total leaves visited: %d and automorphisms found: %d. Times pruned by invar: %d and automorphisms: %d. "+
			"Refined %d times. Canonical updates: %d. Backtracks: %d. Reached level: %d, total tc's %d",
		s.LeavesVisited, s.AutomorphismsFound, s.NumPrunedByInvar, s.NumPrunedByAuto,
		s.RefinementsMade, s.BestLeafUpdates, s.TimesBacktracked, s.MaxLevel, s.TotalTargetCells,
	)
}

// FormatDuration renders ExecutionTime as the reference's pretty_time does:
// an hours/minutes/seconds/milliseconds breakdown. Hours and minutes are
// omitted when zero; seconds and milliseconds are always printed, and a
// microseconds field is appended when milliseconds round to zero.
func (s Statistics) FormatDuration() string {
	d := s.ExecutionTime
	var b strings.Builder

	hours := d / time.Hour
	d -= hours * time.Hour
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}

	minutes := d / time.Minute
	d -= minutes * time.Minute
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}

	seconds := d / time.Second
	d -= seconds * time.Second
	fmt.Fprintf(&b, "%ds ", seconds)

	milliseconds := d / time.Millisecond
	d -= milliseconds * time.Millisecond
	fmt.Fprintf(&b, "%dms", milliseconds)

	if milliseconds == 0 {
		microseconds := d / time.Microsecond
		fmt.Fprintf(&b, " %dus", microseconds)
	}

	return b.String()
}
