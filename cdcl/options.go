package cdcl

import (
	"fmt"
	"io"
)

// Options configures a single call to Solve. The zero value is usable:
// it seeds a default RandomBrancher deterministically and disables
// tracing.
type Options struct {
	// Seed seeds the default branching heuristic when Brancher is nil.
	// Ignored if Brancher is set. Defaults to 0 (not time-based), so
	// that an unconfigured Options is still reproducible: branching
	// depends only on this seed, never on wall-clock time or global
	// process state.
	Seed int64

	// Brancher overrides the branching heuristic. If nil, a
	// RandomBrancher seeded with Seed is used.
	Brancher Brancher

	// Trace, if non-nil, receives a line of text for each decision,
	// propagation step, conflict, and backjump.
	Trace io.Writer
}

func (o Options) brancher() Brancher {
	if o.Brancher != nil {
		return o.Brancher
	}
	return NewRandomBrancher(o.Seed)
}

func (o Options) tracef(format string, args ...interface{}) {
	if o.Trace == nil {
		return
	}
	fmt.Fprintf(o.Trace, format, args...)
}
