// Package clusterediting defines the configuration surface and sentinel
// errors of the induced-cost heuristic.
package clusterediting

import "errors"

// Sentinel errors returned by the heuristic.
var (
	// ErrNilGraph indicates a nil *editgraph.Graph was passed to New.
	ErrNilGraph = errors.New("clusterediting: graph is nil")

	// ErrConflictingConstraints indicates the caller-supplied hard
	// constraints contradict each other: some triangle carries two Permanent
	// pairs and one Forbidden pair, so no clustering can satisfy all three.
	// This is an invalid-input failure, not a solvable instance.
	ErrConflictingConstraints = errors.New("clusterediting: pre-fixed constraints are contradictory")

	// ErrAlreadySolved indicates Solve was invoked more than once on the
	// same instance, or a mutation was attempted after Solve.
	ErrAlreadySolved = errors.New("clusterediting: instance already solved")

	// ErrEdgeNotActive indicates a reweighting operation addressed a pair
	// that is no longer undecided (already fixed or retired).
	ErrEdgeNotActive = errors.New("clusterediting: edge is not undecided")
)

// Options configures the behavior of the induced-cost heuristic.
//
// PruneZeroEdges: if true, pairs whose weight is (or becomes) exactly zero
// are retired immediately at no cost instead of being queued for a decision.
// A retired pair stays visible to triangle closure and may still be hardened
// to Forbidden or Permanent for free if the surrounding decisions force it.
// Pruning trades a smaller queue for slightly coarser induced costs: a
// retired pair no longer contributes forcing pressure to its triangles.
type Options struct {
	PruneZeroEdges bool // retire zero-weight pairs instead of queueing them
}

// Option represents a functional option for configuring the heuristic.
type Option func(*Options)

// WithZeroPruning enables PruneZeroEdges.
func WithZeroPruning() Option {
	return func(o *Options) {
		o.PruneZeroEdges = true
	}
}

// DefaultOptions returns the baseline configuration: every explicit pair,
// including zero-weight ones, is queued and decided by the main loop.
func DefaultOptions() Options {
	return Options{
		PruneZeroEdges: false,
	}
}
