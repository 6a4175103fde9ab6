// Package editgraph defines the weight, state, and edge types shared by the
// cluster-editing graph and its consumers.
package editgraph

import "errors"

// Sentinel errors for editgraph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count was passed to New.
	ErrBadVertexCount = errors.New("editgraph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside the dense range [0, n).
	ErrVertexOutOfRange = errors.New("editgraph: vertex index out of range")

	// ErrSelfPair indicates an operation addressed the pair (v, v); cluster
	// editing is defined over distinct unordered pairs only.
	ErrSelfPair = errors.New("editgraph: self-pair is not a valid edge")

	// ErrEdgeDecided indicates a mutation of a pair already fixed to
	// Forbidden or Permanent; hard decisions are final.
	ErrEdgeDecided = errors.New("editgraph: edge already decided")
)

// State is the tagged decision state of an unordered vertex pair.
//
// Undecided pairs still carry a meaningful finite weight. Forbidden and
// Permanent are hard, final decisions (conceptually -Inf / +Inf re-edit
// cost). Zero marks a pair retired at no cost: it is excluded from further
// decision making but, unlike the hard states, may later be upgraded once to
// Forbidden or Permanent by deterministic closure, because a zero-weight pair
// is free to resolve in either direction.
type State uint8

const (
	// Undecided means the pair awaits a decision; its weight is meaningful.
	Undecided State = iota

	// Forbidden means the pair must be absent from the final clustering.
	Forbidden

	// Permanent means the pair must be present in the final clustering.
	Permanent

	// Zero means the pair was retired at zero cost; its final presence
	// follows implicitly from the clustering of its endpoints.
	Zero
)

// Decided reports whether s is one of the two hard, final states.
func (s State) Decided() bool { return s == Forbidden || s == Permanent }

// String returns a human-readable state name for diagnostics and tests.
func (s State) String() string {
	switch s {
	case Undecided:
		return "Undecided"
	case Forbidden:
		return "Forbidden"
	case Permanent:
		return "Permanent"
	case Zero:
		return "Zero"
	default:
		return "Unknown"
	}
}

// Edge is an unordered pair of distinct vertices in canonical order (U < V).
// Construct it with NewEdge to guarantee the ordering invariant; canonical
// edges compare reliably as map keys and in deterministic tie-breaks.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical Edge for the unordered pair {u, v}.
// The caller must ensure u != v (see ErrSelfPair at the Graph API boundary).
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Less orders edges lexicographically by (U, V). It is the fixed
// vertex-order rule used for reproducible tie-breaking.
func (e Edge) Less(other Edge) bool {
	if e.U != other.U {
		return e.U < other.U
	}

	return e.V < other.V
}

// WeightedPair couples an unordered vertex pair with its signed weight.
// It is the input row format accepted by NewFromPairs.
type WeightedPair struct {
	U, V int     // endpoints, any order
	W    float64 // signed weight: >0 present (deletion cost), <0 absent (insertion cost)
}
