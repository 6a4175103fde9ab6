package editgraph

import (
	"fmt"
	"math"
	"sort"
)

// edgeRecord is the single shared record of one unordered pair. Both
// directions of the adjacency index alias the same record, so a state or
// weight change is visible from either endpoint without double bookkeeping.
type edgeRecord struct {
	weight float64 // last finite weight of the pair (0 for materialized sentinels)
	state  State   // tagged decision state
}

// Graph is an undirected, weighted cluster-editing graph over the dense
// vertex range [0, n). Pairs without an explicit record have weight 0 and
// state Undecided ("absent-by-zero"); they carry no information and are not
// enumerated by Neighbors or Edges.
//
// Graph is not safe for concurrent use: the intended consumer is a strictly
// sequential solver that exclusively owns its working copy (use Clone to
// hand independent copies to independent runs).
type Graph struct {
	n   int                   // number of vertices
	adj []map[int]*edgeRecord // adj[u][v] == adj[v][u] (shared record)
}

// New creates an empty Graph with n vertices and no explicit pairs.
//
// Returns ErrBadVertexCount if n is negative.
//
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, n)
	}
	adj := make([]map[int]*edgeRecord, n)
	for i := range adj {
		adj[i] = make(map[int]*edgeRecord)
	}

	return &Graph{n: n, adj: adj}, nil
}

// VertexCount returns the number of vertices n. Vertices are immutable
// once the graph is built.
func (g *Graph) VertexCount() int { return g.n }

// CheckPair validates that u and v are distinct vertices inside [0, n).
// Consumers layering their own pair operations on top of the graph use it
// to fail eagerly with the graph's own sentinel errors.
func (g *Graph) CheckPair(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("%w: pair (%d,%d) with n=%d", ErrVertexOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfPair, u)
	}

	return nil
}

// record returns the shared record of {u, v}, or nil if the pair is implicit.
// Callers must have validated the pair.
func (g *Graph) record(u, v int) *edgeRecord {
	return g.adj[u][v]
}

// materialize returns the shared record of {u, v}, creating an Undecided
// zero-weight record if the pair was implicit.
func (g *Graph) materialize(u, v int) *edgeRecord {
	rec := g.adj[u][v]
	if rec == nil {
		rec = &edgeRecord{}
		g.adj[u][v] = rec
		g.adj[v][u] = rec
	}

	return rec
}

// SetWeight assigns the signed weight w to the pair {u, v}, materializing it
// if necessary. An explicit weight of 0 is kept as a recorded zero edge: the
// pair still awaits a decision, it merely costs nothing either way.
//
// Returns ErrVertexOutOfRange / ErrSelfPair on invalid pairs and
// ErrEdgeDecided if the pair is already fixed Forbidden or Permanent.
//
// Complexity: O(1) expected.
func (g *Graph) SetWeight(u, v int, w float64) error {
	// 1) Validate the pair eagerly; weight writes on bad input are programming errors.
	if err := g.CheckPair(u, v); err != nil {
		return err
	}

	// 2) Reject rewrites of hard decisions (invariant: sentinels are final).
	rec := g.materialize(u, v)
	if rec.state.Decided() {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrEdgeDecided, u, v, rec.state)
	}

	// 3) Store the finite weight; a previously retired Zero pair becomes live again.
	rec.weight = w
	rec.state = Undecided

	return nil
}

// Weight returns the effective weight of {u, v}: the stored finite weight
// for undecided pairs, 0 for Zero or implicit pairs, -Inf for Forbidden and
// +Inf for Permanent. This is the value triangle arithmetic consumes.
//
// Complexity: O(1) expected.
func (g *Graph) Weight(u, v int) float64 {
	rec := g.record(u, v)
	if rec == nil {
		return 0
	}
	switch rec.state {
	case Forbidden:
		return math.Inf(-1)
	case Permanent:
		return math.Inf(1)
	case Zero:
		return 0
	default:
		return rec.weight
	}
}

// StoredWeight returns the last finite weight recorded for {u, v} (0 for
// implicit pairs), regardless of the pair's current state. Commit paths use
// it to price the edit a decision actually performs.
func (g *Graph) StoredWeight(u, v int) float64 {
	rec := g.record(u, v)
	if rec == nil {
		return 0
	}

	return rec.weight
}

// State returns the tagged decision state of {u, v}; implicit pairs are
// Undecided.
func (g *Graph) State(u, v int) State {
	rec := g.record(u, v)
	if rec == nil {
		return Undecided
	}

	return rec.state
}

// SetForbidden fixes the pair {u, v} to Forbidden. Fixing an already
// Forbidden pair is a no-op; a Zero pair may be upgraded (a zero edge is
// free in either direction); a Permanent pair yields ErrEdgeDecided.
//
// Complexity: O(1) expected.
func (g *Graph) SetForbidden(u, v int) error {
	return g.setDecided(u, v, Forbidden)
}

// SetPermanent fixes the pair {u, v} to Permanent, with the symmetric rules
// of SetForbidden.
//
// Complexity: O(1) expected.
func (g *Graph) SetPermanent(u, v int) error {
	return g.setDecided(u, v, Permanent)
}

// setDecided is the shared transition into a hard, final state.
func (g *Graph) setDecided(u, v int, s State) error {
	if err := g.CheckPair(u, v); err != nil {
		return err
	}
	rec := g.materialize(u, v)
	if rec.state.Decided() && rec.state != s {
		return fmt.Errorf("%w: (%d,%d) is %s, cannot become %s", ErrEdgeDecided, u, v, rec.state, s)
	}
	rec.state = s

	return nil
}

// SetZero retires the pair {u, v} at no cost: its weight becomes exactly 0
// and its state Zero. Retiring an implicit pair materializes it so closure
// logic can still observe and upgrade it later.
//
// Returns ErrEdgeDecided if the pair is already fixed Forbidden/Permanent.
//
// Complexity: O(1) expected.
func (g *Graph) SetZero(u, v int) error {
	if err := g.CheckPair(u, v); err != nil {
		return err
	}
	rec := g.materialize(u, v)
	if rec.state.Decided() {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrEdgeDecided, u, v, rec.state)
	}
	rec.weight = 0
	rec.state = Zero

	return nil
}

// Neighbors returns the vertices sharing an explicit record with u, in
// ascending order. Implicit (absent-by-zero) pairs are not enumerated;
// decided and Zero pairs are, because triangle propagation must see them.
//
// Returns ErrVertexOutOfRange for an invalid u.
//
// Complexity: O(degree·log degree).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("%w: vertex %d with n=%d", ErrVertexOutOfRange, u, g.n)
	}
	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Edges returns every explicit pair in canonical (U,V)-ascending order,
// whatever its state. The deterministic order makes initialization and
// tie-breaking reproducible.
//
// Complexity: O(V + E·log E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if v > u {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// EdgeCount returns the number of explicit pairs.
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for u := 0; u < g.n; u++ {
		total += len(g.adj[u])
	}

	return total / 2 // each record is indexed from both endpoints
}

// Clone returns a deep copy of g. Independent solver runs must each own a
// private copy; Clone is how callers keep the original instance intact.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{n: g.n, adj: make([]map[int]*edgeRecord, g.n)}
	for i := range out.adj {
		out.adj[i] = make(map[int]*edgeRecord, len(g.adj[i]))
	}
	// Copy each shared record exactly once (from its smaller endpoint) and
	// re-alias it from both sides, preserving the shared-record invariant.
	for u := 0; u < g.n; u++ {
		for v, rec := range g.adj[u] {
			if v < u {
				continue
			}
			cp := &edgeRecord{weight: rec.weight, state: rec.state}
			out.adj[u][v] = cp
			out.adj[v][u] = cp
		}
	}

	return out
}
