package clusterediting

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Schaudge/whatshap/editgraph"
)

// Heuristic is the single owning context of one induced-cost run: it
// exclusively holds the working graph, the induced cost table, the priority
// queue, and the running total. All three structures are mutated only
// through Heuristic methods, never aliased independently, so every
// invariant-preserving update is in one place.
//
// Construction performs initialization and closes the caller-supplied hard
// constraints; Solve runs the greedy loop and may be called exactly once.
type Heuristic struct {
	opts   Options                     // run configuration
	g      *editgraph.Graph            // private working copy of the instance
	costs  map[editgraph.Edge]costPair // live induced costs of undecided pairs
	queue  edgeHeap                    // snapshots of costs, lazily re-keyed
	total  float64                     // accumulated edit cost, non-decreasing
	solved bool                        // Solve-at-most-once latch
}

// pendingDecision is one commitment waiting to be applied: a pair and the
// hard state it must take. Forced closure enqueues these behind the
// triggering decision.
type pendingDecision struct {
	edge  editgraph.Edge
	state editgraph.State
}

// New creates a Heuristic over a private clone of g (the caller's graph is
// never mutated), computes the initial induced costs of every undecided
// pair, and resolves the deterministic consequences of any Forbidden or
// Permanent states the caller fixed beforehand.
//
// Returns ErrNilGraph for a nil graph and ErrConflictingConstraints if the
// pre-fixed states contradict each other; contradictions are rejected here,
// before any greedy decision is made.
//
// Complexity: O(E·D) for E explicit pairs and maximum degree D.
func New(g *editgraph.Graph, opts ...Option) (*Heuristic, error) {
	// 1) Validate input and fold functional options over the defaults.
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Take ownership of a working copy; the heuristic mutates states and
	//    weights as it commits pairs.
	h := &Heuristic{
		opts:  cfg,
		g:     g.Clone(),
		costs: make(map[editgraph.Edge]costPair, g.EdgeCount()),
		queue: make(edgeHeap, 0, g.EdgeCount()),
	}

	// 3) Build the cost table and queue from scratch.
	h.initInducedCosts()

	// 4) Close the caller's hard constraints to fixpoint so the queue's
	//    priorities reflect every pre-existing decision before the loop runs.
	if err := h.resolvePermanentForbidden(); err != nil {
		return nil, err
	}

	return h, nil
}

// TotalCost returns the edit cost accumulated so far. After Solve it equals
// the Solution's TotalCost; before Solve it covers only the edits forced by
// the caller's hard constraints.
func (h *Heuristic) TotalCost() float64 { return h.total }

// initInducedCosts computes the initial (icf, icp) of every undecided pair
// against the graph's current weights (including the ±Inf effective
// weights of pre-fixed pairs) and fills the priority queue. With
// PruneZeroEdges set, explicit zero-weight pairs are retired first and never
// enter the queue.
func (h *Heuristic) initInducedCosts() {
	edges := h.g.Edges()

	// 1) Zero pruning happens before any cost exists, so retirement needs no
	//    delta propagation: a zero-weight pair contributes nothing anywhere.
	if h.opts.PruneZeroEdges {
		var e editgraph.Edge
		for _, e = range edges {
			if h.g.State(e.U, e.V) == editgraph.Undecided && h.g.StoredWeight(e.U, e.V) == 0 {
				_ = h.g.SetZero(e.U, e.V) // pair is validated and undecided
			}
		}
	}

	// 2) From-scratch costs for the remaining undecided pairs, inserted in
	//    canonical edge order for reproducibility.
	heap.Init(&h.queue)
	var e editgraph.Edge
	for _, e = range edges {
		if h.g.State(e.U, e.V) != editgraph.Undecided {
			continue
		}
		cp := h.scratchCosts(e)
		h.costs[e] = cp
		heap.Push(&h.queue, heapEntry{edge: e, icf: cp.icf, icp: cp.icp})
	}
}

// resolvePermanentForbidden processes, to closure, every consequence forced
// by the pair states the caller fixed before the run: two Permanent pairs of
// a triangle force the third Permanent, a Permanent and a Forbidden pair
// force the third Forbidden. Forced pairs are committed through the same
// path as greedy decisions (charging the direct edit cost of the flip) and
// may force further pairs in turn.
//
// Returns ErrConflictingConstraints if some triangle carries two Permanent
// pairs and one Forbidden pair.
func (h *Heuristic) resolvePermanentForbidden() error {
	var (
		e      editgraph.Edge
		s      editgraph.State
		forced []pendingDecision
		err    error
	)
	for _, e = range h.g.Edges() {
		s = h.g.State(e.U, e.V)
		if !s.Decided() {
			continue
		}
		// Triangles among pre-fixed pairs are scanned here; triangles created
		// by the forced commits themselves are closed inside commit.
		if forced, err = h.closeTriangles(e.U, e.V, s); err != nil {
			return err
		}
		for _, d := range forced {
			if err = h.commit(d); err != nil {
				return err
			}
		}
	}

	return nil
}

// Solve runs the greedy loop to completion and returns the Solution.
//
// Every iteration pops the most confidently decidable pair (highest
// |icf − icp|, cheapest side, then canonical edge order), fixes it on its
// cheaper side, charges the direct cost of that flip, and incrementally
// updates only the pairs sharing a vertex. The loop ends when no undecided
// pair remains; by then every explicit pair is Forbidden, Permanent, or
// retired Zero.
//
// Solve must be called exactly once per instance; later calls return
// ErrAlreadySolved.
//
// Complexity: O(E·(D + log E)).
func (h *Heuristic) Solve() (*Solution, error) {
	// 1) Enforce the solve-once contract eagerly.
	if h.solved {
		return nil, ErrAlreadySolved
	}
	h.solved = true

	// 2) Greedy main loop over live snapshots.
	for h.queue.Len() > 0 {
		ent := heap.Pop(&h.queue).(heapEntry)

		// 2a) Discard stale snapshots: the pair was committed or retired
		//     meanwhile, or its costs were re-keyed since this push.
		cur, ok := h.costs[ent.edge]
		if !ok || cur.icf != ent.icf || cur.icp != ent.icp {
			continue
		}

		// 2b) Fix the cheaper side; ties resolve to Forbidden.
		st := editgraph.Forbidden
		if cur.icf > cur.icp {
			st = editgraph.Permanent
		}

		// 2c) Commit, propagate triangle deltas, and close forced decisions.
		if err := h.commit(pendingDecision{edge: ent.edge, state: st}); err != nil {
			return nil, err
		}
	}

	// 3) Package the final assignment; the Heuristic's working state is dead
	//    from here on.
	return h.newSolution(), nil
}

// SetWeight re-weights the undecided pair {u, v} to the finite weight w
// before Solve, keeping the induced cost table consistent through
// incremental deltas instead of a rescan. With PruneZeroEdges set, driving
// a weight to exactly zero retires the pair immediately (see SetZero).
//
// Returns ErrAlreadySolved after Solve, the graph's validation errors for
// bad pairs, and ErrEdgeNotActive if the pair is already fixed or retired.
//
// Complexity: O((deg(u)+deg(v))·log E).
func (h *Heuristic) SetWeight(u, v int, w float64) error {
	// 1) Validate call ordering and the pair itself.
	if h.solved {
		return ErrAlreadySolved
	}
	if err := h.g.CheckPair(u, v); err != nil {
		return err
	}
	if s := h.g.State(u, v); s != editgraph.Undecided {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrEdgeNotActive, u, v, s)
	}

	// 2) No-op and prune-to-zero shortcuts.
	e := editgraph.NewEdge(u, v)
	oldW := h.g.StoredWeight(u, v)
	if w == oldW {
		return nil
	}
	if w == 0 && h.opts.PruneZeroEdges {
		return h.SetZero(u, v)
	}

	// 3) Write the new weight into the working graph.
	_ = h.g.SetWeight(u, v, w) // pair validated and undecided above

	// 4) A pair that was implicit until now gets a fresh from-scratch row;
	//    an existing row is adjusted by the direct-cost delta.
	if _, ok := h.costs[e]; !ok {
		cp := h.scratchCosts(e)
		h.costs[e] = cp
		heap.Push(&h.queue, heapEntry{edge: e, icf: cp.icf, icp: cp.icp})
	} else {
		h.adjustCosts(e, math.Max(0, w)-math.Max(0, oldW), math.Max(0, -w)-math.Max(0, -oldW))
	}

	// 5) Re-weighting without commitment: every triangle through the pair
	//    swaps its old contribution for the new one.
	for _, x := range h.triangleScope(u, v) {
		h.updateTripleCustomWeightUW(oldW, w, editgraph.NewEdge(u, x), h.g.Weight(v, x))
		h.updateTripleCustomWeightUW(oldW, w, editgraph.NewEdge(v, x), h.g.Weight(u, x))
	}

	return nil
}

// SetZero drives the undecided pair {u, v} to weight exactly zero and
// retires it from the queue at no cost, before Solve. The retired pair
// keeps participating in triangle closure as a free pair: deterministic
// forcing may later harden it to Forbidden or Permanent for nothing.
//
// Returns ErrAlreadySolved after Solve, the graph's validation errors for
// bad pairs, and ErrEdgeNotActive if the pair is already fixed or retired.
//
// Complexity: O((deg(u)+deg(v))·log E).
func (h *Heuristic) SetZero(u, v int) error {
	// 1) Validate call ordering and the pair itself.
	if h.solved {
		return ErrAlreadySolved
	}
	if err := h.g.CheckPair(u, v); err != nil {
		return err
	}
	if s := h.g.State(u, v); s != editgraph.Undecided {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrEdgeNotActive, u, v, s)
	}

	// 2) Retire the pair: weight 0, out of the queue, zero cost.
	oldW := h.g.StoredWeight(u, v)
	_ = h.g.SetZero(u, v) // pair validated and undecided above
	delete(h.costs, editgraph.NewEdge(u, v))

	// 3) Retract the pair's old triangle contributions; a zero pair no
	//    longer forces anything on its neighbors.
	if oldW != 0 {
		for _, x := range h.triangleScope(u, v) {
			h.updateTripleZeroUW(oldW, editgraph.NewEdge(u, x), h.g.Weight(v, x))
			h.updateTripleZeroUW(oldW, editgraph.NewEdge(v, x), h.g.Weight(u, x))
		}
	}

	return nil
}

// commit applies one decision and everything it deterministically drags
// along: it charges the direct edit cost of each flip, fixes the state in
// the working graph, drops the pair from the cost table, applies the
// triangle deltas to every incident undecided pair, and chains into any
// decisions forced by the newly fixed triangles (FIFO, in deterministic
// scan order).
//
// Returns ErrConflictingConstraints if a forced decision collides with an
// opposite fixed state; with closure maintained eagerly this is only
// reachable from contradictory caller input.
func (h *Heuristic) commit(first pendingDecision) error {
	work := []pendingDecision{first}
	for len(work) > 0 {
		d := work[0]
		work = work[1:]

		// 1) Skip decisions that already hold; oppose ones are contradictions.
		cur := h.g.State(d.edge.U, d.edge.V)
		if cur.Decided() {
			if cur != d.state {
				return fmt.Errorf("%w: pair (%d,%d) forced both %s and %s",
					ErrConflictingConstraints, d.edge.U, d.edge.V, cur, d.state)
			}
			continue
		}

		// 2) Charge the direct cost of the flip this decision performs:
		//    deleting a present pair costs its weight, inserting an absent
		//    one its magnitude; agreeing flips cost nothing.
		oldW := h.g.StoredWeight(d.edge.U, d.edge.V)
		h.total += flipCost(oldW, d.state)

		// 3) Fix the state (this materializes implicit pairs, so later
		//     triangles observe the decision) and drop the live cost row.
		var err error
		if d.state == editgraph.Forbidden {
			err = h.g.SetForbidden(d.edge.U, d.edge.V)
		} else {
			err = h.g.SetPermanent(d.edge.U, d.edge.V)
		}
		if err != nil {
			return err // unreachable: state checked above
		}
		delete(h.costs, d.edge)

		// 4) Incremental triangle deltas for every incident undecided pair.
		h.propagateDeltas(d.edge.U, d.edge.V, oldW, d.state)

		// 5) Eager closure around the new decision.
		forced, err := h.closeTriangles(d.edge.U, d.edge.V, d.state)
		if err != nil {
			return err
		}
		work = append(work, forced...)
	}

	return nil
}

// propagateDeltas swaps, for every triangle through the just-committed pair
// {u, v}, the contribution computed from the pair's old finite weight for
// the contribution under its new hard state. Only pairs with a live cost
// row are touched; each touched row is re-keyed in the queue.
func (h *Heuristic) propagateDeltas(u, v int, oldW float64, s editgraph.State) {
	for _, x := range h.triangleScope(u, v) {
		ux, vx := editgraph.NewEdge(u, x), editgraph.NewEdge(v, x)
		if s == editgraph.Forbidden {
			h.updateTripleForbiddenUW(oldW, ux, h.g.Weight(v, x))
			h.updateTripleForbiddenUW(oldW, vx, h.g.Weight(u, x))
		} else {
			h.updateTriplePermanentUW(oldW, ux, h.g.Weight(v, x))
			h.updateTriplePermanentUW(oldW, vx, h.g.Weight(u, x))
		}
	}
}

// closeTriangles scans the triangles through the fixed pair {u, v} (state s)
// and returns the decisions its hard state deterministically forces on
// third pairs:
//
//   - s Permanent, one side Permanent   → other side Permanent
//   - s Permanent, one side Forbidden   → other side Forbidden
//   - s Forbidden, one side Permanent   → other side Forbidden
//
// A triangle holding two Permanent pairs and one Forbidden pair has no
// satisfying clustering and yields ErrConflictingConstraints. Zero pairs
// count as undecided here: they harden for free when forced.
func (h *Heuristic) closeTriangles(u, v int, s editgraph.State) ([]pendingDecision, error) {
	var out []pendingDecision
	for _, x := range h.triangleScope(u, v) {
		su := h.g.State(u, x)
		sv := h.g.State(v, x)

		if s == editgraph.Permanent {
			switch {
			case su == editgraph.Permanent && sv == editgraph.Forbidden,
				su == editgraph.Forbidden && sv == editgraph.Permanent:
				return nil, fmt.Errorf("%w: triangle (%d,%d,%d)", ErrConflictingConstraints, u, v, x)
			case su == editgraph.Permanent && !sv.Decided():
				out = append(out, pendingDecision{edge: editgraph.NewEdge(v, x), state: editgraph.Permanent})
			case sv == editgraph.Permanent && !su.Decided():
				out = append(out, pendingDecision{edge: editgraph.NewEdge(u, x), state: editgraph.Permanent})
			case su == editgraph.Forbidden && !sv.Decided():
				out = append(out, pendingDecision{edge: editgraph.NewEdge(v, x), state: editgraph.Forbidden})
			case sv == editgraph.Forbidden && !su.Decided():
				out = append(out, pendingDecision{edge: editgraph.NewEdge(u, x), state: editgraph.Forbidden})
			}

			continue
		}

		// s == Forbidden: only a Permanent side forces anything.
		switch {
		case su == editgraph.Permanent && sv == editgraph.Permanent:
			return nil, fmt.Errorf("%w: triangle (%d,%d,%d)", ErrConflictingConstraints, u, v, x)
		case su == editgraph.Permanent && !sv.Decided():
			out = append(out, pendingDecision{edge: editgraph.NewEdge(v, x), state: editgraph.Forbidden})
		case sv == editgraph.Permanent && !su.Decided():
			out = append(out, pendingDecision{edge: editgraph.NewEdge(u, x), state: editgraph.Forbidden})
		}
	}

	return out, nil
}

// triangleScope returns the sorted union of the explicit neighborhoods of u
// and v, excluding u and v themselves: exactly the third vertices whose
// pairs can be affected when {u, v} changes. The sorted order keeps forced
// decisions and delta application reproducible.
func (h *Heuristic) triangleScope(u, v int) []int {
	nu, _ := h.g.Neighbors(u) // u, v are in range on every internal path
	nv, _ := h.g.Neighbors(v)
	out := make([]int, 0, len(nu)+len(nv))

	// Merge two sorted slices, deduplicating and skipping the endpoints.
	i, j := 0, 0
	for i < len(nu) || j < len(nv) {
		var x int
		switch {
		case j == len(nv) || (i < len(nu) && nu[i] < nv[j]):
			x = nu[i]
			i++
		case i == len(nu) || nv[j] < nu[i]:
			x = nv[j]
			j++
		default: // equal heads
			x = nu[i]
			i++
			j++
		}
		if x != u && x != v {
			out = append(out, x)
		}
	}

	return out
}

// flipCost is the direct edit cost of fixing a pair of finite weight w:
// Forbidden deletes a present pair (cost w if positive), Permanent inserts
// an absent one (cost -w if negative). A flip that agrees with the weight's
// sign, or a zero weight, costs nothing.
func flipCost(w float64, s editgraph.State) float64 {
	if s == editgraph.Forbidden {
		return math.Max(0, w)
	}

	return math.Max(0, -w)
}

// newSolution snapshots the final assignment into an immutable record.
func (h *Heuristic) newSolution() *Solution {
	states := make(map[editgraph.Edge]editgraph.State, h.g.EdgeCount())
	var e editgraph.Edge
	for _, e = range h.g.Edges() {
		states[e] = h.g.State(e.U, e.V)
	}

	return &Solution{
		TotalCost:   h.total,
		EdgeStates:  states,
		VertexCount: h.g.VertexCount(),
	}
}
