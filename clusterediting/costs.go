package clusterediting

import (
	"container/heap"
	"math"

	"github.com/Schaudge/whatshap/editgraph"
)

// costPair is one row of the induced cost table: the estimated total cost of
// resolving a pair as Forbidden (icf) or Permanent (icp) given everything
// already fixed. Both components are non-negative by construction (clamped
// after every incremental delta).
type costPair struct {
	icf float64 // induced cost of Forbidden
	icp float64 // induced cost of Permanent
}

// tripleIcf is the contribution of one triangle to icf of its third pair:
// with both context weights present (positive), forbidding the third pair
// forces at least the cheaper of the two context edits.
//
// Effective weights of fixed pairs arrive here as ±Inf and degrade
// correctly: min(+Inf, y) = y, and a (+Inf, +Inf) context yields +Inf,
// because forbidding the third pair of two Permanent edges is impossible.
func tripleIcf(x, y float64) float64 {
	if x > 0 && y > 0 {
		return math.Min(x, y)
	}

	return 0
}

// tripleIcp is the contribution of one triangle to icp of its third pair:
// with exactly one context weight present, making the third pair Permanent
// forces the cheaper resolution of the mismatch (insert the absent side or
// delete the present one).
func tripleIcp(x, y float64) float64 {
	switch {
	case x < 0 && y > 0:
		return math.Min(-x, y)
	case x > 0 && y < 0:
		return math.Min(x, -y)
	default:
		return 0
	}
}

// clampNonNegative floors a cost at zero. Incremental subtraction of stale
// triangle contributions may transiently undershoot after earlier clamping;
// induced costs are defined non-negative.
func clampNonNegative(c float64) float64 {
	if c < 0 {
		return 0
	}

	return c
}

// scratchCosts computes (icf, icp) for the undecided pair e from scratch:
// the direct edit cost of each direction plus the contribution of every
// triangle through a common explicit neighbor. Used once per pair at
// initialization; every later adjustment is an incremental delta.
//
// Complexity: O(deg(U)·log deg(U)) per pair.
func (h *Heuristic) scratchCosts(e editgraph.Edge) costPair {
	// 1) Direct part: deleting a present pair costs w, inserting an absent one -w.
	w := h.g.StoredWeight(e.U, e.V)
	cp := costPair{
		icf: math.Max(0, w),
		icp: math.Max(0, -w),
	}

	// 2) Triangle part: only vertices explicitly adjacent to U can close a
	//    triangle with a nonzero contribution, and only when the V side is
	//    explicit too (implicit pairs weigh 0 and contribute nothing).
	nbs, _ := h.g.Neighbors(e.U) // e.U is in range by construction
	var x int
	for _, x = range nbs {
		if x == e.V {
			continue
		}
		wux := h.g.Weight(e.U, x)
		wvx := h.g.Weight(e.V, x)
		if wvx == 0 {
			continue
		}
		cp.icf += tripleIcf(wux, wvx)
		cp.icp += tripleIcp(wux, wvx)
	}

	return cp
}

// adjustCosts applies a (dIcf, dIcp) delta to the live table row of uw,
// clamps at zero, and pushes a fresh queue snapshot. Pairs without a live
// row (already fixed or retired) are left untouched.
func (h *Heuristic) adjustCosts(uw editgraph.Edge, dIcf, dIcp float64) {
	cp, ok := h.costs[uw]
	if !ok {
		return
	}
	cp.icf = clampNonNegative(cp.icf + dIcf)
	cp.icp = clampNonNegative(cp.icp + dIcp)
	h.costs[uw] = cp
	heap.Push(&h.queue, heapEntry{edge: uw, icf: cp.icf, icp: cp.icp})
}

// updateTripleForbiddenUW updates icf and icp for the pair uw under the
// commitment of uv to Forbidden: the triangle's contribution computed from
// uv's old weight is retracted, and the contribution of an absent uv is
// added (forbidding uw costs nothing extra; making uw Permanent now forces
// deleting a present vw).
func (h *Heuristic) updateTripleForbiddenUW(uvOld float64, uw editgraph.Edge, vw float64) {
	h.adjustCosts(uw,
		-tripleIcf(uvOld, vw),
		math.Max(0, vw)-tripleIcp(uvOld, vw),
	)
}

// updateTriplePermanentUW updates icf and icp for the pair uw under the
// commitment of uv to Permanent: u and v are now one cluster, so uw must
// agree with vw: forbidding uw forces deleting a present vw, making uw
// Permanent forces inserting an absent vw.
func (h *Heuristic) updateTriplePermanentUW(uvOld float64, uw editgraph.Edge, vw float64) {
	h.adjustCosts(uw,
		math.Max(0, vw)-tripleIcf(uvOld, vw),
		math.Max(0, -vw)-tripleIcp(uvOld, vw),
	)
}

// updateTripleZeroUW updates icf and icp for the pair uw under uv's weight
// being driven to exactly zero: the triangle stops forcing anything, so the
// old contribution is retracted and nothing is added.
func (h *Heuristic) updateTripleZeroUW(uvOld float64, uw editgraph.Edge, vw float64) {
	h.adjustCosts(uw,
		-tripleIcf(uvOld, vw),
		-tripleIcp(uvOld, vw),
	)
}

// updateTripleCustomWeightUW updates icf and icp for the pair uw under uv
// being re-weighted from one finite value to another without a commitment:
// retract the contribution under the old weight, add it under the new one.
func (h *Heuristic) updateTripleCustomWeightUW(uvOld, uvNew float64, uw editgraph.Edge, vw float64) {
	h.adjustCosts(uw,
		tripleIcf(uvNew, vw)-tripleIcf(uvOld, vw),
		tripleIcp(uvNew, vw)-tripleIcp(uvOld, vw),
	)
}
