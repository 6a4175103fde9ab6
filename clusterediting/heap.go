package clusterediting

import (
	"math"

	"github.com/Schaudge/whatshap/editgraph"
)

// heapEntry is one snapshot of an undecided pair's induced costs at the
// moment it was (re)inserted into the queue. Entries are never removed or
// re-keyed in place: every cost-table update pushes a fresh snapshot and the
// pop path discards snapshots that no longer match the live table. This is
// the lazy re-key pattern, applied in both key directions since |icf − icp|
// can shrink as well as grow.
type heapEntry struct {
	edge editgraph.Edge // the undecided pair this snapshot describes
	icf  float64        // induced cost of fixing the pair Forbidden
	icp  float64        // induced cost of fixing the pair Permanent
}

// priority is the primary queue key: the absolute gap between the two
// induced costs. A large gap means high confidence that the cheaper side is
// the right decision. A pair whose both costs are infinite only exists in a
// contradictory instance; it is ranked first so the contradiction surfaces
// immediately instead of propagating.
func (e heapEntry) priority() float64 {
	d := e.icf - e.icp
	if math.IsNaN(d) { // Inf - Inf
		return math.Inf(1)
	}

	return math.Abs(d)
}

// cheaper is the secondary key: among equally confident pairs, decide the
// cheapest one first.
func (e heapEntry) cheaper() float64 {
	return math.Min(e.icf, e.icp)
}

// edgeHeap is a max-heap of induced-cost snapshots ordered by:
//
//  1. priority() descending (most confident first),
//  2. cheaper() ascending (cheapest decision first),
//  3. canonical edge order ascending (the fixed vertex-order rule that pins
//     reproducibility for fully tied pairs).
//
// It implements container/heap.Interface.
type edgeHeap []heapEntry

// Len returns the number of snapshots in the heap.
func (h edgeHeap) Len() int { return len(h) }

// Less defines the three-level ordering documented on edgeHeap.
func (h edgeHeap) Less(i, j int) bool {
	pi, pj := h[i].priority(), h[j].priority()
	if pi != pj {
		return pi > pj
	}
	ci, cj := h[i].cheaper(), h[j].cheaper()
	if ci != cj {
		return ci < cj
	}

	return h[i].edge.Less(h[j].edge)
}

// Swap swaps two snapshots in the heap.
func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new snapshot x onto the heap.
// Called by heap.Push; x must be of type heapEntry.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }

// Pop removes and returns the last snapshot from the heap.
// Called by heap.Pop; returns interface{} that must be cast to heapEntry.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
