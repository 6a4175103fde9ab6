package clusterediting

import (
	"sort"

	"github.com/Schaudge/whatshap/editgraph"
)

// Solution is the immutable outcome of one heuristic run: the accumulated
// edit cost and the final state of every explicit pair. The vertex partition
// is not stored; it is derivable, and Clusters computes it on demand as the
// connected components of the Permanent pairs.
//
// A Solution is produced once by Solve and never mutated afterwards; callers
// must treat EdgeStates as read-only.
type Solution struct {
	// TotalCost is the summed direct cost of every edit the run performed.
	TotalCost float64

	// EdgeStates maps each explicit unordered pair to its final state:
	// Forbidden, Permanent, or Zero for pairs retired by zero-pruning
	// (a Zero pair follows the partition of its endpoints implicitly).
	EdgeStates map[editgraph.Edge]editgraph.State

	// VertexCount is the size of the dense vertex range the run covered.
	VertexCount int
}

// Clusters derives the vertex partition from the Permanent pairs: each
// cluster is one connected component of the Permanent-edge graph, with
// unconnected vertices as singletons.
//
// It uses a disjoint-set union with path compression and union by rank.
// Output is deterministic: members ascend within each cluster and clusters
// ascend by their smallest member.
//
// Complexity: O(V + E·α(V)) time, O(V) memory.
func (s *Solution) Clusters() [][]int {
	// 1) Initialize DSU: every vertex is its own set.
	parent := make([]int, s.VertexCount)
	rank := make([]int, s.VertexCount)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // point u to its grandparent
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 2) Merge along every Permanent pair.
	var (
		e  editgraph.Edge
		st editgraph.State
	)
	for e, st = range s.EdgeStates {
		if st == editgraph.Permanent {
			union(e.U, e.V)
		}
	}

	// 3) Group vertices by root, ascending, so members are already sorted.
	groups := make(map[int][]int, s.VertexCount)
	for v := 0; v < s.VertexCount; v++ {
		root := find(v)
		groups[root] = append(groups[root], v)
	}

	// 4) Order clusters by smallest member for a deterministic result.
	out := make([][]int, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
