// Package editgraph provides the weighted-graph substrate for cluster editing:
// a dense-vertex, sparse-edge undirected graph whose unordered vertex pairs
// carry signed float64 weights and an explicit per-edge decision state.
//
// What:
//
//   - Vertices are opaque indices in the dense range [0, n), fixed at creation.
//   - Each unordered pair (u, v) holds exactly one weight. A positive weight is
//     the cost of deleting a present edge, a negative weight the cost of
//     inserting a missing one, and an explicit zero weight marks a pair with
//     no preference that still awaits a decision.
//   - Each pair additionally carries a tagged State: Undecided, Forbidden
//     (must be absent), Permanent (must be present), or Zero (retired at no
//     cost). Tagged states replace ±Inf weight sentinels so the decision
//     switch in consumers stays exhaustive and float-safe.
//
// Why:
//
//   - Cluster-editing solvers repeatedly fix pairs to Forbidden/Permanent and
//     need O(1) weight lookup plus O(degree) neighbor iteration to propagate
//     the consequences triangle by triangle.
//   - Hard constraints from a surrounding algorithm are expressed by fixing
//     states before a solver run; Forbidden and Permanent are final once set.
//
// Determinism:
//
//   - Neighbors and Edges always enumerate in ascending vertex order, so any
//     algorithm iterating the graph is reproducible run to run.
//
// Complexity:
//
//   - Weight / State / set operations: O(1) expected.
//   - Neighbors(u): O(degree·log degree) for the sorted snapshot.
//   - Edges: O(V + E·log E). Clone: O(V + E).
//
// Errors:
//
//   - ErrBadVertexCount: negative vertex count at construction.
//   - ErrVertexOutOfRange: a vertex index outside [0, n).
//   - ErrSelfPair: an operation on the pair (v, v).
//   - ErrEdgeDecided: mutation of a pair already fixed Forbidden/Permanent.
package editgraph
