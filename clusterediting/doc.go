// Package clusterediting implements the induced-cost greedy heuristic for
// weighted cluster editing: given an undirected graph whose pairs carry
// signed weights (positive = cost to delete a present edge, negative = cost
// to insert a missing one), it fixes every pair to Forbidden or Permanent so
// that Permanent edges form disjoint cliques, and reports the total edit
// cost of the flips it performed.
//
// How it works:
//
//  1. For every undecided pair (u,v) the heuristic maintains an induced-cost
//     pair (icf, icp): the estimated total cost of fixing (u,v) Forbidden or
//     Permanent right now, given everything already fixed, including the
//     edits forced onto other pairs through triangles.
//  2. Pairs are kept in a priority queue keyed by |icf − icp| (confidence
//     that the cheaper side is the right one), with min(icf, icp) and then
//     a fixed lexicographic vertex order as tie-breaks, so runs are fully
//     reproducible.
//  3. The main loop pops the most decided pair, fixes it on its cheaper
//     side, charges the direct edit cost of that flip, and updates only the
//     (icf, icp) values of pairs sharing a vertex: an O(deg(u)+deg(v))
//     incremental delta per decision instead of a global rescan.
//  4. Triangles whose fixed pairs deterministically force a third pair
//     ((Permanent, Permanent) forces Permanent; (Permanent, Forbidden)
//     forces Forbidden) are closed eagerly, both for constraints supplied by
//     the caller before the run and for decisions made during it.
//
// The result is a Solution: the accumulated TotalCost, the final per-pair
// states, and Clusters(), the partition read off the Permanent edges.
//
// The heuristic is greedy: it never branches or backtracks and does not
// guarantee optimality. It is deterministic, single-threaded, and runs in a
// bounded number of steps (one decision per explicit pair). A Heuristic
// instance owns a private copy of its input graph and must be solved exactly
// once; independent runs need independent instances.
//
// Complexity:
//
//   - Time:  O(E·(D + log E)) for E explicit pairs and maximum degree D:
//     each of the E decisions touches O(D) incident pairs and performs
//     O(log E) heap work per touched pair.
//   - Space: O(V + E) for the working graph, cost table, and queue.
//
// Errors (sentinel):
//
//   - ErrNilGraph                — nil input graph.
//   - ErrConflictingConstraints  — caller-fixed states contradict each other
//     (for example two Permanent pairs and one Forbidden pair in a triangle).
//   - ErrAlreadySolved           — Solve called twice, or a mutation after Solve.
//   - ErrEdgeNotActive           — reweighting a pair that is no longer undecided.
package clusterediting
