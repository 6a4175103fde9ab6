// Package whatshap is an in-memory toolkit for weighted cluster editing:
// turning a noisy similarity graph into disjoint clusters by inserting and
// deleting edges at minimum total cost.
//
// 🚀 What is whatshap?
//
//	A small, deterministic library built from two subpackages:
//		• Graph model: signed pair weights, tagged decision states
//		  (Undecided / Forbidden / Permanent / Zero), deterministic builders
//		• Induced-cost heuristic: greedy edge fixing driven by a priority
//		  queue over (icf, icp), the estimated cost of resolving each pair
//		  Forbidden vs Permanent, including triangle-forced edits
//		• Hard constraints: pre-fix pairs Forbidden/Permanent and let
//		  deterministic triangle closure propagate the consequences
//		• Clusters: the final partition as connected components of the
//		  Permanent pairs
//
// ✨ Why choose whatshap?
//
//   - Deterministic – identical input always yields identical cost, states,
//     and clusters (fixed tie-breaks, canonical edge order)
//   - Incremental – commits update only incident pairs, never the whole table
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for every misuse, conflicts rejected
//     before any greedy decision is made
//
// Under the hood, everything is organized under two subpackages:
//
//	editgraph/      — the weighted pair graph: weights, states, builders
//	clusterediting/ — the induced-cost heuristic, its queue, and Solution
//
// Quick ASCII example:
//
//	    0───(+5)───1
//	     \         /
//	    (+5)   (-5)
//	       \   /
//	         2
//
//	vertex 0 attracts both neighbors while 1 and 2 repel each other; the
//	cheapest repair cuts one attraction (cost 5) and clusters {0,2} | {1}.
//
// Dive into the package docs of editgraph and clusterediting for the exact
// cost model, the update rules, and worked examples.
//
//	go get github.com/Schaudge/whatshap
package whatshap
