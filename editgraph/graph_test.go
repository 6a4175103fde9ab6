package editgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schaudge/whatshap/editgraph"
)

// TestNew_BadVertexCount verifies that a negative vertex count is rejected.
func TestNew_BadVertexCount(t *testing.T) {
	_, err := editgraph.New(-1)
	assert.ErrorIs(t, err, editgraph.ErrBadVertexCount, "negative n must error")
}

// TestNew_EmptyGraph verifies that a zero-vertex graph is valid and empty.
func TestNew_EmptyGraph(t *testing.T) {
	g, err := editgraph.New(0)
	require.NoError(t, err, "n=0 is a legal, trivially solved instance")
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Edges())
}

// TestSetWeight_Validation checks out-of-range and self-pair rejection.
func TestSetWeight_Validation(t *testing.T) {
	g, err := editgraph.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetWeight(0, 3, 1.0), editgraph.ErrVertexOutOfRange, "v=n is out of range")
	assert.ErrorIs(t, g.SetWeight(-1, 1, 1.0), editgraph.ErrVertexOutOfRange, "negative u is out of range")
	assert.ErrorIs(t, g.SetWeight(1, 1, 1.0), editgraph.ErrSelfPair, "self-pair is not an edge")
}

// TestSetWeight_SymmetricLookup verifies one weight per unordered pair,
// visible from both endpoint orders.
func TestSetWeight_SymmetricLookup(t *testing.T) {
	g, err := editgraph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(2, 0, 4.5), "endpoints in descending order are fine")
	assert.Equal(t, 4.5, g.Weight(0, 2), "lookup (0,2)")
	assert.Equal(t, 4.5, g.Weight(2, 0), "lookup (2,0) hits the same record")

	// Overwriting from the other direction replaces the single record.
	require.NoError(t, g.SetWeight(0, 2, -1.0))
	assert.Equal(t, -1.0, g.Weight(2, 0))
	assert.Equal(t, 1, g.EdgeCount(), "still exactly one explicit pair")
}

// TestWeight_AbsentAndZero distinguishes implicit pairs from explicit zero edges.
func TestWeight_AbsentAndZero(t *testing.T) {
	g, err := editgraph.New(3)
	require.NoError(t, err)

	// Implicit pair: weight 0, not enumerated.
	assert.Equal(t, 0.0, g.Weight(0, 1))
	assert.Equal(t, editgraph.Undecided, g.State(0, 1))
	assert.Empty(t, g.Edges())

	// Explicit zero edge: weight 0, but enumerated and awaiting a decision.
	require.NoError(t, g.SetWeight(0, 1, 0.0))
	assert.Equal(t, []editgraph.Edge{{U: 0, V: 1}}, g.Edges(), "explicit zero edge must be enumerable")
}

// TestSentinelStates_EffectiveWeights checks the tagged-state to ±Inf mapping.
func TestSentinelStates_EffectiveWeights(t *testing.T) {
	g, err := editgraph.New(4)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(0, 1, 2.0))
	require.NoError(t, g.SetForbidden(0, 1))
	assert.True(t, math.IsInf(g.Weight(0, 1), -1), "Forbidden reads as -Inf")
	assert.Equal(t, 2.0, g.StoredWeight(0, 1), "stored finite weight survives the decision")

	require.NoError(t, g.SetWeight(1, 2, -3.0))
	require.NoError(t, g.SetPermanent(1, 2))
	assert.True(t, math.IsInf(g.Weight(1, 2), 1), "Permanent reads as +Inf")

	require.NoError(t, g.SetZero(2, 3))
	assert.Equal(t, 0.0, g.Weight(2, 3), "Zero reads as 0")
	assert.Equal(t, editgraph.Zero, g.State(2, 3))
}

// TestSentinelStates_AreFinal verifies invariant I2: hard decisions never change.
func TestSentinelStates_AreFinal(t *testing.T) {
	g, err := editgraph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.SetForbidden(0, 1))
	assert.NoError(t, g.SetForbidden(0, 1), "re-fixing the same state is a no-op")
	assert.ErrorIs(t, g.SetPermanent(0, 1), editgraph.ErrEdgeDecided, "Forbidden cannot become Permanent")
	assert.ErrorIs(t, g.SetWeight(0, 1, 5.0), editgraph.ErrEdgeDecided, "decided pairs reject weight writes")
	assert.ErrorIs(t, g.SetZero(0, 1), editgraph.ErrEdgeDecided, "decided pairs cannot be retired")
}

// TestSetZero_UpgradeAllowed verifies the one legal transition out of Zero:
// deterministic closure may harden a retired zero edge in either direction.
func TestSetZero_UpgradeAllowed(t *testing.T) {
	g, err := editgraph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(0, 1, 1.5))
	require.NoError(t, g.SetZero(0, 1))
	assert.Equal(t, 0.0, g.StoredWeight(0, 1), "retiring drives the weight to exactly 0")

	require.NoError(t, g.SetPermanent(0, 1), "Zero may harden to Permanent at no cost")
	assert.Equal(t, editgraph.Permanent, g.State(0, 1))
}

// TestNeighbors_SortedAndExplicitOnly verifies deterministic neighbor order
// and that implicit pairs are skipped while decided pairs are kept.
func TestNeighbors_SortedAndExplicitOnly(t *testing.T) {
	g, err := editgraph.New(5)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(2, 4, 1.0))
	require.NoError(t, g.SetWeight(2, 0, -1.0))
	require.NoError(t, g.SetWeight(2, 3, 0.5))
	require.NoError(t, g.SetForbidden(2, 3))

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, nbs, "ascending order, decided pair included")

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, editgraph.ErrVertexOutOfRange)
}

// TestEdges_CanonicalOrder verifies Edges enumerates pairs as (U<V) ascending.
func TestEdges_CanonicalOrder(t *testing.T) {
	g, err := editgraph.New(4)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(3, 1, 1.0))
	require.NoError(t, g.SetWeight(2, 0, 1.0))
	require.NoError(t, g.SetWeight(1, 0, 1.0))

	want := []editgraph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}}
	assert.Equal(t, want, g.Edges())
}

// TestClone_Independence verifies a clone shares no mutable state with its source.
func TestClone_Independence(t *testing.T) {
	g, err := editgraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetWeight(0, 1, 2.0))
	require.NoError(t, g.SetWeight(1, 2, -2.0))

	cp := g.Clone()
	require.NoError(t, cp.SetForbidden(0, 1))
	require.NoError(t, cp.SetWeight(1, 2, 9.0))

	assert.Equal(t, editgraph.Undecided, g.State(0, 1), "source state untouched by clone mutation")
	assert.Equal(t, -2.0, g.Weight(1, 2), "source weight untouched by clone mutation")
	assert.Equal(t, editgraph.Forbidden, cp.State(0, 1))
}

// TestNewEdge_Canonicalization verifies endpoint ordering and the fixed
// lexicographic tie-break rule.
func TestNewEdge_Canonicalization(t *testing.T) {
	assert.Equal(t, editgraph.Edge{U: 1, V: 4}, editgraph.NewEdge(4, 1))
	assert.True(t, editgraph.NewEdge(0, 2).Less(editgraph.NewEdge(0, 3)))
	assert.True(t, editgraph.NewEdge(0, 9).Less(editgraph.NewEdge(1, 2)))
	assert.False(t, editgraph.NewEdge(1, 2).Less(editgraph.NewEdge(1, 2)))
}
