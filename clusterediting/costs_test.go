package clusterediting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schaudge/whatshap/editgraph"
)

// triangle builds a ready Heuristic over a 3-vertex instance with the given
// pair weights (uv, uw, vw for pairs (0,1), (0,2), (1,2)).
func triangle(t *testing.T, uv, uw, vw float64) *Heuristic {
	t.Helper()
	g, err := editgraph.NewFromPairs(3, []editgraph.WeightedPair{
		{U: 0, V: 1, W: uv},
		{U: 0, V: 2, W: uw},
		{U: 1, V: 2, W: vw},
	})
	require.NoError(t, err)
	h, err := New(g)
	require.NoError(t, err)

	return h
}

func TestTripleIcf(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name    string
		x, y    float64
		contrib float64
	}{
		{"both present", 4, 2, 2},
		{"one absent", -4, 2, 0},
		{"other absent", 4, -2, 0},
		{"both absent", -4, -2, 0},
		{"zero side", 0, 2, 0},
		{"permanent context degrades to finite side", inf, 3, 3},
		{"two permanent contexts are unforbiddable", inf, inf, inf},
		{"forbidden context kills the contribution", math.Inf(-1), 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contrib, tripleIcf(tc.x, tc.y))
		})
	}
}

func TestTripleIcp(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name    string
		x, y    float64
		contrib float64
	}{
		{"absent-present mismatch", -4, 2, 2},
		{"present-absent mismatch", 4, -2, 2},
		{"both present agree", 4, 2, 0},
		{"both absent agree", -4, -2, 0},
		{"zero side", 0, 2, 0},
		{"permanent vs forbidden context is unjoinable", inf, math.Inf(-1), inf},
		{"forbidden context degrades to finite side", math.Inf(-1), 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contrib, tripleIcp(tc.x, tc.y))
		})
	}
}

// TestScratchCosts_SymmetricConflict: for the 5/5/-5 triangle every pair ends
// up with icf = icp = 5: each direction of each pair forces one edit of
// magnitude 5 somewhere.
func TestScratchCosts_SymmetricConflict(t *testing.T) {
	h := triangle(t, 5, 5, -5)

	want := costPair{icf: 5, icp: 5}
	for _, e := range []editgraph.Edge{
		editgraph.NewEdge(0, 1),
		editgraph.NewEdge(0, 2),
		editgraph.NewEdge(1, 2),
	} {
		assert.Equal(t, want, h.costs[e], "pair (%d,%d)", e.U, e.V)
	}
}

// TestScratchCosts_PresentTriangle: with weights 4/3/2 the table rows follow
// the direct cost plus the single triangle contribution.
func TestScratchCosts_PresentTriangle(t *testing.T) {
	h := triangle(t, 4, 3, 2)

	assert.Equal(t, costPair{icf: 4 + 2, icp: 0}, h.costs[editgraph.NewEdge(0, 1)])
	assert.Equal(t, costPair{icf: 3 + 2, icp: 0}, h.costs[editgraph.NewEdge(0, 2)])
	assert.Equal(t, costPair{icf: 2 + 3, icp: 0}, h.costs[editgraph.NewEdge(1, 2)])
}

// TestUpdateTripleForbiddenUW: forbidding (0,1) in the 4/3/2 triangle
// retracts min(4,2) from icf of (0,2) and starts charging the deletion of
// the still-present (1,2) on its icp.
func TestUpdateTripleForbiddenUW(t *testing.T) {
	h := triangle(t, 4, 3, 2)
	uw := editgraph.NewEdge(0, 2)
	require.Equal(t, costPair{icf: 5, icp: 0}, h.costs[uw])

	h.updateTripleForbiddenUW(4, uw, 2)

	assert.Equal(t, costPair{icf: 3, icp: 2}, h.costs[uw])
}

// TestUpdateTriplePermanentUW: making (0,1) Permanent in the 4/3/2 triangle
// means (0,2) must agree with (1,2): its icf now includes deleting the
// present (1,2), its icp nothing new.
func TestUpdateTriplePermanentUW(t *testing.T) {
	h := triangle(t, 4, 3, 2)
	uw := editgraph.NewEdge(0, 2)

	h.updateTriplePermanentUW(4, uw, 2)

	assert.Equal(t, costPair{icf: 3 + 2, icp: 0}, h.costs[uw])
}

// TestUpdateTripleZeroUW: zeroing (0,1) retracts its contribution and adds
// nothing; repeated retraction clamps at zero instead of undershooting.
func TestUpdateTripleZeroUW(t *testing.T) {
	h := triangle(t, 4, 3, 2)
	uw := editgraph.NewEdge(0, 2)

	h.updateTripleZeroUW(4, uw, 2)
	assert.Equal(t, costPair{icf: 3, icp: 0}, h.costs[uw])

	// Stale over-retraction must clamp, not go negative.
	h.updateTripleZeroUW(4, uw, 2)
	h.updateTripleZeroUW(4, uw, 2)
	assert.Equal(t, costPair{icf: 0, icp: 0}, h.costs[uw])
}

// TestUpdateTripleCustomWeightUW: flipping the sign of (0,1) from 4 to -4
// swaps the triangle's icf contribution for an icp one on (0,2).
func TestUpdateTripleCustomWeightUW(t *testing.T) {
	h := triangle(t, 4, 3, 2)
	uw := editgraph.NewEdge(0, 2)

	h.updateTripleCustomWeightUW(4, -4, uw, 2)

	// icf: 5 - min(4,2) + 0 = 3; icp: 0 - 0 + min(4,2) = 2.
	assert.Equal(t, costPair{icf: 3, icp: 2}, h.costs[uw])
}

// TestAdjustCosts_MissingRowIsNoop: deltas aimed at pairs without a live row
// (fixed or retired) must neither create rows nor grow the queue.
func TestAdjustCosts_MissingRowIsNoop(t *testing.T) {
	h := triangle(t, 4, 3, 2)
	before := h.queue.Len()

	h.adjustCosts(editgraph.NewEdge(0, 1), 10, 10) // live row: applies
	assert.Equal(t, before+1, h.queue.Len())

	ghost := editgraph.NewEdge(1, 2)
	delete(h.costs, ghost)
	h.adjustCosts(ghost, 10, 10)
	assert.Equal(t, before+1, h.queue.Len(), "no snapshot for a dead row")
	_, ok := h.costs[ghost]
	assert.False(t, ok, "no row resurrected")
}
