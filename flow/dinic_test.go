package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs/flow"
	"github.com/katalvlaran/mtcs/internal/liabgraph"
)

func newGraph(t *testing.T, edges [][3]any) *liabgraph.Graph {
	t.Helper()
	g := liabgraph.NewGraph()
	for _, e := range edges {
		from := e[0].(string)
		to := e[1].(string)
		weight := int64(e[2].(int))
		_, err := g.AddEdge(from, to, weight)
		require.NoError(t, err)
	}

	return g
}

func TestDinicSingleEdge(t *testing.T) {
	g := newGraph(t, [][3]any{{"S", "T", 7}})
	maxFlow, _, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, float64(7), maxFlow)
}

func TestDinicMultiPath(t *testing.T) {
	g := newGraph(t, [][3]any{
		{"S", "A", 5},
		{"S", "B", 4},
		{"A", "T", 5},
		{"B", "T", 3},
	})
	maxFlow, _, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, float64(8), maxFlow) // 5 via A, 3 via B (B->T capacity-bound)
}

func TestDinicAggregatesParallelEdges(t *testing.T) {
	g := newGraph(t, [][3]any{
		{"S", "T", 3},
		{"S", "T", 4},
	})
	maxFlow, _, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, float64(7), maxFlow)
}

func TestDinicNoPathReturnsZero(t *testing.T) {
	g := newGraph(t, [][3]any{{"S", "A", 5}})
	_ = g.AddVertex("T") // T exists but is unreachable from S
	maxFlow, _, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, maxFlow)
}

func TestDinicMissingSourceOrSink(t *testing.T) {
	g := newGraph(t, [][3]any{{"S", "T", 1}})

	_, _, err := flow.Dinic(g, "missing", "T", flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrSourceNotFound)

	_, _, err = flow.Dinic(g, "S", "missing", flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrSinkNotFound)
}

func TestDinicResidualReflectsSaturation(t *testing.T) {
	g := newGraph(t, [][3]any{{"S", "T", 7}})
	_, residual, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(t, err)

	neighbors, err := residual.Neighbors("S")
	require.NoError(t, err)
	require.Empty(t, neighbors, "a fully saturated arc must carry no residual forward capacity")
}
