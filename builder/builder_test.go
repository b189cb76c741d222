package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/builder"
	"github.com/katalvlaran/incgraph/core"
)

func TestBuild_Path(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.Size())
	require.Equal(t, uint64(4), g.NumArcs(true))

	first, err := g.VertexAt(0)
	require.NoError(t, err)
	require.True(t, first.IsSource())
	last, err := g.VertexAt(4)
	require.NoError(t, err)
	require.True(t, last.IsSink())
}

func TestBuild_Cycle(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
	require.Equal(t, uint64(4), g.NumArcs(true))
	g.MapVertices(func(v *core.Vertex) {
		require.Equal(t, uint64(1), v.OutDegree(true))
		require.Equal(t, uint64(1), v.InDegree(true))
	})
}

func TestBuild_CycleSelfLoop(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Cycle(1))
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	require.Equal(t, uint64(1), g.NumArcs(true))
}

func TestBuild_Complete(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, uint64(12), g.NumArcs(true))
	g.MapVertices(func(v *core.Vertex) {
		require.Equal(t, uint64(3), v.OutDegree(true))
	})
}

func TestBuild_Grid(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Grid(3, 4))
	require.NoError(t, err)
	require.Equal(t, 12, g.Size())
	// 3 rows × 3 right arcs + 2×4 down arcs
	require.Equal(t, uint64(17), g.NumArcs(true))
}

func TestBuild_Parallel(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Parallel(3))
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())
	require.Equal(t, uint64(3), g.NumArcs(true))

	g.BundleParallelArcs()
	require.Equal(t, uint64(1), g.NumArcs(true))
	require.Equal(t, uint64(3), g.NumArcs(false))
}

func TestBuild_RandomSparseDeterminism(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(42)},
			builder.RandomSparse(20, 0.3),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.Size(), b.Size())
	require.Equal(t, a.NumArcs(true), b.NumArcs(true))
}

func TestBuild_RandomSparseExtremes(t *testing.T) {
	empty, err := builder.Build(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	require.Equal(t, uint64(0), empty.NumArcs(true))

	full, err := builder.Build(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Equal(t, uint64(20), full.NumArcs(true))
}

func TestBuild_Validation(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Path(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil, builder.RandomSparse(3, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_ComposedConstructors(t *testing.T) {
	// two disjoint components from one build
	g, err := builder.Build(nil, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.Size())
	require.Equal(t, uint64(5), g.NumArcs(true))
}
