package mtcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs"
)

func TestNodeOrdering(t *testing.T) {
	src := mtcs.Source[int]()
	sink := mtcs.Sink[int]()
	a := mtcs.WithID(1)
	b := mtcs.WithID(2)

	require.Negative(t, src.Compare(a))
	require.Negative(t, src.Compare(sink))
	require.Positive(t, sink.Compare(a))
	require.Zero(t, src.Compare(mtcs.Source[int]()))
	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
}

func TestNodeAccessors(t *testing.T) {
	require.True(t, mtcs.Source[int]().IsSource())
	require.True(t, mtcs.Sink[int]().IsSink())

	id, ok := mtcs.WithID("acme").ID()
	require.True(t, ok)
	require.Equal(t, "acme", id)

	_, ok = mtcs.Source[string]().ID()
	require.False(t, ok)
}

func TestNodeAsMapKey(t *testing.T) {
	m := map[mtcs.Node[int]]string{
		mtcs.Source[int](): "source",
		mtcs.Sink[int]():   "sink",
		mtcs.WithID(7):     "firm7",
	}
	require.Equal(t, "firm7", m[mtcs.WithID(7)])
	require.Len(t, m, 3)
}
