package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs/engine"
	"github.com/katalvlaran/mtcs/mcmf"
)

// firmKey is comparable but not cmp.Ordered, forcing RunInterned's
// dense-int mapping rather than Run's direct cmp.Ordered path.
type firmKey struct {
	region string
	code   int
}

func TestRunInternedTriangleCycle(t *testing.T) {
	a := firmKey{"eu", 1}
	b := firmKey{"eu", 2}
	c := firmKey{"eu", 3}

	obligations := []engine.InternedObligation[firmKey, int]{
		{Debtor: a, Creditor: b, Amount: 10},
		{Debtor: b, Creditor: c, Amount: 10},
		{Debtor: c, Creditor: a, Amount: 10},
	}

	setoffs, err := engine.RunInterned[firmKey, int](obligations, &mcmf.PrimalDual[int, int]{}, nil)
	require.NoError(t, err)
	require.Len(t, setoffs, 3)
	for _, so := range setoffs {
		require.Equal(t, so.Amount, so.SetOff)
		require.Zero(t, so.Remainder)
	}
	require.Equal(t, a, setoffs[0].Debtor)
	require.Equal(t, b, setoffs[0].Creditor)
}

func TestRunInternedRejectsSelfLoop(t *testing.T) {
	a := firmKey{"eu", 1}

	obligations := []engine.InternedObligation[firmKey, int]{
		{Debtor: a, Creditor: a, Amount: 10},
	}

	_, err := engine.RunInterned[firmKey, int](obligations, &mcmf.PrimalDual[int, int]{}, nil)
	require.Error(t, err)
}
