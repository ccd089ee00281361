package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/engine"
	"github.com/katalvlaran/mtcs/mcmf"
)

func engines() map[string]mcmf.Engine[string, int] {
	return map[string]mcmf.Engine[string, int]{
		"primal-dual":     &mcmf.PrimalDual[string, int]{},
		"network-simplex": &mcmf.NetworkSimplex[string, int]{},
	}
}

func obligation(t *testing.T, debtor, creditor string, amount int) mtcs.Obligation[string, int] {
	t.Helper()
	o, err := mtcs.NewObligation[string, int](nil, debtor, creditor, amount)
	require.NoError(t, err)

	return o
}

// S1: triangle cycle fully cancels.
func TestRunTriangleCycle(t *testing.T) {
	obligations := []mtcs.Obligation[string, int]{
		obligation(t, "A", "B", 10),
		obligation(t, "B", "C", 10),
		obligation(t, "C", "A", 10),
	}

	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			setoffs, err := engine.Run(obligations, eng, nil)
			require.NoError(t, err)
			require.NoError(t, engine.Check(setoffs, nil))
			for _, so := range setoffs {
				require.Equal(t, so.Amount, so.SetOff)
				require.Zero(t, so.Remainder)
			}
		})
	}
}

// S2: a chain with no cycle clears nothing.
func TestRunChainNoCycle(t *testing.T) {
	obligations := []mtcs.Obligation[string, int]{
		obligation(t, "A", "B", 5),
		obligation(t, "B", "C", 7),
	}

	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			setoffs, err := engine.Run(obligations, eng, nil)
			require.NoError(t, err)
			require.NoError(t, engine.Check(setoffs, nil))
			for _, so := range setoffs {
				require.Zero(t, so.SetOff)
				require.Equal(t, so.Amount, so.Remainder)
			}
		})
	}
}

// S3: partial cycle plus a chain arm clears the cyclic portion only.
func TestRunPartialCycleAndChain(t *testing.T) {
	obligations := []mtcs.Obligation[string, int]{
		obligation(t, "A", "B", 10),
		obligation(t, "B", "A", 6),
		obligation(t, "A", "C", 4),
	}

	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			setoffs, err := engine.Run(obligations, eng, nil)
			require.NoError(t, err)
			require.NoError(t, engine.Check(setoffs, nil))

			byPair := make(map[[2]string]mtcs.SetOff[string, int])
			for _, so := range setoffs {
				byPair[[2]string{so.Debtor, so.Creditor}] = so
			}

			ab := byPair[[2]string{"A", "B"}]
			require.Equal(t, 6, ab.SetOff)
			require.Equal(t, 4, ab.Remainder)

			ba := byPair[[2]string{"B", "A"}]
			require.Equal(t, 6, ba.SetOff)
			require.Zero(t, ba.Remainder)

			ac := byPair[[2]string{"A", "C"}]
			require.Zero(t, ac.SetOff)
			require.Equal(t, 4, ac.Remainder)
		})
	}
}

// S4: parallel obligations on the same arc attribute in input order.
func TestRunParallelObligationsAttributeInInputOrder(t *testing.T) {
	obligations := []mtcs.Obligation[string, int]{
		obligation(t, "A", "B", 10),
		obligation(t, "A", "B", 10),
		obligation(t, "B", "C", 15),
		obligation(t, "C", "A", 15),
	}

	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			setoffs, err := engine.Run(obligations, eng, nil)
			require.NoError(t, err)
			require.NoError(t, engine.Check(setoffs, nil))

			require.Equal(t, 10, setoffs[0].SetOff)
			require.Zero(t, setoffs[0].Remainder)
			require.Equal(t, 5, setoffs[1].SetOff)
			require.Equal(t, 5, setoffs[1].Remainder)
			require.Equal(t, 15, setoffs[2].SetOff)
			require.Equal(t, 15, setoffs[3].SetOff)
		})
	}
}

// RunComplex is Run under another name; confirm it delegates faithfully.
func TestRunComplexDelegatesToRun(t *testing.T) {
	obligations := []mtcs.Obligation[string, int]{
		obligation(t, "A", "B", 10),
		obligation(t, "B", "C", 10),
		obligation(t, "C", "A", 10),
	}
	setoffs, err := engine.RunComplex(obligations, &mcmf.PrimalDual[string, int]{}, nil)
	require.NoError(t, err)
	require.NoError(t, engine.Check(setoffs, nil))
	for _, so := range setoffs {
		require.Equal(t, so.Amount, so.SetOff)
	}
}

// I7: permuting the input never changes the total cleared amount.
func TestRunPermutationInvariance(t *testing.T) {
	first := []mtcs.Obligation[string, int]{
		obligation(t, "A", "B", 10),
		obligation(t, "B", "C", 10),
		obligation(t, "C", "A", 10),
	}
	second := []mtcs.Obligation[string, int]{first[2], first[0], first[1]}

	eng := &mcmf.PrimalDual[string, int]{}
	a, err := engine.Run(first, eng, nil)
	require.NoError(t, err)
	b, err := engine.Run(second, eng, nil)
	require.NoError(t, err)

	total := func(setoffs []mtcs.SetOff[string, int]) int {
		var sum int
		for _, so := range setoffs {
			sum += so.SetOff
		}

		return sum
	}
	require.Equal(t, total(a), total(b))
}
