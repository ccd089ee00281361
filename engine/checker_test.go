package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/engine"
)

func TestCheckAcceptsConsistentSetOffs(t *testing.T) {
	setoffs := []mtcs.SetOff[string, int]{
		{Debtor: "A", Creditor: "B", Amount: 10, SetOff: 10, Remainder: 0},
		{Debtor: "B", Creditor: "C", Amount: 10, SetOff: 10, Remainder: 0},
		{Debtor: "C", Creditor: "A", Amount: 10, SetOff: 10, Remainder: 0},
	}
	require.NoError(t, engine.Check(setoffs, nil))
}

func TestCheckRejectsBrokenSymmetry(t *testing.T) {
	// A single set-off A→B with no return leg: B is credited 10 but
	// debited nothing, and A the reverse.
	setoffs := []mtcs.SetOff[string, int]{
		{Debtor: "A", Creditor: "B", Amount: 10, SetOff: 10, Remainder: 0},
	}
	err := engine.Check(setoffs, nil)
	require.Error(t, err)

	var pcErr *mtcs.PostconditionError
	require.ErrorAs(t, err, &pcErr)
}
