package mtcs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs"
)

func TestNewObligationValid(t *testing.T) {
	id := int64(1)
	o, err := mtcs.NewObligation(&id, "A", "B", 10)
	require.NoError(t, err)
	require.Equal(t, "A", o.Debtor)
	require.Equal(t, "B", o.Creditor)
	require.Equal(t, 10, o.Amount)
}

func TestNewObligationRejectsSelfLoop(t *testing.T) {
	_, err := mtcs.NewObligation[string, int](nil, "A", "A", 10)
	require.ErrorIs(t, err, mtcs.ErrObligationToSelf)
}

func TestNewObligationRejectsNonPositiveAmount(t *testing.T) {
	_, err := mtcs.NewObligation[string, int](nil, "A", "B", 0)
	require.ErrorIs(t, err, mtcs.ErrNonPositiveAmount)

	_, err = mtcs.NewObligation[string, int](nil, "A", "B", -5)
	require.ErrorIs(t, err, mtcs.ErrNonPositiveAmount)
}

func TestEngineErrorUnwrap(t *testing.T) {
	err := &mtcs.EngineError{Detail: "boom", Err: errors.New("inner")}
	require.ErrorIs(t, err, mtcs.ErrEngineFailure)
	require.Contains(t, err.Error(), "boom")
}

func TestPostconditionErrorUnwrap(t *testing.T) {
	err := &mtcs.PostconditionError{Condition: "ba != bl"}
	require.ErrorIs(t, err, mtcs.ErrPostconditionViolation)
	require.Contains(t, err.Error(), "ba != bl")
}
