package csvio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/internal/csvio"
)

func TestReadObligationsBlankID(t *testing.T) {
	input := "id,debtor,creditor,amount\n,1,2,10\n3,2,3,5\n"
	obligations, err := csvio.ReadObligations(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, obligations, 2)
	require.Nil(t, obligations[0].ID)
	require.NotNil(t, obligations[1].ID)
	require.Equal(t, int64(3), *obligations[1].ID)
	require.Equal(t, int64(1), obligations[0].Debtor)
	require.Equal(t, int64(10), obligations[0].Amount)
}

func TestReadObligationsRejectsSelfLoop(t *testing.T) {
	input := "id,debtor,creditor,amount\n,1,1,10\n"
	_, err := csvio.ReadObligations(strings.NewReader(input))
	require.ErrorIs(t, err, mtcs.ErrObligationToSelf)
}

func TestWriteSetOffsRoundTrip(t *testing.T) {
	id := int64(7)
	setoffs := []mtcs.SetOff[int64, int64]{
		{ID: &id, Debtor: 1, Creditor: 2, Amount: 10, SetOff: 6, Remainder: 4},
		{Debtor: 2, Creditor: 3, Amount: 5, SetOff: 0, Remainder: 5},
	}

	var buf strings.Builder
	require.NoError(t, csvio.WriteSetOffs(&buf, setoffs))

	readBack, err := csvio.ReadSetOffs(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, setoffs, readBack)
}
