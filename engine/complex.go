package engine

import (
	"log/slog"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/mcmf"
)

// RunComplex runs the clearing pipeline over obligations whose firm
// identifier is any cmp.Ordered type, not just a small scalar. The
// dense-int specialization the original wrapper this is ported from
// needed is unnecessary here: Run is already generic over any
// mtcs.Id, so RunComplex is Run under another name, kept for API
// parity with RunInterned (the variant that actually needs
// interning, for Id types too expensive to compare directly).
func RunComplex[I mtcs.Id, A mtcs.Amt](
	obligations []mtcs.Obligation[I, A],
	eng mcmf.Engine[I, A],
	logger *slog.Logger,
) ([]mtcs.SetOff[I, A], error) {
	return Run(obligations, eng, logger)
}
