package engine

import (
	"log/slog"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/mcmf"
)

// InternedObligation is RunInterned's raw input shape: a firm identifier
// K that is merely comparable (equality only, no ordering), unlike
// mtcs.Obligation's I mtcs.Id (cmp.Ordered) constraint.
type InternedObligation[K comparable, A mtcs.Amt] struct {
	ID       *int64
	Debtor   K
	Creditor K
	Amount   A
}

// InternedSetOff is RunInterned's result shape: mtcs.SetOff's fields,
// keyed by the same comparable-only K as InternedObligation.
type InternedSetOff[K comparable, A mtcs.Amt] struct {
	ID        *int64
	Debtor    K
	Creditor  K
	Amount    A
	SetOff    A
	Remainder A
}

// RunInterned runs the clearing pipeline over obligations whose firm
// identifier K is merely comparable (equality only, no ordering) and
// potentially expensive to compare — a struct-like key rather than the
// scalar ids Run's cmp.Ordered constraint wants directly. It interns
// every firm to a dense int index with a map (matching the map-based
// interning strategy of the original this was ported from, which
// rejects an O(n^2) linear-scan variant in favor of this one), builds
// mtcs.Obligation[int, A] values (int satisfies mtcs.Id) for Run, and
// maps the resulting SetOffs' firm ids back to K. K can never be used
// to instantiate mtcs.Obligation/mtcs.SetOff directly since those are
// constrained to mtcs.Id, not merely comparable.
func RunInterned[K comparable, A mtcs.Amt](
	obligations []InternedObligation[K, A],
	eng mcmf.Engine[int, A],
	logger *slog.Logger,
) ([]InternedSetOff[K, A], error) {
	index := make(map[K]int)
	firms := make([]K, 0)
	intern := func(k K) int {
		if idx, ok := index[k]; ok {
			return idx
		}
		idx := len(firms)
		index[k] = idx
		firms = append(firms, k)

		return idx
	}

	interned := make([]mtcs.Obligation[int, A], 0, len(obligations))
	for _, o := range obligations {
		io, err := mtcs.NewObligation[int, A](o.ID, intern(o.Debtor), intern(o.Creditor), o.Amount)
		if err != nil {
			return nil, err
		}
		interned = append(interned, io)
	}

	setoffs, err := Run(interned, eng, logger)
	if err != nil {
		return nil, err
	}

	out := make([]InternedSetOff[K, A], 0, len(setoffs))
	for _, so := range setoffs {
		out = append(out, InternedSetOff[K, A]{
			ID:        so.ID,
			Debtor:    firms[so.Debtor],
			Creditor:  firms[so.Creditor],
			Amount:    so.Amount,
			SetOff:    so.SetOff,
			Remainder: so.Remainder,
		})
	}

	return out, nil
}
