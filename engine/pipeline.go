// Package engine implements the clearing pipeline (Run) and checker
// (Check) that sit on top of package mcmf's min-cost-flow engines: it
// builds the Source/Sink-augmented liability graph from a collection
// of obligations, solves it, attributes the cleared flow back onto
// individual obligations, and verifies the result's invariants.
package engine

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/mcmf"
)

// Run executes the clearing pipeline over obligations using engine,
// returning one SetOff per input obligation in input order. logger
// defaults to slog.Default() when nil; it receives diagnostic-only
// NID/total-debt/remainder/cleared reporting, never asserted on.
func Run[I mtcs.Id, A mtcs.Amt](
	obligations []mtcs.Obligation[I, A],
	eng mcmf.Engine[I, A],
	logger *slog.Logger,
) ([]mtcs.SetOff[I, A], error) {
	if logger == nil {
		logger = slog.Default()
	}

	// 1. Net position: creditor += amount, debtor -= amount.
	netPosition := make(map[I]A)
	for _, o := range obligations {
		netPosition[o.Creditor] += o.Amount
		netPosition[o.Debtor] -= o.Amount
	}

	// 2. Liability aggregation, keyed by (WithId(debtor), WithId(creditor)).
	liabilities := make(map[mcmf.Arc[I]]A)
	for _, o := range obligations {
		a := mcmf.Arc[I]{From: mtcs.WithID(o.Debtor), To: mtcs.WithID(o.Creditor)}
		liabilities[a] += o.Amount
	}

	// 3. Augmentation: strict insertions, never additive onto a
	// pre-existing real arc (a firm is never also its own Source/Sink
	// peer).
	var nid A
	for firm, bal := range sortedByKey(netPosition) {
		switch {
		case bal < 0:
			liabilities[mcmf.Arc[I]{From: mtcs.Source[I](), To: mtcs.WithID(firm)}] = -bal
		case bal > 0:
			liabilities[mcmf.Arc[I]{From: mtcs.WithID(firm), To: mtcs.Sink[I]()}] = bal
			nid += bal
		}
	}

	// 4. Aggregates.
	var totalDebt A
	for _, o := range obligations {
		totalDebt += o.Amount
	}

	// 5. Solve.
	remained, paths, err := eng.MinCostFlow(liabilities)
	if err != nil {
		return nil, &mtcs.EngineError{Detail: "clearing pipeline", Err: err}
	}

	// 6. Residual subtraction.
	totalCleared := totalDebt
	for fa, f := range paths {
		totalCleared -= f
		liabilities[mcmf.Arc[I]{From: mtcs.WithID(fa.From), To: mtcs.WithID(fa.To)}] -= f
	}

	logger.Info("clearing run complete",
		"nid", int64(nid),
		"total_debt", int64(totalDebt),
		"remained", int64(remained),
		"total_cleared", int64(totalCleared),
	)

	// 7. Remainder audit: per-arc residual must not exceed the sum of
	// the obligation amounts aggregated onto that arc. The comparison is
	// against the arc's sum, not a single obligation's amount, so an arc
	// carrying parallel obligations may keep a residual larger than any
	// one of them.
	arcTotal := make(map[mcmf.Arc[I]]A)
	for _, o := range obligations {
		arcTotal[mcmf.Arc[I]{From: mtcs.WithID(o.Debtor), To: mtcs.WithID(o.Creditor)}] += o.Amount
	}
	for _, o := range obligations {
		a := mcmf.Arc[I]{From: mtcs.WithID(o.Debtor), To: mtcs.WithID(o.Creditor)}
		x := liabilities[a]
		if x > arcTotal[a] {
			return nil, &mtcs.PostconditionError{Condition: fmt.Sprintf(
				"zero-remainder audit: residual %v exceeds arc total %v on arc %v->%v",
				x, arcTotal[a], o.Debtor, o.Creditor)}
		}
	}

	// 8. Attribution, in input order.
	setoffs := make([]mtcs.SetOff[I, A], 0, len(obligations))
	for _, o := range obligations {
		arc := mcmf.Arc[I]{From: mtcs.WithID(o.Debtor), To: mtcs.WithID(o.Creditor)}
		x := liabilities[arc]

		var so mtcs.SetOff[I, A]
		switch {
		case x <= 0:
			so = mtcs.SetOff[I, A]{ID: o.ID, Debtor: o.Debtor, Creditor: o.Creditor, Amount: o.Amount, SetOff: 0, Remainder: o.Amount}
		case x < o.Amount:
			so = mtcs.SetOff[I, A]{ID: o.ID, Debtor: o.Debtor, Creditor: o.Creditor, Amount: o.Amount, SetOff: x, Remainder: o.Amount - x}
			liabilities[arc] = 0
		default:
			so = mtcs.SetOff[I, A]{ID: o.ID, Debtor: o.Debtor, Creditor: o.Creditor, Amount: o.Amount, SetOff: o.Amount, Remainder: 0}
			liabilities[arc] = x - o.Amount
		}
		setoffs = append(setoffs, so)
	}

	return setoffs, nil
}

// sortedByKey returns a range-over-func iterator visiting m in
// ascending key order, making the diagnostic augmentation step
// reproducible across runs: `for k, v := range sortedByKey(m)`.
func sortedByKey[I mtcs.Id, A mtcs.Amt](m map[I]A) func(yield func(I, A) bool) {
	keys := make([]I, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return func(yield func(I, A) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
