package engine

import (
	"log/slog"

	"github.com/katalvlaran/mtcs"
)

// Check verifies the four post-conditions a correct clearing run must
// satisfy, folding setoffs into three balance vectors (ba: amount, bl:
// remainder, bc: set_off) and asserting conservation, ba==bl, set-off
// debtor/creditor symmetry, and NID preservation. Any failure is fatal,
// surfaced as *mtcs.PostconditionError. logger defaults to
// slog.Default() when nil and receives non-asserting diagnostics (debt
// before/after, compensated sum, company count).
func Check[I mtcs.Id, A mtcs.Amt](setoffs []mtcs.SetOff[I, A], logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	ba := make(map[I]A)
	bl := make(map[I]A)
	bc := make(map[I]A)
	for _, so := range setoffs {
		ba[so.Creditor] += so.Amount
		ba[so.Debtor] -= so.Amount
		bl[so.Creditor] += so.Remainder
		bl[so.Debtor] -= so.Remainder
		bc[so.Creditor] += so.SetOff
		bc[so.Debtor] -= so.SetOff
	}

	if err := assertConservation("ba", ba); err != nil {
		return err
	}
	if err := assertConservation("bl", bl); err != nil {
		return err
	}
	if err := assertConservation("bc", bc); err != nil {
		return err
	}

	for firm, amount := range ba {
		if amount != bl[firm] {
			return &mtcs.PostconditionError{Condition: "ba != bl at one or more firms"}
		}
	}

	debtors := make(map[I]A)
	creditors := make(map[I]A)
	for _, so := range setoffs {
		debtors[so.Debtor] += so.SetOff
		creditors[so.Creditor] += so.SetOff
	}
	for firm, amount := range creditors {
		if amount > 0 && amount != debtors[firm] {
			return &mtcs.PostconditionError{Condition: "set-off consistency: creditor total != debtor total"}
		}
	}
	for firm, amount := range debtors {
		if amount > 0 && amount != creditors[firm] {
			return &mtcs.PostconditionError{Condition: "set-off consistency: debtor total != creditor total"}
		}
	}

	nidA := positiveSum(ba)
	nidC := positiveSum(bc)
	nidL := positiveSum(bl)
	if nidA != nidL {
		return &mtcs.PostconditionError{Condition: "NID(ba) != NID(bl)"}
	}

	var debtBefore, debtAfter, compensated A
	for _, so := range setoffs {
		debtBefore += so.Amount
		debtAfter += so.Remainder
		compensated += so.SetOff
	}

	logger.Debug("checker report",
		"companies", len(ba),
		"nid_before", int64(nidA),
		"nid_compensated", int64(nidC),
		"nid_after", int64(nidL),
		"debt_before", int64(debtBefore),
		"debt_after", int64(debtAfter),
		"compensated", int64(compensated),
	)

	return nil
}

// assertConservation requires the sum of positive entries equal the
// absolute value of the sum of negative entries.
func assertConservation[I mtcs.Id, A mtcs.Amt](name string, b map[I]A) error {
	var pos, neg A
	for _, v := range b {
		if v > 0 {
			pos += v
		} else {
			neg += v
		}
	}
	if pos != -neg {
		return &mtcs.PostconditionError{Condition: name + " conservation: positive sum != |negative sum|"}
	}

	return nil
}

func positiveSum[I mtcs.Id, A mtcs.Amt](b map[I]A) A {
	var sum A
	for _, v := range b {
		if v > 0 {
			sum += v
		}
	}

	return sum
}
