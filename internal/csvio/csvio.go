// Package csvio reads obligations from and writes set-offs to CSV,
// the shape mtcsctl's run/check subcommands exchange with the
// filesystem. Firm ids and amounts are fixed to int64, the CLI's
// concrete instantiation of mtcs.Id/mtcs.Amt.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mtcs"
)

// obligationHeader is the input header; id may be blank.
var obligationHeader = []string{"id", "debtor", "creditor", "amount"}

// setOffHeader is the output header written by WriteSetOffs.
var setOffHeader = []string{"id", "debtor", "creditor", "amount", "set_off", "remainder"}

// ReadObligations parses CSV with header id,debtor,creditor,amount.
// The id column may be blank, in which case the resulting
// Obligation's ID is nil.
func ReadObligations(r io.Reader) ([]mtcs.Obligation[int64, int64], error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvio: read header: %w", err)
	}
	cols, err := columnIndex(header, obligationHeader)
	if err != nil {
		return nil, err
	}

	var obligations []mtcs.Obligation[int64, int64]
	for {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read record: %w", err)
		}

		var id *int64
		if idIdx := cols["id"]; idIdx >= 0 {
			if raw := rec[idIdx]; raw != "" {
				v, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("csvio: parse id %q: %w", raw, err)
				}
				id = &v
			}
		}

		debtor, err := strconv.ParseInt(rec[cols["debtor"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csvio: parse debtor %q: %w", rec[cols["debtor"]], err)
		}
		creditor, err := strconv.ParseInt(rec[cols["creditor"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csvio: parse creditor %q: %w", rec[cols["creditor"]], err)
		}
		amount, err := strconv.ParseInt(rec[cols["amount"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csvio: parse amount %q: %w", rec[cols["amount"]], err)
		}

		o, err := mtcs.NewObligation(id, debtor, creditor, amount)
		if err != nil {
			return nil, err
		}
		obligations = append(obligations, o)
	}

	return obligations, nil
}

// WriteSetOffs writes CSV with header
// id,debtor,creditor,amount,set_off,remainder. A nil ID is written blank.
func WriteSetOffs(w io.Writer, setoffs []mtcs.SetOff[int64, int64]) error {
	wtr := csv.NewWriter(w)
	if err := wtr.Write(setOffHeader); err != nil {
		return fmt.Errorf("csvio: write header: %w", err)
	}

	for _, so := range setoffs {
		id := ""
		if so.ID != nil {
			id = strconv.FormatInt(*so.ID, 10)
		}
		rec := []string{
			id,
			strconv.FormatInt(so.Debtor, 10),
			strconv.FormatInt(so.Creditor, 10),
			strconv.FormatInt(so.Amount, 10),
			strconv.FormatInt(so.SetOff, 10),
			strconv.FormatInt(so.Remainder, 10),
		}
		if err := wtr.Write(rec); err != nil {
			return fmt.Errorf("csvio: write record: %w", err)
		}
	}

	wtr.Flush()
	return wtr.Error()
}

// ReadSetOffs parses CSV with header
// id,debtor,creditor,amount,set_off,remainder, the shape WriteSetOffs
// produces, for feeding back into Check.
func ReadSetOffs(r io.Reader) ([]mtcs.SetOff[int64, int64], error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvio: read header: %w", err)
	}
	cols, err := columnIndex(header, setOffHeader)
	if err != nil {
		return nil, err
	}

	var setoffs []mtcs.SetOff[int64, int64]
	for {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read record: %w", err)
		}

		var id *int64
		if idIdx := cols["id"]; idIdx >= 0 {
			if raw := rec[idIdx]; raw != "" {
				v, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("csvio: parse id %q: %w", raw, err)
				}
				id = &v
			}
		}

		fields := make(map[string]int64, 4)
		for _, name := range []string{"debtor", "creditor", "amount", "set_off", "remainder"} {
			v, err := strconv.ParseInt(rec[cols[name]], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("csvio: parse %s %q: %w", name, rec[cols[name]], err)
			}
			fields[name] = v
		}

		setoffs = append(setoffs, mtcs.SetOff[int64, int64]{
			ID:        id,
			Debtor:    fields["debtor"],
			Creditor:  fields["creditor"],
			Amount:    fields["amount"],
			SetOff:    fields["set_off"],
			Remainder: fields["remainder"],
		})
	}

	return setoffs, nil
}

// columnIndex maps each of want's entries to its position in header,
// erroring if any required column is missing.
func columnIndex(header, want []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	for _, w := range want {
		if w == "id" {
			continue // optional
		}
		if _, ok := idx[w]; !ok {
			return nil, fmt.Errorf("csvio: missing required column %q", w)
		}
	}
	if _, ok := idx["id"]; !ok {
		idx["id"] = -1
	}

	return idx, nil
}
