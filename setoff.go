package mtcs

// SetOff is the decomposition of one input Obligation into a cleared
// portion (set_off) and an uncleared portion (remainder), such that
// Amount == SetOff + Remainder and both are within [0, Amount].
type SetOff[I Id, A Amt] struct {
	ID        *int64
	Debtor    I
	Creditor  I
	Amount    A
	SetOff    A
	Remainder A
}
