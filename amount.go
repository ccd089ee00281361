package mtcs

// Amt is the capability bundle an amount must satisfy: addition,
// subtraction, negation, ordering, summation, and zero/one via the
// native literals 0 and 1. Constrained to signed integer kinds so every
// operation is a native Go operator — no operator-dispatch interface is
// needed, unlike the capability-bundle traits of the system this was
// ported from.
type Amt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}
