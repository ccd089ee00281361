package mtcs

import "cmp"

// Id is the capability bundle a firm identifier must satisfy: total
// ordering, equality, and a zero value usable as a map key. cmp.Ordered
// covers every built-in scalar (ints, floats, strings), matching spec's
// "typical: 32-bit signed integer" while leaving room for string-keyed
// firms.
type Id interface {
	cmp.Ordered
}
