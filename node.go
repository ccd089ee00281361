package mtcs

// kind tags the three Node variants. Unexported: callers distinguish
// variants through ID/IsSource/IsSink, never by comparing kind values
// directly. Kinds start at 1, so the zero value of Node is never
// mistaken for Source.
type kind uint8

const (
	kindSource kind = iota + 1
	kindWithID
	kindSink
)

// Node is the tagged union Source | Sink | WithId(Id) used as the key
// type of the augmented liability graph. Source and Sink are distinct
// singletons disjoint from every WithId(x): a firm id is never reserved
// as a magic sentinel, so arbitrary Id types (including ones a firm
// could plausibly choose as its own id) stay safe.
type Node[I Id] struct {
	k  kind
	id I
}

// Source is the distinguished node that supplies flow equal to each
// net-debtor firm's shortfall.
func Source[I Id]() Node[I] { return Node[I]{k: kindSource} }

// Sink is the distinguished node that absorbs flow equal to each
// net-creditor firm's surplus.
func Sink[I Id]() Node[I] { return Node[I]{k: kindSink} }

// WithID wraps a firm identifier as a Node.
func WithID[I Id](id I) Node[I] { return Node[I]{k: kindWithID, id: id} }

// IsSource reports whether n is the Source singleton.
func (n Node[I]) IsSource() bool { return n.k == kindSource }

// IsSink reports whether n is the Sink singleton.
func (n Node[I]) IsSink() bool { return n.k == kindSink }

// ID returns the wrapped firm identifier and true if n is WithId(x);
// otherwise the zero value of I and false.
func (n Node[I]) ID() (I, bool) {
	if n.k == kindWithID {
		return n.id, true
	}
	var zero I

	return zero, false
}

// Compare orders n against m with Source < WithId(*) < Sink; among two
// WithId nodes, by the wrapped id's natural order.
func (n Node[I]) Compare(m Node[I]) int {
	if n.k != m.k {
		if n.k < m.k {
			return -1
		}

		return 1
	}
	if n.k != kindWithID {
		return 0
	}
	switch {
	case n.id < m.id:
		return -1
	case n.id > m.id:
		return 1
	default:
		return 0
	}
}

// String renders n for diagnostics.
func (n Node[I]) String() string {
	switch n.k {
	case kindSource:
		return "Source"
	case kindSink:
		return "Sink"
	default:
		return formatID(n.id)
	}
}
