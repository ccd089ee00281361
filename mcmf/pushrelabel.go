package mcmf

import (
	"fmt"

	"github.com/katalvlaran/mtcs"
)

// pair is an ordered pair of a generic graph node type, used as the key
// of the residual edge map.
type pair[N comparable] struct {
	u, v N
}

// prEdge holds capacity and current flow for one materialized arc of
// the residual graph; its mirror (v,u) is always present (inserted
// with capacity zero if the input graph lacked it).
type prEdge[A mtcs.Amt] struct {
	capacity A
	flow     A
}

// prNode carries the push-relabel label and excess for one graph node.
type prNode[A mtcs.Amt] struct {
	excess A
	label  int
}

// prState is the mutable state of one push-relabel run: per-node
// excess/label, per-arc capacity/flow, and the FIFO active queue.
type prState[N comparable, A mtcs.Amt] struct {
	nodes       map[N]*prNode[A]
	edges       map[pair[N]]*prEdge[A]
	neighbors   map[N][]N // outgoing residual neighbors, stable until a relabel
	target      N
	activeQueue []N
	onQueue     map[N]bool
}

// pushRelabel computes a maximum flow from source to target in the
// directed graph described by arcs (edge weights interpreted as
// capacities; negative weights are clamped to zero per the design's
// accepted-but-unenforced caller contract). It returns a mapping from
// ordered node pairs to strictly positive flow; pairs with zero flow
// are omitted. Returns ErrArithmeticOverflow-wrapping error if excess
// accumulation overflows A.
//
// Internal state mirrors the push-relabel primitive this module is
// built on: per-node {excess, label}, per-arc {capacity, flow} with the
// mirror arc always materialized, FIFO active-node queue, strict
// label-gap admissibility (label(u) = label(v)+1).
func pushRelabel[N comparable, A mtcs.Amt](arcs map[pair[N]]A, source, target N) (map[pair[N]]A, error) {
	st := newPRState(arcs, source, target)

	for len(st.activeQueue) > 0 {
		u := st.activeQueue[0]
		st.activeQueue = st.activeQueue[1:]
		st.onQueue[u] = false
		if err := st.discharge(u); err != nil {
			return nil, err
		}
	}

	out := make(map[pair[N]]A)
	for p, e := range st.edges {
		if e.flow > 0 {
			out[p] = e.flow
		}
	}

	return out, nil
}

func newPRState[N comparable, A mtcs.Amt](arcs map[pair[N]]A, source, target N) *prState[N, A] {
	st := &prState[N, A]{
		nodes:     make(map[N]*prNode[A]),
		edges:     make(map[pair[N]]*prEdge[A]),
		neighbors: make(map[N][]N),
		target:    target,
		onQueue:   make(map[N]bool),
	}

	node := func(n N) *prNode[A] {
		if nd, ok := st.nodes[n]; ok {
			return nd
		}
		nd := &prNode[A]{}
		st.nodes[n] = nd

		return nd
	}

	for p, w := range arcs {
		node(p.u)
		node(p.v)
		cap := w
		if cap < 0 {
			cap = 0
		}
		if e, ok := st.edges[p]; !ok {
			st.edges[p] = &prEdge[A]{capacity: cap}
			st.neighbors[p.u] = append(st.neighbors[p.u], p.v)
		} else {
			// Already materialized as the zero-capacity mirror of (v,u).
			e.capacity = cap
		}
		rev := pair[N]{p.v, p.u}
		if _, ok := st.edges[rev]; !ok {
			st.edges[rev] = &prEdge[A]{}
			st.neighbors[p.v] = append(st.neighbors[p.v], p.u)
		}
	}
	node(source)
	node(target)

	st.nodes[source].label = len(st.nodes)
	for _, v := range st.neighbors[source] {
		e := st.edges[pair[N]{source, v}]
		cap := e.capacity
		if cap == 0 {
			continue
		}
		e.flow = cap
		st.edges[pair[N]{v, source}].flow = -cap
		st.nodes[v].excess += cap
		st.nodes[source].excess -= cap
		st.enqueue(v)
	}

	return st
}

func (st *prState[N, A]) enqueue(n N) {
	if n == st.target {
		return
	}
	if st.onQueue[n] {
		return
	}
	st.onQueue[n] = true
	st.activeQueue = append(st.activeQueue, n)
}

func (st *prState[N, A]) hasCapacity(u, v N) bool {
	e, ok := st.edges[pair[N]{u, v}]

	return ok && e.flow < e.capacity
}

func (st *prState[N, A]) canPush(u, v N) bool {
	return st.hasCapacity(u, v) && st.nodes[u].label == st.nodes[v].label+1
}

// push moves min(excess(u), residual(u,v)) units of flow along (u,v),
// maintaining antisymmetry flow(u,v) = -flow(v,u).
func (st *prState[N, A]) push(u, v N) error {
	e := st.edges[pair[N]{u, v}]
	rev := st.edges[pair[N]{v, u}]
	amt := e.capacity - e.flow
	if ex := st.nodes[u].excess; ex < amt {
		amt = ex
	}

	nu, ok := addChecked(st.nodes[u].excess, -amt)
	if !ok {
		return fmt.Errorf("%w: push-relabel excess underflow", mtcs.ErrArithmeticOverflow)
	}
	st.nodes[u].excess = nu

	if v != st.target {
		nv, ok := addChecked(st.nodes[v].excess, amt)
		if !ok {
			return fmt.Errorf("%w: push-relabel excess accumulation", mtcs.ErrArithmeticOverflow)
		}
		wasZero := st.nodes[v].excess == 0
		st.nodes[v].excess = nv
		if wasZero {
			st.enqueue(v)
		}
	}

	e.flow += amt
	rev.flow -= amt

	return nil
}

// relabel sets label(u) = 1 + min{label(v) : has_capacity(u,v)}. Called
// only when discharge has exhausted every pushable neighbor, so u
// always has some residual-capacity neighbor (a node with positive
// excess and none would be a bug, per the design this mirrors).
func (st *prState[N, A]) relabel(u N) {
	minLabel := -1
	for _, v := range st.neighbors[u] {
		if !st.hasCapacity(u, v) {
			continue
		}
		l := st.nodes[v].label
		if minLabel == -1 || l < minLabel {
			minLabel = l
		}
	}
	if minLabel == -1 {
		panic("mcmf: relabel invoked on node with no residual capacity")
	}
	st.nodes[u].label = minLabel + 1
}

// discharge pushes u's excess out along admissible neighbors, relabeling
// and re-acquiring the neighbor cursor whenever the current enumeration
// is exhausted without fully discharging u.
func (st *prState[N, A]) discharge(u N) error {
	idx := 0
	for st.nodes[u].excess > 0 {
		nbrs := st.neighbors[u]
		if idx >= len(nbrs) {
			st.relabel(u)
			idx = 0

			continue
		}
		v := nbrs[idx]
		if st.canPush(u, v) {
			if err := st.push(u, v); err != nil {
				return err
			}
		}
		idx++
	}

	return nil
}

func addChecked[A mtcs.Amt](a, b A) (A, bool) {
	sum := a + b
	if b > 0 && sum < a {
		return 0, false
	}
	if b < 0 && sum > a {
		return 0, false
	}

	return sum, true
}
