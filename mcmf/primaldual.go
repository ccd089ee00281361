package mcmf

import (
	"container/heap"

	"github.com/katalvlaran/mtcs"
)

// PrimalDual is the in-tree MCMF engine: successive-shortest-path over
// the augmented liability graph, using pushRelabel (package-internal
// C4) as its inner max-flow step on each iteration's admissible
// subgraph. Every real arc starts at zero cost; non-zero costs may be
// assigned through CostFn as the priority-of-claims governance hook
// the outer loop's distance relaxation already accommodates (never
// exercised by engine.Run, which uses the zero-cost default).
type PrimalDual[I mtcs.Id, A mtcs.Amt] struct {
	// CostFn assigns a cost to a real (debtor, creditor) arc. Nil means
	// every arc costs zero, the behavior this type exists to serve.
	CostFn func(debtor, creditor I) A
}

// workingEdge is one arc of PrimalDual's mutable working graph: its
// residual capacity (decremented as flow clears) and fixed cost.
type workingEdge[A mtcs.Amt] struct {
	cost     A
	capacity A
}

// MinCostFlow implements Engine. liabilities describes the augmented
// graph: real (WithId,WithId) arcs plus Source/Sink arcs encoding
// net-position imbalance.
func (pd *PrimalDual[I, A]) MinCostFlow(liabilities map[Arc[I]]A) (A, map[FirmArc[I]]A, error) {
	cost := func(debtor, creditor I) A {
		if pd.CostFn == nil {
			return 0
		}

		return pd.CostFn(debtor, creditor)
	}

	working := make(map[Arc[I]]*workingEdge[A], len(liabilities))
	for a, cap := range liabilities {
		c := A(0)
		if from, ok := a.From.ID(); ok {
			if to, ok2 := a.To.ID(); ok2 {
				c = cost(from, to)
			}
		}
		working[a] = &workingEdge[A]{cost: c, capacity: cap}
	}

	var maxFlow A
	paths := make(map[FirmArc[I]]A)

	for {
		var sourceOut A
		for a, e := range working {
			if a.From.IsSource() {
				sourceOut += e.capacity
			}
		}
		if sourceOut == 0 {
			break
		}

		distSink, ok := shortestToSink(working)
		if !ok {
			break
		}

		admissible := make(map[pair[mtcs.Node[I]]]A, len(working))
		for a, e := range working {
			if e.cost <= distSink && e.capacity > 0 {
				admissible[pair[mtcs.Node[I]]{a.From, a.To}] = e.capacity
			}
		}

		flow, err := pushRelabel(admissible, mtcs.Source[I](), mtcs.Sink[I]())
		if err != nil {
			return 0, nil, err
		}

		var pathFlow A
		for p, f := range flow {
			if p.u.IsSource() {
				pathFlow += f
			}
		}
		if pathFlow == 0 {
			break
		}
		maxFlow += pathFlow

		for p, f := range flow {
			working[Arc[I]{p.u, p.v}].capacity -= f
			du, dok := p.u.ID()
			dv, dok2 := p.v.ID()
			if dok && dok2 {
				paths[FirmArc[I]{du, dv}] += f
			}
		}
	}

	return maxFlow, paths, nil
}

// distItem is one entry of the shortest-path priority queue: a node and
// its tentative distance from Source.
type distItem[I mtcs.Id, A mtcs.Amt] struct {
	node mtcs.Node[I]
	dist A
}

type distHeap[I mtcs.Id, A mtcs.Amt] []*distItem[I, A]

func (h distHeap[I, A]) Len() int           { return len(h) }
func (h distHeap[I, A]) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap[I, A]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap[I, A]) Push(x any) {
	*h = append(*h, x.(*distItem[I, A]))
}
func (h *distHeap[I, A]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// shortestToSink computes shortest-path distance from Source to Sink
// over working, weighting each edge cost(e) if capacity(e) > 0 else
// one — the standard trick that inflates exhausted arcs by one hop so
// the admissible-subgraph relaxation in MinCostFlow stays well defined.
// Implements the same lazy decrease-key pattern as a classic
// array/heap Dijkstra: entries are pushed again on relaxation and
// stale ones are skipped via the settled set, rather than mutated
// in place.
func shortestToSink[I mtcs.Id, A mtcs.Amt](working map[Arc[I]]*workingEdge[A]) (A, bool) {
	adj := make(map[mtcs.Node[I]][]Arc[I])
	for a := range working {
		adj[a.From] = append(adj[a.From], a)
	}

	dist := make(map[mtcs.Node[I]]A)
	settled := make(map[mtcs.Node[I]]bool)
	source := mtcs.Source[I]()
	sink := mtcs.Sink[I]()
	dist[source] = 0

	h := &distHeap[I, A]{{node: source, dist: 0}}
	heap.Init(h)

	for h.Len() > 0 {
		cur := heap.Pop(h).(*distItem[I, A])
		if settled[cur.node] {
			continue
		}
		if cur.dist != dist[cur.node] {
			continue
		}
		settled[cur.node] = true

		for _, a := range adj[cur.node] {
			e := working[a]
			w := e.cost
			if e.capacity <= 0 {
				w = 1
			}
			nd := cur.dist + w
			if d, ok := dist[a.To]; !ok || nd < d {
				dist[a.To] = nd
				heap.Push(h, &distItem[I, A]{node: a.To, dist: nd})
			}
		}
	}

	d, ok := dist[sink]

	return d, ok
}
