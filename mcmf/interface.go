// Package mcmf provides minimum-cost maximum-flow engines over the
// Source/Sink-augmented liability graph: PrimalDual (successive-
// shortest-path MCMF built on pushRelabel, an unexported in-tree
// max-flow primitive) and NetworkSimplex (a thin adapter standing in
// for an external solver, backed by flow.Dinic).
package mcmf

import "github.com/katalvlaran/mtcs"

// Arc is an ordered pair of nodes, used as the key of a liabilities map.
type Arc[I mtcs.Id] struct {
	From mtcs.Node[I]
	To   mtcs.Node[I]
}

// FirmArc is an ordered pair of firm ids, used as the key of an
// attributed flow map (Source/Sink never appear here).
type FirmArc[I mtcs.Id] struct {
	From I
	To   I
}

// Engine is any implementation of the min-cost-flow contract: given a
// liabilities map over the augmented graph (real arcs plus Source/Sink
// arcs encoding net-position imbalance), return the engine's diagnostic
// residual metric and the attributed flow between real firms.
type Engine[I mtcs.Id, A mtcs.Amt] interface {
	MinCostFlow(liabilities map[Arc[I]]A) (remained A, paths map[FirmArc[I]]A, err error)
}
