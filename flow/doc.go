// Package flow implements Dinic's blocking-flow maximum-flow algorithm over
// *liabgraph.Graph. It is the max-flow engine behind mcmf.NetworkSimplex,
// which stands in for an off-the-shelf min-cost max-flow solver: every real
// liability arc carries the same unit cost and Source/Sink arcs carry zero
// cost, so minimum-cost maximum flow over that shape coincides with plain
// maximum flow, and a level-graph solver is a faithful substitute for a
// simplex pivot loop.
//
//   - Method: level graph construction (BFS) + blocking-flow via DFS.
//   - Time:   O(E · √V) on unit-capacity networks; O(V²·E) in general.
//   - Memory: O(V + E) for the level map, adjacency slices, and recursion state.
//
// # Graph support
//
// Dinic operates on *liabgraph.Graph: always directed, always weighted,
// parallel edges between the same two vertices aggregated into one
// residual capacity.
//
// Capacities are represented as int64, but an initial Epsilon threshold
// (float64) allows filtering very small weights when aggregating parallel edges.
//
// # API
//
// FlowOptions configures the solver:
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // for cancellation / timeouts
//	    Epsilon              float64         // ignore capacities ≤ Epsilon during build
//	    Verbose              bool            // log each augmentation step
//	    LevelRebuildInterval int             // rebuild level graph every N pushes
//	}
//
// Use DefaultOptions() to obtain production-safe defaults:
//
//	opts := flow.DefaultOptions()
//	// opts.Ctx = context.Background()
//	// opts.Epsilon = 1e-9
//
//	func Dinic(
//	    g *liabgraph.Graph,
//	    source, sink string,
//	    opts FlowOptions,
//	) (maxFlow float64, residual *liabgraph.Graph, err error)
//
// Dinic returns the computed maximum flow value and a residual graph
// with the same vertex set, carrying each remaining residual capacity
// (forward, plus the reverse capacity created by pushed flow) as one edge.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	EdgeError         - if a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
