package flow

import (
	"context"
	"fmt"
	"time"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures the Dinic solver used as the stand-in engine for
// mcmf.NetworkSimplex.
//   - Ctx: cancellation/timeout for long-running solves; defaults to context.Background().
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Verbose: if true, logs each augmentation when possible.
//   - LevelRebuildInterval: rebuild the level graph every N augmentations (0 = only on exhaustion).
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// a 1e-9 epsilon, no verbose logging, and no forced level-graph rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: 1e-9,
	}
}

// normalize fills in zero-valued fields with their defaults in place.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon == 0 {
		o.Epsilon = 1e-9
	}
}

// WithTimeout returns opts with Ctx replaced by a context bound to d.
// The returned cancel func must be called by the caller to release resources.
func (o FlowOptions) WithTimeout(d time.Duration) (FlowOptions, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(o.Ctx, d)
	o.Ctx = ctx

	return o, cancel
}
