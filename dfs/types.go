// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // the vertex and all its descendants are finished
)

var (
	// ErrCycleDetected indicates a back edge found by TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrVertexOutOfRange indicates an adjacency entry outside 0..n-1.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
