// SPDX-License-Identifier: MIT

package dfs

import "fmt"

// topoSorter holds the state of one topological sort.
type topoSorter struct {
	adj   [][]int
	opts  topoOptions
	state []int // White, Gray or Black per vertex
	order []int // post-order
}

// TopologicalSort returns the vertices of adj in an order where every edge
// i→j has i before j.
// Returns ErrCycleDetected if adj has a cycle, ErrVertexOutOfRange for a
// malformed row, or the context error when cancelled.
func TopologicalSort(adj [][]int, options ...TopoOption) ([]int, error) {
	// 1. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Initialize sorter state; all vertices start White
	n := len(adj)
	sorter := &topoSorter{
		adj:   adj,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 3. Drive DFS from every unvisited vertex
	for v := range n {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting cycles.
func (t *topoSorter) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means v is on the stack: back edge
	if t.state[v] == Gray {
		return fmt.Errorf("%w: through vertex %d", ErrCycleDetected, v)
	}
	// 3. Already finished
	if t.state[v] == Black {
		return nil
	}
	t.state[v] = Gray

	// 4. Explore each outgoing edge
	for _, w := range t.adj[v] {
		if w < 0 || w >= len(t.adj) {
			return fmt.Errorf("%w: %d→%d", ErrVertexOutOfRange, v, w)
		}
		if err := t.visit(w); err != nil {
			return err
		}
	}

	// 5. Finished: record in post-order
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
