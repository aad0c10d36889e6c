// SPDX-License-Identifier: MIT

// Package poset builds the Hasse diagram of a finite partial order.
//
// Build asks the order relation once per ordered pair, checks that it is a
// partial order, and keeps the covering relation as an adjacency list:
// a ⋖ b iff a < b and no c has a < c < b. For conjugacy classes of
// subgroups ordered by containment up to conjugacy this is the subgroup
// lattice up to conjugation; S_4 has 11 classes and 17 covers.
//
// Complexity:
//
//   - Build:           O(n²) relation calls plus O(n³) for the reduction.
//   - LinearExtension: O(n + covers), by dfs.TopologicalSort.
//
// Errors:
//
//   - ErrNotPartialOrder  the relation fails reflexivity, antisymmetry or transitivity.
//   - ErrDuplicate        an element occurs twice.
//   - ErrUnknown          Up or Down was asked about a foreign element.
package poset

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/burnside/dfs"
)

var (
	// ErrNotPartialOrder indicates a relation that is not a partial order.
	ErrNotPartialOrder = errors.New("poset: not a partial order")

	// ErrDuplicate indicates an element given more than once.
	ErrDuplicate = errors.New("poset: duplicate element")

	// ErrUnknown indicates an element that is not in the poset.
	ErrUnknown = errors.New("poset: unknown element")
)

// Option configures Build.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext lets a long Build be cancelled between rows of relation
// queries. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Cover is one covering relation Lower ⋖ Upper.
type Cover[T comparable] struct {
	Lower, Upper T
}

// Poset is an immutable finite partial order with its Hasse diagram.
type Poset[T comparable] struct {
	elems []T
	index map[T]int
	le    [][]bool
	up    [][]int // covers above, ascending by index
	down  [][]int // covers below, ascending by index
}

// Build computes the partial order le restricted to elems.
// Returns ErrDuplicate or ErrNotPartialOrder on invalid input, or the
// context error when cancelled.
func Build[T comparable](elems []T, le func(a, b T) bool, opts ...Option) (*Poset[T], error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Index elements
	n := len(elems)
	p := &Poset[T]{
		elems: slices.Clone(elems),
		index: make(map[T]int, n),
		le:    make([][]bool, n),
		up:    make([][]int, n),
		down:  make([][]int, n),
	}
	for i, x := range elems {
		if _, dup := p.index[x]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, x)
		}
		p.index[x] = i
	}

	// 2. Relation matrix
	for i := range elems {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		p.le[i] = make([]bool, n)
		for j := range elems {
			p.le[i][j] = le(elems[i], elems[j])
		}
		if !p.le[i][i] {
			return nil, fmt.Errorf("%w: %v is not below itself", ErrNotPartialOrder, elems[i])
		}
	}

	// 3. Antisymmetry and transitivity
	for i := range n {
		for j := range n {
			if i != j && p.le[i][j] && p.le[j][i] {
				return nil, fmt.Errorf("%w: %v and %v are mutually below", ErrNotPartialOrder, elems[i], elems[j])
			}
			if !p.le[i][j] {
				continue
			}
			for k := range n {
				if p.le[j][k] && !p.le[i][k] {
					return nil, fmt.Errorf("%w: %v ≤ %v ≤ %v but not %v ≤ %v",
						ErrNotPartialOrder, elems[i], elems[j], elems[k], elems[i], elems[k])
				}
			}
		}
	}

	// 4. Transitive reduction
	for i := range n {
		for j := range n {
			if i == j || !p.le[i][j] {
				continue
			}
			covered := true
			for k := range n {
				if k != i && k != j && p.le[i][k] && p.le[k][j] {
					covered = false

					break
				}
			}
			if covered {
				p.up[i] = append(p.up[i], j)
				p.down[j] = append(p.down[j], i)
			}
		}
	}

	return p, nil
}

// Len returns the number of elements.
func (p *Poset[T]) Len() int { return len(p.elems) }

// Elements returns the elements in input order.
func (p *Poset[T]) Elements() []T { return slices.Clone(p.elems) }

// Le reports a ≤ b. Unknown elements are incomparable to everything.
func (p *Poset[T]) Le(a, b T) bool {
	i, ok := p.index[a]
	if !ok {
		return false
	}
	j, ok := p.index[b]

	return ok && p.le[i][j]
}

// Covers returns every covering relation, ordered by the input position of
// the lower and then the upper element.
func (p *Poset[T]) Covers() []Cover[T] {
	var out []Cover[T]
	for i, ups := range p.up {
		for _, j := range ups {
			out = append(out, Cover[T]{Lower: p.elems[i], Upper: p.elems[j]})
		}
	}

	return out
}

// CoverCount returns the number of edges of the Hasse diagram.
func (p *Poset[T]) CoverCount() int {
	n := 0
	for _, ups := range p.up {
		n += len(ups)
	}

	return n
}

// Up returns the elements covering x.
func (p *Poset[T]) Up(x T) ([]T, error) { return p.neighbors(x, p.up) }

// Down returns the elements covered by x.
func (p *Poset[T]) Down(x T) ([]T, error) { return p.neighbors(x, p.down) }

// Minimal returns the elements with nothing below them.
func (p *Poset[T]) Minimal() []T { return p.extremal(p.down) }

// Maximal returns the elements with nothing above them.
func (p *Poset[T]) Maximal() []T { return p.extremal(p.up) }

// LinearExtension returns the elements ordered so that x comes before y
// whenever x < y: a topological sort of the Hasse diagram, visiting
// elements and covers in input order.
func (p *Poset[T]) LinearExtension() ([]T, error) {
	order, err := dfs.TopologicalSort(p.up)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPartialOrder, err)
	}
	out := make([]T, len(order))
	for k, i := range order {
		out[k] = p.elems[i]
	}

	return out, nil
}

func (p *Poset[T]) neighbors(x T, adj [][]int) ([]T, error) {
	i, ok := p.index[x]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknown, x)
	}
	out := make([]T, len(adj[i]))
	for k, j := range adj[i] {
		out[k] = p.elems[j]
	}

	return out, nil
}

func (p *Poset[T]) extremal(adj [][]int) []T {
	var out []T
	for i, x := range p.elems {
		if len(adj[i]) == 0 {
			out = append(out, x)
		}
	}

	return out
}
