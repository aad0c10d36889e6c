// SPDX-License-Identifier: MIT

package perm

import (
	"fmt"
	"slices"
)

// Cosets is the set G/H of left cosets xH of a subgroup H in G.
// Coset i is represented by the smallest element of the coset.
type Cosets struct {
	reps  []Perm
	label map[Perm]int
}

// LeftCosets enumerates the left cosets of h in g.
// Returns ErrNotSubgroup if h is not a subgroup of g.
//
// Complexity: O(|G|·n).
func (g *Group) LeftCosets(h *Group) (*Cosets, error) {
	if h == nil || !h.IsSubgroupOf(g) {
		return nil, fmt.Errorf("%w: %v in %v", ErrNotSubgroup, h, g)
	}
	c := &Cosets{
		reps:  make([]Perm, 0, g.Order()/h.Order()),
		label: make(map[Perm]int, g.Order()),
	}
	// elems are sorted, so the first unlabeled element is its coset's minimum
	for _, x := range g.elems {
		if _, ok := c.label[x]; ok {
			continue
		}
		idx := len(c.reps)
		c.reps = append(c.reps, x)
		for _, y := range h.elems {
			c.label[x.Mul(y)] = idx
		}
	}

	return c, nil
}

// Len returns the index [G:H].
func (c *Cosets) Len() int { return len(c.reps) }

// Representatives returns a copy of the coset representatives.
func (c *Cosets) Representatives() []Perm { return slices.Clone(c.reps) }

// Index returns the coset containing x.
func (c *Cosets) Index(x Perm) (int, bool) {
	i, ok := c.label[x]

	return i, ok
}

// Act returns the coset g·(x_i H) for an element g of the ambient group.
func (c *Cosets) Act(g Perm, i int) int {
	return c.label[g.Mul(c.reps[i])]
}
