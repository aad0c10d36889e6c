// SPDX-License-Identifier: MIT

package perm

import (
	"fmt"
	"math/bits"
	"slices"
)

// DisjointDirectProductDecomposition returns the finest partition of the
// domain into unions of orbits B_1..B_k such that g is the direct product
// of its restrictions to the B_i. Parts are sorted and ordered by their
// smallest point. The trivial group of degree 0 has no parts; a fixed
// point is always a part of its own.
//
// Implementation:
//   - Stage 1: compute the orbits.
//   - Stage 2: peel off every orbit O with |G_R| = |G_O|·|G_{R∖O}|, where
//     G_X is the restriction of g to X and R the remaining points.
//   - Stage 3: for what remains, find the smallest union of orbits that
//     contains the first remaining orbit and splits, emit it, recurse.
//
// Sets along which g splits are closed under intersection, so the minimal
// splitting set through an orbit is unique and the result does not depend
// on search order.
//
// Complexity: O(m·2^m·|G|·n) where m is the number of orbits left after
// stage 2.
func (g *Group) DisjointDirectProductDecomposition() [][]int {
	// 1. Orbits
	rest := g.Orbits()
	if len(rest) <= 1 {
		return rest
	}

	var parts [][]int

	// 2. Orbits that split off on their own
	for changed := true; changed && len(rest) > 1; {
		changed = false
		total := g.restrictedOrder(flatten(rest))
		for i, o := range rest {
			others := flatten(slices.Delete(slices.Clone(rest), i, i+1))
			if g.restrictedOrder(o)*g.restrictedOrder(others) == total {
				parts = append(parts, o)
				rest = slices.Delete(rest, i, i+1)
				changed = true

				break
			}
		}
	}

	// 3. Minimal splitting unions through rest[0]
	for len(rest) > 0 {
		block, remaining := g.smallestSplit(rest)
		parts = append(parts, block)
		rest = remaining
	}

	slices.SortFunc(parts, func(a, b []int) int { return a[0] - b[0] })

	return parts
}

// smallestSplit returns the smallest union of orbits containing rest[0]
// along which the restriction to flatten(rest) splits, and the orbits left.
func (g *Group) smallestSplit(rest [][]int) ([]int, [][]int) {
	m := len(rest) - 1
	if m == 0 {
		return rest[0], nil
	}
	total := g.restrictedOrder(flatten(rest))
	for size := 0; size < m; size++ {
		for mask := 0; mask < 1<<m; mask++ {
			if bits.OnesCount(uint(mask)) != size {
				continue
			}
			in := [][]int{rest[0]}
			var out [][]int
			for j := 0; j < m; j++ {
				if mask&(1<<j) != 0 {
					in = append(in, rest[j+1])
				} else {
					out = append(out, rest[j+1])
				}
			}
			if g.restrictedOrder(flatten(in))*g.restrictedOrder(flatten(out)) == total {
				return flatten(in), out
			}
		}
	}

	return flatten(rest), nil
}

// restrictedOrder counts the distinct restrictions of g's elements to points.
func (g *Group) restrictedOrder(points []int) int {
	if len(points) == 0 {
		return 1
	}
	seen := make(map[string]struct{})
	buf := make([]byte, len(points))
	for _, e := range g.elems {
		for i, p := range points {
			buf[i] = e[p]
		}
		seen[string(buf)] = struct{}{}
	}

	return len(seen)
}

// Project restricts g to part, which must be a union of orbits, and
// relabels part's points (in ascending order) as 0..k-1.
// Returns ErrNotInvariant if part is not invariant under g.
//
// Complexity: O(|G|·k).
func (g *Group) Project(part []int) (*Group, error) {
	points := slices.Clone(part)
	slices.Sort(points)
	points = slices.Compact(points)

	relabel := make(map[int]int, len(points))
	for i, p := range points {
		if p < 0 || p >= g.degree {
			return nil, fmt.Errorf("%w: point %d outside degree %d", ErrNotInvariant, p, g.degree)
		}
		relabel[p] = i
	}

	gens := make([]Perm, 0, len(g.gens))
	for _, s := range g.gens {
		images := make([]int, len(points))
		for i, p := range points {
			j, ok := relabel[s.Apply(p)]
			if !ok {
				return nil, fmt.Errorf("%w: %v moves %d outside %v", ErrNotInvariant, s, p+1, part)
			}
			images[i] = j
		}
		q, err := FromImages(images)
		if err != nil {
			return nil, err
		}
		gens = append(gens, q)
	}

	return generate(len(points), gens), nil
}

func flatten(orbits [][]int) []int {
	var out []int
	for _, o := range orbits {
		out = append(out, o...)
	}
	slices.Sort(out)

	return out
}
