// SPDX-License-Identifier: MIT

package perm

import (
	"cmp"
	"slices"
)

// Subgroups returns every subgroup of g, ordered by increasing order.
//
// Implementation:
//   - Stage 1: collect the distinct cyclic subgroups ⟨x⟩.
//   - Stage 2: repeatedly join each newly found subgroup with every cyclic
//     subgroup it does not contain, until no new subgroup appears.
//
// Every subgroup is generated by its cyclic subgroups, so the closure is
// complete. Subgroups are deduplicated by their membership bitset.
//
// Complexity: O(S·C·|G|·n) for S subgroups and C cyclic subgroups.
func (g *Group) Subgroups() []*Group {
	seen := make(map[string]struct{})

	// 1. Cyclic subgroups; their single generator is kept alongside
	var cyclic []*Group
	var cyclicGen []Perm
	for _, x := range g.elems {
		c := generate(g.degree, []Perm{x})
		key := g.membershipKey(c.elems)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cyclic = append(cyclic, c)
		cyclicGen = append(cyclicGen, x)
	}

	// 2. Join closure, layer by layer
	all := slices.Clone(cyclic)
	frontier := cyclic
	for len(frontier) > 0 {
		var next []*Group
		for _, h := range frontier {
			for i := range cyclic {
				x := cyclicGen[i]
				if h.Contains(x) {
					continue
				}
				gens := append(slices.Clone(h.gens), x)
				j := generate(g.degree, gens)
				key := g.membershipKey(j.elems)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				all = append(all, j)
				next = append(next, j)
			}
		}
		frontier = next
	}

	slices.SortStableFunc(all, func(a, b *Group) int {
		return cmp.Compare(a.Order(), b.Order())
	})

	return all
}

// ConjugacyClassesSubgroups returns one representative per conjugacy class
// of subgroups of g, ordered by increasing order. The representative of a
// class is the first of its members in Subgroups order. The result is
// computed once and cached; callers get a fresh slice.
//
// Complexity: O(S·|G|·|H|·n) on first call, O(K) afterwards.
func (g *Group) ConjugacyClassesSubgroups() []*Group {
	g.classesOnce.Do(func() {
		g.classes = g.conjugacyClassesSubgroups()
	})

	return slices.Clone(g.classes)
}

func (g *Group) conjugacyClassesSubgroups() []*Group {
	subs := g.Subgroups()
	position := make(map[string]int, len(subs))
	for i, h := range subs {
		position[g.membershipKey(h.elems)] = i
	}

	assigned := make([]bool, len(subs))
	var reps []*Group
	buf := make([]Perm, 0, g.Order())
	for i, h := range subs {
		if assigned[i] {
			continue
		}
		reps = append(reps, h)
		// mark every conjugate x·h·x⁻¹ as belonging to this class
		for _, x := range g.elems {
			buf = buf[:0]
			for _, e := range h.elems {
				buf = append(buf, e.Conjugate(x))
			}
			if j, ok := position[g.membershipKey(buf)]; ok {
				assigned[j] = true
			}
		}
	}

	return reps
}

// membershipKey encodes a subset of g's elements as a bitset string.
func (g *Group) membershipKey(elems []Perm) string {
	bits := make([]byte, (len(g.elems)+7)/8)
	for _, e := range elems {
		i := g.index[e]
		bits[i/8] |= 1 << (i % 8)
	}

	return string(bits)
}
