// SPDX-License-Identifier: MIT

package perm

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Group is an immutable finite permutation group of a fixed degree.
//
// All elements are materialized at construction and kept sorted, so
// iteration order is deterministic. Derived data that is expensive to
// compute (small generating set, conjugacy classes of subgroups) is cached
// lazily; a *Group is safe for concurrent use.
type Group struct {
	degree      int
	name        string
	gens        []Perm
	elems       []Perm       // sorted ascending
	index       map[Perm]int // element -> position in elems
	fingerprint uint64

	smallOnce sync.Once
	small     []Perm

	classesOnce sync.Once
	classes     []*Group
}

// New returns the group of the given degree generated by gens.
// Identity generators and duplicates are dropped.
// Returns ErrDegreeTooLarge or ErrDegreeMismatch on invalid input.
//
// Complexity: O(|G|·|gens|·n).
func New(degree int, gens ...Perm) (*Group, error) {
	// 1. Validate degree and generator shapes
	if degree < 0 || degree > MaxDegree {
		return nil, fmt.Errorf("%w: %d", ErrDegreeTooLarge, degree)
	}
	for _, g := range gens {
		if g.Degree() != degree {
			return nil, fmt.Errorf("%w: generator %v has degree %d, want %d",
				ErrDegreeMismatch, g, g.Degree(), degree)
		}
	}

	// 2. Close under multiplication
	return generate(degree, gens), nil
}

// MustNew is like New but panics on error.
func MustNew(degree int, gens ...Perm) *Group {
	g, err := New(degree, gens...)
	if err != nil {
		panic(err)
	}

	return g
}

// generate computes the closure of gens by breadth-first search from the
// identity. gens must already have the right degree.
func generate(degree int, gens []Perm) *Group {
	clean := make([]Perm, 0, len(gens))
	for _, g := range gens {
		if !g.IsIdentity() && !slices.Contains(clean, g) {
			clean = append(clean, g)
		}
	}

	id := Identity(degree)
	seen := map[Perm]struct{}{id: {}}
	queue := []Perm{id}
	for i := 0; i < len(queue); i++ {
		x := queue[i]
		for _, s := range clean {
			y := s.Mul(x)
			if _, ok := seen[y]; !ok {
				seen[y] = struct{}{}
				queue = append(queue, y)
			}
		}
	}

	return fromElements(degree, clean, queue)
}

// fromElements wraps an element list that is already known to be closed.
// A nil gens slice means "use a small generating set".
func fromElements(degree int, gens []Perm, elems []Perm) *Group {
	slices.Sort(elems)
	index := make(map[Perm]int, len(elems))
	for i, e := range elems {
		index[e] = i
	}

	h := xxhash.New()
	_, _ = h.Write([]byte{byte(degree >> 8), byte(degree)})
	for _, e := range elems {
		_, _ = h.WriteString(string(e))
	}

	g := &Group{
		degree:      degree,
		elems:       elems,
		index:       index,
		fingerprint: h.Sum64(),
	}
	if gens == nil {
		g.gens = g.SmallGenerators()
	} else {
		g.gens = gens
	}

	return g
}

// named attaches a display name; used by the named constructors.
func (g *Group) named(name string) *Group {
	g.name = name

	return g
}

// Degree returns the number of points the group acts on.
func (g *Group) Degree() int { return g.degree }

// Order returns the number of elements.
func (g *Group) Order() int { return len(g.elems) }

// Identity returns the identity element.
func (g *Group) Identity() Perm { return Identity(g.degree) }

// Generators returns a copy of the generating set the group was built from.
func (g *Group) Generators() []Perm { return slices.Clone(g.gens) }

// Elements returns a copy of all elements in ascending order.
func (g *Group) Elements() []Perm { return slices.Clone(g.elems) }

// All iterates over the elements in ascending order without copying.
func (g *Group) All() iter.Seq[Perm] {
	return func(yield func(Perm) bool) {
		for _, e := range g.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// Fingerprint returns an xxhash digest of the degree and element set.
// Equal groups have equal fingerprints.
func (g *Group) Fingerprint() uint64 { return g.fingerprint }

// Contains reports whether p is an element of g.
// Complexity: O(n).
func (g *Group) Contains(p Perm) bool {
	if p.Degree() != g.degree {
		return false
	}
	_, ok := g.index[p]

	return ok
}

// IsSubgroupOf reports whether g is a subgroup of other: same degree and
// every generator of g lies in other.
func (g *Group) IsSubgroupOf(other *Group) bool {
	if other == nil || g.degree != other.degree || other.Order()%g.Order() != 0 {
		return false
	}
	for _, s := range g.gens {
		if !other.Contains(s) {
			return false
		}
	}

	return true
}

// Equal reports whether g and other have the same degree and elements.
func (g *Group) Equal(other *Group) bool {
	if other == nil {
		return false
	}
	if g == other {
		return true
	}

	return g.degree == other.degree &&
		g.Order() == other.Order() &&
		g.fingerprint == other.fingerprint &&
		g.IsSubgroupOf(other)
}

// Subgroup returns the subgroup of g generated by gens.
// Returns ErrNotInGroup if some generator is not an element of g.
func (g *Group) Subgroup(gens ...Perm) (*Group, error) {
	for _, s := range gens {
		if !g.Contains(s) {
			return nil, fmt.Errorf("%w: %v", ErrNotInGroup, s)
		}
	}

	return generate(g.degree, gens), nil
}

// SmallGenerators returns a small generating set: elements are tried in
// order of decreasing element order and kept when they enlarge the span,
// then redundant generators are pruned. The trivial group has none.
// The result is computed once and cached.
func (g *Group) SmallGenerators() []Perm {
	g.smallOnce.Do(func() {
		g.small = g.smallGenerators()
	})

	return slices.Clone(g.small)
}

func (g *Group) smallGenerators() []Perm {
	if g.Order() == 1 {
		return nil
	}

	// 1. Candidates: high-order elements first, then ascending
	type cand struct {
		p     Perm
		order int
	}
	cands := make([]cand, 0, len(g.elems))
	for _, e := range g.elems {
		if !e.IsIdentity() {
			cands = append(cands, cand{p: e, order: e.Order()})
		}
	}
	slices.SortStableFunc(cands, func(a, b cand) int {
		return cmp.Compare(b.order, a.order)
	})

	// 2. Greedy: keep an element iff it is outside the current span
	var gens []Perm
	span := spanOf(g.degree, nil)
	for _, c := range cands {
		if len(span) == g.Order() {
			break
		}
		if _, ok := span[c.p]; ok {
			continue
		}
		gens = append(gens, c.p)
		span = spanOf(g.degree, gens)
	}

	// 3. Prune generators made redundant by later ones
	for i := 0; i < len(gens) && len(gens) > 1; {
		trial := slices.Delete(slices.Clone(gens), i, i+1)
		if len(spanOf(g.degree, trial)) == g.Order() {
			gens = trial
		} else {
			i++
		}
	}

	return gens
}

// spanOf returns the element set generated by gens.
func spanOf(degree int, gens []Perm) map[Perm]struct{} {
	id := Identity(degree)
	seen := map[Perm]struct{}{id: {}}
	queue := []Perm{id}
	for i := 0; i < len(queue); i++ {
		for _, s := range gens {
			y := s.Mul(queue[i])
			if _, ok := seen[y]; !ok {
				seen[y] = struct{}{}
				queue = append(queue, y)
			}
		}
	}

	return seen
}

// Orbits partitions {0..n-1} into orbits. Each orbit is sorted and the
// orbits are ordered by their smallest point.
// Complexity: O(n·|gens|).
func (g *Group) Orbits() [][]int {
	seen := make([]bool, g.degree)
	var out [][]int
	for start := 0; start < g.degree; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		orbit := []int{start}
		for i := 0; i < len(orbit); i++ {
			for _, s := range g.gens {
				y := s.Apply(orbit[i])
				if !seen[y] {
					seen[y] = true
					orbit = append(orbit, y)
				}
			}
		}
		slices.Sort(orbit)
		out = append(out, orbit)
	}

	return out
}

// Conjugate returns x·g·x⁻¹. x must have the same degree as g.
// Complexity: O(|G|·n).
func (g *Group) Conjugate(x Perm) *Group {
	gens := make([]Perm, len(g.gens))
	for i, s := range g.gens {
		gens[i] = s.Conjugate(x)
	}
	elems := make([]Perm, len(g.elems))
	for i, e := range g.elems {
		elems[i] = e.Conjugate(x)
	}

	return fromElements(g.degree, gens, elems)
}

// Intersection returns g ∩ other. Both groups must have the same degree;
// otherwise the trivial group of g's degree is returned.
// Complexity: O(|G|·n).
func (g *Group) Intersection(other *Group) *Group {
	if other == nil || other.degree != g.degree {
		return Trivial(g.degree)
	}
	small, large := g, other
	if large.Order() < small.Order() {
		small, large = large, small
	}
	var elems []Perm
	for _, e := range small.elems {
		if large.Contains(e) {
			elems = append(elems, e)
		}
	}

	return fromElements(g.degree, nil, elems)
}

// String returns the group's name when it was built by a named
// constructor, and its degree, order and small generators otherwise.
func (g *Group) String() string {
	if g.name != "" {
		return g.name
	}

	return fmt.Sprintf("permutation group of degree %d and order %d generated by %s",
		g.degree, g.Order(), FormatGenerators(g.SmallGenerators()))
}

// FormatGenerators renders a generator list as "[(1,2), (1,2,3)]"; an empty
// list renders as "[()]".
func FormatGenerators(gens []Perm) string {
	if len(gens) == 0 {
		return "[()]"
	}
	parts := make([]string, len(gens))
	for i, s := range gens {
		parts[i] = s.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
