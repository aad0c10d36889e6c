// SPDX-License-Identifier: MIT

package oracle

import (
	"slices"

	"github.com/katalvlaran/burnside/perm"
)

// Exhaustive is an Oracle that searches the ambient group element by
// element. The zero value is ready to use.
type Exhaustive struct{}

var _ Oracle = Exhaustive{}

// RepresentativeAction scans g for an element conjugating h1 onto h2.
// Since conjugation preserves order, x·h1·x⁻¹ ⊆ h2 already implies
// equality, so only h1's generators are mapped.
//
// Complexity: O(|G|·|gens|·n) worst case, O(1) on an order or orbit mismatch.
func (Exhaustive) RepresentativeAction(g, h1, h2 *perm.Group) (perm.Perm, bool) {
	// 1. Cheap invariants that conjugation preserves
	if h1.Degree() != g.Degree() || h2.Degree() != g.Degree() || h1.Order() != h2.Order() {
		return "", false
	}
	if !sameOrbitShape(h1, h2) {
		return "", false
	}
	// 2. Identical subgroups are conjugate by the identity
	if h1.Equal(h2) {
		return g.Identity(), true
	}
	// 3. Scan
	gens := h1.Generators()
	for x := range g.All() {
		if conjugatesInto(x, gens, h2) {
			return x, true
		}
	}

	return "", false
}

// IsConjugate reports whether RepresentativeAction finds a witness.
func (e Exhaustive) IsConjugate(g, h1, h2 *perm.Group) bool {
	_, ok := e.RepresentativeAction(g, h1, h2)

	return ok
}

// ContainedConjugates scans g for elements x with x·small·x⁻¹ ⊆ big.
// Distinct conjugates are reported once, each with the first x found.
func (Exhaustive) ContainedConjugates(g, big, small *perm.Group, findOne bool) []Witness {
	if small.Degree() != g.Degree() || big.Degree() != g.Degree() {
		return nil
	}
	if small.Order() > big.Order() || big.Order()%small.Order() != 0 {
		return nil
	}

	gens := small.Generators()
	var out []Witness
	seen := make(map[uint64][]*perm.Group)
	for x := range g.All() {
		if !conjugatesInto(x, gens, big) {
			continue
		}
		conj := small.Conjugate(x)
		if findOne {
			return []Witness{{Subgroup: conj, Element: x}}
		}
		fp := conj.Fingerprint()
		if slices.ContainsFunc(seen[fp], conj.Equal) {
			continue
		}
		seen[fp] = append(seen[fp], conj)
		out = append(out, Witness{Subgroup: conj, Element: x})
	}

	return out
}

// DoubleCosetRepsAndSizes walks g in ascending order; every element not yet
// covered starts a new double coset h·x·k, whose representative is therefore
// its smallest element.
//
// Complexity: O(Σ |H|·|K|·n) over the double cosets.
func (Exhaustive) DoubleCosetRepsAndSizes(g, h, k *perm.Group) []DoubleCoset {
	covered := make(map[perm.Perm]struct{}, g.Order())
	var out []DoubleCoset
	for x := range g.All() {
		if _, ok := covered[x]; ok {
			continue
		}
		size := 0
		for a := range h.All() {
			ax := a.Mul(x)
			for b := range k.All() {
				y := ax.Mul(b)
				if _, ok := covered[y]; !ok {
					covered[y] = struct{}{}
					size++
				}
			}
		}
		out = append(out, DoubleCoset{Rep: x, Size: size})
	}

	return out
}

// ConjugateSubgroup returns x·k·x⁻¹.
func (Exhaustive) ConjugateSubgroup(k *perm.Group, x perm.Perm) *perm.Group {
	return k.Conjugate(x)
}

// Intersection returns h1 ∩ h2.
func (Exhaustive) Intersection(h1, h2 *perm.Group) *perm.Group {
	return h1.Intersection(h2)
}

// conjugatesInto reports whether x·s·x⁻¹ ∈ target for every s in gens.
func conjugatesInto(x perm.Perm, gens []perm.Perm, target *perm.Group) bool {
	for _, s := range gens {
		if !target.Contains(s.Conjugate(x)) {
			return false
		}
	}

	return true
}

// sameOrbitShape compares the multisets of orbit lengths.
func sameOrbitShape(a, b *perm.Group) bool {
	return slices.Equal(orbitShape(a), orbitShape(b))
}

func orbitShape(g *perm.Group) []int {
	orbits := g.Orbits()
	shape := make([]int, len(orbits))
	for i, o := range orbits {
		shape[i] = len(o)
	}
	slices.Sort(shape)

	return shape
}
