// SPDX-License-Identifier: MIT

// Package oracle answers conjugacy questions about subgroups of a finite
// permutation group.
//
// The contract mirrors the classical group-theory primitives
// RepresentativeAction, ContainedConjugates, DoubleCosetRepsAndSizes,
// ConjugateSubgroup and Intersection. Where those primitives return a
// distinguished "fail" value, this package returns an explicit boolean or
// an empty result instead; a negative answer is never an error.
//
// Conventions follow package perm: elements act on the left, cosets are
// left cosets, and conjugating K by g gives gKg⁻¹. Double cosets are HgK.
//
// Exhaustive implements Oracle by scanning the ambient group, after cheap
// rejections on order, degree and orbit shape. It is exact and suitable
// for the groups package perm can enumerate.
package oracle

import (
	"github.com/katalvlaran/burnside/perm"
)

// Witness is a conjugate g·small·g⁻¹ contained in some larger subgroup,
// together with the conjugating element g.
type Witness struct {
	Subgroup *perm.Group
	Element  perm.Perm
}

// DoubleCoset is one double coset HgK: its representative g and its size.
type DoubleCoset struct {
	Rep  perm.Perm
	Size int
}

// Oracle decides conjugacy and containment up to conjugacy of subgroups of
// an ambient group g. Implementations must be safe for concurrent use.
type Oracle interface {
	// RepresentativeAction returns some x in g with x·h1·x⁻¹ = h2.
	// The boolean is false when h1 and h2 are not conjugate in g.
	RepresentativeAction(g, h1, h2 *perm.Group) (perm.Perm, bool)

	// IsConjugate reports whether h1 and h2 are conjugate in g.
	IsConjugate(g, h1, h2 *perm.Group) bool

	// ContainedConjugates returns the distinct conjugates of small that are
	// subgroups of big. With findOne the search stops at the first witness.
	// An empty result means no conjugate of small lies in big.
	ContainedConjugates(g, big, small *perm.Group, findOne bool) []Witness

	// DoubleCosetRepsAndSizes partitions g into double cosets h·x·k.
	DoubleCosetRepsAndSizes(g, h, k *perm.Group) []DoubleCoset

	// ConjugateSubgroup returns x·k·x⁻¹.
	ConjugateSubgroup(k *perm.Group, x perm.Perm) *perm.Group

	// Intersection returns h1 ∩ h2.
	Intersection(h1, h2 *perm.Group) *perm.Group
}
