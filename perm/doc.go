// SPDX-License-Identifier: MIT

// Package perm implements permutations and finite permutation groups small
// enough to be enumerated element by element.
//
// What:
//
//   - Perm: an immutable permutation of {0..n-1}. It is stored one byte per
//     point, so it is comparable and can be used directly as a map key.
//     Points are 0-based in the API that takes images, and 1-based in cycle
//     notation (Cycles, ParseCycles, String), which is how groups are written
//     by hand: "(1,2,3)(4,5)".
//   - Group: an immutable finite permutation group with a fixed degree. The
//     full element list is computed once at construction (closure under the
//     generators), together with an xxhash fingerprint of the element set.
//
// Composition is a left action: p.Mul(q) applies q first, then p, so that
// (g*h)(x) = g(h(x)). Conjugation of a subgroup H by g is gHg⁻¹.
//
// Key operations:
//
//   - Named groups: Symmetric, Alternating, Cyclic, Dihedral, Trivial.
//     Symmetric(0) is the trivial group acting on the empty domain.
//   - Subgroup, SmallGenerators, Orbits, Conjugate, Intersection.
//   - LeftCosets: coset representatives with an element → coset index map.
//   - Subgroups, ConjugacyClassesSubgroups: exhaustive subgroup lattice.
//   - DisjointDirectProductDecomposition, Project: split a group into the
//     direct factors acting on disjoint unions of orbits.
//
// Complexity:
//
//   - Construction:    O(|G|·|gens|·n)
//   - Subgroups:       O(S·C·|G|·n) for S subgroups and C cyclic subgroups
//   - Decomposition:   O(2^m·|G|·n) where m is the number of orbits that do
//     not split off on their own (small in practice)
//
// The package targets groups of moderate order (symmetric groups up to S_7
// or so). Everything is exact; nothing is randomized.
//
// Errors:
//
//   - ErrDegreeTooLarge   degree outside [0, MaxDegree]
//   - ErrDegreeMismatch   permutation degree differs from the group degree
//   - ErrNotPermutation   image list is not a bijection
//   - ErrBadCycle         malformed cycle notation or repeated point
//   - ErrNotInGroup       generator is not an element of the ambient group
//   - ErrNotSubgroup      argument is not a subgroup of the receiver
//   - ErrNotInvariant     projection onto a set that is not a union of orbits
package perm
