// SPDX-License-Identifier: MIT

// Package burnside computes Burnside rings of finite permutation groups and
// the polynomial molecular decomposition over the symmetric groups.
//
// What is in here:
//
//	A small, pure-Go algebra library built from these layers:
//		• perm:    permutations and finite permutation groups (orbits, cosets,
//		           subgroup enumeration, disjoint direct product decomposition)
//		• oracle:  conjugacy and containment queries between subgroups
//		• linear:  immutable formal linear combinations and bilinear products
//		• classes: the conjugacy-class cache and the index sets built on it
//		• ring:    the Burnside ring B(G) and orbit decomposition of actions
//		• species: the molecular decomposition ring
//		• poset:   Hasse diagrams of the subgroup lattice up to conjugacy
//		• dfs:     depth-first topological sort over index adjacency
//
// How the pieces fit:
//
//   - A subgroup enters through classes.Table.Normalize, which rejects
//     groups outside the index set, buckets the rest by order and degree and
//     asks the oracle whether each is conjugate to a cached representative.
//     Equality of classes is then an id comparison.
//   - ring.ConstructFromAction splits a G-set into orbits, canonicalizes one
//     stabilizer per orbit and counts. The ring product routes the diagonal
//     action on G/H × G/K through the same path, or intersects over double
//     cosets; both agree.
//   - species multiplies molecular classes as multisets of atomic factors,
//     without asking the oracle.
//
// Quick example:
//
//	r, _ := ring.New(perm.Symmetric(4))
//	b, _ := ring.ConstructFromAction(r, onPairs, twoSubsets)
//	sq, _ := r.Mul(b, b)
//	fmt.Println(r.Format(sq)) // B[()] + 2*B[(3,4), (1,2)]
//
// The burnside command (cmd/burnside) exposes the same operations on the
// command line.
package burnside
