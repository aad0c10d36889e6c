// SPDX-License-Identifier: MIT

// Package ring implements the Burnside ring B(G) of a finite permutation
// group G.
//
// Overview:
//
//   - B(G) is the free module over the conjugacy classes of subgroups of G.
//     A basis element [H] stands for the transitive G-set G/H; addition is
//     disjoint union and multiplication is the Cartesian product of G-sets.
//   - Elements are linear.Combination[classes.Class, C] values with C the
//     coefficient type (int64 for New). They are immutable.
//   - The unit is the class of G itself, displayed as "1".
//
// Key operations:
//
//   - ConstructFromAction: decompose an arbitrary action of G on a finite
//     domain into orbits, take the stabilizer of one point per orbit,
//     canonicalize it, and count.
//   - ProductOnBasis: [H]·[K] = Σ [H ∩ gKg⁻¹] over double coset
//     representatives g of H\G/K.
//   - CartesianProductOnBasis: the same product computed by routing the
//     diagonal action on G/H × G/K through ConstructFromAction.
//   - Mul extends the selected basis product bilinearly; basis products are
//     cached per ring.
//
// Options:
//
//   - WithOracle:  conjugacy oracle (default oracle.Exhaustive).
//   - WithLogger:  *zap.Logger for cache and decomposition activity
//     (default zap.NewNop()).
//   - WithProduct: ProductDoubleCoset (default) or ProductCartesian.
//
// Errors:
//
//   - ErrNilGroup:         New was given a nil group.
//   - ErrForeignElement:   an element indexed by another ring's classes.
//   - ErrActionNotClosed:  an action maps a domain point outside the domain.
//   - ErrNegativePower:    Pow with a negative exponent.
//
// Conversion failures from Basis are classes.ErrConversion.
//
// Complexity:
//
//   - ConstructFromAction: O(|G|·|X|) action calls plus one cache lookup per
//     orbit.
//   - ProductOnBasis: O(|G|·|H|·|K|) for the double cosets plus one cache
//     lookup per double coset.
package ring
