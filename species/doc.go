// SPDX-License-Identifier: MIT

// Package species implements the polynomial molecular decomposition: the
// free module over molecular classes, graded by degree, whose product is
// the disjoint union of actions on disjoint point sets.
//
// A basis element is a classes.Molecule, i.e. a subgroup of some S_n up to
// conjugacy written as a product of atomic classes. The unit is the class
// of S_0 on the empty domain. Multiplying two basis elements never asks the
// oracle: the product is the multiset union of their atomic factors.
//
//	d := species.New()
//	x, _ := d.Basis(perm.Trivial(3))      // {1, [()]}^3
//	y, _ := d.Basis(perm.Symmetric(2))    // {2, [(1,2)]}
//	p, _ := d.Mul(x, y)                   // {1, [()]}^3*{2, [(1,2)]}
//
// Errors: ErrForeignElement when a molecule of another decomposition is
// multiplied; ErrNegativePower from Pow. Basis returns classes.ErrConversion
// for a nil group.
package species
