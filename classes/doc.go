// SPDX-License-Identifier: MIT

// Package classes canonicalizes subgroups into conjugacy classes and
// provides the index sets used as bases of the Burnside ring and of the
// molecular decomposition.
//
// What:
//
//   - Table: an interning table. Normalize(H) buckets H by the cheap
//     invariant Key{Order, Degree}, asks the oracle whether H is conjugate
//     to any representative already in the bucket, and either returns that
//     class or appends H as a new representative. A group outside the
//     table's index set (not a subgroup, or not atomic) is rejected before
//     the scan and never interned. The table is append-only and guarded by
//     one mutex, so the check-then-append is atomic.
//   - Class: a comparable handle {table, id}. Because every handle is
//     produced by Normalize, two classes are equal exactly when their
//     subgroups are conjugate, and Hash only looks at the representative.
//     Le is containment up to conjugacy; it is a partial order on classes.
//   - ConjugacyClasses: all classes of subgroups of one ambient group.
//   - AtomicClasses: classes of directly indecomposable subgroups of S_n,
//     graded by n; the ambient group of a class of degree n is S_n.
//   - MolecularClasses: the free abelian monoid on atomic classes. A
//     Molecule records a subgroup of S_n up to conjugacy as the multiset of
//     atomic classes of its direct factors on disjoint point sets.
//
// Errors:
//
//   - ErrConversion    a value cannot be turned into a basis index
//   - ErrNotSubgroup   not a subgroup of the ambient group (wrapped in ErrConversion by Construct)
//   - ErrNotAtomic     decomposes into more than one part (wrapped in ErrConversion by Construct)
//   - ErrForeignClass  a class from a different table was passed in
//   - ErrEmptyName     an empty display name was assigned
//   - ErrNilGroup      a nil group
//
// Classes of different tables never compare equal, even when the tables
// were built for the same group.
package classes
