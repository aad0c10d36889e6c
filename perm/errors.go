// SPDX-License-Identifier: MIT

package perm

import "errors"

var (
	// ErrDegreeTooLarge is returned when a degree is negative or exceeds MaxDegree.
	ErrDegreeTooLarge = errors.New("perm: degree out of range")

	// ErrDegreeMismatch indicates a permutation whose degree differs from the group degree.
	ErrDegreeMismatch = errors.New("perm: degree mismatch")

	// ErrNotPermutation indicates an image list that is not a bijection of {0..n-1}.
	ErrNotPermutation = errors.New("perm: images do not form a permutation")

	// ErrBadCycle indicates malformed cycle notation or a point repeated across cycles.
	ErrBadCycle = errors.New("perm: invalid cycle")

	// ErrNotInGroup indicates an element that does not belong to the ambient group.
	ErrNotInGroup = errors.New("perm: element not in group")

	// ErrNotSubgroup indicates a group that is not a subgroup of the receiver.
	ErrNotSubgroup = errors.New("perm: not a subgroup")

	// ErrNotInvariant indicates a point set that is not a union of orbits.
	ErrNotInvariant = errors.New("perm: point set is not invariant")
)
