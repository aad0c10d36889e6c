// SPDX-License-Identifier: MIT

package classes

import (
	"github.com/katalvlaran/burnside/perm"
)

// Class is a conjugacy class of subgroups, represented by an interned id
// in the Table that produced it. Class values are comparable and may be
// used as map keys; equality is conjugacy of the underlying subgroups.
// The zero Class belongs to no table.
type Class struct {
	table *Table
	id    int
}

// ID returns the interned id, unique within the class's table.
func (c Class) ID() int { return c.id }

// Table returns the table that interned c.
func (c Class) Table() *Table { return c.table }

// Subgroup returns the canonical representative. All conjugate subgroups
// normalized by the same table return this same *perm.Group.
func (c Class) Subgroup() *perm.Group {
	if c.table == nil {
		return nil
	}

	return c.table.rep(c.id)
}

// Ambient returns the group in which the class is a conjugacy class.
func (c Class) Ambient() *perm.Group {
	if c.table == nil {
		return nil
	}

	return c.table.ambient(c.Subgroup())
}

// Order returns the order of the subgroups in the class, or 0 for the
// zero Class.
func (c Class) Order() int {
	if c.table == nil {
		return 0
	}

	return c.Subgroup().Order()
}

// Degree returns the degree of the subgroups in the class, or 0 for the
// zero Class.
func (c Class) Degree() int {
	if c.table == nil {
		return 0
	}

	return c.Subgroup().Degree()
}

// Equal reports whether c and other are the same conjugacy class.
// Classes from different tables are never equal.
func (c Class) Equal(other Class) bool {
	return c.table != nil && c.table == other.table && c.id == other.id
}

// Le reports whether c's subgroup is conjugate to a subgroup of other's,
// i.e. c ≤ other in the subgroup lattice up to conjugacy.
//
// Complexity: one oracle containment query (none when c equals other).
func (c Class) Le(other Class) bool {
	if c.table == nil || c.table != other.table {
		return false
	}
	if c.id == other.id {
		return true
	}
	small, big := c.Subgroup(), other.Subgroup()
	if small.Degree() != big.Degree() || big.Order()%small.Order() != 0 {
		return false
	}

	return len(c.table.oracle.ContainedConjugates(c.table.ambient(small), big, small, true)) > 0
}

// Lt reports c ≤ other and c ≠ other.
func (c Class) Lt(other Class) bool {
	return c.Le(other) && !c.Equal(other)
}

// Hash returns the fingerprint of the canonical representative.
// Equal classes have equal hashes.
func (c Class) Hash() uint64 {
	if c.table == nil {
		return 0
	}

	return c.Subgroup().Fingerprint()
}

// Name returns the display name assigned with Table.SetName.
func (c Class) Name() (string, bool) {
	if c.table == nil {
		return "", false
	}

	return c.table.name(c.id)
}

// String returns the assigned name, or the representative's small
// generating set when the class is unnamed.
func (c Class) String() string {
	if c.table == nil {
		return "<nil class>"
	}
	if n, ok := c.Name(); ok {
		return n
	}

	return c.table.render(c.Subgroup())
}
