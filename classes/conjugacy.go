// SPDX-License-Identifier: MIT

package classes

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/burnside/perm"
)

// ConjugacyClasses is the finite set of conjugacy classes of subgroups of a
// fixed ambient group G, backed by its own Table.
type ConjugacyClasses struct {
	group *perm.Group
	table *Table
}

// New returns the index set of conjugacy classes of subgroups of g.
// Returns ErrNilGroup if g is nil.
func New(g *perm.Group, opts ...Option) (*ConjugacyClasses, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	o := buildOptions(opts)
	ambient := func(*perm.Group) *perm.Group { return g }
	admit := func(h *perm.Group) error {
		if !h.IsSubgroupOf(g) {
			return fmt.Errorf("%w: %v of %v", ErrNotSubgroup, h, g)
		}

		return nil
	}

	return &ConjugacyClasses{
		group: g,
		table: newTable(ambient, admit, renderGenerators, o),
	}, nil
}

// Group returns the ambient group.
func (s *ConjugacyClasses) Group() *perm.Group { return s.group }

// Table returns the backing cache.
func (s *ConjugacyClasses) Table() *Table { return s.table }

// Construct returns the class of h. It fails with ErrConversion (wrapping
// ErrNotSubgroup) when h is not a subgroup of the ambient group.
func (s *ConjugacyClasses) Construct(h *perm.Group) (Class, error) {
	if h == nil {
		return Class{}, fmt.Errorf("%w: nil group", ErrConversion)
	}
	c, err := s.table.Normalize(h)
	if err != nil {
		return Class{}, fmt.Errorf("%w %v into %v: %w", ErrConversion, h, s, err)
	}

	return c, nil
}

// Contains reports whether h is a subgroup of the ambient group. It does
// not normalize h.
func (s *ConjugacyClasses) Contains(h *perm.Group) bool {
	return h != nil && h.IsSubgroupOf(s.group)
}

// Owns reports whether c was produced by this index set.
func (s *ConjugacyClasses) Owns(c Class) bool { return c.table == s.table }

// All yields one class per conjugacy class of subgroups, by increasing
// order. The sequence is lazy and may be ranged over repeatedly.
func (s *ConjugacyClasses) All() iter.Seq[Class] {
	return func(yield func(Class) bool) {
		for _, h := range s.group.ConjugacyClassesSubgroups() {
			if !yield(s.table.intern(h)) {
				return
			}
		}
	}
}

// Equal reports whether both index sets are built on equal ambient groups.
func (s *ConjugacyClasses) Equal(other *ConjugacyClasses) bool {
	return other != nil && s.group.Equal(other.group)
}

// Hash returns the fingerprint of the ambient group.
func (s *ConjugacyClasses) Hash() uint64 { return s.group.Fingerprint() }

func (s *ConjugacyClasses) String() string {
	return "Conjugacy classes of subgroups of " + s.group.String()
}

func renderGenerators(rep *perm.Group) string {
	return perm.FormatGenerators(rep.SmallGenerators())
}
