// SPDX-License-Identifier: MIT

package oracle

import (
	"sync/atomic"

	"github.com/katalvlaran/burnside/perm"
)

// Counting wraps an Oracle and counts conjugacy and containment queries.
// It is used to observe how well a cache avoids oracle work.
type Counting struct {
	inner       Oracle
	conjugacy   atomic.Int64
	containment atomic.Int64
}

var _ Oracle = (*Counting)(nil)

// NewCounting wraps inner; a nil inner means Exhaustive.
func NewCounting(inner Oracle) *Counting {
	if inner == nil {
		inner = Exhaustive{}
	}

	return &Counting{inner: inner}
}

// ConjugacyCalls returns the number of RepresentativeAction/IsConjugate calls.
func (c *Counting) ConjugacyCalls() int64 { return c.conjugacy.Load() }

// ContainmentCalls returns the number of ContainedConjugates calls.
func (c *Counting) ContainmentCalls() int64 { return c.containment.Load() }

func (c *Counting) RepresentativeAction(g, h1, h2 *perm.Group) (perm.Perm, bool) {
	c.conjugacy.Add(1)

	return c.inner.RepresentativeAction(g, h1, h2)
}

func (c *Counting) IsConjugate(g, h1, h2 *perm.Group) bool {
	c.conjugacy.Add(1)

	return c.inner.IsConjugate(g, h1, h2)
}

func (c *Counting) ContainedConjugates(g, big, small *perm.Group, findOne bool) []Witness {
	c.containment.Add(1)

	return c.inner.ContainedConjugates(g, big, small, findOne)
}

func (c *Counting) DoubleCosetRepsAndSizes(g, h, k *perm.Group) []DoubleCoset {
	return c.inner.DoubleCosetRepsAndSizes(g, h, k)
}

func (c *Counting) ConjugateSubgroup(k *perm.Group, x perm.Perm) *perm.Group {
	return c.inner.ConjugateSubgroup(k, x)
}

func (c *Counting) Intersection(h1, h2 *perm.Group) *perm.Group {
	return c.inner.Intersection(h1, h2)
}
