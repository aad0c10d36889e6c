// SPDX-License-Identifier: MIT

package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burnside/oracle"
	"github.com/katalvlaran/burnside/perm"
)

func TestRepresentativeAction(t *testing.T) {
	g := perm.Symmetric(3)
	h1 := perm.MustNew(3, perm.MustCycles(3, []int{1, 2}))
	h2 := perm.MustNew(3, perm.MustCycles(3, []int{2, 3}))

	var o oracle.Exhaustive
	x, ok := o.RepresentativeAction(g, h1, h2)
	require.True(t, ok)
	assert.True(t, h1.Conjugate(x).Equal(h2))

	_, ok = o.RepresentativeAction(g, h1, perm.Cyclic(3))
	assert.False(t, ok, "different orders are never conjugate")
}

func TestIsConjugate_KleinSubgroupsOfS4(t *testing.T) {
	g := perm.Symmetric(4)
	normal := perm.Dihedral(2) // {e, (12)(34), (13)(24), (14)(23)}
	product := perm.MustNew(4, perm.MustCycles(4, []int{1, 2}), perm.MustCycles(4, []int{3, 4}))

	var o oracle.Exhaustive
	assert.False(t, o.IsConjugate(g, normal, product))
	assert.True(t, o.IsConjugate(g, product,
		perm.MustNew(4, perm.MustCycles(4, []int{1, 3}), perm.MustCycles(4, []int{2, 4}))))
}

func TestContainedConjugates(t *testing.T) {
	g := perm.Symmetric(4)
	d4 := perm.Dihedral(4)
	transposition := perm.MustNew(4, perm.MustCycles(4, []int{1, 2}))

	var o oracle.Exhaustive
	one := o.ContainedConjugates(g, d4, transposition, true)
	require.Len(t, one, 1)
	assert.True(t, one[0].Subgroup.IsSubgroupOf(d4))
	assert.True(t, transposition.Conjugate(one[0].Element).Equal(one[0].Subgroup))

	// D4 = <(1,2,3,4), (2,4)> holds exactly two transpositions: (1,3) and (2,4)
	all := o.ContainedConjugates(g, d4, transposition, false)
	assert.Len(t, all, 2)

	assert.Empty(t, o.ContainedConjugates(g, perm.Cyclic(4), transposition, true))
	assert.Empty(t, o.ContainedConjugates(g, transposition, d4, true))
}

func TestDoubleCosetRepsAndSizes(t *testing.T) {
	g := perm.Symmetric(3)
	h := perm.MustNew(3, perm.MustCycles(3, []int{1, 2}))

	var o oracle.Exhaustive
	dcs := o.DoubleCosetRepsAndSizes(g, h, h)
	require.Len(t, dcs, 2)
	total := 0
	for _, dc := range dcs {
		total += dc.Size
	}
	assert.Equal(t, g.Order(), total)
	assert.ElementsMatch(t, []int{2, 4}, []int{dcs[0].Size, dcs[1].Size})
}

func TestCounting(t *testing.T) {
	c := oracle.NewCounting(nil)
	g := perm.Symmetric(3)
	c.IsConjugate(g, g, g)
	c.ContainedConjugates(g, g, perm.Cyclic(3), true)
	assert.EqualValues(t, 1, c.ConjugacyCalls())
	assert.EqualValues(t, 1, c.ContainmentCalls())
}
